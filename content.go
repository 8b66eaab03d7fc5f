package main

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

type Skill struct {
	Title string `yaml:"title" validate:"required"`
	Icon  string `yaml:"icon" validate:"required"`
	Link  string `yaml:"link" validate:"omitempty,url"`
}

type Social struct {
	Title string `yaml:"title" validate:"required"`
	Icon  string `yaml:"icon" validate:"required"`
	Link  string `yaml:"link" validate:"required,url"`
}

type Experience struct {
	Role        string `yaml:"role" validate:"required"`
	Company     string `yaml:"company" validate:"required"`
	Description string `yaml:"description"`
	Link        string `yaml:"link" validate:"omitempty,url"`
}

type Project struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
	Link        string `yaml:"link" validate:"omitempty,url"`
}

// Content is everything shown on the page apart from the theme.
type Content struct {
	Name        string       `yaml:"name" validate:"required"`
	Headline    string       `yaml:"headline" validate:"required"`
	About       string       `yaml:"about"`
	Familiar    []Skill      `yaml:"familiar" validate:"dive"`
	Exploring   []Skill      `yaml:"exploring" validate:"dive"`
	Experiences []Experience `yaml:"experiences" validate:"dive"`
	Projects    []Project    `yaml:"projects" validate:"dive"`
	Socials     []Social     `yaml:"socials" validate:"dive"`
}

// DefaultContent parses the content compiled into the binary.
func DefaultContent() (Content, error) {
	return ParseContent(contentYAML)
}

// ParseContent decodes and validates YAML portfolio content.
func ParseContent(data []byte) (Content, error) {
	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return Content{}, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := validator.New().Struct(content); err != nil {
		return Content{}, fmt.Errorf("invalid content: %w", err)
	}
	return content, nil
}

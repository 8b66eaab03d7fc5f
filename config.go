package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"
)

// Config is read from the environment. A .env file in the working
// directory is loaded first by godotenv/autoload.
type Config struct {
	Port          string
	Mode          string
	DBPath        string
	AdminUsername string
	AdminPassword string
	LogLevel      string
	LogFile       string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func LoadConfig() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		Mode:          getenv("GIN_MODE", gin.DebugMode),
		DBPath:        getenv("DB_PATH", "portfolio.db"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFile:       os.Getenv("LOG_FILE"),
	}
}

// Development reports whether gin runs in debug mode.
func (c Config) Development() bool {
	return c.Mode == gin.DebugMode
}

func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("config error: invalid PORT %q", c.Port)
	}
	switch c.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("config error: unknown GIN_MODE %q", c.Mode)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.Mode == gin.ReleaseMode && (c.AdminUsername == "" || c.AdminPassword == "") {
		return fmt.Errorf("config error: ADMIN_USERNAME and ADMIN_PASSWORD are required in release mode")
	}
	return nil
}

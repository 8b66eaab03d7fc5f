package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposerStartsWithResolvedTheme(t *testing.T) {
	store := NewMemoryStore()
	store.Set(themeKey, "dark")
	assert.Equal(t, DarkTheme, NewComposer(NewResolver(store, nil)).Theme())

	assert.Equal(t, LightTheme, NewComposer(NewResolver(NewMemoryStore(), ambient(false))).Theme())
	assert.Equal(t, DarkTheme, NewComposer(NewResolver(NewMemoryStore(), ambient(true))).Theme())
}

func TestToggleFlips(t *testing.T) {
	c := NewComposer(NewResolver(NewMemoryStore(), nil))
	require.Equal(t, LightTheme, c.Theme())

	assert.Equal(t, DarkTheme, c.Toggle())
	assert.Equal(t, DarkTheme, c.Theme())
	assert.Equal(t, LightTheme, c.Toggle())
	assert.Equal(t, LightTheme, c.Theme())
}

func TestToggleIsAnInvolution(t *testing.T) {
	for _, start := range []string{"dark", "light"} {
		t.Run(start, func(t *testing.T) {
			store := NewMemoryStore()
			store.Set(themeKey, start)
			c := NewComposer(NewResolver(store, nil))
			before := c.Theme()

			c.Toggle()
			c.Toggle()

			assert.Equal(t, before, c.Theme())
			v, _ := store.Get(themeKey)
			assert.Equal(t, start, v)
		})
	}

	t.Run("from ambient", func(t *testing.T) {
		store := NewMemoryStore()
		c := NewComposer(NewResolver(store, ambient(true)))
		c.Toggle()
		c.Toggle()
		assert.Equal(t, DarkTheme, c.Theme())
		v, _ := store.Get(themeKey)
		assert.Equal(t, "dark", v)
	})
}

func TestTogglePersistsNewTheme(t *testing.T) {
	store := newSpyStore()
	c := NewComposer(NewResolver(store, ambient(true)))

	for i := 0; i < 5; i++ {
		theme := c.Toggle()
		require.Len(t, store.sets, i+1)
		assert.Equal(t, theme.Name(), store.sets[i])
		assert.Equal(t, c.Theme().Name(), store.sets[i])
	}
	assert.Equal(t, []string{"light", "dark", "light", "dark", "light"}, store.sets)
}

func TestCompose(t *testing.T) {
	content := Content{Name: "Alex", Headline: "Hi"}

	light := Compose(LightTheme, content)
	assert.Equal(t, "light", light.ThemeName)
	assert.Equal(t, "dark", light.ToggleTo)
	assert.Equal(t, Palette{
		Background: "#F4F4F4",
		Text:       "#2C2C2C",
		Divider:    "#2C2C2C",
		IconTint:   "#2C2C2C",
		Scrollbar:  "#2C2C2C",
	}, light.Palette)
	assert.Equal(t, content, light.Content)

	dark := Compose(DarkTheme, content)
	assert.Equal(t, "dark", dark.ThemeName)
	assert.Equal(t, "light", dark.ToggleTo)
	assert.Equal(t, "#121212", dark.Palette.Background)
	for _, c := range []string{dark.Palette.Text, dark.Palette.Divider, dark.Palette.IconTint, dark.Palette.Scrollbar} {
		assert.Equal(t, "#F4F4F4", c)
	}
}

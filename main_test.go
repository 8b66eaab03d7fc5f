package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRender(t *testing.T, args ...string) string {
	t.Helper()
	out := filepath.Join(t.TempDir(), "index.html")
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"render", "--out", out}, args...))
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	return string(data)
}

func TestRenderCommand(t *testing.T) {
	assert.Contains(t, runRender(t), "--background: #F4F4F4")
	assert.Contains(t, runRender(t, "--prefers-dark"), "--background: #121212")
	assert.Contains(t, runRender(t, "--theme", "dark"), "--background: #121212")
	assert.Contains(t, runRender(t, "--theme", "light", "--prefers-dark"), "--background: #F4F4F4")
}

func TestRenderCommandRejectsUnknownTheme(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "--out", filepath.Join(t.TempDir(), "x.html"), "--theme", "sepia"})
	cmd.SilenceErrors = true
	assert.Error(t, cmd.Execute())
}

func TestStatsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")
	tracker, err := OpenTracker(path)
	require.NoError(t, err)
	require.NoError(t, tracker.RecordVisit(context.Background(), "10.0.0.1", "ua", "/"))
	require.NoError(t, tracker.RecordToggle(context.Background(), "10.0.0.1", DarkTheme))
	require.NoError(t, tracker.Close())

	t.Setenv("DB_PATH", path)
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"stats"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "METRIC")
	assert.Regexp(t, `Toggled to dark\s*\|\s*1`, out.String())
	assert.Regexp(t, `Total visits\s*\|\s*1`, out.String())
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pixelcode/internal/core/review"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(dataDir, "missing.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, review.DefaultBaseURL, cfg.Review.BaseURL)
	assert.Equal(t, review.DefaultModel, cfg.Review.Model)
	assert.Equal(t, review.DefaultPrompt, cfg.Review.Prompt)
	assert.Equal(t, review.PolicyDiscard, cfg.StalePolicy())
	assert.Zero(t, cfg.Review.Timeout)
	assert.Equal(t, "python", cfg.Language)
	assert.True(t, cfg.DarkMode())
	assert.Equal(t, 5*time.Second, cfg.TUI.ToastDuration)
	assert.Equal(t, filepath.Join(dataDir, "pixelcode.log"), cfg.LogFile())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("", "/tmp/pixelcode")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pixelcode", cfg.DataDir)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
language: rust
downloads_dir: /tmp/out
review:
  model: gemini-2.0-flash
  api_key: abc
  stale_policy: accept
  timeout: 30s
tui:
  theme: gruvbox
  dark_mode: false
editor:
  dark_style: dracula
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "rust", cfg.Language)
	assert.Equal(t, "/tmp/out", cfg.DownloadsDir)
	assert.Equal(t, "gemini-2.0-flash", cfg.Review.Model)
	assert.Equal(t, review.DefaultBaseURL, cfg.Review.BaseURL)
	assert.Equal(t, review.PolicyAccept, cfg.StalePolicy())
	assert.Equal(t, 30*time.Second, cfg.Review.Timeout)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.False(t, cfg.DarkMode())
	assert.Equal(t, "dracula", cfg.Editor.DarkStyle)
	assert.Equal(t, "github", cfg.Editor.LightStyle)

	gc := cfg.GeminiConfig()
	assert.Equal(t, "abc", gc.APIKey)
	assert.Equal(t, 30*time.Second, gc.Timeout)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "review: [")

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown policy",
			content: "review:\n  stale_policy: newest\n",
			wantErr: "review.stale_policy",
		},
		{
			name:    "negative timeout",
			content: "review:\n  timeout: -1s\n",
			wantErr: "review.timeout",
		},
		{
			name:    "unknown language",
			content: "language: cobol\n",
			wantErr: "cobol",
		},
		{
			name:    "negative concurrency",
			content: "review:\n  concurrency: -2\n",
			wantErr: "review.concurrency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_RequiresDataDir(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, cfg.Validate())

	cfg.DataDir = "/tmp"
	require.NoError(t, cfg.Validate())
}

// Package config handles configuration loading and validation for pixelcode.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/pixelcode/internal/core/language"
	"github.com/colonyops/pixelcode/internal/core/review"
)

// Config holds the application configuration.
type Config struct {
	Review       ReviewConfig `yaml:"review"`
	TUI          TUIConfig    `yaml:"tui"`
	Editor       EditorConfig `yaml:"editor"`
	Language     string       `yaml:"language"`      // language selected at startup
	DownloadsDir string       `yaml:"downloads_dir"` // empty means the working directory
	DataDir      string       `yaml:"-"`             // set by caller, not from config file
}

// ReviewConfig configures the AI review service.
type ReviewConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	APIKey      string        `yaml:"api_key"`
	Prompt      string        `yaml:"prompt"`       // text/template, see review.PromptData
	StalePolicy string        `yaml:"stale_policy"` // discard or accept
	Timeout     time.Duration `yaml:"timeout"`      // 0 disables the timeout
	Concurrency int           `yaml:"concurrency"`  // parallel requests for the review command
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme         string        `yaml:"theme"`     // palette used in dark mode
	DarkMode      *bool         `yaml:"dark_mode"` // initial theme flag, defaults to true
	ToastDuration time.Duration `yaml:"toast_duration"`
}

// EditorConfig holds syntax highlighting settings for the editor preview.
type EditorConfig struct {
	DarkStyle  string `yaml:"dark_style"`
	LightStyle string `yaml:"light_style"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	dark := true
	return Config{
		Review: ReviewConfig{
			BaseURL:     review.DefaultBaseURL,
			Model:       review.DefaultModel,
			Prompt:      review.DefaultPrompt,
			StalePolicy: string(review.PolicyDiscard),
			Concurrency: 4,
		},
		TUI: TUIConfig{
			Theme:         "tokyo-night",
			DarkMode:      &dark,
			ToastDuration: 5 * time.Second,
		},
		Editor: EditorConfig{
			DarkStyle:  "monokai",
			LightStyle: "github",
		},
		Language: language.Default().ID,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Review.BaseURL == "" {
		c.Review.BaseURL = defaults.Review.BaseURL
	}
	if c.Review.Model == "" {
		c.Review.Model = defaults.Review.Model
	}
	if c.Review.Prompt == "" {
		c.Review.Prompt = defaults.Review.Prompt
	}
	if c.Review.StalePolicy == "" {
		c.Review.StalePolicy = defaults.Review.StalePolicy
	}
	if c.Review.Concurrency == 0 {
		c.Review.Concurrency = defaults.Review.Concurrency
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.DarkMode == nil {
		c.TUI.DarkMode = defaults.TUI.DarkMode
	}
	if c.TUI.ToastDuration == 0 {
		c.TUI.ToastDuration = defaults.TUI.ToastDuration
	}
	if c.Editor.DarkStyle == "" {
		c.Editor.DarkStyle = defaults.Editor.DarkStyle
	}
	if c.Editor.LightStyle == "" {
		c.Editor.LightStyle = defaults.Editor.LightStyle
	}
	if c.Language == "" {
		c.Language = defaults.Language
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if _, err := review.ParsePolicy(c.Review.StalePolicy); err != nil {
		return fmt.Errorf("review.stale_policy: %w", err)
	}

	if c.Review.Timeout < 0 {
		return fmt.Errorf("review.timeout cannot be negative")
	}

	if c.Review.Concurrency < 1 {
		return fmt.Errorf("review.concurrency must be at least 1")
	}

	if c.TUI.ToastDuration < 0 {
		return fmt.Errorf("tui.toast_duration cannot be negative")
	}

	if _, ok := language.Lookup(c.Language); !ok {
		return fmt.Errorf("language %q is not supported (want one of %v)", c.Language, language.IDs())
	}

	return nil
}

// StalePolicy returns the parsed review.stale_policy value.
func (c *Config) StalePolicy() review.Policy {
	p, _ := review.ParsePolicy(c.Review.StalePolicy)
	return p
}

// DarkMode returns the initial theme flag.
func (c *Config) DarkMode() bool {
	return c.TUI.DarkMode == nil || *c.TUI.DarkMode
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "pixelcode.log")
}

// GeminiConfig converts the review settings into client options.
func (c *Config) GeminiConfig() review.GeminiConfig {
	return review.GeminiConfig{
		BaseURL: c.Review.BaseURL,
		Model:   c.Review.Model,
		APIKey:  c.Review.APIKey,
		Timeout: c.Review.Timeout,
	}
}

package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/pixelcode/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Overrides applied on top of the loaded config.
	APIKey string
	Theme  string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// Apply copies non-empty flag overrides into cfg.
func (f *Flags) Apply(cfg *config.Config) {
	if f.APIKey != "" {
		cfg.Review.APIKey = f.APIKey
	}
	if f.Theme != "" {
		cfg.TUI.Theme = f.Theme
	}
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "pixelcode", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "pixelcode")
}

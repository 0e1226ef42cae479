package config

import (
	"fmt"
	"os"
	"strings"

	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/pixelcode/internal/core/review"
	"github.com/colonyops/pixelcode/internal/core/styles"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// template syntax, theme names, and file accessibility. The configPath argument
// specifies the config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateReview(),
		c.validateAppearance(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if strings.TrimSpace(c.Review.APIKey) == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Review",
			Item:     "review.api_key",
			Message:  "no API key configured; set GEMINI_API_KEY or --api-key, reviews will fail until then",
		})
	}

	if c.Review.StalePolicy == string(review.PolicyAccept) {
		warnings = append(warnings, ValidationWarning{
			Category: "Review",
			Item:     "review.stale_policy",
			Message:  "accept lets an older review overwrite a newer one when requests overlap",
		})
	}

	return warnings
}

// validateFileAccess checks the config file and the directories pixelcode writes to.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("downloads_dir", c.DownloadsDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// validateReview checks the prompt template renders against sample data and
// the endpoint settings are usable.
func (c *Config) validateReview() error {
	var errs criterio.FieldErrorsBuilder

	if _, err := review.RenderPrompt(c.Review.Prompt, "go", "package main"); err != nil {
		errs = errs.Append("review.prompt", fmt.Errorf("template error: %w", err))
	}

	if !strings.HasPrefix(c.Review.BaseURL, "http://") && !strings.HasPrefix(c.Review.BaseURL, "https://") {
		errs = errs.Append("review.base_url", fmt.Errorf("must be an http(s) URL, got %q", c.Review.BaseURL))
	}

	if strings.ContainsAny(c.Review.Model, "/?# ") {
		errs = errs.Append("review.model", fmt.Errorf("invalid model name %q", c.Review.Model))
	}

	return errs.ToError()
}

// validateAppearance checks theme and syntax style names.
func (c *Config) validateAppearance() error {
	var errs criterio.FieldErrorsBuilder

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		errs = errs.Append("tui.theme", fmt.Errorf("unknown theme %q (available: %s)", c.TUI.Theme, strings.Join(styles.ThemeNames(), ", ")))
	}

	for field, name := range map[string]string{
		"editor.dark_style":  c.Editor.DarkStyle,
		"editor.light_style": c.Editor.LightStyle,
	} {
		if _, ok := chromastyles.Registry[name]; !ok {
			errs = errs.Append(field, fmt.Errorf("unknown syntax style %q", name))
		}
	}

	return errs.ToError()
}

// Package app assembles the session controller shared by the TUI and the
// CLI commands.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/pixelcode/internal/core/config"
	"github.com/colonyops/pixelcode/internal/core/download"
	"github.com/colonyops/pixelcode/internal/core/logging"
	"github.com/colonyops/pixelcode/internal/core/notify"
	"github.com/colonyops/pixelcode/internal/core/review"
	"github.com/colonyops/pixelcode/internal/core/workspace"
)

// App is the central entry point for all pixelcode operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Config    *config.Config
	Workspace *workspace.Workspace
	Reviews   *review.Orchestrator
	Bus       *notify.Bus
	Downloads *download.Downloader
}

// New constructs an App. A nil gen selects the Gemini client configured in
// cfg. logger is the untagged base logger; each component adds its own tag.
func New(cfg *config.Config, gen review.Generator, logger zerolog.Logger) (*App, error) {
	if gen == nil {
		gen = review.NewGeminiClient(cfg.GeminiConfig())
	}

	bus := notify.NewBus()

	wsLogger := logging.WithComponent(logger, "workspace")
	ws, err := workspace.New(workspace.Options{
		Language: cfg.Language,
		DarkMode: cfg.DarkMode(),
		Notifier: bus,
		Logger:   &wsLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	reviews := review.New(gen, review.Options{
		Prompt: cfg.Review.Prompt,
		Policy: cfg.StalePolicy(),
		Logger: &logger,
	})

	return &App{
		Config:    cfg,
		Workspace: ws,
		Reviews:   reviews,
		Bus:       bus,
		Downloads: download.New(cfg.DownloadsDir),
	}, nil
}

// Download writes the current buffer under the workspace's download name and
// reports the outcome on the bus.
func (a *App) Download() (string, error) {
	path, err := a.Downloads.Save(a.Workspace.DownloadName(), a.Workspace.Buffer())
	if err != nil {
		a.Bus.Errorf("Download failed: %v", err)
		return "", err
	}
	a.Bus.Successf("Downloaded %s", path)
	return path, nil
}

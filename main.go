package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pixelcode/internal/app"
	"github.com/colonyops/pixelcode/internal/commands"
	"github.com/colonyops/pixelcode/internal/core/config"
	"github.com/colonyops/pixelcode/internal/core/logging"
	"github.com/colonyops/pixelcode/internal/core/styles"
	"github.com/colonyops/pixelcode/internal/printer"
	"github.com/colonyops/pixelcode/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		pixelApp  = &app.App{}
	)

	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "pixelcode",
		Usage:     "Terminal code editor with AI code review",
		UsageText: "pixelcode [global options] command [command options]",
		Description: `PixelCode is a multi-language scratch editor for the terminal. Each
language keeps its own buffer, files can be saved, reopened and exported,
and the current buffer can be sent to Gemini for a code review.

Run 'pixelcode' with no arguments to open the editor.
Run 'pixelcode review <files>' to review files without the editor.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("PIXELCODE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/pixelcode.log)",
				Sources:     cli.EnvVars("PIXELCODE_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("PIXELCODE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("PIXELCODE_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "api-key",
				Usage:       "Gemini API key (overrides review.api_key)",
				Sources:     cli.EnvVars("GEMINI_API_KEY", "PIXELCODE_API_KEY"),
				Destination: &flags.APIKey,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "dark mode color theme (overrides tui.theme)",
				Sources:     cli.EnvVars("PIXELCODE_THEME"),
				Destination: &flags.Theme,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Apply(cfg)
			flags.Config = cfg

			// Always log to a file so the TUI owns the terminal
			logFile := flags.LogFile
			if logFile == "" {
				logFile = cfg.LogFile()
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile, logging.ContextHook{})
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			if _, ok := styles.GetPalette(cfg.TUI.Theme); !ok {
				log.Warn().Str("theme", cfg.TUI.Theme).Strs("available", styles.ThemeNames()).Msg("unknown theme, using default")
			}
			styles.SetTheme(styles.PaletteFor(cfg.TUI.Theme, cfg.DarkMode()))

			a, err := app.New(cfg, nil, log.Logger)
			if err != nil {
				return ctx, err
			}
			// Populate the pre-allocated App (commands already hold a pointer to it)
			*pixelApp = *a

			return printer.NewContext(ctx, printer.New(c.Root().ErrWriter)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, pixelApp)

	root = commands.NewReviewCmd(flags, pixelApp).Register(root)
	root = commands.NewLanguagesCmd(flags).Register(root)
	root = commands.NewConfigValidateCmd(flags).Register(root)

	// Editor is the default action when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'pixelcode --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := root.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}

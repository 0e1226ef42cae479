package commands

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pixelcode/internal/core/language"
	"github.com/colonyops/pixelcode/internal/core/styles"
	"github.com/colonyops/pixelcode/internal/printer"
	"github.com/colonyops/pixelcode/pkg/iojson"
)

type LanguagesCmd struct {
	flags *Flags
	json  bool
}

// NewLanguagesCmd creates a new languages command.
func NewLanguagesCmd(flags *Flags) *LanguagesCmd {
	return &LanguagesCmd{flags: flags}
}

// Register adds the languages command to the application.
func (cmd *LanguagesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "languages",
		Aliases:   []string{"langs"},
		Usage:     "List supported languages",
		UsageText: "pixelcode languages [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *LanguagesCmd) run(_ context.Context, c *cli.Command) error {
	langs := language.All()

	if cmd.json {
		return iojson.WriteWith(c.Root().Writer, os.Stderr, langs)
	}

	p := printer.New(c.Root().Writer)
	p.Section("Languages")
	for _, d := range langs {
		marker := "  "
		if cmd.flags.Config != nil && cmd.flags.Config.Language == d.ID {
			marker = styles.IconActive + " "
		}
		p.Printf("%s%s%-12s .%s", marker, styles.LanguageIcon(d.ID), d.ID, d.Extension)
	}
	p.Printf("")
	p.Printf("%d languages", len(langs))

	return nil
}


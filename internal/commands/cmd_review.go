package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/colonyops/pixelcode/internal/app"
	"github.com/colonyops/pixelcode/internal/core/language"
	"github.com/colonyops/pixelcode/internal/core/review"
	"github.com/colonyops/pixelcode/internal/core/styles"
	"github.com/colonyops/pixelcode/internal/printer"
)

const stdinName = "<stdin>"

var errNoInput = errors.New("no input provided (stdin is a terminal); pass files or pipe code on stdin")

type ReviewCmd struct {
	flags    *Flags
	app      *app.App
	language string
	raw      bool

	// stdin and the terminal probes are replaced in tests.
	stdin      io.Reader
	isTerminal func(fd uintptr) bool
}

// NewReviewCmd creates a new review command.
func NewReviewCmd(flags *Flags, app *app.App) *ReviewCmd {
	return &ReviewCmd{
		flags: flags,
		app:   app,
		stdin: os.Stdin,
		isTerminal: func(fd uintptr) bool {
			return term.IsTerminal(int(fd))
		},
	}
}

// Register adds the review command to the application.
func (cmd *ReviewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "review",
		Usage:     "Review source files without opening the editor",
		UsageText: "pixelcode review [options] [paths or globs...]",
		Description: `Sends each file to the configured model and prints the review.

Globs are expanded with ** support. With no arguments the code is read from
stdin. The language is inferred from the file extension unless --language
is given.

Examples:
  pixelcode review main.go
  pixelcode review 'src/**/*.py'
  cat query.sql | pixelcode review -l sql`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "language",
				Aliases:     []string{"l"},
				Usage:       "language id for every input (see 'pixelcode languages')",
				Destination: &cmd.language,
			},
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without terminal rendering",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.run,
	})

	return app
}

type reviewInput struct {
	Name     string
	Language string
	Content  string
}

func (cmd *ReviewCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.app.Config.Review.APIKey == "" {
		printer.Ctx(ctx).Warnf("no API key configured; set GEMINI_API_KEY or --api-key")
	}

	if cmd.language != "" {
		if _, ok := language.Lookup(cmd.language); !ok {
			return fmt.Errorf("unknown language %q", cmd.language)
		}
	}

	var (
		inputs []reviewInput
		err    error
	)
	if c.Args().Len() == 0 {
		inputs, err = cmd.readStdin()
	} else {
		inputs, err = cmd.readFiles(c.Args().Slice())
	}
	if err != nil {
		return err
	}

	out := c.Root().Writer
	failed := cmd.reviewAll(ctx, inputs, out, cmd.renderer(out))
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d review(s) failed, see the log for details", failed, len(inputs)), 1)
	}
	return nil
}

func (cmd *ReviewCmd) readStdin() ([]reviewInput, error) {
	if f, ok := cmd.stdin.(*os.File); ok && cmd.isTerminal(f.Fd()) {
		return nil, errNoInput
	}

	data, err := io.ReadAll(cmd.stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	lang := cmd.language
	if lang == "" {
		lang = cmd.app.Config.Language
	}

	return []reviewInput{{Name: stdinName, Language: lang, Content: string(data)}}, nil
}

func (cmd *ReviewCmd) readFiles(args []string) ([]reviewInput, error) {
	paths, err := expandPaths(args)
	if err != nil {
		return nil, err
	}

	inputs := make([]reviewInput, 0, len(paths))
	for _, path := range paths {
		lang := cmd.language
		if lang == "" {
			d, ok := language.ByExtension(filepath.Ext(path))
			if !ok {
				return nil, fmt.Errorf("cannot infer language for %s; use --language", path)
			}
			lang = d.ID
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		inputs = append(inputs, reviewInput{Name: path, Language: lang, Content: string(data)})
	}

	return inputs, nil
}

// expandPaths resolves globs in args, keeping first-seen order and dropping
// duplicates. A pattern that matches nothing is an error.
func expandPaths(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string

	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			add(arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		for _, m := range matches {
			add(m)
		}
	}

	return paths, nil
}

// reviewAll runs the reviews with bounded concurrency and writes the results
// in input order. It returns the number of failed reviews.
func (cmd *ReviewCmd) reviewAll(ctx context.Context, inputs []reviewInput, w io.Writer, render func(string) string) int {
	reviews := cmd.app.Reviews
	outputs := make([]*reviewOutput, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cmd.app.Config.Review.Concurrency, 1))

	for i, in := range inputs {
		outputs[i] = newReviewOutput(in)

		g.Go(func() error {
			req := reviews.Begin(in.Language, in.Content)
			out := reviews.Run(gctx, req)
			reviews.Settle(out)

			if out.Err != nil {
				outputs[i].Fail(out.Display())
			} else {
				outputs[i].Review(render(out.Display()))
			}
			return nil
		})
	}

	_ = g.Wait()

	failed := 0
	for _, o := range outputs {
		if err := o.Flush(w); err != nil {
			log.Debug().Err(err).Msg("write review output")
		}
		if o.Failed() {
			failed++
		}
	}
	return failed
}

// renderer returns glamour rendering when w is a terminal and raw output was
// not requested. The returned func is safe for concurrent use.
func (cmd *ReviewCmd) renderer(w io.Writer) func(string) string {
	plain := func(s string) string { return strings.TrimRight(s, "\n") + "\n" }

	f, ok := w.(*os.File)
	if cmd.raw || !ok || !cmd.isTerminal(f.Fd()) {
		return plain
	}

	width := 80
	if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
		width = min(tw, 120)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return plain
	}

	var mu sync.Mutex
	return func(s string) string {
		mu.Lock()
		defer mu.Unlock()
		out, err := r.Render(s)
		if err != nil {
			return plain(s)
		}
		return out
	}
}

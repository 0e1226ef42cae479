package tui

import (
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/pixelcode/internal/core/review"
	"github.com/colonyops/pixelcode/internal/core/styles"
)

const (
	reviewPlaceholder = "Your code review will appear here."
	reviewPending     = "⏳ Analyzing your code..."
)

// reviewPane shows the review slot: a placeholder, a spinner while a request
// is pending, or the rendered markdown in a scrollable viewport.
type reviewPane struct {
	viewport viewport.Model
	spinner  spinner.Model
	result   review.Result
	width    int
	height   int
}

func newReviewPane() reviewPane {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return reviewPane{
		viewport: viewport.New(),
		spinner:  s,
	}
}

// SetSize resizes the viewport and re-renders the current text to the new
// width.
func (p *reviewPane) SetSize(width, height int) {
	p.width = max(width, 1)
	p.height = max(height, 1)
	p.viewport = viewport.New(viewport.WithWidth(p.width), viewport.WithHeight(p.height))
	p.render()
}

// SetResult stores the slot and re-renders when it holds text.
func (p *reviewPane) SetResult(res review.Result) {
	p.result = res
	p.render()
	p.viewport.GotoTop()
}

// Refresh re-renders with the current theme.
func (p *reviewPane) Refresh() {
	p.render()
}

func (p *reviewPane) render() {
	if p.result.Status != review.StatusDone {
		p.viewport.SetContent("")
		return
	}
	p.viewport.SetContent(renderMarkdown(p.result.Text, p.width))
}

func (p *reviewPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if p.result.Status != review.StatusPending {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd
	default:
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return cmd
	}
}

func (p *reviewPane) ScrollUp()   { p.viewport.ScrollUp(1) }
func (p *reviewPane) ScrollDown() { p.viewport.ScrollDown(1) }

func (p *reviewPane) View() string {
	switch p.result.Status {
	case review.StatusPending:
		return p.spinner.View() + " " + styles.StatusPendingStyle.Render(reviewPending)
	case review.StatusDone:
		return p.viewport.View()
	default:
		return styles.PlaceholderStyle.Render(reviewPlaceholder)
	}
}

// renderMarkdown renders review text with glamour using the active palette.
// Rendering failures fall back to the raw text.
func renderMarkdown(text string, width int) string {
	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return text
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return text
	}

	return strings.Trim(rendered, "\n")
}

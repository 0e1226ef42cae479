package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/colonyops/pixelcode/internal/core/styles"
)

const (
	appName        = "PixelCode"
	chromeHeight   = 3 // title, toolbar, help
	minBodyHeight  = 6
	paneChrome     = 3 // two border rows and the pane title
	minSidebarW    = 22
	maxSidebarW    = 34
	editorSharePct = 55
)

// layout recomputes pane sizes from the window size.
func (m *Model) layout() {
	_, editorW, reviewW, bodyH := m.paneSizes()

	contentH := max(bodyH-paneChrome, 1)
	m.editor.SetSize(max(editorW-2, 1), contentH)
	m.review.SetSize(max(reviewW-2, 1), contentH)
}

func (m Model) paneSizes() (sidebarW, editorW, reviewW, bodyH int) {
	bodyH = max(m.height-chromeHeight, minBodyHeight)
	sidebarW = min(max(m.width/5, minSidebarW), maxSidebarW)
	rest := max(m.width-sidebarW, 2)
	editorW = rest * editorSharePct / 100
	reviewW = rest - editorW
	return sidebarW, editorW, reviewW, bodyH
}

// View renders the TUI.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = !m.quitting
	return v
}

func (m Model) render() string {
	if m.quitting {
		return ""
	}

	sidebarW, editorW, reviewW, bodyH := m.paneSizes()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPane(focusSidebar, "Files", m.renderSidebar(sidebarW-2, bodyH-paneChrome), sidebarW, bodyH),
		m.renderPane(focusEditor, m.editorTitle(), m.editor.View(m.app.Workspace.Buffer(), m.app.Workspace.Descriptor(), m.syntaxStyle()), editorW, bodyH),
		m.renderPane(focusReview, "Review", m.review.View(), reviewW, bodyH),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		m.renderToolbar(),
		body,
		m.renderHelp(),
	)

	content = m.toasts.Overlay(content, m.width, m.height)

	return content
}

func (m Model) renderTitle() string {
	mode := styles.IconMoon + " dark"
	if !m.app.Workspace.DarkMode() {
		mode = styles.IconSun + " light"
	}

	file := "no file"
	if rec, ok := m.app.Workspace.Active(); ok {
		file = rec.Name
		if m.app.Workspace.Dirty() {
			file += " " + styles.FileDirtyStyle.Render(styles.IconDirty)
		}
	}

	left := styles.TitleStyle.Render(styles.IconApp+" "+appName) + styles.TitleMetaStyle.Render(file)
	right := styles.TitleMetaStyle.Render(mode)

	return fitLine(left, right, m.width)
}

func (m Model) renderToolbar() string {
	desc := m.app.Workspace.Descriptor()

	lang := styles.LanguageMutedStyle.Render("[ ") +
		styles.LanguageStyle.Render(styles.LanguageIcon(desc.ID)+desc.Label) +
		styles.LanguageMutedStyle.Render(fmt.Sprintf(" .%s ]", desc.Extension))

	var status string
	if m.app.Reviews.InProgress() {
		status = styles.ButtonDisabledStyle.Render("Reviewing...")
	} else {
		status = styles.ButtonStyle.Render("Review ^r")
	}

	return fitLine(" "+lang, status+" ", m.width)
}

func (m Model) editorTitle() string {
	title := "Editor · " + m.app.Workspace.Descriptor().Label
	if m.editor.Editing() {
		title += " (editing)"
	}
	return title
}

func (m Model) renderSidebar(width, height int) string {
	records := m.app.Workspace.Records()
	if len(records) == 0 {
		return styles.PlaceholderStyle.Render("No saved files")
	}

	activeID := m.app.Workspace.ActiveID()
	dirty := m.app.Workspace.Dirty()

	// two lines per file; keep the cursor in view
	visible := max(height/2, 1)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(records))

	lines := make([]string, 0, (end-start)*2)
	for i := start; i < end; i++ {
		rec := records[i]

		marker := "  "
		nameStyle := styles.FileItemStyle
		if rec.ID == activeID {
			marker = styles.IconActive + " "
			nameStyle = styles.FileActiveStyle
		}

		name := marker + styles.LanguageIcon(rec.Language) + nameStyle.Render(rec.Name)
		if rec.ID == activeID && dirty {
			name += " " + styles.FileDirtyStyle.Render(styles.IconDirty)
		}
		meta := "    " + styles.FileMetaStyle.Render(humanize.Time(rec.ModifiedAt))

		if i == m.cursor && m.focus == focusSidebar {
			name = styles.FileSelectedStyle.Render(padRight(ansi.Strip(name), width))
		}

		lines = append(lines, name, meta)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	bindings := m.keys.helpFor(m.focus, m.editor.Editing(), m.app.Reviews.InProgress())
	prefix := ""
	if m.rename.Active() {
		bindings = m.keys.renameHelp()
		prefix = m.rename.View() + "  "
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		parts = append(parts, helpEntry(b))
	}

	line := " " + prefix + strings.Join(parts, styles.HelpDescStyle.Render(styles.HelpSeparatorText))
	return ansi.Truncate(line, m.width, "…")
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return styles.HelpKeyStyle.Render(h.Key) + " " + styles.HelpDescStyle.Render(h.Desc)
}

// renderPane draws a bordered pane of exactly w x h cells with a title row.
func (m Model) renderPane(f focus, title, body string, w, h int) string {
	style := styles.PaneStyle
	if m.focus == f {
		style = styles.PaneFocusedStyle
	}

	innerW := max(w-2, 1)
	innerH := max(h-2, 1)

	lines := []string{styles.PaneTitleStyle.Render(title)}
	if body != "" {
		lines = append(lines, strings.Split(body, "\n")...)
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}
	for i, l := range lines {
		lines[i] = padRight(ansi.Truncate(l, innerW, ""), innerW)
	}

	return style.Render(strings.Join(lines, "\n"))
}

// fitLine places left and right on one line of the given width.
func fitLine(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left, width, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

func padRight(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

package tui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/pixelcode/internal/core/language"
)

const tabSpaces = "    "

// editorPane is the code editor: a textarea while editing, a highlighted
// read-only preview otherwise.
type editorPane struct {
	input   textarea.Model
	editing bool
	offset  int
	width   int
	height  int
}

func newEditorPane() editorPane {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = "Start typing..."

	return editorPane{input: ta}
}

func (e *editorPane) SetSize(width, height int) {
	e.width = max(width, 1)
	e.height = max(height, 1)
	e.input.SetWidth(e.width)
	e.input.SetHeight(e.height)
}

// Sync loads text into the textarea when it differs from what is shown.
func (e *editorPane) Sync(text string) {
	if e.input.Value() != text {
		e.input.SetValue(text)
	}
}

// StartEditing focuses the textarea with text loaded.
func (e *editorPane) StartEditing(text string) tea.Cmd {
	e.Sync(text)
	e.editing = true
	return e.input.Focus()
}

func (e *editorPane) StopEditing() {
	e.editing = false
	e.input.Blur()
}

func (e *editorPane) Editing() bool { return e.editing }

// Update forwards msg to the textarea and reports the new value.
func (e *editorPane) Update(msg tea.Msg) (string, tea.Cmd) {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e.input.Value(), cmd
}

func (e *editorPane) Scroll(delta int, text string) {
	lines := strings.Count(text, "\n") + 1
	e.offset = min(max(e.offset+delta, 0), max(lines-e.height, 0))
}

func (e *editorPane) ResetScroll() { e.offset = 0 }

// View renders the editor for the given buffer.
func (e *editorPane) View(text string, desc language.Descriptor, syntaxStyle string) string {
	if e.editing {
		return e.input.View()
	}

	code := highlight(strings.ReplaceAll(text, "\t", tabSpaces), desc.Lexer, syntaxStyle)
	lines := strings.Split(code, "\n")
	if e.offset < len(lines) {
		lines = lines[e.offset:]
	}
	if len(lines) > e.height {
		lines = lines[:e.height]
	}
	return strings.Join(lines, "\n")
}

package tui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/pixelcode/internal/core/workspace"
)

// renamePrompt edits the base name of a saved file in the footer. The
// extension is not editable.
type renamePrompt struct {
	input  textinput.Model
	id     string
	active bool
}

func newRenamePrompt() renamePrompt {
	ti := textinput.New()
	ti.Prompt = "Rename: "
	ti.Placeholder = "file name"
	ti.CharLimit = 128

	return renamePrompt{input: ti}
}

// Open starts editing rec's base name.
func (r *renamePrompt) Open(rec workspace.Record) tea.Cmd {
	r.id = rec.ID
	r.active = true
	r.input.SetValue(rec.BaseName())
	r.input.CursorEnd()
	return r.input.Focus()
}

func (r *renamePrompt) Close() {
	r.id = ""
	r.active = false
	r.input.Blur()
	r.input.Reset()
}

func (r *renamePrompt) Active() bool  { return r.active }
func (r *renamePrompt) Target() string { return r.id }
func (r *renamePrompt) Value() string  { return r.input.Value() }

func (r *renamePrompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return cmd
}

func (r *renamePrompt) View() string {
	return r.input.View()
}

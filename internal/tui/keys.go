package tui

import "charm.land/bubbles/v2/key"

// keyMap holds every binding the shell reacts to. Bindings prefixed with ctrl
// work while the editor has input focus; the rest only in navigation mode.
type keyMap struct {
	Focus    key.Binding
	Edit     key.Binding
	Escape   key.Binding
	New      key.Binding
	Save     key.Binding
	Review   key.Binding
	Download key.Binding
	Theme    key.Binding
	PrevLang key.Binding
	NextLang key.Binding
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Delete   key.Binding
	Rename   key.Binding
	Confirm  key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Edit:     key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("i", "edit")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop editing")),
		New:      key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("^n", "new")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "save")),
		Review:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("^r", "review")),
		Download: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("^d", "download")),
		Theme:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("^t", "theme")),
		PrevLang: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev lang")),
		NextLang: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next lang")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Rename:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Dismiss:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "dismiss toast")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpFor returns the bindings shown in the footer for the current focus.
func (k keyMap) helpFor(f focus, editing, reviewing bool) []key.Binding {
	review := k.Review
	review.SetEnabled(!reviewing)

	if editing {
		return []key.Binding{k.Escape, k.Save, review, k.New, k.Download, k.Theme}
	}

	bindings := []key.Binding{k.Focus}
	switch f {
	case focusSidebar:
		bindings = append(bindings, k.Up, k.Down, k.Open, k.Rename, k.Delete)
	case focusEditor:
		bindings = append(bindings, k.Edit, k.PrevLang, k.NextLang)
	case focusReview:
		bindings = append(bindings, k.Up, k.Down)
	}

	return append(bindings, k.Save, review, k.New, k.Download, k.Theme, k.Quit)
}

// renameHelp lists the bindings shown next to the rename prompt.
func (k keyMap) renameHelp() []key.Binding {
	cancel := k.Escape
	cancel.SetHelp("esc", "cancel")
	return []key.Binding{k.Confirm, cancel}
}

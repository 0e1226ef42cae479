// Package tui implements the Bubble Tea TUI for pixelcode.
package tui

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/pixelcode/internal/app"
	"github.com/colonyops/pixelcode/internal/core/language"
	"github.com/colonyops/pixelcode/internal/core/notify"
	"github.com/colonyops/pixelcode/internal/core/review"
	"github.com/colonyops/pixelcode/internal/core/styles"
	"github.com/colonyops/pixelcode/internal/core/workspace"
)

type focus int

const (
	focusSidebar focus = iota
	focusEditor
	focusReview
	focusCount
)

// reviewDoneMsg carries a finished review back to the update loop.
type reviewDoneMsg struct {
	outcome review.Outcome
}

// Options configures the TUI behavior.
type Options struct {
	// Context bounds outstanding review requests. Defaults to Background.
	Context context.Context
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	app  *app.App
	ctx  context.Context
	keys keyMap

	focus  focus
	cursor int

	editor editorPane
	review reviewPane
	rename renamePrompt

	toasts *toastStack

	width    int
	height   int
	quitting bool
}

// New creates the TUI model. Notifications published on the app bus are
// shown as toasts.
func New(a *app.App, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	toasts := newToastStack(a.Config.TUI.ToastDuration)
	a.Bus.Subscribe(func(n notify.Notification) {
		toasts.Push(n)
	})

	m := Model{
		app:    a,
		ctx:    ctx,
		keys:   defaultKeyMap(),
		focus:  focusEditor,
		editor: newEditorPane(),
		review: newReviewPane(),
		rename: newRenamePrompt(),
		toasts: toasts,
		width:  80,
		height: 24,
	}

	m.applyTheme()
	m.layout()
	m.editor.Sync(a.Workspace.Buffer())
	m.review.SetResult(a.Reviews.Result())

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	case toastTickMsg:
		return m.handleToastTick(msg)
	case reviewDoneMsg:
		if m.app.Reviews.Settle(msg.outcome) {
			m.review.SetResult(m.app.Reviews.Result())
		}
	case spinner.TickMsg:
		cmd = m.review.Update(msg)
	case tea.KeyPressMsg:
		cmd = m.handleKey(msg)
	default:
		if m.rename.Active() {
			cmd = m.rename.Update(msg)
		} else if m.editor.Editing() {
			var text string
			text, cmd = m.editor.Update(msg)
			if text != m.app.Workspace.Buffer() {
				m.app.Workspace.Edit(text)
			}
		}
	}

	return m, tea.Batch(cmd, m.ensureToastTick())
}

func (m Model) handleToastTick(_ toastTickMsg) (tea.Model, tea.Cmd) {
	if m.toasts.Advance(toastTickInterval) {
		return m, scheduleToastTick()
	}
	return m, nil
}

// ensureToastTick starts the expiry timer when toasts appeared during this
// update.
func (m *Model) ensureToastTick() tea.Cmd {
	if !m.toasts.claimTick() {
		return nil
	}
	return scheduleToastTick()
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQ) {
		m.quitting = true
		return tea.Quit
	}

	if m.rename.Active() {
		return m.handleRenameKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.New):
		m.app.Workspace.CreateNew()
		m.afterWorkspaceChange()
		return nil
	case key.Matches(msg, m.keys.Save):
		m.app.Workspace.Save()
		m.afterWorkspaceChange()
		m.cursor = m.activeIndex()
		return nil
	case key.Matches(msg, m.keys.Review):
		return m.startReview()
	case key.Matches(msg, m.keys.Download):
		_, _ = m.app.Download()
		return nil
	case key.Matches(msg, m.keys.Theme):
		m.app.Workspace.ToggleTheme()
		m.applyTheme()
		return nil
	}

	if m.editor.Editing() {
		if key.Matches(msg, m.keys.Escape) {
			m.editor.StopEditing()
			return nil
		}
		text, cmd := m.editor.Update(msg)
		if text != m.app.Workspace.Buffer() {
			m.app.Workspace.Edit(text)
		}
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.focus = (m.focus + 1) % focusCount
		return nil
	case key.Matches(msg, m.keys.Dismiss):
		m.toasts.Dismiss()
		return nil
	case key.Matches(msg, m.keys.PrevLang):
		m.shiftLanguage(-1)
		return nil
	case key.Matches(msg, m.keys.NextLang):
		m.shiftLanguage(1)
		return nil
	}

	switch m.focus {
	case focusSidebar:
		return m.handleSidebarKey(msg)
	case focusEditor:
		return m.handleEditorKey(msg)
	case focusReview:
		return m.handleReviewKey(msg)
	}
	return nil
}

func (m *Model) handleSidebarKey(msg tea.KeyPressMsg) tea.Cmd {
	records := m.app.Workspace.Records()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, max(len(records)-1, 0))
	case key.Matches(msg, m.keys.Open):
		if m.cursor >= len(records) {
			return nil
		}
		if _, err := m.app.Workspace.Open(records[m.cursor].ID); err != nil {
			m.app.Bus.Errorf("Open failed: %v", err)
			return nil
		}
		m.afterWorkspaceChange()
		m.focus = focusEditor
	case key.Matches(msg, m.keys.Rename):
		if m.cursor >= len(records) {
			return nil
		}
		return m.rename.Open(records[m.cursor])
	case key.Matches(msg, m.keys.Delete):
		if m.cursor >= len(records) {
			return nil
		}
		m.app.Workspace.Delete(records[m.cursor].ID)
		m.afterWorkspaceChange()
	}
	return nil
}

// handleRenameKey drives the rename prompt. An empty name keeps the prompt
// open so it can be corrected.
func (m *Model) handleRenameKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.rename.Close()
		return nil
	case key.Matches(msg, m.keys.Confirm):
		_, err := m.app.Workspace.Rename(m.rename.Target(), m.rename.Value())
		if err != nil {
			m.app.Bus.Errorf("Rename failed: %v", err)
			if errors.Is(err, workspace.ErrEmptyName) {
				return nil
			}
		}
		m.rename.Close()
		return nil
	}
	return m.rename.Update(msg)
}

func (m *Model) handleEditorKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Edit):
		return m.editor.StartEditing(m.app.Workspace.Buffer())
	case key.Matches(msg, m.keys.Up):
		m.editor.Scroll(-1, m.app.Workspace.Buffer())
	case key.Matches(msg, m.keys.Down):
		m.editor.Scroll(1, m.app.Workspace.Buffer())
	}
	return nil
}

func (m *Model) handleReviewKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.review.ScrollUp()
		return nil
	case key.Matches(msg, m.keys.Down):
		m.review.ScrollDown()
		return nil
	}
	return m.review.Update(msg)
}

// startReview issues a request for the current buffer. The trigger is
// ignored while a review is pending.
func (m *Model) startReview() tea.Cmd {
	if m.app.Reviews.InProgress() {
		return nil
	}

	reviews := m.app.Reviews
	req := reviews.Begin(m.app.Workspace.Language(), m.app.Workspace.Buffer())
	m.review.SetResult(reviews.Result())

	ctx := m.ctx
	run := func() tea.Msg {
		return reviewDoneMsg{outcome: reviews.Run(ctx, req)}
	}

	return tea.Batch(run, m.review.spinner.Tick)
}

func (m *Model) shiftLanguage(delta int) {
	next := language.Next(m.app.Workspace.Language(), delta)
	if err := m.app.Workspace.SetLanguage(next); err != nil {
		m.app.Bus.Errorf("Change language: %v", err)
		return
	}
	m.afterWorkspaceChange()
}

// afterWorkspaceChange brings derived view state in line with the workspace.
func (m *Model) afterWorkspaceChange() {
	m.editor.Sync(m.app.Workspace.Buffer())
	m.editor.ResetScroll()
	m.cursor = min(m.cursor, max(len(m.app.Workspace.Records())-1, 0))
}

func (m *Model) activeIndex() int {
	activeID := m.app.Workspace.ActiveID()
	for i, r := range m.app.Workspace.Records() {
		if r.ID == activeID {
			return i
		}
	}
	return m.cursor
}

func (m *Model) applyTheme() {
	styles.SetTheme(styles.PaletteFor(m.app.Config.TUI.Theme, m.app.Workspace.DarkMode()))
	m.review.Refresh()
}

func (m *Model) syntaxStyle() string {
	if m.app.Workspace.DarkMode() {
		return m.app.Config.Editor.DarkStyle
	}
	return m.app.Config.Editor.LightStyle
}

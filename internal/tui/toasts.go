package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/pixelcode/internal/core/notify"
	"github.com/colonyops/pixelcode/internal/core/styles"
)

const (
	defaultToastTTL   = 5 * time.Second
	maxToasts         = 4
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 44
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

type toastEntry struct {
	note      notify.Notification
	count     int
	remaining time.Duration
}

// toastStack holds the notifications currently on screen, oldest first.
// Repeats of the newest notification are folded into it.
type toastStack struct {
	ttl     time.Duration
	entries []toastEntry
	ticking bool
}

// newToastStack returns a stack whose toasts live for ttl. A non-positive
// ttl selects defaultToastTTL.
func newToastStack(ttl time.Duration) *toastStack {
	if ttl <= 0 {
		ttl = defaultToastTTL
	}
	return &toastStack{ttl: ttl}
}

// lifetime is the display time for a level. Errors stay twice as long.
func (s *toastStack) lifetime(level notify.Level) time.Duration {
	if level == notify.LevelError {
		return 2 * s.ttl
	}
	return s.ttl
}

// Push shows n. A repeat of the newest toast bumps its count and restarts its
// timer; otherwise the oldest toast is dropped once maxToasts is exceeded.
func (s *toastStack) Push(n notify.Notification) {
	if last := len(s.entries) - 1; last >= 0 {
		e := &s.entries[last]
		if e.note.Level == n.Level && e.note.Message == n.Message {
			e.count++
			e.remaining = s.lifetime(n.Level)
			return
		}
	}

	s.entries = append(s.entries, toastEntry{note: n, count: 1, remaining: s.lifetime(n.Level)})
	if over := len(s.entries) - maxToasts; over > 0 {
		s.entries = s.entries[over:]
	}
}

// Advance ages every toast by d and drops the expired ones. It reports
// whether any toast remains; the tick loop stops when none do.
func (s *toastStack) Advance(d time.Duration) bool {
	alive := s.entries[:0]
	for _, e := range s.entries {
		if e.remaining -= d; e.remaining > 0 {
			alive = append(alive, e)
		}
	}
	s.entries = alive

	if len(s.entries) == 0 {
		s.ticking = false
		return false
	}
	return true
}

// Dismiss removes the newest toast.
func (s *toastStack) Dismiss() {
	if n := len(s.entries); n > 0 {
		s.entries = s.entries[:n-1]
	}
}

func (s *toastStack) Len() int { return len(s.entries) }

// Ticking reports whether a tick loop is running.
func (s *toastStack) Ticking() bool { return s.ticking }

// claimTick marks the tick loop as running and reports whether the caller
// must start it.
func (s *toastStack) claimTick() bool {
	if len(s.entries) == 0 || s.ticking {
		return false
	}
	s.ticking = true
	return true
}

// View renders the stack, oldest on top.
func (s *toastStack) View() string {
	if len(s.entries) == 0 {
		return ""
	}

	rows := make([]string, len(s.entries))
	for i, e := range s.entries {
		rows[i] = renderToast(e)
	}
	return strings.Join(rows, "\n")
}

func toastLook(level notify.Level) (string, lipgloss.Style) {
	switch level {
	case notify.LevelError:
		return styles.IconNotifyError, styles.ToastErrorStyle
	case notify.LevelWarning:
		return styles.IconNotifyWarning, styles.ToastWarningStyle
	case notify.LevelSuccess:
		return styles.IconNotifySuccess, styles.ToastSuccessStyle
	default:
		return styles.IconNotifyInfo, styles.ToastInfoStyle
	}
}

func renderToast(e toastEntry) string {
	icon, style := toastLook(e.note.Level)

	text := icon + " " + e.note.Message
	if e.count > 1 {
		text += fmt.Sprintf(" (x%d)", e.count)
	}
	return style.Width(toastWidth).Render(text)
}

// Overlay draws the stack over screen in the lower-right corner, above the
// help line.
func (s *toastStack) Overlay(screen string, width, height int) string {
	stack := s.View()
	if stack == "" {
		return screen
	}

	x := max(width-lipgloss.Width(stack)-1, 0)
	y := max(height-lipgloss.Height(stack)-1, 0)

	return lipgloss.NewCompositor(
		lipgloss.NewLayer(screen),
		lipgloss.NewLayer(stack).X(x).Y(y).Z(1),
	).Render()
}

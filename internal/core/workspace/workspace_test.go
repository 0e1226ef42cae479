package workspace

import (
	"fmt"
	"testing"
	"time"

	"github.com/colonyops/pixelcode/internal/core/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Infof(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingNotifier) Successf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingNotifier) last() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newTestWorkspace(t *testing.T) (*Workspace, *recordingNotifier) {
	t.Helper()

	notifier := &recordingNotifier{}
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	seq := 0

	w, err := New(Options{
		DarkMode: true,
		Notifier: notifier,
		Now:      clock.Now,
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	})
	require.NoError(t, err)
	return w, notifier
}

func TestNew_Defaults(t *testing.T) {
	w, _ := newTestWorkspace(t)

	assert.Equal(t, "python", w.Language())
	assert.Equal(t, language.Snippet("python"), w.Buffer())
	assert.Empty(t, w.Records())
	assert.Empty(t, w.ActiveID())
	assert.True(t, w.DarkMode())
}

func TestNew_UnknownLanguage(t *testing.T) {
	_, err := New(Options{Language: "cobol"})
	require.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestNew_DefaultIDsAreUnique(t *testing.T) {
	w, err := New(Options{})
	require.NoError(t, err)

	a := w.Save()
	w.CreateNew()
	b := w.Save()

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSave_DefaultStateCreatesUntitled1(t *testing.T) {
	w, notifier := newTestWorkspace(t)

	r := w.Save()

	require.Len(t, w.Records(), 1)
	assert.Equal(t, "Untitled-1.py", r.Name)
	assert.Equal(t, "python", r.Language)
	assert.Equal(t, language.Snippet("python"), r.Content)
	assert.Equal(t, r.ID, w.ActiveID())
	assert.Equal(t, "Saved Untitled-1.py", notifier.last())
}

func TestSave_ProbesForSmallestFreeName(t *testing.T) {
	w, _ := newTestWorkspace(t)

	first := w.Save()
	w.CreateNew()
	second := w.Save()
	w.CreateNew()
	third := w.Save()

	assert.Equal(t, "Untitled-1.py", first.Name)
	assert.Equal(t, "Untitled-2.py", second.Name)
	assert.Equal(t, "Untitled-3.py", third.Name)

	// Freeing a slot makes it available again.
	w.Delete(second.ID)
	w.CreateNew()
	assert.Equal(t, "Untitled-2.py", w.Save().Name)
}

func TestSave_NameIsNeverTaken(t *testing.T) {
	w, _ := newTestWorkspace(t)

	for i := range 10 {
		before := map[string]bool{}
		for _, r := range w.Records() {
			before[r.Name] = true
		}

		w.CreateNew()
		if i%3 == 0 {
			require.NoError(t, w.SetLanguage(language.Next(w.Language(), 1)))
		}
		r := w.Save()

		assert.False(t, before[r.Name], "name %q already existed", r.Name)
	}
}

func TestSave_NumbersArePerName(t *testing.T) {
	w, _ := newTestWorkspace(t)

	w.Save()
	w.CreateNew()
	require.NoError(t, w.SetLanguage("java"))

	r := w.Save()
	assert.Equal(t, "Untitled-1.java", r.Name)
}

func TestSave_ActiveFileUpdatesInPlace(t *testing.T) {
	w, notifier := newTestWorkspace(t)

	created := w.Save()
	w.Edit("print('changed')")
	updated := w.Save()

	require.Len(t, w.Records(), 1)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Untitled-1.py", updated.Name)
	assert.Equal(t, "print('changed')", updated.Content)
	assert.True(t, updated.ModifiedAt.After(created.ModifiedAt))
	assert.Equal(t, "Saved Untitled-1.py", notifier.last())
}

func TestSave_ActiveFileFollowsLanguageChange(t *testing.T) {
	w, _ := newTestWorkspace(t)

	created := w.Save()
	require.NoError(t, w.SetLanguage("go"))
	updated := w.Save()

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Untitled-1.go", updated.Name)
	assert.Equal(t, "go", updated.Language)
	assert.Equal(t, language.Snippet("go"), updated.Content)
}

func TestSave_EmptyBuffer(t *testing.T) {
	w, _ := newTestWorkspace(t)
	w.Edit("")

	r := w.Save()
	assert.Empty(t, r.Content)
}

func TestSave_ContentIsSnapshot(t *testing.T) {
	w, _ := newTestWorkspace(t)

	r := w.Save()
	w.Edit("later edit")

	stored, ok := w.Record(r.ID)
	require.True(t, ok)
	assert.Equal(t, language.Snippet("python"), stored.Content)
}

func TestCreateNew(t *testing.T) {
	w, notifier := newTestWorkspace(t)

	w.Save()
	w.Edit("scratch")
	require.NoError(t, w.SetLanguage("java"))
	w.Edit("class Scratch {}")

	w.CreateNew()

	assert.Empty(t, w.ActiveID())
	assert.Equal(t, language.Snippet("java"), w.Buffer())
	assert.Equal(t, "scratch", w.BufferFor("python"), "other buffers untouched")
	assert.Equal(t, "New Java file (.java)", notifier.last())
}

func TestOpen_SetsLanguageAndBuffer(t *testing.T) {
	w, notifier := newTestWorkspace(t)

	require.NoError(t, w.SetLanguage("java"))
	w.Edit("class Saved {}")
	saved := w.Save()

	w.CreateNew()
	require.NoError(t, w.SetLanguage("python"))
	w.Edit("print('keep me')")

	// Unsaved edit in the Java buffer is discarded by Open.
	require.NoError(t, w.SetLanguage("java"))
	w.Edit("class Unsaved {}")
	require.NoError(t, w.SetLanguage("python"))

	opened, err := w.Open(saved.ID)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, opened.ID)
	assert.Equal(t, "java", w.Language())
	assert.Equal(t, "class Saved {}", w.BufferFor("java"))
	assert.Equal(t, "print('keep me')", w.BufferFor("python"))
	assert.Equal(t, saved.ID, w.ActiveID())
	assert.Equal(t, "Opened Untitled-1.java", notifier.last())
}

func TestOpen_NotFound(t *testing.T) {
	w, _ := newTestWorkspace(t)

	_, err := w.Open("missing")
	require.ErrorIs(t, err, ErrFileNotFound)
	assert.Empty(t, w.ActiveID())
}

func TestOpen_ThenSave_IsNoOp(t *testing.T) {
	w, _ := newTestWorkspace(t)

	w.Edit("x = 1")
	saved := w.Save()
	w.CreateNew()

	_, err := w.Open(saved.ID)
	require.NoError(t, err)
	resaved := w.Save()

	assert.Equal(t, saved.ID, resaved.ID)
	assert.Equal(t, saved.Name, resaved.Name)
	assert.Equal(t, saved.Content, resaved.Content)
	assert.Equal(t, saved.Language, resaved.Language)
}

func TestOpen_StaleLanguageFallsBackToTxt(t *testing.T) {
	w, _ := newTestWorkspace(t)

	r := w.Save()
	w.records[0].Language = "cobol"

	_, err := w.Open(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "cobol", w.Language())
	assert.Equal(t, language.DefaultExtension, w.Descriptor().Extension)

	updated := w.Save()
	assert.Equal(t, "Untitled-1.txt", updated.Name)
}

func TestDelete(t *testing.T) {
	w, notifier := newTestWorkspace(t)

	r := w.Save()
	w.Edit("unsaved")

	assert.True(t, w.Delete(r.ID))
	assert.Empty(t, w.Records())
	assert.Empty(t, w.ActiveID())
	assert.Equal(t, "unsaved", w.Buffer(), "delete must not reset buffers")
	assert.Equal(t, "Deleted Untitled-1.py", notifier.last())
}

func TestDelete_InactiveKeepsSelection(t *testing.T) {
	w, _ := newTestWorkspace(t)

	first := w.Save()
	w.CreateNew()
	second := w.Save()

	w.Delete(first.ID)

	assert.Equal(t, second.ID, w.ActiveID())
	require.Len(t, w.Records(), 1)
}

func TestDelete_Idempotent(t *testing.T) {
	w, notifier := newTestWorkspace(t)

	keep := w.Save()
	w.CreateNew()
	gone := w.Save()

	assert.True(t, w.Delete(gone.ID))
	afterOnce := w.Records()
	count := len(notifier.messages)

	assert.False(t, w.Delete(gone.ID))
	assert.Equal(t, afterOnce, w.Records())
	assert.Len(t, notifier.messages, count, "no notification for a no-op delete")
	assert.Equal(t, keep.ID, w.Records()[0].ID)
}

func TestRename(t *testing.T) {
	w, _ := newTestWorkspace(t)
	r := w.Save()

	renamed, err := w.Rename(r.ID, "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, r.ID, renamed.ID)
	assert.Equal(t, "hello.py", renamed.Name)

	// Extension still follows the language on the next save.
	require.NoError(t, w.SetLanguage("rust"))
	assert.Equal(t, "hello.rs", w.Save().Name)
}

func TestRename_Errors(t *testing.T) {
	w, _ := newTestWorkspace(t)
	r := w.Save()

	_, err := w.Rename(r.ID, "   ")
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = w.Rename("missing", "name")
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestRename_DuplicateNamesAllowed(t *testing.T) {
	w, _ := newTestWorkspace(t)
	a := w.Save()
	w.CreateNew()
	b := w.Save()

	_, err := w.Rename(b.ID, a.BaseName())
	require.NoError(t, err)

	records := w.Records()
	assert.Equal(t, records[0].Name, records[1].Name)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestSetLanguage(t *testing.T) {
	w, _ := newTestWorkspace(t)
	r := w.Save()

	require.NoError(t, w.SetLanguage("rust"))
	assert.Equal(t, "rust", w.Language())
	assert.Equal(t, r.ID, w.ActiveID(), "active file is independent of language")

	err := w.SetLanguage("cobol")
	require.ErrorIs(t, err, ErrUnknownLanguage)
	assert.Equal(t, "rust", w.Language())
}

func TestEdit_IsolatedPerLanguage(t *testing.T) {
	w, _ := newTestWorkspace(t)

	w.Edit("python code")
	require.NoError(t, w.SetLanguage("go"))
	w.Edit("go code")

	assert.Equal(t, "python code", w.BufferFor("python"))
	assert.Equal(t, "go code", w.BufferFor("go"))
	for _, id := range language.IDs() {
		if id == "python" || id == "go" {
			continue
		}
		assert.Equal(t, language.Snippet(id), w.BufferFor(id))
	}
}

func TestDirty(t *testing.T) {
	w, _ := newTestWorkspace(t)
	assert.False(t, w.Dirty(), "no active file")

	w.Save()
	assert.False(t, w.Dirty())

	w.Edit("changed")
	assert.True(t, w.Dirty())

	w.Save()
	assert.False(t, w.Dirty())

	require.NoError(t, w.SetLanguage("go"))
	assert.True(t, w.Dirty(), "language switch would change the file")
}

func TestDownloadName(t *testing.T) {
	w, _ := newTestWorkspace(t)
	assert.Equal(t, "code.py", w.DownloadName())

	r := w.Save()
	assert.Equal(t, r.Name, w.DownloadName())

	w.CreateNew()
	require.NoError(t, w.SetLanguage("csharp"))
	assert.Equal(t, "code.cs", w.DownloadName())
}

func TestToggleTheme(t *testing.T) {
	w, _ := newTestWorkspace(t)

	assert.False(t, w.ToggleTheme())
	assert.False(t, w.DarkMode())
	assert.True(t, w.ToggleTheme())
}

func TestRecords_ReturnsCopy(t *testing.T) {
	w, _ := newTestWorkspace(t)
	w.Save()

	records := w.Records()
	records[0].Name = "mutated"

	assert.Equal(t, "Untitled-1.py", w.Records()[0].Name)
}

func TestRecord_NameParts(t *testing.T) {
	tests := []struct {
		name     string
		wantBase string
		wantExt  string
	}{
		{"Untitled-1.py", "Untitled-1", "py"},
		{"archive.tar.gz", "archive.tar", "gz"},
		{"Makefile", "Makefile", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{Name: tt.name}
			assert.Equal(t, tt.wantBase, r.BaseName())
			assert.Equal(t, tt.wantExt, r.Extension())
		})
	}
}

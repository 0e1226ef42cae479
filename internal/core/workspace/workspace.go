// Package workspace implements the file session model of the editor: the
// per-language buffers, the collection of saved file records, the active
// file and language selection, and the theme flag.
//
// A Workspace is owned by a single event loop. None of its methods are safe
// for concurrent use.
package workspace

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/pixelcode/internal/core/buffer"
	"github.com/colonyops/pixelcode/internal/core/language"
)

var (
	// ErrFileNotFound is returned when an operation names a record id that
	// is not in the workspace.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnknownLanguage is returned when a language id is not in the catalog.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrEmptyName is returned when renaming a record to a blank name.
	ErrEmptyName = errors.New("file name cannot be empty")
)

// Notifier receives the user-visible messages emitted by workspace operations.
type Notifier interface {
	Infof(format string, args ...any)
	Successf(format string, args ...any)
}

type nopNotifier struct{}

func (nopNotifier) Infof(string, ...any)    {}
func (nopNotifier) Successf(string, ...any) {}

// Options configures a new Workspace. Zero values select defaults.
type Options struct {
	Language string // initial language; defaults to the first catalog entry
	DarkMode bool
	Notifier Notifier
	Logger   *zerolog.Logger

	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string
}

// Workspace is the editing session state.
type Workspace struct {
	buffers  *buffer.Collection
	records  []Record
	activeID string
	language string
	dark     bool

	notifier Notifier
	log      zerolog.Logger
	now      func() time.Time
	newID    func() string
}

// New creates a workspace with every buffer seeded from its starter snippet
// and no saved files.
func New(opts Options) (*Workspace, error) {
	lang := opts.Language
	if lang == "" {
		lang = language.Default().ID
	}
	if _, ok := language.Lookup(lang); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	w := &Workspace{
		buffers:  buffer.New(),
		language: lang,
		dark:     opts.DarkMode,
		notifier: opts.Notifier,
		log:      zerolog.Nop(),
		now:      opts.Now,
		newID:    opts.NewID,
	}
	if w.notifier == nil {
		w.notifier = nopNotifier{}
	}
	if opts.Logger != nil {
		w.log = *opts.Logger
	}
	if w.now == nil {
		w.now = time.Now
	}
	if w.newID == nil {
		w.newID = func() string { return uuid.Must(uuid.NewV7()).String() }
	}

	return w, nil
}

// Language returns the active language id.
func (w *Workspace) Language() string {
	return w.language
}

// Descriptor returns the catalog entry of the active language.
func (w *Workspace) Descriptor() language.Descriptor {
	d, ok := language.Lookup(w.language)
	if !ok {
		return language.Descriptor{ID: w.language, Label: w.language, Extension: language.DefaultExtension}
	}
	return d
}

// SetLanguage selects the active language. The active file is left as is.
func (w *Workspace) SetLanguage(id string) error {
	if _, ok := language.Lookup(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, id)
	}
	w.language = id
	return nil
}

// Buffer returns the text of the active language's buffer.
func (w *Workspace) Buffer() string {
	return w.buffers.Get(w.language)
}

// BufferFor returns the text of the buffer for id.
func (w *Workspace) BufferFor(id string) string {
	return w.buffers.Get(id)
}

// Edit overwrites the active language's buffer.
func (w *Workspace) Edit(text string) {
	w.buffers.Set(w.language, text)
}

// Records returns a copy of the saved files in creation order.
func (w *Workspace) Records() []Record {
	out := make([]Record, len(w.records))
	copy(out, w.records)
	return out
}

// Record returns the saved file with the given id.
func (w *Workspace) Record(id string) (Record, bool) {
	if i := w.indexOf(id); i >= 0 {
		return w.records[i], true
	}
	return Record{}, false
}

// Active returns the active file, if any.
func (w *Workspace) Active() (Record, bool) {
	if w.activeID == "" {
		return Record{}, false
	}
	return w.Record(w.activeID)
}

// ActiveID returns the id of the active file or an empty string.
func (w *Workspace) ActiveID() string {
	return w.activeID
}

// CreateNew clears the active file and resets the active language's buffer
// to its starter snippet. Other buffers are untouched.
func (w *Workspace) CreateNew() {
	w.activeID = ""
	w.buffers.Reset(w.language)

	d := w.Descriptor()
	w.log.Debug().Str("language", d.ID).Msg("new file")
	w.notifier.Infof("New %s file (.%s)", d.Label, d.Extension)
}

// Save writes the active language's buffer to a file record.
//
// Without an active file a new record named Untitled-{n}.{ext} is created,
// where n is the smallest positive integer that does not collide with an
// existing name, and the record becomes active. With an active file the
// record is updated in place: its id and base name are kept while content,
// language, extension and timestamp are refreshed.
func (w *Workspace) Save() Record {
	content := w.buffers.Get(w.language)
	ext := language.ExtensionFor(w.language)
	now := w.now()

	if i := w.indexOf(w.activeID); i >= 0 {
		r := &w.records[i]
		r.Name = baseName(r.Name) + "." + ext
		r.Language = w.language
		r.Content = content
		r.Hash = contentHash(content)
		r.ModifiedAt = now

		w.log.Debug().Str("id", r.ID).Str("name", r.Name).Msg("file updated")
		w.notifier.Successf("Saved %s", r.Name)
		return *r
	}

	r := Record{
		ID:         w.newID(),
		Name:       w.untitledName(ext),
		Language:   w.language,
		Content:    content,
		Hash:       contentHash(content),
		ModifiedAt: now,
	}
	w.records = append(w.records, r)
	w.activeID = r.ID

	w.log.Debug().Str("id", r.ID).Str("name", r.Name).Msg("file created")
	w.notifier.Successf("Saved %s", r.Name)
	return r
}

// Open makes the record active, switches to its language and replaces that
// language's buffer with the stored content. Unsaved edits in that buffer
// are discarded.
func (w *Workspace) Open(id string) (Record, error) {
	i := w.indexOf(id)
	if i < 0 {
		return Record{}, fmt.Errorf("%w: %s", ErrFileNotFound, id)
	}

	r := w.records[i]
	w.activeID = r.ID
	w.language = r.Language
	w.buffers.Set(r.Language, r.Content)

	w.log.Debug().Str("id", r.ID).Str("name", r.Name).Msg("file opened")
	w.notifier.Infof("Opened %s", r.Name)
	return r, nil
}

// Delete removes the record with the given id. If it was the active file the
// selection is cleared; buffers are left alone. Deleting an unknown id is a
// no-op and reports false.
func (w *Workspace) Delete(id string) bool {
	i := w.indexOf(id)
	if i < 0 {
		return false
	}

	r := w.records[i]
	w.records = append(w.records[:i], w.records[i+1:]...)
	if w.activeID == id {
		w.activeID = ""
	}

	w.log.Debug().Str("id", r.ID).Str("name", r.Name).Msg("file deleted")
	w.notifier.Infof("Deleted %s", r.Name)
	return true
}

// Rename changes the base name of a record. The extension is kept and names
// are not required to be unique.
func (w *Workspace) Rename(id, base string) (Record, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return Record{}, ErrEmptyName
	}

	i := w.indexOf(id)
	if i < 0 {
		return Record{}, fmt.Errorf("%w: %s", ErrFileNotFound, id)
	}

	r := &w.records[i]
	old := r.Name
	if ext := r.Extension(); ext != "" {
		r.Name = base + "." + ext
	} else {
		r.Name = base
	}

	w.notifier.Infof("Renamed %s to %s", old, r.Name)
	return *r, nil
}

// Dirty reports whether saving now would change the active file. It is
// false when no file is active.
func (w *Workspace) Dirty() bool {
	r, ok := w.Active()
	if !ok {
		return false
	}
	return r.Language != w.language || r.Hash != contentHash(w.buffers.Get(w.language))
}

// DownloadName is the file name used when exporting the active buffer: the
// active file's name, or code.{ext} when no file is active.
func (w *Workspace) DownloadName() string {
	if r, ok := w.Active(); ok {
		return r.Name
	}
	return "code." + language.ExtensionFor(w.language)
}

// DarkMode reports whether the dark theme is selected.
func (w *Workspace) DarkMode() bool {
	return w.dark
}

// ToggleTheme flips between dark and light mode and returns the new value.
func (w *Workspace) ToggleTheme() bool {
	w.dark = !w.dark
	return w.dark
}

func (w *Workspace) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, r := range w.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (w *Workspace) untitledName(ext string) string {
	taken := make(map[string]bool, len(w.records))
	for _, r := range w.records {
		taken[r.Name] = true
	}
	for n := 1; ; n++ {
		name := fmt.Sprintf("Untitled-%d.%s", n, ext)
		if !taken[name] {
			return name
		}
	}
}

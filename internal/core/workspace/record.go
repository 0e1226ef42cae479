package workspace

import (
	"path"
	"time"

	"github.com/zeebo/xxh3"
)

// Record is a named snapshot of a buffer taken at save time. Content is an
// independent copy; later edits to the buffer do not change it.
type Record struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Language   string    `json:"language"`
	Content    string    `json:"content"`
	ModifiedAt time.Time `json:"modified_at"`
	Hash       uint64    `json:"-"`
}

// BaseName returns the record name without its extension.
func (r Record) BaseName() string {
	return baseName(r.Name)
}

// Extension returns the extension of the record name without the dot.
func (r Record) Extension() string {
	ext := path.Ext(r.Name)
	if ext == "" {
		return ""
	}
	return ext[1:]
}

func baseName(name string) string {
	return name[:len(name)-len(path.Ext(name))]
}

func contentHash(s string) uint64 {
	return xxh3.HashString(s)
}

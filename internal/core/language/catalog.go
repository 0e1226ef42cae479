// Package language defines the static catalog of supported editor languages
// and the starter snippet each buffer is seeded with.
package language

import "strings"

// DefaultExtension is used for language identifiers that are not in the catalog.
const DefaultExtension = "txt"

// Descriptor describes a single supported language.
type Descriptor struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	Extension string `json:"extension"`
	Lexer     string `json:"lexer"` // chroma lexer name used for highlighting
}

const devicon = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"

// catalog is ordered; the first entry is the default language.
var catalog = []Descriptor{
	{ID: "python", Label: "Python", Icon: devicon + "python/python-original.svg", Extension: "py", Lexer: "python"},
	{ID: "java", Label: "Java", Icon: devicon + "java/java-original.svg", Extension: "java", Lexer: "java"},
	{ID: "c", Label: "C", Icon: "https://upload.wikimedia.org/wikipedia/commons/1/18/C_Programming_Language.svg", Extension: "c", Lexer: "c"},
	{ID: "cpp", Label: "C++", Icon: devicon + "cplusplus/cplusplus-original.svg", Extension: "cpp", Lexer: "cpp"},
	{ID: "csharp", Label: "C#", Icon: devicon + "csharp/csharp-original.svg", Extension: "cs", Lexer: "csharp"},
	{ID: "javascript", Label: "JavaScript", Icon: devicon + "javascript/javascript-original.svg", Extension: "js", Lexer: "javascript"},
	{ID: "typescript", Label: "TypeScript", Icon: devicon + "typescript/typescript-original.svg", Extension: "ts", Lexer: "typescript"},
	{ID: "php", Label: "PHP", Icon: devicon + "php/php-original.svg", Extension: "php", Lexer: "php"},
	{ID: "go", Label: "Go", Icon: devicon + "go/go-original.svg", Extension: "go", Lexer: "go"},
	{ID: "rust", Label: "Rust", Icon: "https://upload.wikimedia.org/wikipedia/commons/d/d5/Rust_programming_language_black_logo.svg", Extension: "rs", Lexer: "rust"},
	{ID: "sql", Label: "SQL", Icon: "https://img.icons8.com/color/48/000000/sql.png", Extension: "sql", Lexer: "sql"},
}

// All returns a copy of the catalog in display order.
func All() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns the language identifiers in display order.
func IDs() []string {
	ids := make([]string, len(catalog))
	for i, d := range catalog {
		ids[i] = d.ID
	}
	return ids
}

// Default returns the language selected when a session starts.
func Default() Descriptor {
	return catalog[0]
}

// Lookup returns the descriptor for id. The second return value is false for
// identifiers outside the catalog, such as a stale id from an older record.
func Lookup(id string) (Descriptor, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ExtensionFor returns the file extension for id, falling back to
// DefaultExtension when id is unknown.
func ExtensionFor(id string) string {
	if d, ok := Lookup(id); ok && d.Extension != "" {
		return d.Extension
	}
	return DefaultExtension
}

// LabelFor returns the display label for id, or id itself when unknown.
func LabelFor(id string) string {
	if d, ok := Lookup(id); ok {
		return d.Label
	}
	return id
}

// ByExtension finds the language that owns a file extension. A leading dot
// is ignored and matching is case-insensitive.
func ByExtension(ext string) (Descriptor, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return Descriptor{}, false
	}
	for _, d := range catalog {
		if d.Extension == ext {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Index returns the catalog position of id, or -1.
func Index(id string) int {
	for i, d := range catalog {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// Next returns the identifier offset positions away from id, wrapping around
// the catalog. Unknown ids start from the default language.
func Next(id string, offset int) string {
	i := Index(id)
	if i < 0 {
		i = 0
	}
	n := len(catalog)
	return catalog[((i+offset)%n+n)%n].ID
}

package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Order(t *testing.T) {
	want := []string{"python", "java", "c", "cpp", "csharp", "javascript", "typescript", "php", "go", "rust", "sql"}
	assert.Equal(t, want, IDs())
	assert.Equal(t, "python", Default().ID)
}

func TestCatalog_UniqueIDsAndExtensions(t *testing.T) {
	ids := map[string]bool{}
	exts := map[string]bool{}
	for _, d := range All() {
		assert.False(t, ids[d.ID], "duplicate id %q", d.ID)
		assert.False(t, exts[d.Extension], "duplicate extension %q", d.Extension)
		ids[d.ID] = true
		exts[d.Extension] = true

		assert.NotEmpty(t, d.Label)
		assert.NotEmpty(t, d.Icon)
		assert.NotEmpty(t, d.Lexer)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].ID = "mutated"
	assert.Equal(t, "python", Default().ID)
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("rust")
	require.True(t, ok)
	assert.Equal(t, "Rust", d.Label)
	assert.Equal(t, "rs", d.Extension)

	_, ok = Lookup("cobol")
	assert.False(t, ok)
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"python", "py"},
		{"csharp", "cs"},
		{"typescript", "ts"},
		{"cobol", DefaultExtension},
		{"", DefaultExtension},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtensionFor(tt.id))
		})
	}
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "C++", LabelFor("cpp"))
	assert.Equal(t, "cobol", LabelFor("cobol"))
}

func TestByExtension(t *testing.T) {
	tests := []struct {
		ext    string
		wantID string
		wantOK bool
	}{
		{"py", "python", true},
		{".go", "go", true},
		{".RS", "rust", true},
		{"txt", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			d, ok := ByExtension(tt.ext)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, d.ID)
		})
	}
}

func TestNext(t *testing.T) {
	assert.Equal(t, "java", Next("python", 1))
	assert.Equal(t, "sql", Next("python", -1))
	assert.Equal(t, "python", Next("sql", 1))
	assert.Equal(t, "java", Next("cobol", 1))
}

func TestSnippet_EveryLanguageHasOne(t *testing.T) {
	for _, id := range IDs() {
		assert.NotEmpty(t, Snippet(id), "missing snippet for %q", id)
	}
	assert.Empty(t, Snippet("cobol"))
}

func TestSnippet_Python(t *testing.T) {
	want := "def main():\n    print(\"Hello, World!\")\n\nif __name__ == \"__main__\":\n    main()"
	assert.Equal(t, want, Snippet("python"))
}

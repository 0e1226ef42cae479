package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestHighlight_PreservesText(t *testing.T) {
	code := "package main\n\nfunc main() {}\n"

	out := highlight(code, "go", "monokai")

	assert.Equal(t, code, ansi.Strip(out))
	assert.NotEqual(t, code, out, "expected escape sequences in highlighted output")
}

func TestHighlight_UnknownLexerAndStyle(t *testing.T) {
	code := "SELECT 1;"

	out := highlight(code, "no-such-lexer", "no-such-style")

	assert.Equal(t, code, ansi.Strip(out))
}

package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/pixelcode/internal/core/styles"
)

func TestPrinter_Levels(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Printf("plain %d", 1)
	p.Successf("saved %s", "a.go")
	p.Errorf("failed")

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "plain 1\n")
	assert.Contains(t, out, styles.IconNotifySuccess+" saved a.go\n")
	assert.Contains(t, out, styles.IconNotifyError+" failed\n")
}

func TestPrinter_Section(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Section("Review")

	assert.Equal(t, "Review\n──────\n", ansi.Strip(buf.String()))
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))
	assert.NotNil(t, Ctx(context.Background()))
}

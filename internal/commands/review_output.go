package commands

import (
	"bytes"
	"fmt"
	"io"

	"github.com/colonyops/pixelcode/internal/core/language"
	"github.com/colonyops/pixelcode/internal/printer"
)

// reviewOutput holds one input's section of the review report until every
// earlier section has been written. Each value is filled by a single worker
// and flushed after the group finishes.
type reviewOutput struct {
	buf    bytes.Buffer
	failed bool
}

// newReviewOutput starts a section headed by the input name and language.
func newReviewOutput(in reviewInput) *reviewOutput {
	o := &reviewOutput{}
	printer.New(&o.buf).Section(fmt.Sprintf("%s (%s)", in.Name, language.LabelFor(in.Language)))
	return o
}

// Review appends the rendered review text.
func (o *reviewOutput) Review(text string) {
	_, _ = fmt.Fprintln(&o.buf, text)
}

// Fail appends the failure placeholder and marks the section failed.
func (o *reviewOutput) Fail(text string) {
	o.failed = true
	printer.New(&o.buf).Errorf("%s", text)
}

func (o *reviewOutput) Failed() bool { return o.failed }

// Flush writes the section to w and empties it.
func (o *reviewOutput) Flush(w io.Writer) error {
	_, err := o.buf.WriteTo(w)
	return err
}

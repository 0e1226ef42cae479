package review

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholder texts stored in the result slot when a review does not
// produce usable text.
const (
	NoResponseText = "⚠️ No response from Gemini."
	ErrorText      = "❌ Error fetching review. Please try again."
)

var (
	// ErrNoResponse is returned by a Generator when the service answered but
	// the reply carried no review text.
	ErrNoResponse = errors.New("no review text in response")

	// ErrMalformedResponse is returned when the reply body is not JSON.
	ErrMalformedResponse = errors.New("malformed response body")
)

// Status describes the state of the result slot.
type Status int

const (
	StatusEmpty Status = iota
	StatusPending
	StatusDone
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusPending:
		return "pending"
	case StatusDone:
		return "done"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the single review slot. Text is only meaningful when Status is
// StatusDone.
type Result struct {
	Status Status
	Text   string
	Seq    uint64
}

// Request is an issued review awaiting Run.
type Request struct {
	Seq      uint64
	Language string
	Prompt   string

	err error
}

// Outcome is what a finished Run produced for a given request.
type Outcome struct {
	Seq uint64
	// Text is the raw review text on success.
	Text string
	Err  error
}

// Display maps the outcome onto the text shown to the user.
func (o Outcome) Display() string {
	switch {
	case errors.Is(o.Err, ErrNoResponse):
		return NoResponseText
	case o.Err != nil:
		return ErrorText
	case o.Text == "":
		return NoResponseText
	default:
		return o.Text
	}
}

// Policy decides what happens to an outcome that arrives after a newer
// request has been issued.
type Policy string

const (
	// PolicyDiscard drops outcomes for requests older than the newest one.
	PolicyDiscard Policy = "discard"
	// PolicyAccept lets whichever outcome settles last occupy the slot.
	PolicyAccept Policy = "accept"
)

// ParsePolicy converts a config value into a Policy. Empty selects
// PolicyDiscard.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyDiscard:
		return PolicyDiscard, nil
	case PolicyAccept:
		return PolicyAccept, nil
	default:
		return "", fmt.Errorf("unknown stale response policy %q (want %q or %q)", s, PolicyDiscard, PolicyAccept)
	}
}

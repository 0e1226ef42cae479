// Package review sends buffer contents to the AI service and tracks the
// single review result shown to the user.
package review

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/colonyops/pixelcode/internal/core/logging"
)

// Generator produces review text for a rendered prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Options configures an Orchestrator.
type Options struct {
	// Prompt is a text/template rendered with PromptData. Empty selects
	// DefaultPrompt.
	Prompt string
	Policy Policy
	// Logger is the base logger; the orchestrator tags it with its own
	// component.
	Logger *zerolog.Logger
}

// Orchestrator issues review requests and owns the result slot. Begin and
// Settle are cheap and meant for the UI thread; Run blocks on the network and
// may be called from any goroutine.
type Orchestrator struct {
	gen    Generator
	prompt string
	policy Policy
	log    zerolog.Logger

	mu      sync.Mutex
	seq     uint64
	pending map[uint64]struct{}
	result  Result
}

// New creates an Orchestrator backed by gen.
func New(gen Generator, opts Options) *Orchestrator {
	policy := opts.Policy
	if policy == "" {
		policy = PolicyDiscard
	}

	logger := logging.Component("review")
	if opts.Logger != nil {
		logger = logging.WithComponent(*opts.Logger, "review")
	}

	return &Orchestrator{
		gen:     gen,
		prompt:  opts.Prompt,
		policy:  policy,
		log:     logger,
		pending: make(map[uint64]struct{}),
	}
}

// Policy reports the stale response policy in effect.
func (o *Orchestrator) Policy() Policy {
	return o.policy
}

// Begin issues a new request for content written in lang. The slot becomes
// pending and any previous text is cleared. Empty content is sent as-is.
func (o *Orchestrator) Begin(lang, content string) Request {
	prompt, err := RenderPrompt(o.prompt, lang, content)

	o.mu.Lock()
	defer o.mu.Unlock()

	o.seq++
	o.pending[o.seq] = struct{}{}
	o.result = Result{Status: StatusPending, Seq: o.seq}

	return Request{
		Seq:      o.seq,
		Language: lang,
		Prompt:   prompt,
		err:      err,
	}
}

// Run performs the request. It never retries; failures are logged here and
// carried in the Outcome.
func (o *Orchestrator) Run(ctx context.Context, req Request) Outcome {
	ctx = logging.WithRequestSeq(ctx, req.Seq)
	ctx = logging.WithLanguage(ctx, req.Language)

	if req.err != nil {
		o.log.Error().Ctx(ctx).Err(req.err).Msg("review prompt failed")
		return Outcome{Seq: req.Seq, Err: req.err}
	}

	o.log.Debug().Ctx(ctx).Int("prompt_bytes", len(req.Prompt)).Msg("review started")

	text, err := o.gen.Generate(ctx, req.Prompt)
	if err != nil {
		o.log.Error().Ctx(ctx).Err(err).Msg("review failed")
		return Outcome{Seq: req.Seq, Err: err}
	}

	o.log.Debug().Ctx(ctx).Int("response_bytes", len(text)).Msg("review finished")
	return Outcome{Seq: req.Seq, Text: text}
}

// Settle applies an outcome to the slot. Each request settles at most once;
// repeated or unknown sequence numbers are ignored. Under PolicyDiscard an
// outcome older than the newest request is dropped. Reports whether the slot
// changed.
func (o *Orchestrator) Settle(out Outcome) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.pending[out.Seq]; !ok {
		return false
	}
	delete(o.pending, out.Seq)

	if o.policy == PolicyDiscard && out.Seq < o.seq {
		o.log.Debug().Uint64("request_seq", out.Seq).Uint64("latest_seq", o.seq).Msg("stale review discarded")
		return false
	}

	o.result = Result{Status: StatusDone, Text: out.Display(), Seq: out.Seq}
	return true
}

// Review runs a complete request synchronously and returns the text this
// request resolved to, regardless of what else occupies the slot.
func (o *Orchestrator) Review(ctx context.Context, lang, content string) Result {
	req := o.Begin(lang, content)
	out := o.Run(ctx, req)
	o.Settle(out)
	return Result{Status: StatusDone, Text: out.Display(), Seq: req.Seq}
}

// Result returns a copy of the slot.
func (o *Orchestrator) Result() Result {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.result
}

// InProgress reports whether the slot is waiting on a request.
func (o *Orchestrator) InProgress() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.result.Status == StatusPending
}

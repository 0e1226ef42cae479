// Package logging provides zerolog helpers shared by the core packages.
package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts request_seq and language from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if seq, ok := GetRequestSeq(ctx); ok {
		e.Uint64("request_seq", seq)
	}

	if lang := GetLanguage(ctx); lang != "" {
		e.Str("language", lang)
	}
}

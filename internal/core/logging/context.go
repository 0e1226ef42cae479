package logging

import "context"

type contextKey string

const (
	requestSeqKey contextKey = "request_seq"
	languageKey   contextKey = "language"
)

// WithRequestSeq adds a review request sequence number to the context.
func WithRequestSeq(ctx context.Context, seq uint64) context.Context {
	return context.WithValue(ctx, requestSeqKey, seq)
}

// WithLanguage adds a language id to the context.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageKey, lang)
}

// GetRequestSeq retrieves the request sequence number from the context.
// The second return value is false if it is not present.
func GetRequestSeq(ctx context.Context) (uint64, bool) {
	seq, ok := ctx.Value(requestSeqKey).(uint64)
	return seq, ok
}

// GetLanguage retrieves the language id from the context.
// Returns empty string if not present.
func GetLanguage(ctx context.Context) string {
	if lang, ok := ctx.Value(languageKey).(string); ok {
		return lang
	}
	return ""
}

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "both request_seq and language",
			setupCtx: func() context.Context {
				ctx := context.Background()
				ctx = WithRequestSeq(ctx, 3)
				ctx = WithLanguage(ctx, "go")
				return ctx
			},
			wantKeys: []string{"request_seq", "language"},
		},
		{
			name: "only request_seq",
			setupCtx: func() context.Context {
				return WithRequestSeq(context.Background(), 1)
			},
			wantKeys:  []string{"request_seq"},
			wantEmpty: []string{"language"},
		},
		{
			name: "only language",
			setupCtx: func() context.Context {
				return WithLanguage(context.Background(), "sql")
			},
			wantKeys:  []string{"language"},
			wantEmpty: []string{"request_seq"},
		},
		{
			name:      "no context values",
			setupCtx:  context.Background,
			wantEmpty: []string{"request_seq", "language"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := tt.setupCtx()

			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(ctx).Msg("test")

			var logEntry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
				t.Fatalf("failed to parse log: %v", err)
			}

			for _, key := range tt.wantKeys {
				if _, ok := logEntry[key]; !ok {
					t.Errorf("expected %s to be present in log", key)
				}
			}

			for _, key := range tt.wantEmpty {
				if _, ok := logEntry[key]; ok {
					t.Errorf("expected %s to be absent from log", key)
				}
			}
		})
	}
}

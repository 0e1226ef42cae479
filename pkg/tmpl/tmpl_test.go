package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "simple substitution",
			tmpl: "review {{ .Language }}",
			data: map[string]string{"Language": "go"},
			want: "review go",
		},
		{
			name: "struct data",
			tmpl: "{{ .Label }}: {{ .Code }}",
			data: struct {
				Label string
				Code  string
			}{Label: "Go", Code: "package main"},
			want: "Go: package main",
		},
		{
			name: "no variables",
			tmpl: "static string",
			data: nil,
			want: "static string",
		},
		{
			name:    "missing key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"Language": "go"},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .Language }",
			data:    map[string]string{"Language": "go"},
			wantErr: true,
		},
		{
			name: "empty value is valid",
			tmpl: "prefix{{ .Code }}suffix",
			data: map[string]string{"Code": ""},
			want: "prefixsuffix",
		},
		{
			name: "fence function",
			tmpl: "{{ fence .Language .Code }}",
			data: map[string]string{"Language": "python", "Code": "print(1)\n"},
			want: "```python\nprint(1)\n```",
		},
		{
			name: "fence grows around backticks",
			tmpl: "{{ fence .Language .Code }}",
			data: map[string]string{"Language": "md", "Code": "```go\nx\n```"},
			want: "````md\n```go\nx\n```\n````",
		},
		{
			name: "string helpers",
			tmpl: "{{ .Label | lower }} {{ .Label | upper }} [{{ .Pad | trim }}]",
			data: map[string]string{"Label": "Go", "Pad": "  x  "},
			want: "go GO [x]",
		},
		{
			name: "default function",
			tmpl: `{{ .Code | default "(empty)" }}`,
			data: map[string]string{"Code": ""},
			want: "(empty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("{{ .Anything }}"))
	require.NoError(t, Validate("{{ fence .Language .Code }}"))
	require.Error(t, Validate("{{ .Broken "))
	require.Error(t, Validate("{{ nosuchfunc }}"))
}

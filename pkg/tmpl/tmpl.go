// Package tmpl renders the text templates used to build AI prompts.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// fence wraps code in a markdown code block tagged with lang. The fence is
// lengthened when the code itself contains backtick runs.
func fence(lang, code string) string {
	marker := "```"
	for strings.Contains(code, marker) {
		marker += "`"
	}
	return marker + lang + "\n" + strings.TrimRight(code, "\n") + "\n" + marker
}

func orDefault(def, s string) string {
	if s != "" {
		return s
	}
	return def
}

var funcs = template.FuncMap{
	"join":    strings.Join,
	"trim":    strings.TrimSpace,
	"lower":   strings.ToLower,
	"upper":   strings.ToUpper,
	"fence":   fence,
	"default": orDefault,
}

func parse(tmpl string) (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return t, nil
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - fence: wrap code in a markdown code block (e.g., fence .Language .Code)
//   - trim, lower, upper: string helpers
//   - join: join string slice with separator
//   - default: fall back to a value when the piped string is empty
func Render(tmpl string, data any) (string, error) {
	t, err := parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}

// Validate checks template syntax without executing it.
func Validate(tmpl string) error {
	_, err := parse(tmpl)
	return err
}

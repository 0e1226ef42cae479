package review

import (
	"fmt"

	"github.com/colonyops/pixelcode/internal/core/language"
	"github.com/colonyops/pixelcode/pkg/tmpl"
)

// DefaultPrompt is the instruction sent with every review unless the config
// overrides it.
const DefaultPrompt = "Please review this {{ .Language }} code. Suggest improvements, best practices, and point out bugs if any:\n\n{{ .Code }}"

// PromptData is the template data available to review prompts.
type PromptData struct {
	Language string
	Label    string
	Ext      string
	Code     string
}

// RenderPrompt renders the prompt template for the given language and code.
// Unknown languages still render, with the id as label.
func RenderPrompt(prompt, lang, code string) (string, error) {
	if prompt == "" {
		prompt = DefaultPrompt
	}

	data := PromptData{
		Language: lang,
		Label:    language.LabelFor(lang),
		Ext:      language.ExtensionFor(lang),
		Code:     code,
	}

	out, err := tmpl.Render(prompt, data)
	if err != nil {
		return "", fmt.Errorf("render review prompt: %w", err)
	}
	return out, nil
}

package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/rs/zerolog/log"
)

// highlight renders code with ANSI colors for the given chroma lexer and
// style names. It falls back to the plain text when highlighting fails.
func highlight(code, lexerName, styleName string) string {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get(styleName)
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		log.Debug().Err(err).Str("lexer", lexerName).Msg("tokenise failed, showing plain text")
		return code
	}

	var sb strings.Builder
	if err := formatter.Format(&sb, style, iterator); err != nil {
		log.Debug().Err(err).Str("style", styleName).Msg("format failed, showing plain text")
		return code
	}

	return sb.String()
}

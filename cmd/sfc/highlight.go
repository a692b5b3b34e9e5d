package main

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/martinemde/sfc/sfcparser"
)

// defaultLangs maps block names to a lexer when the block has no lang.
var defaultLangs = map[string]string{
	"script":   "javascript",
	"style":    "css",
	"template": "html",
}

// lexerFor picks a lexer from the block's lang attribute, falling back to
// the usual language of the block name.
func lexerFor(b *sfcparser.Block) chroma.Lexer {
	lang := b.Lang()
	if lang == "" {
		lang = defaultLangs[b.Name.String()]
	}
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// chromaStyle looks up a highlighting style by name.
func chromaStyle(name string) *chroma.Style {
	style := styles.Get(name)
	if style == nil {
		style = styles.Fallback
	}
	return style
}

// highlight colors text with lexer and style, rendering each token through r.
func highlight(r *lipgloss.Renderer, lexer chroma.Lexer, style *chroma.Style, text string) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		ts := tokenStyle(r, style.Get(token.Type))
		// Render each line separately so styles never span a line break.
		for i, line := range strings.Split(token.Value, "\n") {
			if i > 0 {
				sb.WriteByte('\n')
			}
			if line != "" {
				sb.WriteString(ts.Render(line))
			}
		}
	}
	return sb.String(), nil
}

// tokenStyle converts a chroma style entry to a lipgloss style.
func tokenStyle(r *lipgloss.Renderer, entry chroma.StyleEntry) lipgloss.Style {
	s := r.NewStyle()
	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	return s
}

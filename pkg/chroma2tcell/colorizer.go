// Package chroma2tcell renders a chroma token stream as tview color tags.
package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

var getStyle = styles.Get

// Colorize tokenises text with the given lexer and wraps each colored
// token in tview [#rrggbb] tags. Tokens without a style color pass
// through unchanged.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = styles.Fallback
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		entry := style.Get(token.Type)
		if entry.IsZero() || !entry.Colour.IsSet() {
			sb.WriteString(tview.Escape(token.Value))
			continue
		}
		sb.WriteString("[" + entry.Colour.String() + "]")
		sb.WriteString(tview.Escape(token.Value))
		sb.WriteString("[-]")
	}
	return sb.String(), nil
}

// ColorizeForFile matches a lexer by file name. ok is false when no
// lexer claims the name, in which case the text should be shown plain.
func ColorizeForFile(fileName, text, styleName string) (colorized string, ok bool, err error) {
	lexer := lexers.Match(fileName)
	if lexer == nil {
		return "", false, nil
	}
	colorized, err = Colorize(text, styleName, lexer)
	return colorized, err == nil, err
}

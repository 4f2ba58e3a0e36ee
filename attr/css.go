// Package attr implements the typed attribute model: parsing and printing
// SVG attribute values into the fixed set of typed kinds the optimizer
// passes operate on, plus the ContentType visitor façade that lets a pass
// reach every URL/id/class/color/length/float embedded in a value without
// knowing its concrete kind.
package attr

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// cssToken is a lexed token from an attribute value, produced by the
// tdewolff/parse/v2/css lexer so numeric and color literals inside
// attribute values follow the CSS token grammar. cssTokens drops
// whitespace and comment tokens.
type cssToken struct {
	Type  css.TokenType
	Value string
}

func cssTokens(s string) ([]cssToken, error) {
	var tokens []cssToken

	l := css.NewLexer(parse.NewInput(strings.NewReader(s)))
	for {
		typ, value := l.Next()
		if typ == css.ErrorToken {
			if l.Err() == io.EOF {
				break
			}
			return nil, l.Err()
		}
		if typ == css.WhitespaceToken || typ == css.CommentToken {
			continue
		}
		tokens = append(tokens, cssToken{Type: typ, Value: string(value)})
	}

	return tokens, nil
}

package attr

import (
	"errors"
	"image/color"
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// Paint is the typed value of fill/stroke: either a bare color, a
// `url(#id)` reference to a paint server optionally falling back to a
// color/keyword, "none", or one of the context-fill/context-stroke
// keywords introduced for markers.
type Paint struct {
	URL     string
	Context string
	Color   Color
	IsNone  bool
}

// ParsePaint parses a fill/stroke attribute value.
func ParsePaint(s string) (Paint, error) {
	tokens, err := cssTokens(s)
	if err != nil {
		return Paint{}, err
	}

	var p Paint
	if len(tokens) == 0 {
		p.Color = Color{Value: color.Black}
		return p, nil
	}

	if tokens[0].Type == css.URLToken {
		url := tokens[0].Value
		p.URL = strings.TrimPrefix(url[len("url(") : len(url)-1], "#")
		tokens = tokens[1:]
		if len(tokens) == 0 {
			return p, nil
		}
	}

	if tokens[0].Type == css.IdentToken {
		if len(tokens) != 1 {
			return Paint{}, errors.New("unexpected token")
		}
		switch tokens[0].Value {
		case "context-fill", "context-stroke":
			p.Context = tokens[0].Value
			return p, nil
		case "none":
			p.IsNone = true
			return p, nil
		}
	}

	c, err := parseColorTokens(tokens)
	if err != nil {
		return Paint{}, err
	}
	p.Color = Color{Value: c}
	return p, nil
}

func (p Paint) String() string {
	var s string
	if p.URL != "" {
		s = "url(#" + p.URL + ")"
	}
	switch {
	case p.Context != "":
		return joinSpace(s, p.Context)
	case p.IsNone:
		return joinSpace(s, "none")
	case p.Color.Value == nil:
		return s
	default:
		return joinSpace(s, p.Color.String())
	}
}

func joinSpace(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}

// IsEmpty is true only for the zero-value Paint (no fallback, no url, not
// explicitly "none"), which prints to zero characters.
func (p Paint) IsEmpty() bool {
	return p.URL == "" && p.Context == "" && !p.IsNone && p.Color.Value == nil
}

func (p *Paint) Round(precision int, convertPx bool) {}

func (p *Paint) VisitURL(f func(url *string)) {
	if p.URL != "" {
		f(&p.URL)
	}
}

func (p *Paint) VisitID(f func(id *string)) {}

func (p *Paint) VisitClass(f func(class *string)) {}

func (p *Paint) VisitColor(f func(c *Color)) {
	if p.Color.Value != nil {
		f(&p.Color)
	}
}

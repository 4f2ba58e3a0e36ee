package attr

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"github.com/tdewolff/parse/v2/css"
)

// Color is a typed SVG/CSS color value, grounded on the teacher's
// parseColor/parseColorFunction/parseHexColor trio: named keywords, #rgb /
// #rrggbb hex forms, and rgb()/rgba()/hsl()/hsla() functions all fold to a
// single image/color.Color.
type Color struct {
	noopVisitor
	Value color.Color
}

func parseColorFunction(tokens []cssToken) (color.Color, error) {
	fn, arity := tokens[0].Value, 0
	switch fn {
	case "rgb(", "hsl(":
		arity = 3
	case "rgba(", "hsla(":
		arity = 4
	default:
		return nil, fmt.Errorf("unknown color function %v", tokens[0].Value)
	}

	tokens = tokens[1:]
	if len(tokens) == 0 {
		return nil, errors.New("expected a number or ')'")
	}

	args := make([]byte, 0, arity)
	if tokens[0].Type == css.RightParenthesisToken {
		tokens = tokens[1:]
	} else {
		for {
			switch tokens[0].Type {
			case css.NumberToken:
				n, err := strconv.ParseUint(tokens[0].Value, 10, 8)
				if err != nil {
					return nil, err
				}
				args, tokens = append(args, byte(n)), tokens[1:]
			case css.PercentageToken:
				n, err := strconv.ParseUint(tokens[0].Value[:len(tokens[0].Value)-1], 10, 8)
				if err != nil {
					return nil, err
				}
				if n > 100 {
					return nil, fmt.Errorf("percentage %v%% is out of range", n)
				}
				args, tokens = append(args, byte(255*n/100)), tokens[1:]
			default:
				return nil, errors.New("expected a number or percentage")
			}

			if len(tokens) == 0 {
				return nil, errors.New("expected ',' or ')'")
			}
			if tokens[0].Type == css.RightParenthesisToken {
				tokens = tokens[1:]
				break
			}
			if tokens[0].Type != css.CommaToken {
				return nil, errors.New("expected ','")
			}
			tokens = tokens[1:]
		}
	}

	if len(tokens) != 0 {
		return nil, errors.New("garbage after function call")
	}
	if len(args) != arity {
		return nil, fmt.Errorf("%v requires %v arguments", fn, arity)
	}

	var r, g, b, a byte
	switch fn {
	case "rgb(":
		r, g, b, a = args[0], args[1], args[2], 255
	case "rgba(":
		r, g, b, a = args[0], args[1], args[2], args[3]
	case "hsl(":
		r, g, b = hslToRGB(args[0], args[1], args[2])
		a = 255
	case "hsla(":
		r, g, b = hslToRGB(args[0], args[1], args[2])
		a = args[3]
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

func parseHexColor(v string) (color.Color, error) {
	switch len(v) {
	case 3:
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	case 6:
		// already expanded
	default:
		return nil, fmt.Errorf("invalid hex color %v", v)
	}
	b, err := hex.DecodeString(v)
	if err != nil {
		return nil, err
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: 255}, nil
}

func parseColorTokens(tokens []cssToken) (color.Color, error) {
	if len(tokens) == 0 {
		return nil, errors.New("expected a color")
	}
	if tokens[0].Type == css.FunctionToken {
		return parseColorFunction(tokens)
	}
	if len(tokens) != 1 {
		return nil, errors.New("unexpected token")
	}
	switch tokens[0].Type {
	case css.IdentToken:
		c, ok := namedColors[tokens[0].Value]
		if !ok {
			return nil, fmt.Errorf("unknown color %v", tokens[0].Value)
		}
		return c, nil
	case css.HashToken:
		return parseHexColor(tokens[0].Value[1:])
	default:
		return nil, errors.New("expected an identifier or hex color")
	}
}

// ParseColor parses a standalone color attribute value.
func ParseColor(s string) (Color, error) {
	tokens, err := cssTokens(s)
	if err != nil {
		return Color{}, err
	}
	c, err := parseColorTokens(tokens)
	if err != nil {
		return Color{}, err
	}
	return Color{Value: c}, nil
}

// String renders an opaque color in the shortest legal form: the 3-digit
// hex form when it round-trips exactly, else 6-digit hex, unless a color
// keyword is strictly shorter (keywords of equal length are tried in
// alphabetical order). A color that is not opaque prints as rgba().
func (c Color) String() string {
	r, g, b, a := c.Value.RGBA()
	if a>>8 != 255 {
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", r>>8, g>>8, b>>8, formatNumber(float64(a>>8)/255))
	}
	rb, gb, bb := byte(r>>8), byte(g>>8), byte(b>>8)
	s := fmt.Sprintf("#%02x%02x%02x", rb, gb, bb)
	if isShortHex(rb) && isShortHex(gb) && isShortHex(bb) {
		s = fmt.Sprintf("#%x%x%x", rb&0xf, gb&0xf, bb&0xf)
	}
	name := ""
	for n, nc := range namedColors {
		nr, ng, nb, na := nc.RGBA()
		if nr != r || ng != g || nb != b || na != a {
			continue
		}
		if name == "" || len(n) < len(name) || (len(n) == len(name) && n < name) {
			name = n
		}
	}
	if name != "" && len(name) < len(s) {
		return name
	}
	return s
}

func isShortHex(b byte) bool { return b&0xf == b>>4 }

func (c Color) IsEmpty() bool { return false }

func (c *Color) Round(precision int, convertPx bool) {}

func (c *Color) VisitColor(f func(col *Color)) { f(c) }

func hueToRGB(m1, m2, h float64) byte {
	switch {
	case h < 0:
		h += 1
	case h > 1:
		h -= 1
	}
	switch {
	case h*6 < 1:
		return byte(255 * (m1 + (m2-m1)*h*6))
	case h*2 < 1:
		return byte(255 * m2)
	case h*3 < 2:
		return byte(255 * (m1 + (m2-m1)*(2.0/3-h)*6))
	}
	return byte(255 * m1)
}

func hslToRGB(h, s, l byte) (r, g, b byte) {
	hf, sf, lf := float64(h)/255, float64(s)/255, float64(l)/255

	var m2 float64
	if lf <= 0.5 {
		m2 = lf * (sf + 1)
	} else {
		m2 = lf + sf - lf*sf
	}
	m1 := lf*2 - m2
	return hueToRGB(m1, m2, hf+1.0/3), hueToRGB(m1, m2, hf), hueToRGB(m1, m2, hf-1.0/3)
}

package attr

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// Length is a CSS length: a number plus an optional unit suffix (one of
// em, ex, px, in, cm, mm, pt, pc, or the empty string for a unitless/user
// value).
type Length struct {
	noopVisitor
	Value float64
	Units string
}

// pxPerUnit holds the absolute (non-font-relative) conversions to px;
// em/ex are left alone since they depend on computed font state the typed
// value itself does not carry.
var pxPerUnit = map[string]float64{
	"":   1,
	"px": 1,
	"in": 96,
	"cm": 96 / 2.54,
	"mm": 96 / 25.4,
	"pt": 96.0 / 72,
	"pc": 16,
}

func parseLengthToken(token cssToken) (Length, error) {
	switch token.Type {
	case css.NumberToken:
		if token.Value == "0" {
			return Length{}, nil
		}
		n, err := strconv.ParseFloat(token.Value, 64)
		return Length{Value: n}, err
	case css.DimensionToken:
		v, units := splitUnits(token.Value)
		n, err := strconv.ParseFloat(v, 64)
		return Length{Value: n, Units: units}, err
	default:
		return Length{}, errors.New("expected a length")
	}
}

func splitUnits(v string) (number, units string) {
	i := len(v)
	for i > 0 && !isDigitOrDot(v[i-1]) {
		i--
	}
	return v[:i], v[i:]
}

func isDigitOrDot(b byte) bool { return (b >= '0' && b <= '9') || b == '.' }

// ParseLength parses a standalone length attribute value (e.g. "width").
func ParseLength(s string) (Length, error) {
	tokens, err := cssTokens(s)
	if err != nil {
		return Length{}, err
	}
	if len(tokens) != 1 {
		return Length{}, errors.New("unexpected token")
	}
	return parseLengthToken(tokens[0])
}

func (l Length) String() string {
	return formatNumber(l.Value) + l.Units
}

func (l Length) IsEmpty() bool { return false }

func (l *Length) Round(precision int, convertPx bool) {
	if convertPx {
		if f, ok := pxPerUnit[l.Units]; ok {
			l.Value *= f
			l.Units = "px"
			if l.Units == "px" && l.Value == math.Trunc(l.Value) {
				// the unit stays "px" even for whole values; nothing is
				// dropped here.
			}
		}
	}
	l.Value = roundHalfAwayFromZero(l.Value, precision)
}

func (l *Length) VisitLength(f func(l *Length)) { f(l) }

// LengthPercentage is either a Length or a Percentage (stored as a fraction,
// 1.0 == 100%).
type LengthPercentage struct {
	noopVisitor
	Length     Length
	Percentage float64
	IsPercent  bool
}

func parseLengthPercentageToken(token cssToken) (LengthPercentage, error) {
	switch token.Type {
	case css.NumberToken, css.DimensionToken:
		l, err := parseLengthToken(token)
		return LengthPercentage{Length: l}, err
	case css.PercentageToken:
		p, err := strconv.ParseFloat(strings.TrimSuffix(token.Value, "%"), 64)
		return LengthPercentage{Percentage: p / 100, IsPercent: true}, err
	default:
		return LengthPercentage{}, errors.New("expected a length or percentage")
	}
}

// ParseLengthPercentage parses a standalone length-or-percentage value.
func ParseLengthPercentage(s string) (LengthPercentage, error) {
	tokens, err := cssTokens(s)
	if err != nil {
		return LengthPercentage{}, err
	}
	if len(tokens) != 1 {
		return LengthPercentage{}, errors.New("unexpected token")
	}
	return parseLengthPercentageToken(tokens[0])
}

func (lp LengthPercentage) String() string {
	if lp.IsPercent {
		return formatNumber(lp.Percentage*100) + "%"
	}
	return lp.Length.String()
}

func (lp LengthPercentage) IsEmpty() bool { return false }

func (lp *LengthPercentage) Round(precision int, convertPx bool) {
	if lp.IsPercent {
		lp.Percentage = roundHalfAwayFromZero(lp.Percentage, precision+2)
		return
	}
	lp.Length.Round(precision, convertPx)
}

func (lp *LengthPercentage) VisitLength(f func(l *Length)) {
	if !lp.IsPercent {
		f(&lp.Length)
	}
}

// Number is a bare CSS number (opacity, path-length, stroke-dash values).
type Number struct {
	noopVisitor
	Value float64
}

func (n Number) String() string  { return formatNumber(n.Value) }
func (n Number) IsEmpty() bool   { return false }
func (n *Number) Round(precision int, convertPx bool) {
	n.Value = roundHalfAwayFromZero(n.Value, precision)
}
func (n *Number) VisitFloat(f func(v *float64)) { f(&n.Value) }

func roundHalfAwayFromZero(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	if v < 0 {
		return -math.Round(-v*scale) / scale
	}
	return math.Round(v*scale) / scale
}

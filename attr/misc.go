package attr

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// IdentValue is a bare identifier attribute value (id, xml:id).
type IdentValue struct {
	noopVisitor
	Value string
}

func (v IdentValue) String() string { return v.Value }
func (v IdentValue) IsEmpty() bool  { return v.Value == "" }
func (v *IdentValue) Round(precision int, convertPx bool) {}
func (v *IdentValue) VisitID(f func(id *string))          { f(&v.Value) }

// TokenList is a whitespace-separated token list, the typed value of
// `class` and similar attributes.
type TokenList struct {
	Tokens []string
}

func splitTokens(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (l TokenList) String() string { return strings.Join(l.Tokens, " ") }
func (l TokenList) IsEmpty() bool  { return len(l.Tokens) == 0 }
func (l *TokenList) Round(precision int, convertPx bool) {}
func (l *TokenList) VisitURL(f func(url *string))        {}
func (l *TokenList) VisitID(f func(id *string))          {}
func (l *TokenList) VisitClass(f func(class *string)) {
	for i := range l.Tokens {
		f(&l.Tokens[i])
	}
}

// Points is the typed value of the `points` attribute on polyline/polygon:
// a flat, even-length list of x,y coordinate pairs.
type Points struct {
	noopVisitor
	Values []float64
}

// ParsePoints parses a points attribute value.
func ParsePoints(s string) (Points, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Points{}, err
		}
		vals = append(vals, n)
	}
	if len(vals)%2 != 0 {
		return Points{}, errors.New("points list must have an even number of values")
	}
	return Points{Values: vals}, nil
}

func (p Points) String() string {
	parts := make([]string, len(p.Values))
	for i, v := range p.Values {
		parts[i] = formatNumber(v)
	}
	return strings.Join(parts, " ")
}

func (p Points) IsEmpty() bool { return len(p.Values) == 0 }

func (p *Points) Round(precision int, convertPx bool) {
	for i := range p.Values {
		p.Values[i] = roundHalfAwayFromZero(p.Values[i], precision)
	}
}

func (p *Points) VisitFloat(f func(v *float64)) {
	for i := range p.Values {
		f(&p.Values[i])
	}
}

// ViewBox is the typed value of the `viewBox` attribute: min-x, min-y,
// width, height.
type ViewBox struct {
	noopVisitor
	MinX, MinY, Width, Height float64
}

// ParseViewBox parses a viewBox attribute value.
func ParseViewBox(s string) (ViewBox, error) {
	p, err := ParsePoints(s)
	if err != nil {
		return ViewBox{}, err
	}
	if len(p.Values) != 4 {
		return ViewBox{}, errors.New("viewBox requires exactly 4 values")
	}
	return ViewBox{MinX: p.Values[0], MinY: p.Values[1], Width: p.Values[2], Height: p.Values[3]}, nil
}

func (v ViewBox) String() string {
	return formatNumber(v.MinX) + " " + formatNumber(v.MinY) + " " + formatNumber(v.Width) + " " + formatNumber(v.Height)
}

func (v ViewBox) IsEmpty() bool { return false }

func (v *ViewBox) Round(precision int, convertPx bool) {
	v.MinX = roundHalfAwayFromZero(v.MinX, precision)
	v.MinY = roundHalfAwayFromZero(v.MinY, precision)
	v.Width = roundHalfAwayFromZero(v.Width, precision)
	v.Height = roundHalfAwayFromZero(v.Height, precision)
}

func (v *ViewBox) VisitFloat(f func(fv *float64)) {
	f(&v.MinX)
	f(&v.MinY)
	f(&v.Width)
	f(&v.Height)
}

// URLIdent is the typed value of href/xlink:href and reference attributes
// (clip-path, mask, filter, marker-start/mid/end): a bare fragment
// reference ("#id") or an external URL, grounded on the teacher's
// URLIdent.UnmarshalText.
type URLIdent struct {
	noopVisitor
	URL   string
	Ident string
	// IsFragment is true when Ident was written as a bare "#id" fragment
	// reference rather than a plain ident/URL string (href="image.png").
	IsFragment bool
}

// ParseURLIdent parses a url()/fragment attribute value.
func ParseURLIdent(s string) (URLIdent, error) {
	if strings.HasPrefix(s, "#") {
		return URLIdent{Ident: s[1:], IsFragment: true}, nil
	}
	tokens, err := cssTokens(s)
	if err != nil {
		return URLIdent{}, err
	}
	if len(tokens) != 1 {
		return URLIdent{}, errors.New("unexpected token")
	}
	token := tokens[0]
	if token.Type == css.URLToken {
		return URLIdent{URL: token.Value[len("url(") : len(token.Value)-1]}, nil
	}
	return URLIdent{Ident: token.Value}, nil
}

func (u URLIdent) String() string {
	if u.URL != "" {
		return "url(" + u.URL + ")"
	}
	if u.IsFragment {
		return "#" + u.Ident
	}
	return u.Ident
}

func (u URLIdent) IsEmpty() bool { return u.URL == "" && u.Ident == "" }

func (u *URLIdent) Round(precision int, convertPx bool) {}

func (u *URLIdent) VisitURL(f func(url *string)) {
	if u.URL != "" {
		f(&u.URL)
	}
}

func (u *URLIdent) VisitID(f func(id *string)) {
	if u.Ident != "" {
		f(&u.Ident)
	}
}

package attr

import (
	"errors"

	"github.com/pgavlin/svgo/atom"
	"github.com/tdewolff/parse/v2/css"
)

// Attr is a parsed attribute: a recognized AttrId carrying its typed value,
// or AttrUnknown carrying the raw name and value for round-trip fidelity.
// Parsing never fails outright: an unparsable recognized attribute still
// falls back to Unknown so the document survives unchanged until an
// optimizer pass decides what to do with it.
type Attr struct {
	ID    atom.AttrId
	Name  string // populated only when ID == atom.AttrUnknown
	Value ContentType
	Raw   string // not set by ParseAttr: a failed parse keeps its text in an *Unknown Value
}

// Unknown wraps a rawValue ContentType so unrecognized or unparsable
// attributes still implement ContentType uniformly.
type Unknown struct {
	noopVisitor
	Raw string
}

func (u Unknown) String() string                    { return u.Raw }
func (u Unknown) IsEmpty() bool                      { return u.Raw == "" }
func (u *Unknown) Round(precision int, convertPx bool) {}

// ParseAttr parses name/value into a typed Attr, falling back to Unknown
// for unrecognized names or values that fail their typed parse -- the
// "Attr parsing is total" contract.
func ParseAttr(name, value string) Attr {
	id := atom.AttrIdByName(name)
	if id == atom.AttrUnknown {
		return Attr{ID: atom.AttrUnknown, Name: name, Value: &Unknown{Raw: value}}
	}

	v, err := parseTyped(id, value)
	if err != nil {
		return Attr{ID: id, Value: &Unknown{Raw: value}}
	}
	return Attr{ID: id, Value: v}
}

func parseTyped(id atom.AttrId, value string) (ContentType, error) {
	switch id {
	case atom.AttrD:
		v, err := ParsePathValue(value)
		return &v, err

	case atom.AttrTransform, atom.AttrGradientTransform, atom.AttrPatternTransform:
		v, err := ParseTransformValue(value)
		if err != nil {
			return nil, err
		}
		inh := Defined[*TransformValue](&v)
		return &inh, nil

	case atom.AttrFill, atom.AttrStroke:
		v, err := ParsePaint(value)
		if err != nil {
			return nil, err
		}
		inh := Defined[*Paint](&v)
		return &inh, nil

	case atom.AttrStopColor:
		v, err := ParseColor(value)
		if err != nil {
			return nil, err
		}
		return &v, nil

	case atom.AttrFillOpacity, atom.AttrStrokeOpacity, atom.AttrOpacity, atom.AttrStopOpacity:
		n, err := ParseLengthPercentage(value)
		if err != nil {
			return nil, err
		}
		return &n, nil

	case atom.AttrStrokeWidth, atom.AttrX, atom.AttrY, atom.AttrWidth, atom.AttrHeight,
		atom.AttrCx, atom.AttrCy, atom.AttrR, atom.AttrRx, atom.AttrRy,
		atom.AttrX1, atom.AttrY1, atom.AttrX2, atom.AttrY2, atom.AttrStrokeDashoffset:
		v, err := ParseLengthPercentage(value)
		if err != nil {
			return nil, err
		}
		return &v, nil

	case atom.AttrPathLength, atom.AttrStrokeMiterlimit:
		v, err := parseNumber(value)
		if err != nil {
			return nil, err
		}
		return &v, nil

	case atom.AttrStrokeDasharray:
		l, err := parseNumberList(value)
		if err != nil {
			return nil, err
		}
		return &l, nil

	case atom.AttrClass:
		return &TokenList{Tokens: splitTokens(value)}, nil

	case atom.AttrID:
		return &IdentValue{noopVisitor: noopVisitor{}, Value: value}, nil

	case atom.AttrPoints:
		v, err := ParsePoints(value)
		return &v, err

	case atom.AttrViewBox:
		v, err := ParseViewBox(value)
		return &v, err

	case atom.AttrHref, atom.AttrXlinkHref, atom.AttrClipPath, atom.AttrMask, atom.AttrFilter,
		atom.AttrMarkerStart, atom.AttrMarkerMid, atom.AttrMarkerEnd:
		v, err := ParseURLIdent(value)
		return &v, err

	default:
		return &Unknown{Raw: value}, nil
	}
}

// parseNumberList parses a comma-or-whitespace separated list of
// length-or-percentage values, the grammar shared by stroke-dasharray.
func parseNumberList(s string) (ListOf[*LengthPercentage], error) {
	tokens, err := cssTokens(s)
	if err != nil {
		return ListOf[*LengthPercentage]{}, err
	}
	items := make([]*LengthPercentage, 0, len(tokens))
	for _, t := range tokens {
		if t.Type == css.CommaToken {
			continue
		}
		lp, err := parseLengthPercentageToken(t)
		if err != nil {
			return ListOf[*LengthPercentage]{}, err
		}
		items = append(items, &lp)
	}
	return ListOf[*LengthPercentage]{Items: items, Separator: ","}, nil
}

func parseNumber(s string) (Number, error) {
	tokens, err := cssTokens(s)
	if err != nil {
		return Number{}, err
	}
	if len(tokens) != 1 {
		return Number{}, errors.New("unexpected token")
	}
	lp, err := parseLengthPercentageToken(tokens[0])
	if err != nil {
		return Number{}, err
	}
	return Number{Value: lp.Length.Value}, nil
}

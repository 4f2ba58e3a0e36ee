package attr

import "github.com/pgavlin/svgo/xform"

// TransformValue is the typed value of transform/gradientTransform/
// patternTransform: an xform.TransformList wrapped to satisfy ContentType.
type TransformValue struct {
	noopVisitor
	List xform.TransformList
}

// ParseTransformValue parses a transform-list attribute value.
func ParseTransformValue(s string) (TransformValue, error) {
	l, err := xform.Parse(s)
	if err != nil {
		return TransformValue{}, err
	}
	return TransformValue{List: l}, nil
}

func (v TransformValue) String() string { return v.List.String() }

func (v TransformValue) IsEmpty() bool { return v.List.IsEmpty() }

func (v *TransformValue) Round(precision int, convertPx bool) {
	for i := range v.List {
		for j := range v.List[i].Args {
			v.List[i].Args[j] = roundHalfAwayFromZero(v.List[i].Args[j], precision)
		}
	}
}

func (v *TransformValue) VisitFloat(f func(fv *float64)) {
	for i := range v.List {
		for j := range v.List[i].Args {
			f(&v.List[i].Args[j])
		}
	}
}

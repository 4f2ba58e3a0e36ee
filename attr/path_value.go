package attr

import "github.com/pgavlin/svgo/path"

// PathValue is the typed value of the `d` attribute: path.Path wrapped to
// satisfy ContentType, so path data participates in the same generic
// optimizer plumbing (Inheritable, list rounding, visitor dispatch) as
// every other attribute kind.
type PathValue struct {
	noopVisitor
	Path path.Path
}

// ParsePathValue parses a `d` attribute value.
func ParsePathValue(s string) (PathValue, error) {
	p, err := path.Parse(s)
	if err != nil {
		return PathValue{}, err
	}
	return PathValue{Path: p}, nil
}

func (v PathValue) String() string { return v.Path.String() }

// IsEmpty is true for a path with zero commands, per spec.md's
// ContentType::is_empty contract (Path([]) is an empty collection).
func (v PathValue) IsEmpty() bool { return v.Path.IsEmpty() }

func (v *PathValue) Round(precision int, convertPx bool) {
	for i := range v.Path.Commands {
		args := v.Path.Commands[i].Args
		for j := range args {
			args[j] = roundHalfAwayFromZero(args[j], precision)
		}
	}
}

func (v *PathValue) VisitFloat(f func(fv *float64)) {
	for i := range v.Path.Commands {
		args := v.Path.Commands[i].Args
		for j := range args {
			f(&args[j])
		}
	}
}

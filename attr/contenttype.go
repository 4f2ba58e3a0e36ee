package attr

// ContentType is the uniform façade every typed attribute value implements.
// Optimizer passes reach into a value's internals only through these
// methods, so a new typed kind only has to implement this interface to
// participate in every existing pass.
type ContentType interface {
	// String renders the value in its shortest legal textual form.
	String() string

	// IsEmpty reports whether the value prints to zero characters, or
	// represents an explicitly-empty collection (an empty list, an empty
	// path). It is false for values like a false boolean that still print
	// a meaningful token.
	IsEmpty() bool

	// Round rounds every embedded float to precision fractional digits,
	// converting length units to px first when convertPx is set. Integer
	// fields (flags, indices) are untouched.
	Round(precision int, convertPx bool)

	// VisitURL invokes f with every URL fragment reachable inside the
	// value (Paint::Url, FilterList references, Mask/ClipPath refs).
	VisitURL(f func(url *string))

	// VisitID invokes f with every bare id reference inside the value.
	VisitID(f func(id *string))

	// VisitClass invokes f with every class-list token inside the value.
	VisitClass(f func(class *string))
}

// noopVisitor is embedded by ContentType implementations that carry no
// URL/id/class references, so they only need to implement the methods that
// apply to them.
type noopVisitor struct{}

func (noopVisitor) VisitURL(f func(url *string))     {}
func (noopVisitor) VisitID(f func(id *string))       {}
func (noopVisitor) VisitClass(f func(class *string)) {}

// ColorVisitor is implemented by ContentType kinds that embed colors
// (Paint, and any future gradient-stop color list).
type ColorVisitor interface {
	VisitColor(f func(c *Color))
}

// LengthVisitor is implemented by ContentType kinds that embed lengths.
type LengthVisitor interface {
	VisitLength(f func(l *Length))
}

// FloatVisitor is implemented by ContentType kinds that embed bare numeric
// fields not otherwise modeled as a Length (path coordinates, transform
// arguments, opacity values).
type FloatVisitor interface {
	VisitFloat(f func(v *float64))
}

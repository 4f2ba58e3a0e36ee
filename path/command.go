// Package path implements the typed SVG path-data model: the closed command
// set, a grammar-conformant parser, a shortest-form printer, positioned
// geometry, arc-to-cubic conversion, and path/path intersection testing.
package path

import "math"

// Point is a 2D coordinate or vector.
type Point struct {
	X, Y float64
}

// Add returns p+o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and o.
func (p Point) Dot(o Point) float64 { return p.X*o.X + p.Y*o.Y }

// Cross returns the 2D (scalar) cross product of p and o.
func (p Point) Cross(o Point) float64 { return p.X*o.Y - p.Y*o.X }

// Length returns the Euclidean length of p treated as a vector.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Kind identifies a command's operator, independent of absolute/relative or
// implicit-continuation status.
type Kind int

const (
	KindMoveTo Kind = iota
	KindLineTo
	KindHorizontal
	KindVertical
	KindCubicBezier
	KindSmoothBezier
	KindQuadraticBezier
	KindSmoothQuadraticBezier
	KindArc
	KindClosePath
)

// Command is one element of a path's command sequence. IsRelative
// distinguishes the lowercase (by-delta) forms from the uppercase (absolute)
// forms; Implicit marks a command that continues a run of the same operator
// and so must print without repeating its letter.
type Command struct {
	Kind       Kind
	IsRelative bool
	Implicit   bool

	// Args holds the command's numeric arguments in the order the SVG path
	// grammar defines them. Interpretation depends on Kind:
	//   MoveTo/LineTo:                 [x, y]
	//   Horizontal/Vertical:           [x] / [y]
	//   CubicBezier:                   [x1, y1, x2, y2, x, y]
	//   SmoothBezier:                  [x2, y2, x, y]
	//   QuadraticBezier:               [x1, y1, x, y]
	//   SmoothQuadraticBezier:         [x, y]
	//   Arc:                           [rx, ry, xRot, largeArc, sweep, x, y]
	//   ClosePath:                     []
	Args []float64
}

// End returns the command's nominal endpoint argument, for commands that
// have one (all but ClosePath).
func (c Command) End() Point {
	switch c.Kind {
	case KindHorizontal:
		return Point{c.Args[0], math.NaN()}
	case KindVertical:
		return Point{math.NaN(), c.Args[0]}
	case KindClosePath:
		return Point{}
	default:
		n := len(c.Args)
		return Point{c.Args[n-2], c.Args[n-1]}
	}
}

// Letter returns the operator letter for the command (upper for absolute,
// lower for relative), ignoring Implicit.
func (c Command) Letter() byte {
	var upper byte
	switch c.Kind {
	case KindMoveTo:
		upper = 'M'
	case KindLineTo:
		upper = 'L'
	case KindHorizontal:
		upper = 'H'
	case KindVertical:
		upper = 'V'
	case KindCubicBezier:
		upper = 'C'
	case KindSmoothBezier:
		upper = 'S'
	case KindQuadraticBezier:
		upper = 'Q'
	case KindSmoothQuadraticBezier:
		upper = 'T'
	case KindArc:
		upper = 'A'
	case KindClosePath:
		upper = 'Z'
	}
	if c.IsRelative {
		return upper - 'A' + 'a'
	}
	return upper
}

// implicitContinuation returns the Kind that a run of commands of kind k
// continues as when the operator letter is omitted. Per the SVG grammar,
// every command implicitly repeats itself except a MoveTo run, whose
// continuation is a LineTo of the same relativity.
func implicitContinuation(k Kind) Kind {
	if k == KindMoveTo {
		return KindLineTo
	}
	return k
}

// Path is an ordered sequence of path commands.
type Path struct {
	Commands []Command
}

// IsEmpty reports whether the path has zero commands.
func (p Path) IsEmpty() bool { return len(p.Commands) == 0 }

package xform

// Op identifies one SVG transform-list function.
type Op int

const (
	OpMatrix Op = iota
	OpTranslate
	OpScale
	OpRotate
	OpSkewX
	OpSkewY
)

func (o Op) String() string {
	switch o {
	case OpMatrix:
		return "matrix"
	case OpTranslate:
		return "translate"
	case OpScale:
		return "scale"
	case OpRotate:
		return "rotate"
	case OpSkewX:
		return "skewX"
	case OpSkewY:
		return "skewY"
	}
	return "unknown"
}

// Transform is one function call in an SVG transform attribute, e.g.
// "rotate(30 10 10)" or "matrix(1 0 0 1 5 5)". Args holds the arguments in
// the order they appear in the grammar for Op; rotate may carry 1 or 3 args
// (angle, or angle+cx+cy).
type Transform struct {
	Op   Op
	Args []float64
}

// ToMatrix converts a single transform function to its equivalent Matrix.
func (t Transform) ToMatrix() Matrix {
	switch t.Op {
	case OpMatrix:
		return Matrix{A: t.Args[0], B: t.Args[1], C: t.Args[2], D: t.Args[3], E: t.Args[4], F: t.Args[5]}
	case OpTranslate:
		ty := 0.0
		if len(t.Args) > 1 {
			ty = t.Args[1]
		}
		return Translate2D(t.Args[0], ty)
	case OpScale:
		sy := t.Args[0]
		if len(t.Args) > 1 {
			sy = t.Args[1]
		}
		return Scale2D(t.Args[0], sy)
	case OpRotate:
		rad := t.Args[0] * degToRad
		m := Rotate2D(rad)
		if len(t.Args) == 3 {
			cx, cy := t.Args[1], t.Args[2]
			return Translate2D(cx, cy).Mul(m).Mul(Translate2D(-cx, -cy))
		}
		return m
	case OpSkewX:
		return SkewX2D(t.Args[0] * degToRad)
	case OpSkewY:
		return SkewY2D(t.Args[0] * degToRad)
	}
	return Identity()
}

const degToRad = 3.14159265358979323846 / 180

// TransformList is the typed value of a transform/gradientTransform/
// patternTransform attribute: an ordered sequence of functions, composed
// left to right.
type TransformList []Transform

// ToMatrix composes the full list into a single Matrix, left to right.
func (l TransformList) ToMatrix() Matrix {
	m := Identity()
	for _, t := range l {
		m = m.Mul(t.ToMatrix())
	}
	return m
}

// IsEmpty reports whether the list has no functions.
func (l TransformList) IsEmpty() bool { return len(l) == 0 }

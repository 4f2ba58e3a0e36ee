package xform

import "math"

// Precision controls the rounding applied to each numeric category when
// producing the shortest transform-list equivalent of a Matrix.
type Precision struct {
	Translate int
	Angle     int
	Scale     int
}

// DefaultPrecision matches the optimizer's default ConvertTransform rounding.
var DefaultPrecision = Precision{Translate: 3, Angle: 3, Scale: 4}

// Decomposition is one QR-style factorization of a 2D affine matrix:
// translate, then rotate, then scale, then one skew.
type Decomposition struct {
	Tx, Ty       float64
	Rotate       float64 // degrees
	Sx, Sy       float64
	Skew         float64 // degrees; skewX for QRAB, skewY for QRCD
	skewIsSkewY  bool
}

// DecomposeAB computes the rotate*scale*skewX factorization (QRAB): solves
// M = R(rot) * Diag(sx,sy) * SkewX(skew) for its components directly from
// M's columns (A,B) and (C,D).
func (m Matrix) DecomposeAB() (Decomposition, bool) {
	sx := math.Hypot(m.A, m.B)
	if sx == 0 {
		return Decomposition{}, false
	}
	cosR, sinR := m.A/sx, m.B/sx

	// M.C = sx*tan(skew)*cosR - sy*sinR, M.D = sx*tan(skew)*sinR + sy*cosR.
	sy := m.D*cosR - m.C*sinR
	if sy == 0 {
		return Decomposition{}, false
	}
	skewTimesSx := m.C*cosR + m.D*sinR
	rotRad := math.Atan2(sinR, cosR)
	skewRad := math.Atan2(skewTimesSx, sx)

	return Decomposition{
		Tx: m.E, Ty: m.F,
		Rotate:      rotRad * 180 / math.Pi,
		Sx:          sx,
		Sy:          sy,
		Skew:        skewRad * 180 / math.Pi,
		skewIsSkewY: false,
	}, true
}

// DecomposeCD computes the rotate*scale*skewY factorization (QRCD): solves
// M = R(rot) * Diag(sx,sy) * SkewY(skew) directly from M's columns.
func (m Matrix) DecomposeCD() (Decomposition, bool) {
	sy := math.Hypot(m.C, m.D)
	if sy == 0 {
		return Decomposition{}, false
	}
	cosR, sinR := m.D/sy, -m.C/sy

	// M.A = sx*cosR - k*sinR, M.B = sx*sinR + k*cosR, where k = sy*tan(skew).
	sx := m.A*cosR + m.B*sinR
	if sx == 0 {
		return Decomposition{}, false
	}
	k := m.B*cosR - m.A*sinR
	rotRad := math.Atan2(sinR, cosR)
	skewRad := math.Atan2(k, sy)

	return Decomposition{
		Tx: m.E, Ty: m.F,
		Rotate:      rotRad * 180 / math.Pi,
		Sx:          sx,
		Sy:          sy,
		Skew:        skewRad * 180 / math.Pi,
		skewIsSkewY: true,
	}, true
}

// ToMatrix reconstructs the Matrix this decomposition represents, for
// round-trip verification.
func (d Decomposition) ToMatrix() Matrix {
	m := Translate2D(d.Tx, d.Ty)
	m = m.Mul(Rotate2D(d.Rotate * math.Pi / 180))
	m = m.Mul(Scale2D(d.Sx, d.Sy))
	if d.skewIsSkewY {
		m = m.Mul(SkewY2D(d.Skew * math.Pi / 180))
	} else {
		m = m.Mul(SkewX2D(d.Skew * math.Pi / 180))
	}
	return m
}

// ToTransformList renders the decomposition as a TransformList, rounding
// each category to p and dropping identity components per the spec's
// normalization rules (step 3): drop translate(0,0), scale(1,1), rotate(0),
// skew(0); collapse scale(x,x) to scale(x) and translate(x,0) to
// translate(x).
func (d Decomposition) ToTransformList(p Precision) TransformList {
	var list TransformList

	tx, ty := round(d.Tx, p.Translate), round(d.Ty, p.Translate)
	if tx != 0 || ty != 0 {
		if ty == 0 {
			list = append(list, Transform{Op: OpTranslate, Args: []float64{tx}})
		} else {
			list = append(list, Transform{Op: OpTranslate, Args: []float64{tx, ty}})
		}
	}

	rot := round(d.Rotate, p.Angle)
	if rot != 0 {
		list = append(list, Transform{Op: OpRotate, Args: []float64{rot}})
	}

	sx, sy := round(d.Sx, p.Scale), round(d.Sy, p.Scale)
	if sx != 1 || sy != 1 {
		if sx == sy {
			list = append(list, Transform{Op: OpScale, Args: []float64{sx}})
		} else {
			list = append(list, Transform{Op: OpScale, Args: []float64{sx, sy}})
		}
	}

	skew := round(d.Skew, p.Angle)
	if skew != 0 {
		op := OpSkewX
		if d.skewIsSkewY {
			op = OpSkewY
		}
		list = append(list, Transform{Op: op, Args: []float64{skew}})
	}

	return list
}

func round(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}

// FuseTranslateRotate implements step 4 of Matrix::to_transform: where a
// translate(tx,ty) anywhere in a TransformList is immediately followed by a
// one-argument rotate(theta) (only the first such pair is fused), and the
// rotation's implicit center is
// compatible, fold them
// into a single rotate(theta, cx, cy) via the closed-form (1-cos, sin)
// inversion of the 2x2 rotation system.
func FuseTranslateRotate(list TransformList) TransformList {
	for i := 0; i+1 < len(list); i++ {
		t, r := list[i], list[i+1]
		if t.Op != OpTranslate || r.Op != OpRotate || len(r.Args) != 1 {
			continue
		}
		tx := t.Args[0]
		ty := 0.0
		if len(t.Args) > 1 {
			ty = t.Args[1]
		}
		theta := r.Args[0] * math.Pi / 180
		s, c := math.Sin(theta), math.Cos(theta)
		// Solve [[1-c, s], [-s, 1-c]] * [cx, cy]^T = [tx, ty]^T.
		det := (1-c)*(1-c) + s*s
		if det < 1e-12 {
			continue
		}
		cx := ((1-c)*tx - s*ty) / det
		cy := (s*tx + (1-c)*ty) / det

		fused := Transform{Op: OpRotate, Args: []float64{r.Args[0], cx, cy}}
		out := make(TransformList, 0, len(list)-1)
		out = append(out, list[:i]...)
		out = append(out, fused)
		out = append(out, list[i+2:]...)
		return out
	}
	return list
}

// ToTransform finds the shortest textual transform-list equivalent to m, per
// spec.md §4.4: compute both QR candidates, round and normalize each, try
// fusing a leading translate into a trailing rotate, and emit whichever
// candidate (including the raw matrix() form) prints shortest.
func (m Matrix) ToTransform(p Precision) TransformList {
	candidates := make([]TransformList, 0, 4)

	if dab, ok := m.DecomposeAB(); ok {
		l := dab.ToTransformList(p)
		candidates = append(candidates, l, FuseTranslateRotate(l))
	}
	if dcd, ok := m.DecomposeCD(); ok {
		l := dcd.ToTransformList(p)
		candidates = append(candidates, l, FuseTranslateRotate(l))
	}

	matrixForm := TransformList{{Op: OpMatrix, Args: []float64{
		round(m.A, p.Scale), round(m.B, p.Scale), round(m.C, p.Scale),
		round(m.D, p.Scale), round(m.E, p.Translate), round(m.F, p.Translate),
	}}}
	candidates = append(candidates, matrixForm)

	best := matrixForm
	bestLen := len(best.String())
	for _, c := range candidates {
		if !c.ToMatrix().Equal(m, 1e-4) {
			continue
		}
		if s := len(c.String()); s < bestLen {
			best, bestLen = c, s
		}
	}
	return best
}

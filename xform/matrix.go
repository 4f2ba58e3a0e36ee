// Package xform implements the SVG transform model: a 2D affine Matrix, the
// six SVG-attribute transform kinds, and the QR-style decomposition that
// recovers the shortest equivalent transform-list form for a given matrix.
//
// The Matrix2-shaped API here (field names, Translate2D/Scale2D/Rotate2D
// constructors, DecomposeAB/DecomposeCD) is modeled on cogentcore.org/core/math32's
// Matrix2, whose test files (matrix2_test.go, matrix3_test.go) were
// retrieved for this module without their buildable source; see DESIGN.md
// for why this package reimplements that surface locally in float64 rather
// than importing the live package.
package xform

import "math"

// Matrix is a 2D affine transform in the SVG matrix(a,b,c,d,e,f) layout:
//
//	| A C E |   | x |
//	| B D F | * | y |
//	| 0 0 1 |   | 1 |
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// Translate2D returns a pure translation matrix.
func Translate2D(tx, ty float64) Matrix { return Matrix{A: 1, D: 1, E: tx, F: ty} }

// Scale2D returns a pure scale matrix.
func Scale2D(sx, sy float64) Matrix { return Matrix{A: sx, D: sy} }

// Rotate2D returns a pure rotation matrix (radians, about the origin).
func Rotate2D(rad float64) Matrix {
	s, c := math.Sin(rad), math.Cos(rad)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// SkewX2D returns a pure x-skew matrix (radians).
func SkewX2D(rad float64) Matrix { return Matrix{A: 1, D: 1, C: math.Tan(rad)} }

// SkewY2D returns a pure y-skew matrix (radians).
func SkewY2D(rad float64) Matrix { return Matrix{A: 1, D: 1, B: math.Tan(rad)} }

// Mul returns m*o (apply o first, then m -- matches the matrix-multiplication
// order SVG's transform-list composition uses).
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.C*o.B,
		B: m.B*o.A + m.D*o.B,
		C: m.A*o.C + m.C*o.D,
		D: m.B*o.C + m.D*o.D,
		E: m.A*o.E + m.C*o.F + m.E,
		F: m.B*o.E + m.D*o.F + m.F,
	}
}

// MulPoint applies m to the point (x, y).
func (m Matrix) MulPoint(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Determinant returns the matrix's determinant.
func (m Matrix) Determinant() float64 { return m.A*m.D - m.B*m.C }

// Inverse returns m^-1. The zero Matrix is returned if m is singular.
func (m Matrix) Inverse() Matrix {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}
	}
	inv := 1 / det
	return Matrix{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}
}

// IsIdentity reports whether m is (within tol) the identity matrix.
func (m Matrix) IsIdentity(tol float64) bool {
	return nearly(m.A, 1, tol) && nearly(m.B, 0, tol) && nearly(m.C, 0, tol) &&
		nearly(m.D, 1, tol) && nearly(m.E, 0, tol) && nearly(m.F, 0, tol)
}

// Equal reports whether m and o are equal within tol, component-wise.
func (m Matrix) Equal(o Matrix, tol float64) bool {
	return nearly(m.A, o.A, tol) && nearly(m.B, o.B, tol) && nearly(m.C, o.C, tol) &&
		nearly(m.D, o.D, tol) && nearly(m.E, o.E, tol) && nearly(m.F, o.F, tol)
}

func nearly(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// ScaleFactor returns the scalar by which m scales vector lengths if m is a
// uniform (proportional) scale/rotation, i.e. sqrt(det) when the x and y
// scale factors are equal. ApplyTransforms (optimize package) uses this to
// decide whether stroke-width can be rescaled instead of preserving the
// transform.
func (m Matrix) ScaleFactor() (factor float64, proportional bool) {
	sx := math.Hypot(m.A, m.B)
	sy := math.Hypot(m.C, m.D)
	if sx == 0 || sy == 0 {
		return 0, false
	}
	return math.Sqrt(sx * sy), nearly(sx, sy, 1e-6) && nearly(m.A*m.C+m.B*m.D, 0, 1e-6)
}

package path

import "math"

// CubicSegment is one cubic Bezier piece of an arc-to-cubic conversion.
type CubicSegment struct {
	Start, Control1, Control2, End Point
}

// ArcToCubic converts an SVG elliptical arc to a sequence of cubic Beziers
// using the standard center parameterization (SVG 1.1 appendix F.6),
// subdividing so each segment spans at most 90 degrees. This is used for
// geometry only (hidden-element bounds, intersection) -- printing always
// preserves the original arc command, per spec.md §4.3.
func ArcToCubic(start Point, rx, ry, xAxisRotationDeg float64, largeArc, sweep bool, end Point) []CubicSegment {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || start == end {
		return []CubicSegment{{Start: start, Control1: start, Control2: end, End: end}}
	}

	phi := xAxisRotationDeg * math.Pi / 180
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

	dx2, dy2 := (start.X-end.X)/2, (start.Y-end.Y)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	sign := 1.0
	if largeArc == sweep {
		sign = -1
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den != 0 && num > 0 {
		co = sign * math.Sqrt(num/den)
	}
	cxp := co * (rx * y1p / ry)
	cyp := co * -(ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (start.X+end.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (start.Y+end.Y)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		a := math.Acos(clamp(dot/lenProd, -1, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dTheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	numSegs := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	if numSegs < 1 {
		numSegs = 1
	}
	delta := dTheta / float64(numSegs)

	segs := make([]CubicSegment, 0, numSegs)
	t := 4.0 / 3.0 * math.Tan(delta/4)

	cur := start
	for i := 0; i < numSegs; i++ {
		a1 := theta1 + float64(i)*delta
		a2 := a1 + delta

		p1 := ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, a1)
		p2 := ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, a2)

		d1 := ellipseDerivative(rx, ry, cosPhi, sinPhi, a1)
		d2 := ellipseDerivative(rx, ry, cosPhi, sinPhi, a2)

		c1 := Point{p1.X + t*d1.X, p1.Y + t*d1.Y}
		c2 := Point{p2.X - t*d2.X, p2.Y - t*d2.Y}

		segs = append(segs, CubicSegment{Start: cur, Control1: c1, Control2: c2, End: p2})
		cur = p2
	}
	// snap the final endpoint to the caller's end to cancel rounding drift.
	segs[len(segs)-1].End = end
	return segs
}

func ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, theta float64) Point {
	x := rx * math.Cos(theta)
	y := ry * math.Sin(theta)
	return Point{cx + x*cosPhi - y*sinPhi, cy + x*sinPhi + y*cosPhi}
}

func ellipseDerivative(rx, ry, cosPhi, sinPhi, theta float64) Point {
	x := -rx * math.Sin(theta)
	y := ry * math.Cos(theta)
	return Point{x*cosPhi - y*sinPhi, x*sinPhi + y*cosPhi}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TransformEllipse transforms an arc's (rx, ry, xAxisRotation, sweep) under
// a 2x2 linear map (a,b,c,d), per spec.md §4.8's ApplyTransforms contract:
// radii and rotation are recovered from the conic the ellipse maps to, and
// the sweep flag flips when the map reverses orientation (determinant < 0).
// Axes are swapped when the recovered rotation exceeds 80 degrees, matching
// the contract's "swapping axes when the rotated angle exceeds 80°" rule.
func TransformEllipse(rx, ry, rotationDeg float64, sweep bool, a, b, c, d float64) (nrx, nry, nrot float64, nsweep bool) {
	phi := rotationDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	// Ellipse parameterized as M(theta) = R(phi) * diag(rx, ry) * (cos,sin).
	// Compose with the linear map and recover the new semi-axes/rotation via
	// the eigen-decomposition of the resulting quadratic form.
	m00 := a*cosPhi*rx - b*sinPhi*ry
	m01 := a*sinPhi*rx + b*cosPhi*ry
	m10 := c*cosPhi*rx - d*sinPhi*ry
	m11 := c*sinPhi*rx + d*cosPhi*ry

	// singular value decomposition of [[m00,m01],[m10,m11]] gives the new
	// semi-axis lengths directly.
	e := (m00 + m11) / 2
	f := (m00 - m11) / 2
	g := (m10 + m01) / 2
	h := (m10 - m01) / 2

	q := math.Hypot(e, h)
	r := math.Hypot(f, g)

	nrx = q + r
	nry = math.Abs(q - r)

	a1 := math.Atan2(g, f)
	a2 := math.Atan2(h, e)
	theta := (a2 - a1) / 2
	nrot = theta * 180 / math.Pi

	if nrot > 80 || nrot < -80 {
		nrx, nry = nry, nrx
		if nrot > 0 {
			nrot -= 90
		} else {
			nrot += 90
		}
	}

	det := a*d - b*c
	nsweep = sweep
	if det < 0 {
		nsweep = !sweep
	}
	return nrx, nry, nrot, nsweep
}

package path

import "math"

// PositionedCommand augments a Command with its absolute start and end
// points and, for curve commands, the absolute control points needed for
// continuation (the "s-curve" rule for Smooth{Bezier,QuadraticBezier}).
type PositionedCommand struct {
	Command

	Start Point
	End   Point

	// Control1, Control2 are the absolute cubic control points; for
	// quadratic commands only Control1 is meaningful.
	Control1 Point
	Control2 Point
}

// Positioned walks the path resolving every command's relative deltas and
// smooth-continuation control points into absolute coordinates.
func (p Path) Positioned() []PositionedCommand {
	out := make([]PositionedCommand, 0, len(p.Commands))

	var cur, subpathStart Point
	var lastCubicControl, lastQuadControl Point
	haveLastCubic, haveLastQuad := false, false

	for _, c := range p.Commands {
		pc := PositionedCommand{Command: c, Start: cur}

		switch c.Kind {
		case KindMoveTo:
			end := resolve(cur, c, Point{c.Args[0], c.Args[1]})
			pc.End = end
			cur, subpathStart = end, end
			haveLastCubic, haveLastQuad = false, false

		case KindLineTo:
			end := resolve(cur, c, Point{c.Args[0], c.Args[1]})
			pc.End = end
			cur = end
			haveLastCubic, haveLastQuad = false, false

		case KindHorizontal:
			x := c.Args[0]
			if c.IsRelative {
				x += cur.X
			}
			pc.End = Point{x, cur.Y}
			cur = pc.End
			haveLastCubic, haveLastQuad = false, false

		case KindVertical:
			y := c.Args[0]
			if c.IsRelative {
				y += cur.Y
			}
			pc.End = Point{cur.X, y}
			cur = pc.End
			haveLastCubic, haveLastQuad = false, false

		case KindCubicBezier:
			c1 := resolve(cur, c, Point{c.Args[0], c.Args[1]})
			c2 := resolve(cur, c, Point{c.Args[2], c.Args[3]})
			end := resolve(cur, c, Point{c.Args[4], c.Args[5]})
			pc.Control1, pc.Control2, pc.End = c1, c2, end
			cur, lastCubicControl, haveLastCubic = end, c2, true
			haveLastQuad = false

		case KindSmoothBezier:
			var c1 Point
			if haveLastCubic {
				c1 = cur.Scale(2).Sub(lastCubicControl)
			} else {
				c1 = cur
			}
			c2 := resolve(cur, c, Point{c.Args[0], c.Args[1]})
			end := resolve(cur, c, Point{c.Args[2], c.Args[3]})
			pc.Control1, pc.Control2, pc.End = c1, c2, end
			cur, lastCubicControl, haveLastCubic = end, c2, true
			haveLastQuad = false

		case KindQuadraticBezier:
			c1 := resolve(cur, c, Point{c.Args[0], c.Args[1]})
			end := resolve(cur, c, Point{c.Args[2], c.Args[3]})
			pc.Control1, pc.End = c1, end
			cur, lastQuadControl, haveLastQuad = end, c1, true
			haveLastCubic = false

		case KindSmoothQuadraticBezier:
			var c1 Point
			if haveLastQuad {
				c1 = cur.Scale(2).Sub(lastQuadControl)
			} else {
				c1 = cur
			}
			end := resolve(cur, c, Point{c.Args[0], c.Args[1]})
			pc.Control1, pc.End = c1, end
			cur, lastQuadControl, haveLastQuad = end, c1, true
			haveLastCubic = false

		case KindArc:
			end := resolve(cur, c, Point{c.Args[5], c.Args[6]})
			pc.End = end
			cur = end
			haveLastCubic, haveLastQuad = false, false

		case KindClosePath:
			pc.End = subpathStart
			cur = subpathStart
			haveLastCubic, haveLastQuad = false, false
		}

		out = append(out, pc)
	}

	return out
}

func resolve(cur Point, c Command, v Point) Point {
	if c.IsRelative {
		return cur.Add(v)
	}
	return v
}

// Bounds returns the axis-aligned bounding box of the path's support points
// (curve endpoints and control points; not a tight bezier bound, but
// sufficient for the optimizer's hidden-element and hit-testing checks).
func (p Path) Bounds() (min, max Point, ok bool) {
	pts := p.Positioned()
	if len(pts) == 0 {
		return Point{}, Point{}, false
	}
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	grow := func(pt Point) {
		min.X, min.Y = math.Min(min.X, pt.X), math.Min(min.Y, pt.Y)
		max.X, max.Y = math.Max(max.X, pt.X), math.Max(max.Y, pt.Y)
	}
	for _, c := range pts {
		grow(c.Start)
		grow(c.End)
		if c.Kind == KindCubicBezier || c.Kind == KindSmoothBezier {
			grow(c.Control1)
			grow(c.Control2)
		} else if c.Kind == KindQuadraticBezier || c.Kind == KindSmoothQuadraticBezier {
			grow(c.Control1)
		}
	}
	return min, max, true
}

// Subpath is the support-point polygon (curve endpoints plus bezier
// midpoint subdivisions and arc-to-cubic flattening) for one M..Z run.
type Subpath struct {
	Points []Point

	// MinX, MaxX, MinY, MaxY are indices into Points identifying the
	// extremal support points for this subpath.
	MinX, MaxX, MinY, MaxY int
}

// Points splits the positioned path into per-subpath support-point
// polygons, per spec.md §4.3's Points::from_positioned.
func Points(positioned []PositionedCommand) []Subpath {
	var subpaths []Subpath
	var cur []Point

	flush := func() {
		if len(cur) == 0 {
			return
		}
		subpaths = append(subpaths, newSubpath(cur))
		cur = nil
	}

	for _, c := range positioned {
		switch c.Kind {
		case KindMoveTo:
			flush()
			cur = append(cur, c.End)
		case KindCubicBezier, KindSmoothBezier:
			cur = append(cur, flattenCubic(c.Start, c.Control1, c.Control2, c.End)...)
		case KindQuadraticBezier, KindSmoothQuadraticBezier:
			cur = append(cur, flattenQuadratic(c.Start, c.Control1, c.End)...)
		case KindArc:
			segs := ArcToCubic(c.Start, c.Args[0], c.Args[1], c.Args[2], c.Args[3] != 0, c.Args[4] != 0, c.End)
			for _, s := range segs {
				cur = append(cur, flattenCubic(s.Start, s.Control1, s.Control2, s.End)...)
			}
		default:
			cur = append(cur, c.End)
		}
	}
	flush()
	return subpaths
}

func newSubpath(points []Point) Subpath {
	sp := Subpath{Points: points}
	for i, p := range points {
		if p.X < points[sp.MinX].X {
			sp.MinX = i
		}
		if p.X > points[sp.MaxX].X {
			sp.MaxX = i
		}
		if p.Y < points[sp.MinY].Y {
			sp.MinY = i
		}
		if p.Y > points[sp.MaxY].Y {
			sp.MaxY = i
		}
	}
	return sp
}

// flattenCubic subdivides a cubic bezier at its midpoint once, giving a
// 3-point support polygon (start, midpoint, end) -- enough resolution for
// convex-hull/GJK overlap testing without a full adaptive tessellation.
func flattenCubic(p0, p1, p2, p3 Point) []Point {
	mid := bezierPoint3(p0, p1, p2, p3, 0.5)
	return []Point{p0, mid, p3}
}

func flattenQuadratic(p0, p1, p2 Point) []Point {
	mid := bezierPoint2(p0, p1, p2, 0.5)
	return []Point{p0, mid, p2}
}

func bezierPoint3(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func bezierPoint2(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt
	b := 2 * mt * t
	c := t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y,
	}
}

// ConvexHull returns the convex hull of pts using the monotone-chain
// algorithm, sorted counter-clockwise starting from the lowest-leftmost
// point.
func ConvexHull(pts []Point) []Point {
	if len(pts) < 3 {
		return append([]Point(nil), pts...)
	}

	sorted := append([]Point(nil), pts...)
	sortPoints(sorted)

	cross := func(o, a, b Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	lower := make([]Point, 0, len(sorted))
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]Point, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func sortPoints(pts []Point) {
	// insertion sort: hull inputs are small (support-point counts, not
	// rendering-resolution tessellations), so O(n^2) is fine and keeps this
	// dependency-free.
	for i := 1; i < len(pts); i++ {
		j := i
		for j > 0 && less(pts[j], pts[j-1]) {
			pts[j], pts[j-1] = pts[j-1], pts[j]
			j--
		}
	}
}

func less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// GetSupport returns the vertex of the convex polygon hull farthest in the
// given direction, the support-function primitive GJK needs.
func GetSupport(hull []Point, direction Point) Point {
	best := hull[0]
	bestDot := best.Dot(direction)
	for _, p := range hull[1:] {
		if d := p.Dot(direction); d > bestDot {
			best, bestDot = p, d
		}
	}
	return best
}

package path

// Intersects reports whether the rendered fill of p could overlap the
// rendered fill of o. It is conservative: it may return true for shapes that
// merely come close (whenever hull testing can't cheaply rule out overlap),
// but per spec.md §4.3 it must never return false for paths that do overlap.
//
// Implementation: split both paths into subpaths, build each subpath's
// convex hull, and run GJK on the Minkowski difference of every hull pair.
func (p Path) Intersects(o Path) bool {
	aSubs := Points(p.Positioned())
	bSubs := Points(o.Positioned())

	for _, a := range aSubs {
		aHull := ConvexHull(a.Points)
		if len(aHull) == 0 {
			continue
		}
		for _, b := range bSubs {
			bHull := ConvexHull(b.Points)
			if len(bHull) == 0 {
				continue
			}
			if gjkOverlap(aHull, bHull) {
				return true
			}
		}
	}
	return false
}

// gjkOverlap implements the 2D GJK distance algorithm's boolean form:
// iteratively builds a simplex on the Minkowski difference A-B, terminating
// true if the simplex ever encloses the origin, false if the search
// direction cannot make further progress toward it.
func gjkOverlap(a, b []Point) bool {
	support := func(dir Point) Point {
		sa := GetSupport(a, dir)
		sb := GetSupport(b, Point{-dir.X, -dir.Y})
		return sa.Sub(sb)
	}

	dir := Point{1, 0}
	simplex := []Point{support(dir)}
	dir = Point{-simplex[0].X, -simplex[0].Y}
	if dir.X == 0 && dir.Y == 0 {
		return true // origin is the first support point itself
	}

	const maxIterations = 32
	for i := 0; i < maxIterations; i++ {
		p := support(dir)
		if p.Dot(dir) < 0 {
			return false // cannot reach the origin in this direction
		}
		simplex = append(simplex, p)

		var ok bool
		simplex, dir, ok = nextSimplex(simplex)
		if ok {
			return true
		}
		if dir.X == 0 && dir.Y == 0 {
			// degenerate direction: treat as a touching/degenerate overlap,
			// which spec.md §4.3 explicitly allows us to call conservatively.
			return true
		}
	}
	// did not converge within the iteration budget: treat as overlapping,
	// the conservative choice spec.md §4.3 permits for degenerate inputs.
	return true
}

func nextSimplex(simplex []Point) ([]Point, Point, bool) {
	switch len(simplex) {
	case 2:
		return lineCase(simplex)
	case 3:
		return triangleCase(simplex)
	}
	return simplex, Point{}, false
}

func tripleCross(a, b, c Point) Point {
	// (a x b) x c in 2D, expanded via the standard vector identity.
	ac := a.Dot(c)
	bc := b.Dot(c)
	return Point{b.X*ac - a.X*bc, b.Y*ac - a.Y*bc}
}

func lineCase(simplex []Point) ([]Point, Point, bool) {
	b, a := simplex[0], simplex[1]
	ab := b.Sub(a)
	ao := Point{-a.X, -a.Y}

	if ab.Dot(ao) > 0 {
		dir := tripleCross(ab, ao, ab)
		return simplex, dir, false
	}
	return []Point{a}, ao, false
}

func triangleCase(simplex []Point) ([]Point, Point, bool) {
	c, b, a := simplex[0], simplex[1], simplex[2]
	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := Point{-a.X, -a.Y}

	abPerp := tripleCross(ac, ab, ab)
	if abPerp.Dot(ao) > 0 {
		return []Point{b, a}, abPerp, false
	}

	acPerp := tripleCross(ab, ac, ac)
	if acPerp.Dot(ao) > 0 {
		return []Point{c, a}, acPerp, false
	}

	return simplex, Point{}, true
}

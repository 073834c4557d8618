package fig

// Geometry kernel operations over paths. All functions here are pure:
// they never mutate their inputs and are safe to call concurrently.

// DefaultEpsilon is the point-merging tolerance used by Simplify when
// the caller passes a non-positive epsilon.
const DefaultEpsilon = 1e-9

// ValidatePath checks that a path is well-formed drawing input: it must
// be non-empty, start with a MoveTo, and contain at least one drawing
// element after each subpath start. A bare MoveTo sequence has nothing
// to draw and is rejected as degenerate.
func ValidatePath(p *Path) error {
	if p.IsEmpty() {
		return &GeometryError{Kind: DegenerateShape, Detail: "empty path"}
	}
	if _, ok := p.elements[0].(MoveTo); !ok {
		return &GeometryError{Kind: DegenerateShape, Detail: "path must start with MoveTo"}
	}
	draws := 0
	for _, e := range p.elements {
		switch e.(type) {
		case LineTo, QuadTo, CubicTo, Close:
			draws++
		}
	}
	if draws == 0 {
		return &GeometryError{Kind: DegenerateShape, Detail: "path has no drawing elements"}
	}
	return nil
}

// Simplify returns a copy of the path with consecutive near-duplicate
// points merged: a LineTo whose target is within eps of the current
// point is dropped. Curve elements are never dropped, since even a
// zero-length curve can carry visible control geometry. A non-positive
// eps selects DefaultEpsilon.
func Simplify(p *Path, eps float64) *Path {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	q := NewPath()
	if p == nil {
		return q
	}
	var cur Point
	hasCur := false
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			q.MoveTo(e.Point)
			cur, hasCur = e.Point, true
		case LineTo:
			if hasCur && e.Point.NearlyEqual(cur, eps) {
				continue
			}
			q.LineTo(e.Point)
			cur, hasCur = e.Point, true
		case QuadTo:
			q.QuadTo(e.Control, e.Point)
			cur, hasCur = e.Point, true
		case CubicTo:
			q.CubicTo(e.Control1, e.Control2, e.Point)
			cur, hasCur = e.Point, true
		case Close:
			q.Close()
			cur = q.start
		}
	}
	return q
}

// SegmentsIntersect reports whether the closed segments p1-p2 and q1-q2
// intersect in the XY plane, including touching at an endpoint and
// collinear overlap.
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	d1 := q2.Sub(q1).Cross2D(p1.Sub(q1))
	d2 := q2.Sub(q1).Cross2D(p2.Sub(q1))
	d3 := p2.Sub(p1).Cross2D(q1.Sub(p1))
	d4 := p2.Sub(p1).Cross2D(q2.Sub(p1))

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(q1, q2, p1)) ||
		(d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) ||
		(d4 == 0 && onSegment(p1, p2, q2))
}

// onSegment reports whether p lies within the bounding box of the
// collinear segment a-b.
func onSegment(a, b, p Point) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

// PathContains reports whether the XY components of pt lie inside the
// polygon formed by the path's on-path points, using the even-odd rule.
// Curves are treated as straight chords; callers needing exact curve
// containment should flatten first.
func PathContains(p *Path, pt Point) bool {
	pts := p.Points()
	if len(pts) < 3 {
		return false
	}
	inside := false
	j := len(pts) - 1
	for i := 0; i < len(pts); i++ {
		pi, pj := pts[i], pts[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			x := (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if pt.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

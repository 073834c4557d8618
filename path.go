package fig

import "iter"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path: an ordered sequence of points with
// optional Bezier control metadata, open or closed. A Path handed to a
// figure is copied, so the figure's objects own their geometry
// exclusively.
type Path struct {
	elements []PathElement
	start    Point // starting point of current subpath
	current  Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing, starting a new subpath.
func (p *Path) MoveTo(pt Point) *Path {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	return p
}

// LineTo draws a line to a point.
func (p *Path) LineTo(pt Point) *Path {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
	return p
}

// QuadTo draws a quadratic Bezier curve with one control point.
func (p *Path) QuadTo(ctrl, pt Point) *Path {
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
	return p
}

// CubicTo draws a cubic Bezier curve with two control points.
func (p *Path) CubicTo(ctrl1, ctrl2, pt Point) *Path {
	p.elements = append(p.elements, CubicTo{Control1: ctrl1, Control2: ctrl2, Point: pt})
	p.current = pt
	return p
}

// Close closes the current subpath back to its starting point.
func (p *Path) Close() *Path {
	p.elements = append(p.elements, Close{})
	p.current = p.start
	return p
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// Len returns the number of path elements.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.elements)
}

// Elements returns an iterator over all path elements in order.
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if p == nil {
			return
		}
		for _, e := range p.elements {
			if !yield(e) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	q := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    p.start,
		current:  p.current,
	}
	copy(q.elements, p.elements)
	return q
}

// ToPath makes *Path satisfy the Shape interface: a path is its own
// geometry.
func (p *Path) ToPath() *Path { return p }

// Bounds returns the bounding box of all on-path points and Bezier
// control points. Including control points makes the box conservative:
// the true curve never escapes it.
func (p *Path) Bounds() Rect {
	r := EmptyRect()
	if p == nil {
		return r
	}
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			r = r.Expand(e.Point)
		case LineTo:
			r = r.Expand(e.Point)
		case QuadTo:
			r = r.Expand(e.Control)
			r = r.Expand(e.Point)
		case CubicTo:
			r = r.Expand(e.Control1)
			r = r.Expand(e.Control2)
			r = r.Expand(e.Point)
		}
	}
	return r
}

// Transform returns a copy of the path with every point (including
// control points) mapped through fn. The receiver is unchanged.
func (p *Path) Transform(fn func(Point) Point) *Path {
	if p == nil {
		return nil
	}
	q := &Path{
		elements: make([]PathElement, 0, len(p.elements)),
		start:    fn(p.start),
		current:  fn(p.current),
	}
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			q.elements = append(q.elements, MoveTo{Point: fn(e.Point)})
		case LineTo:
			q.elements = append(q.elements, LineTo{Point: fn(e.Point)})
		case QuadTo:
			q.elements = append(q.elements, QuadTo{Control: fn(e.Control), Point: fn(e.Point)})
		case CubicTo:
			q.elements = append(q.elements, CubicTo{
				Control1: fn(e.Control1),
				Control2: fn(e.Control2),
				Point:    fn(e.Point),
			})
		case Close:
			q.elements = append(q.elements, Close{})
		}
	}
	return q
}

// Points returns every on-path point in order. Control points are not
// included.
func (p *Path) Points() []Point {
	if p == nil {
		return nil
	}
	pts := make([]Point, 0, len(p.elements))
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Point)
		case CubicTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

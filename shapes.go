package fig

import "math"

// Shape is the interface for geometry handed to a figure. All shapes
// can be converted to a path and report their bounds.
type Shape interface {
	// ToPath converts the shape to a Path for projection and emission.
	ToPath() *Path

	// Bounds returns the bounding rectangle of the shape.
	Bounds() Rect
}

// validator is an optional interface: shapes that can detect degenerate
// configurations cheaply implement it, and AddObject consults it before
// converting to a path.
type validator interface {
	Validate() error
}

// kappa is the control-point offset factor approximating a quarter
// circle with one cubic Bezier segment.
const kappa = 0.5522847498307936

// Dot is a point marker. Its on-canvas radius comes from the
// marker_size style option, not from scene-space geometry.
type Dot struct {
	At Point
}

// ToPath converts the dot to a single-point path.
func (d Dot) ToPath() *Path {
	// A marker has no extent in scene space; the codec draws it from
	// the style's marker size. The close makes the path well-formed.
	return NewPath().MoveTo(d.At).Close()
}

// Bounds returns the degenerate bounding rectangle at the dot.
func (d Dot) Bounds() Rect {
	return EmptyRect().Expand(d.At)
}

// Line is a straight segment between two points.
type Line struct {
	From, To Point
}

// ToPath converts the line to a two-point path.
func (l Line) ToPath() *Path {
	return NewPath().MoveTo(l.From).LineTo(l.To)
}

// Bounds returns the bounding rectangle of the segment.
func (l Line) Bounds() Rect {
	return EmptyRect().Expand(l.From).Expand(l.To)
}

// Validate rejects a line with coincident endpoints.
func (l Line) Validate() error {
	if l.From.NearlyEqual(l.To, DefaultEpsilon) {
		return &GeometryError{Kind: DegenerateShape, Detail: "line endpoints coincide"}
	}
	return nil
}

// Polyline is an open chain of straight segments.
type Polyline struct {
	Points []Point
}

// ToPath converts the polyline to a path.
func (pl Polyline) ToPath() *Path {
	p := NewPath()
	for i, pt := range pl.Points {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	return p
}

// Bounds returns the bounding rectangle of all points.
func (pl Polyline) Bounds() Rect {
	r := EmptyRect()
	for _, pt := range pl.Points {
		r = r.Expand(pt)
	}
	return r
}

// Validate rejects a polyline with fewer than two points.
func (pl Polyline) Validate() error {
	if len(pl.Points) < 2 {
		return &GeometryError{Kind: DegenerateShape, Detail: "polyline needs at least two points"}
	}
	return nil
}

// StepXY returns a two-segment polyline from a to b travelling along X
// first, then Y (the TikZ -| connector).
func StepXY(a, b Point) Polyline {
	return Polyline{Points: []Point{a, {X: b.X, Y: a.Y, Z: a.Z}, b}}
}

// StepYX returns a two-segment polyline from a to b travelling along Y
// first, then X (the TikZ |- connector).
func StepYX(a, b Point) Polyline {
	return Polyline{Points: []Point{a, {X: a.X, Y: b.Y, Z: a.Z}, b}}
}

// Polygon is a closed chain of straight segments.
type Polygon struct {
	Points []Point
}

// ToPath converts the polygon to a closed path.
func (pg Polygon) ToPath() *Path {
	p := Polyline{Points: pg.Points}.ToPath()
	return p.Close()
}

// Bounds returns the bounding rectangle of all vertices.
func (pg Polygon) Bounds() Rect {
	return Polyline{Points: pg.Points}.Bounds()
}

// Validate rejects a polygon with fewer than three vertices.
func (pg Polygon) Validate() error {
	if len(pg.Points) < 3 {
		return &GeometryError{Kind: DegenerateShape, Detail: "polygon needs at least three vertices"}
	}
	return nil
}

// RectShape is an axis-aligned rectangle between two corners.
type RectShape struct {
	Min, Max Point
}

// ToPath converts the rectangle to a closed four-segment path.
func (r RectShape) ToPath() *Path {
	return NewPath().
		MoveTo(r.Min).
		LineTo(Point{X: r.Max.X, Y: r.Min.Y}).
		LineTo(r.Max).
		LineTo(Point{X: r.Min.X, Y: r.Max.Y}).
		Close()
}

// Bounds returns the rectangle itself.
func (r RectShape) Bounds() Rect {
	return EmptyRect().Expand(r.Min).Expand(r.Max)
}

// Validate rejects a rectangle with zero width or height.
func (r RectShape) Validate() error {
	if math.Abs(r.Max.X-r.Min.X) <= DefaultEpsilon ||
		math.Abs(r.Max.Y-r.Min.Y) <= DefaultEpsilon {
		return &GeometryError{Kind: DegenerateShape, Detail: "rectangle has zero extent"}
	}
	return nil
}

// Circle is a circle in the XY plane.
type Circle struct {
	Center Point
	Radius float64
}

// ToPath converts the circle to four cubic Bezier segments.
func (c Circle) ToPath() *Path {
	return Ellipse{Center: c.Center, RX: c.Radius, RY: c.Radius}.ToPath()
}

// Bounds returns the bounding square of the circle.
func (c Circle) Bounds() Rect {
	return Ellipse{Center: c.Center, RX: c.Radius, RY: c.Radius}.Bounds()
}

// Validate rejects a non-positive radius.
func (c Circle) Validate() error {
	if c.Radius <= 0 {
		return &GeometryError{Kind: DegenerateShape, Detail: "circle radius must be positive"}
	}
	return nil
}

// Ellipse is an axis-aligned ellipse in the XY plane.
type Ellipse struct {
	Center Point
	RX, RY float64
}

// ToPath converts the ellipse to four cubic Bezier segments.
func (e Ellipse) ToPath() *Path {
	cx, cy, z := e.Center.X, e.Center.Y, e.Center.Z
	ox, oy := e.RX*kappa, e.RY*kappa
	p := NewPath()
	p.MoveTo(Point{X: cx + e.RX, Y: cy, Z: z})
	p.CubicTo(
		Point{X: cx + e.RX, Y: cy + oy, Z: z},
		Point{X: cx + ox, Y: cy + e.RY, Z: z},
		Point{X: cx, Y: cy + e.RY, Z: z})
	p.CubicTo(
		Point{X: cx - ox, Y: cy + e.RY, Z: z},
		Point{X: cx - e.RX, Y: cy + oy, Z: z},
		Point{X: cx - e.RX, Y: cy, Z: z})
	p.CubicTo(
		Point{X: cx - e.RX, Y: cy - oy, Z: z},
		Point{X: cx - ox, Y: cy - e.RY, Z: z},
		Point{X: cx, Y: cy - e.RY, Z: z})
	p.CubicTo(
		Point{X: cx + ox, Y: cy - e.RY, Z: z},
		Point{X: cx + e.RX, Y: cy - oy, Z: z},
		Point{X: cx + e.RX, Y: cy, Z: z})
	return p.Close()
}

// Bounds returns the bounding rectangle of the ellipse.
func (e Ellipse) Bounds() Rect {
	return Rect{
		MinX: e.Center.X - e.RX,
		MinY: e.Center.Y - e.RY,
		MaxX: e.Center.X + e.RX,
		MaxY: e.Center.Y + e.RY,
	}
}

// Validate rejects non-positive radii.
func (e Ellipse) Validate() error {
	if e.RX <= 0 || e.RY <= 0 {
		return &GeometryError{Kind: DegenerateShape, Detail: "ellipse radii must be positive"}
	}
	return nil
}

// Arc is an elliptical arc in the XY plane, swept counter-clockwise
// from StartAngle to EndAngle, both in degrees.
type Arc struct {
	Center     Point
	RX, RY     float64
	StartAngle float64
	EndAngle   float64
}

// ToPath approximates the arc with cubic Bezier segments, one per
// quarter turn or part thereof.
func (a Arc) ToPath() *Path {
	start := a.StartAngle * math.Pi / 180
	end := a.EndAngle * math.Pi / 180
	sweep := end - start
	segments := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	step := sweep / float64(segments)

	at := func(t float64) Point {
		return Point{
			X: a.Center.X + a.RX*math.Cos(t),
			Y: a.Center.Y + a.RY*math.Sin(t),
			Z: a.Center.Z,
		}
	}
	// Tangent-scaled control offset for one cubic segment of the sweep.
	alpha := 4.0 / 3.0 * math.Tan(step/4)

	p := NewPath().MoveTo(at(start))
	for i := 0; i < segments; i++ {
		t0 := start + float64(i)*step
		t1 := t0 + step
		p0, p1 := at(t0), at(t1)
		c1 := Point{
			X: p0.X - alpha*a.RX*math.Sin(t0),
			Y: p0.Y + alpha*a.RY*math.Cos(t0),
			Z: p0.Z,
		}
		c2 := Point{
			X: p1.X + alpha*a.RX*math.Sin(t1),
			Y: p1.Y - alpha*a.RY*math.Cos(t1),
			Z: p1.Z,
		}
		p.CubicTo(c1, c2, p1)
	}
	return p
}

// Bounds returns the bounding rectangle of the full ellipse the arc
// lies on. Conservative but always correct.
func (a Arc) Bounds() Rect {
	return Ellipse{Center: a.Center, RX: a.RX, RY: a.RY}.Bounds()
}

// Validate rejects non-positive radii and an empty sweep.
func (a Arc) Validate() error {
	if a.RX <= 0 || a.RY <= 0 {
		return &GeometryError{Kind: DegenerateShape, Detail: "arc radii must be positive"}
	}
	if a.StartAngle == a.EndAngle {
		return &GeometryError{Kind: DegenerateShape, Detail: "arc sweep is empty"}
	}
	return nil
}

package fig

// ScaleMode selects how scene extents map onto the canvas.
type ScaleMode uint8

const (
	// ScaleUniform preserves the scene aspect ratio: both axes share
	// the smaller of the two axis scales, anchored at the canvas
	// origin. This is the default.
	ScaleUniform ScaleMode = iota

	// ScaleStretch maps each axis independently to fill the canvas.
	ScaleStretch
)

// ProjectedGeometry is an object's geometry expressed in canvas
// coordinates, together with per-element out-of-bounds flags.
// Projection is a pure function of (geometry, projection config):
// identical inputs always produce identical coordinates.
type ProjectedGeometry struct {
	// Path holds the projected geometry in canvas space.
	Path *Path

	// Flags has one entry per path element; true marks an element with
	// at least one point outside the axis ranges. Out-of-range geometry
	// is retained, not dropped: the codec decides whether to clip,
	// crop, or draw outside the nominal canvas.
	Flags []bool

	// InBounds reports whether every element is inside the axis ranges.
	InBounds bool
}

// Projector maps scene-space points into canvas space for one figure
// configuration. It is immutable after construction and safe for
// concurrent use.
type Projector struct {
	xr, yr Range
	zr     *Range
	view   *Matrix3

	width, height  float64
	scaleX, scaleY float64
}

// NewProjector builds the projector for a figure under the given
// options. Axes without an explicit range get one derived from the
// figure's content bounds (padded by half a unit when the content has
// zero span, so a lone marker still projects). An explicit range with
// max == min fails with ProjectionError{DegenerateAxis} — the projector
// never divides by a zero span.
func NewProjector(f *Figure, opts EmitOptions) (*Projector, error) {
	pr := &Projector{
		width:  opts.Width,
		height: opts.Height,
	}
	if v, ok := f.View(); ok {
		pr.view = &v
	}
	if zr, ok := f.AxisRange(AxisZ); ok {
		if zr.Max == zr.Min {
			return nil, &ProjectionError{Kind: DegenerateAxis, Axis: AxisZ}
		}
		pr.zr = &zr
	}

	bounds := f.Bounds()
	derive := func(axis Axis, min, max float64) (Range, error) {
		if r, ok := f.AxisRange(axis); ok {
			if r.Max == r.Min {
				return Range{}, &ProjectionError{Kind: DegenerateAxis, Axis: axis}
			}
			return r, nil
		}
		if bounds.IsEmpty() {
			return Range{Min: 0, Max: 1}, nil
		}
		if max == min {
			return Range{Min: min - 0.5, Max: max + 0.5}, nil
		}
		return Range{Min: min, Max: max}, nil
	}

	var err error
	if pr.xr, err = derive(AxisX, bounds.MinX, bounds.MaxX); err != nil {
		return nil, err
	}
	if pr.yr, err = derive(AxisY, bounds.MinY, bounds.MaxY); err != nil {
		return nil, err
	}

	sx := opts.Width / (pr.xr.Max - pr.xr.Min)
	sy := opts.Height / (pr.yr.Max - pr.yr.Min)
	if opts.Scale == ScaleUniform {
		s := min(sx, sy)
		sx, sy = s, s
	}
	pr.scaleX, pr.scaleY = sx, sy
	return pr, nil
}

// Project maps a scene-space point to canvas space. The second result
// reports whether the point lies inside the axis ranges.
func (pr *Projector) Project(p Point) (Point, bool) {
	v := p
	if pr.view != nil {
		v = pr.view.TransformPoint(p)
	}
	in := v.X >= pr.xr.Min && v.X <= pr.xr.Max &&
		v.Y >= pr.yr.Min && v.Y <= pr.yr.Max
	if pr.zr != nil {
		in = in && p.Z >= pr.zr.Min && p.Z <= pr.zr.Max
	}
	out := Point{
		X: (v.X - pr.xr.Min) * pr.scaleX,
		Y: (v.Y - pr.yr.Min) * pr.scaleY,
	}
	return out, in
}

// Unproject maps a canvas-space point back to the scene plane. It
// inverts the 2D linear map; for 3D figures the result is a point on
// the view plane, not the original scene point.
func (pr *Projector) Unproject(p Point) Point {
	return Point{
		X: p.X/pr.scaleX + pr.xr.Min,
		Y: p.Y/pr.scaleY + pr.yr.Min,
	}
}

// ProjectPath projects every point of a path, recording per-element
// out-of-bounds flags.
func (pr *Projector) ProjectPath(p *Path) *ProjectedGeometry {
	out := NewPath()
	flags := make([]bool, 0, p.Len())
	all := true

	projected := func(pt Point) (Point, bool) {
		return pr.Project(pt)
	}
	for e := range p.Elements() {
		elemIn := true
		switch e := e.(type) {
		case MoveTo:
			pt, in := projected(e.Point)
			elemIn = in
			out.MoveTo(pt)
		case LineTo:
			pt, in := projected(e.Point)
			elemIn = in
			out.LineTo(pt)
		case QuadTo:
			c, inC := projected(e.Control)
			pt, inP := projected(e.Point)
			elemIn = inC && inP
			out.QuadTo(c, pt)
		case CubicTo:
			c1, in1 := projected(e.Control1)
			c2, in2 := projected(e.Control2)
			pt, inP := projected(e.Point)
			elemIn = in1 && in2 && inP
			out.CubicTo(c1, c2, pt)
		case Close:
			out.Close()
		}
		flags = append(flags, !elemIn)
		all = all && elemIn
	}
	return &ProjectedGeometry{Path: out, Flags: flags, InBounds: all}
}

// renderPass scopes a projection cache to a single emission. The cache
// is keyed by object ID and pinned to the figure version captured at
// pass start: the same figure and projection config is never projected
// twice within one pass, and no state leaks across passes or survives
// figure mutation.
type renderPass struct {
	fig     *Figure
	proj    *Projector
	version uint64
	cache   map[ObjectID]*ProjectedGeometry
}

func newRenderPass(f *Figure, proj *Projector) *renderPass {
	return &renderPass{
		fig:     f,
		proj:    proj,
		version: f.Version(),
		cache:   make(map[ObjectID]*ProjectedGeometry),
	}
}

// projected returns the cached projection for obj, computing it on
// first use. A version mismatch means the figure was mutated during
// the pass; the stale cache is discarded rather than served.
func (rp *renderPass) projected(obj *Object) *ProjectedGeometry {
	if rp.fig.Version() != rp.version {
		rp.cache = make(map[ObjectID]*ProjectedGeometry)
		rp.version = rp.fig.Version()
	}
	if pg, ok := rp.cache[obj.id]; ok {
		Logger().Debug("projection cache hit", "object", uint64(obj.id))
		return pg
	}
	pg := rp.proj.ProjectPath(obj.path)
	rp.cache[obj.id] = pg
	return pg
}

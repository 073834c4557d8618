package fig

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
)

// Axis identifies a scene-space axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	numAxes
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", uint8(a))
}

// Range is a closed scene-space interval on one axis.
type Range struct {
	Min, Max float64
}

// ObjectID identifies an object within its figure. IDs are assigned by
// AddObject, never reused for the lifetime of the figure, and stable
// across removals of other objects.
type ObjectID uint64

// Object pairs one geometry with one style intent. Objects are created
// by Figure.AddObject and are immutable afterwards; the only permitted
// edits are removal and replace-and-reinsert, which keeps projection
// caches consistently invalidated.
type Object struct {
	id    ObjectID
	seq   uint64 // insertion sequence, drives default render order
	shape Shape
	path  *Path // owned copy of shape.ToPath()
	style StyleIntent
	group string
}

// ID returns the object's identifier.
func (o *Object) ID() ObjectID { return o.id }

// Shape returns the geometry the object was created with.
func (o *Object) Shape() Shape { return o.shape }

// Path returns a copy of the object's path geometry.
func (o *Object) Path() *Path { return o.path.Clone() }

// Style returns the object's style intent.
func (o *Object) Style() StyleIntent { return o.style }

// Group returns the object's group name, or "" if ungrouped.
func (o *Object) Group() string { return o.group }

// AddOption configures a single AddObject call.
type AddOption func(*addOptions)

type addOptions struct {
	group string
}

// InGroup attaches the object to a named group, making the group's
// style intent part of its resolution chain.
func InGroup(name string) AddOption {
	return func(o *addOptions) {
		o.group = name
	}
}

// Figure is the canonical scene container: an ordered sequence of
// objects, per-axis ranges, a figure-wide default style intent, named
// group intents, and an optional 3D view. Insertion order is
// semantically meaningful — it is the default render order, and no
// component reorders it except an explicit z-order request at emission.
//
// A Figure is single-writer while it is being built. Once construction
// is finished, concurrent render passes over it are safe.
type Figure struct {
	name         string
	objects      []*Object
	nextID       ObjectID
	nextSeq      uint64
	ranges       [numAxes]*Range
	defaultStyle StyleIntent
	groups       map[string]StyleIntent
	view         *Matrix3
	version      uint64
}

// NewFigure creates an empty figure. The figure gets a unique name
// (used by dialects that need document-wide identifiers, such as SVG
// clip paths); call SetName for a stable one.
func NewFigure() *Figure {
	return &Figure{
		name:   "fig-" + uuid.NewString()[:8],
		groups: make(map[string]StyleIntent),
	}
}

// Name returns the figure's name.
func (f *Figure) Name() string { return f.name }

// SetName overrides the generated figure name. Emission output embeds
// the name, so give figures stable names when byte-stable output across
// program runs matters.
func (f *Figure) SetName(name string) {
	f.name = name
	f.version++
}

// Len returns the number of objects in the figure.
func (f *Figure) Len() int { return len(f.objects) }

// Version returns the figure's modification counter. Any structural
// change increments it; render passes use it to scope their caches.
func (f *Figure) Version() uint64 { return f.version }

// AddObject appends an object pairing shape with style, assigns the
// next unique ID and insertion index, and returns the ID.
//
// The shape is validated by the geometry kernel; rejected shapes fail
// with ModelError{InvalidGeometry} wrapping the geometry error. A style
// intent carrying a validation error fails with that StyleError. In
// both cases the figure is left unchanged.
func (f *Figure) AddObject(shape Shape, style StyleIntent, opts ...AddOption) (ObjectID, error) {
	var ao addOptions
	for _, opt := range opts {
		opt(&ao)
	}
	return f.insert(shape, style, ao.group, nil)
}

// insert validates and appends an object. If reuse is non-nil the
// object keeps that ID and is inserted at reuseAt instead of appended;
// this backs ReplaceObject's replace-and-reinsert semantics.
func (f *Figure) insert(shape Shape, style StyleIntent, group string, reuse *replaceSlot) (ObjectID, error) {
	if shape == nil {
		return 0, &ModelError{Kind: InvalidGeometry, Err: &GeometryError{Kind: DegenerateShape, Detail: "nil shape"}}
	}
	if err := style.Err(); err != nil {
		return 0, err
	}
	if v, ok := shape.(validator); ok {
		if err := v.Validate(); err != nil {
			return 0, &ModelError{Kind: InvalidGeometry, Err: err}
		}
	}
	path := shape.ToPath()
	if err := ValidatePath(path); err != nil {
		return 0, &ModelError{Kind: InvalidGeometry, Err: err}
	}

	obj := &Object{
		shape: shape,
		path:  path.Clone(),
		style: style,
		group: group,
	}
	if reuse != nil {
		obj.id = reuse.id
		obj.seq = reuse.seq
		f.objects = append(f.objects, nil)
		copy(f.objects[reuse.at+1:], f.objects[reuse.at:])
		f.objects[reuse.at] = obj
	} else {
		obj.id = f.nextID
		f.nextID++
		obj.seq = f.nextSeq
		f.nextSeq++
		f.objects = append(f.objects, obj)
	}
	f.version++
	return obj.id, nil
}

type replaceSlot struct {
	id  ObjectID
	seq uint64
	at  int
}

// RemoveObject removes the object with the given ID. Removing an
// object never disturbs the relative order of the others.
func (f *Figure) RemoveObject(id ObjectID) error {
	for i, obj := range f.objects {
		if obj.id == id {
			f.objects = append(f.objects[:i], f.objects[i+1:]...)
			f.version++
			return nil
		}
	}
	return &ModelError{Kind: UnknownObject, ID: id}
}

// ReplaceObject swaps the geometry and style of an existing object,
// keeping its ID and position. Semantically it is remove-plus-add: the
// old object is discarded wholesale and the version counter bumps, so
// projection caches never see a half-mutated object.
func (f *Figure) ReplaceObject(id ObjectID, shape Shape, style StyleIntent) error {
	for i, obj := range f.objects {
		if obj.id == id {
			slot := &replaceSlot{id: obj.id, seq: obj.seq, at: i}
			group := obj.group
			f.objects = append(f.objects[:i], f.objects[i+1:]...)
			if _, err := f.insert(shape, style, group, slot); err != nil {
				// Put the original back; a failed replace must leave
				// the figure exactly as it was.
				f.objects = append(f.objects, nil)
				copy(f.objects[i+1:], f.objects[i:])
				f.objects[i] = obj
				return err
			}
			return nil
		}
	}
	return &ModelError{Kind: UnknownObject, ID: id}
}

// Clear removes every object. Axis ranges, styles and the view remain.
func (f *Figure) Clear() {
	f.objects = nil
	f.version++
}

// SetAxisRange sets the scene-space extent of one axis. Emission fails
// with ProjectionError{DegenerateAxis} if max == min, but the range is
// recorded as given so callers can fix it up incrementally.
func (f *Figure) SetAxisRange(axis Axis, min, max float64) error {
	if axis >= numAxes {
		return fmt.Errorf("fig: unknown axis %d", axis)
	}
	f.ranges[axis] = &Range{Min: min, Max: max}
	f.version++
	return nil
}

// AxisRange returns the configured range for an axis, or ok=false if
// the axis is unset (in which case projection derives the range from
// the figure's content bounds).
func (f *Figure) AxisRange(axis Axis) (Range, bool) {
	if axis >= numAxes || f.ranges[axis] == nil {
		return Range{}, false
	}
	return *f.ranges[axis], true
}

// SetDefaultStyle sets the figure-wide fallback style intent.
func (f *Figure) SetDefaultStyle(style StyleIntent) {
	f.defaultStyle = style
	f.version++
}

// SetGroupStyle sets the style intent shared by all objects added with
// InGroup(name).
func (f *Figure) SetGroupStyle(name string, style StyleIntent) {
	f.groups[name] = style
	f.version++
}

// SetView configures a 3D orthographic view from elevation and azimuth
// angles in degrees. Scene points are flattened through the view before
// the 2D canvas map.
func (f *Figure) SetView(elevation, azimuth float64) {
	m := ViewMatrix(elevation, azimuth)
	f.view = &m
	f.version++
}

// SetViewMatrix installs an arbitrary linear view transform in place of
// the elevation/azimuth orthographic one.
func (f *Figure) SetViewMatrix(m Matrix3) {
	f.view = &m
	f.version++
}

// View returns the view transform, or ok=false for a plain 2D figure.
func (f *Figure) View() (Matrix3, bool) {
	if f.view == nil {
		return Matrix3{}, false
	}
	return *f.view, true
}

// Objects returns a restartable iterator over the figure's objects in
// insertion order. The iterator snapshots the object list when called,
// so it reflects the figure at iteration start and never observes
// mutations made mid-iteration.
func (f *Figure) Objects() iter.Seq[*Object] {
	snapshot := make([]*Object, len(f.objects))
	copy(snapshot, f.objects)
	return func(yield func(*Object) bool) {
		for _, obj := range snapshot {
			if !yield(obj) {
				return
			}
		}
	}
}

// Object returns the object with the given ID, or ok=false.
func (f *Figure) Object(id ObjectID) (*Object, bool) {
	for _, obj := range f.objects {
		if obj.id == id {
			return obj, true
		}
	}
	return nil, false
}

// Bounds returns the union of all object bounds in scene space,
// after the view transform for 3D figures.
func (f *Figure) Bounds() Rect {
	r := EmptyRect()
	for _, obj := range f.objects {
		p := obj.path
		if f.view != nil {
			p = p.Transform(f.view.TransformPoint)
		}
		r = r.Union(p.Bounds())
	}
	return r
}

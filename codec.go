package fig

import (
	"errors"
	"iter"
	"sort"
	"sync"
)

// ZOrderMode selects how emission orders objects.
type ZOrderMode uint8

const (
	// ZOrderInsertion renders objects in insertion order, ignoring
	// explicit z values. This is the default.
	ZOrderInsertion ZOrderMode = iota

	// ZOrderExplicit sorts ascending by the z style option; objects
	// without one count as z 0, and ties keep insertion order.
	ZOrderExplicit
)

// EmitOptions is the full emission configuration. Zero values are not
// meaningful; start from DefaultEmitOptions (which Emit applies for
// you) and adjust via EmitOption functions.
type EmitOptions struct {
	// Scale selects uniform or stretch canvas mapping.
	Scale ScaleMode

	// Precision is the number of decimals printed for coordinates and
	// other numeric output. Fixed precision keeps output stable and
	// diff-friendly across runs.
	Precision int

	// ClipOutOfBounds makes dialects clip geometry to the canvas
	// instead of drawing outside it.
	ClipOutOfBounds bool

	// ZOrder selects the object ordering policy.
	ZOrder ZOrderMode

	// Lenient downgrades UnsupportedStyleForDialect failures to a
	// silent drop (logged at debug level).
	Lenient bool

	// Width and Height are the canvas extents in output units.
	Width, Height float64
}

// DefaultEmitOptions returns the documented defaults: uniform scaling
// onto a unit square, 4 decimals, no clipping, insertion order, strict
// style checking.
func DefaultEmitOptions() EmitOptions {
	return EmitOptions{
		Scale:     ScaleUniform,
		Precision: 4,
		ZOrder:    ZOrderInsertion,
		Width:     1,
		Height:    1,
	}
}

// EmitOption adjusts emission configuration.
type EmitOption func(*EmitOptions)

// WithScaleMode selects uniform or stretch scaling.
func WithScaleMode(m ScaleMode) EmitOption {
	return func(o *EmitOptions) { o.Scale = m }
}

// WithPrecision sets the number of printed decimals. Negative values
// are clamped to 0.
func WithPrecision(digits int) EmitOption {
	return func(o *EmitOptions) {
		if digits < 0 {
			digits = 0
		}
		o.Precision = digits
	}
}

// WithClipping makes dialects clip geometry to the canvas.
func WithClipping(on bool) EmitOption {
	return func(o *EmitOptions) { o.ClipOutOfBounds = on }
}

// WithZOrderMode selects the object ordering policy.
func WithZOrderMode(m ZOrderMode) EmitOption {
	return func(o *EmitOptions) { o.ZOrder = m }
}

// WithLenient downgrades unsupported-style failures to silent drops.
func WithLenient(on bool) EmitOption {
	return func(o *EmitOptions) { o.Lenient = on }
}

// WithCanvasSize sets the canvas extents in output units.
func WithCanvasSize(width, height float64) EmitOption {
	return func(o *EmitOptions) {
		o.Width = width
		o.Height = height
	}
}

// Codec serializes figures into one output dialect. Implementations
// live in their own packages and register themselves via RegisterCodec.
//
// Emit returns a lazy sequence of text fragments whose concatenation is
// the complete, syntactically valid document body for the dialect. All
// validation, resolution and projection happens before the first
// fragment is produced: either Emit fails with no output at all, or the
// returned sequence cannot fail. Abandoning the sequence early leaves
// no dangling state.
type Codec interface {
	// Dialect returns the dialect tag, e.g. "tikz" or "svg".
	Dialect() string

	// Emit serializes the figure.
	Emit(f *Figure, opts EmitOptions) (iter.Seq[string], error)
}

var (
	codecMu sync.RWMutex
	codecs  = make(map[string]Codec)
)

// RegisterCodec registers a dialect codec. Typically called from the
// init function of a dialect package, so importing the package makes
// the dialect available:
//
//	import _ "github.com/tikzpaint/fig/tikz"
//
// Registering a second codec for the same dialect replaces the first.
func RegisterCodec(c Codec) error {
	if c == nil {
		return errors.New("fig: codec must not be nil")
	}
	codecMu.Lock()
	codecs[c.Dialect()] = c
	codecMu.Unlock()
	propagateLogger(c, Logger())
	Logger().Info("codec registered", "dialect", c.Dialect())
	return nil
}

// LookupCodec returns the codec registered for a dialect tag.
func LookupCodec(dialect string) (Codec, bool) {
	codecMu.RLock()
	c, ok := codecs[dialect]
	codecMu.RUnlock()
	return c, ok
}

// Dialects returns the registered dialect tags, sorted.
func Dialects() []string {
	codecMu.RLock()
	tags := make([]string, 0, len(codecs))
	for tag := range codecs {
		tags = append(tags, tag)
	}
	codecMu.RUnlock()
	sort.Strings(tags)
	return tags
}

// Emit serializes a figure in the named dialect. See Codec.Emit for
// the failure and laziness contract.
func Emit(f *Figure, dialect string, opts ...EmitOption) (iter.Seq[string], error) {
	c, ok := LookupCodec(dialect)
	if !ok {
		return nil, &CodecError{Kind: UnknownDialect, Dialect: dialect}
	}
	eo := DefaultEmitOptions()
	for _, opt := range opts {
		opt(&eo)
	}
	return c.Emit(f, eo)
}

// RenderItem is one fully prepared object: resolved style plus
// projected geometry, in final render order.
type RenderItem struct {
	Object   *Object
	Style    ResolvedStyle
	Geometry *ProjectedGeometry
}

// Plan prepares a figure for emission: it builds the projector,
// resolves every object's style, projects every object's geometry
// through the pass-scoped cache, and orders the result per the z-order
// mode. Codecs call Plan first so that every input error surfaces
// before they produce a single fragment.
func Plan(f *Figure, opts EmitOptions) ([]RenderItem, *Projector, error) {
	proj, err := NewProjector(f, opts)
	if err != nil {
		return nil, nil, err
	}
	pass := newRenderPass(f, proj)
	resolver := NewResolver()

	var items []RenderItem
	for obj := range f.Objects() {
		items = append(items, RenderItem{
			Object:   obj,
			Style:    resolver.Resolve(f, obj),
			Geometry: pass.projected(obj),
		})
	}
	sortItems(items, opts.ZOrder)
	return items, proj, nil
}

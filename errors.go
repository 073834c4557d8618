package fig

import "fmt"

// GeometryErrorKind classifies geometry kernel failures.
type GeometryErrorKind uint8

const (
	// DegenerateShape indicates a shape without enough well-formed
	// geometry to draw, such as a line with coincident endpoints or a
	// path with no elements.
	DegenerateShape GeometryErrorKind = iota
)

func (k GeometryErrorKind) String() string {
	switch k {
	case DegenerateShape:
		return "degenerate shape"
	}
	return "unknown"
}

// GeometryError reports a malformed shape or path.
type GeometryError struct {
	Kind   GeometryErrorKind
	Detail string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("fig: geometry: %s: %s", e.Kind, e.Detail)
}

// ProjectionErrorKind classifies projection failures.
type ProjectionErrorKind uint8

const (
	// DegenerateAxis indicates an axis range with max == min, which
	// cannot be mapped onto the canvas.
	DegenerateAxis ProjectionErrorKind = iota
)

func (k ProjectionErrorKind) String() string {
	switch k {
	case DegenerateAxis:
		return "degenerate axis"
	}
	return "unknown"
}

// ProjectionError reports an unusable projection configuration.
type ProjectionError struct {
	Kind ProjectionErrorKind
	Axis Axis
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("fig: projection: %s: axis %s has zero span", e.Kind, e.Axis)
}

// StyleErrorKind classifies style validation failures.
type StyleErrorKind uint8

const (
	// UnrecognizedOption indicates a style option name outside the
	// closed option schema.
	UnrecognizedOption StyleErrorKind = iota

	// InvalidValue indicates a recognized option with a value that
	// cannot be interpreted (unknown color name, negative line width).
	InvalidValue
)

func (k StyleErrorKind) String() string {
	switch k {
	case UnrecognizedOption:
		return "unrecognized option"
	case InvalidValue:
		return "invalid value"
	}
	return "unknown"
}

// StyleError reports a rejected style option.
type StyleError struct {
	Kind   StyleErrorKind
	Option string
	Detail string
}

func (e *StyleError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("fig: style: %s: %q", e.Kind, e.Option)
	}
	return fmt.Sprintf("fig: style: %s: %q: %s", e.Kind, e.Option, e.Detail)
}

// ModelErrorKind classifies figure model failures.
type ModelErrorKind uint8

const (
	// InvalidGeometry indicates the geometry kernel rejected a shape
	// handed to AddObject.
	InvalidGeometry ModelErrorKind = iota

	// UnknownObject indicates an object ID not present in the figure.
	UnknownObject
)

func (k ModelErrorKind) String() string {
	switch k {
	case InvalidGeometry:
		return "invalid geometry"
	case UnknownObject:
		return "unknown object"
	}
	return "unknown"
}

// ModelError reports a rejected figure model operation.
type ModelError struct {
	Kind ModelErrorKind
	ID   ObjectID
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fig: model: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("fig: model: %s: object %d", e.Kind, e.ID)
}

func (e *ModelError) Unwrap() error { return e.Err }

// CodecErrorKind classifies emission failures.
type CodecErrorKind uint8

const (
	// UnsupportedStyleForDialect indicates a style option that the
	// target dialect cannot express and that is not declared
	// dialect-optional.
	UnsupportedStyleForDialect CodecErrorKind = iota

	// UnknownDialect indicates an Emit call naming a dialect with no
	// registered codec.
	UnknownDialect
)

func (k CodecErrorKind) String() string {
	switch k {
	case UnsupportedStyleForDialect:
		return "unsupported style for dialect"
	case UnknownDialect:
		return "unknown dialect"
	}
	return "unknown"
}

// CodecError reports a failed emission.
type CodecError struct {
	Kind    CodecErrorKind
	Dialect string
	Option  string
	ID      ObjectID
}

func (e *CodecError) Error() string {
	switch e.Kind {
	case UnknownDialect:
		return fmt.Sprintf("fig: codec: %s: %q", e.Kind, e.Dialect)
	default:
		return fmt.Sprintf("fig: codec: %s: option %q on object %d (dialect %s)",
			e.Kind, e.Option, e.ID, e.Dialect)
	}
}

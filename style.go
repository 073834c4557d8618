package fig

import (
	"fmt"
	"sort"
	"strings"
)

// Option identifies a recognized style option. The schema is closed:
// option names outside this set are rejected at construction time with
// a StyleError, never silently dropped.
type Option uint8

const (
	// OptColor is the stroke color ("color").
	OptColor Option = iota
	// OptFill is the fill color, or "none" ("fill").
	OptFill
	// OptLineWidth is the stroke width in points ("line_width").
	OptLineWidth
	// OptOpacity is the stroke opacity in [0,1] ("opacity").
	OptOpacity
	// OptFillOpacity is the fill opacity in [0,1] ("fill_opacity").
	OptFillOpacity
	// OptDash is the dash pattern ("dash").
	OptDash
	// OptLineCap is the line cap shape ("line_cap").
	OptLineCap
	// OptLineJoin is the line join shape ("line_join").
	OptLineJoin
	// OptLabel is a text annotation attached to the object ("label").
	OptLabel
	// OptZ is the explicit z-order ("z").
	OptZ
	// OptDouble requests TikZ double-stroking ("double").
	// Dialects without an equivalent reject it unless emitting in
	// lenient mode.
	OptDouble
	// OptMarkerSize is the on-canvas dot radius in points
	// ("marker_size"). Dialect-optional: dialects that cannot apply it
	// drop it silently.
	OptMarkerSize

	numOptions
)

var optionNames = [numOptions]string{
	OptColor:       "color",
	OptFill:        "fill",
	OptLineWidth:   "line_width",
	OptOpacity:     "opacity",
	OptFillOpacity: "fill_opacity",
	OptDash:        "dash",
	OptLineCap:     "line_cap",
	OptLineJoin:    "line_join",
	OptLabel:       "label",
	OptZ:           "z",
	OptDouble:      "double",
	OptMarkerSize:  "marker_size",
}

func (o Option) String() string {
	if int(o) < len(optionNames) {
		return optionNames[o]
	}
	return fmt.Sprintf("option(%d)", uint8(o))
}

// DialectOptional reports whether a dialect may silently drop the
// option when it has no equivalent, instead of failing the emission.
func (o Option) DialectOptional() bool {
	return o == OptMarkerSize
}

var optionByName = func() map[string]Option {
	m := make(map[string]Option, numOptions)
	for o, name := range optionNames {
		m[name] = Option(o)
	}
	return m
}()

// optionSet is a bitmask over Option values.
type optionSet uint16

func (s optionSet) has(o Option) bool { return s&(1<<o) != 0 }
func (s *optionSet) add(o Option)     { *s |= 1 << o }

// Dash enumerates the recognized dash patterns.
type Dash uint8

const (
	DashSolid Dash = iota
	DashDashed
	DashDotted
)

func (d Dash) String() string {
	switch d {
	case DashDashed:
		return "dashed"
	case DashDotted:
		return "dotted"
	}
	return "solid"
}

// LineCap enumerates stroke endpoint shapes.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return "butt"
}

// LineJoin enumerates stroke join shapes.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	}
	return "miter"
}

// fillValue is the internal representation of the fill option: a color
// or the explicit absence of one.
type fillValue struct {
	color Color
	none  bool
}

// StyleIntent is a sparse set of style options. Unset options mean
// "inherit from the next level of the resolution chain". The zero value
// inherits everything.
//
// StyleIntent has value semantics: every setter returns a new intent
// and never mutates the receiver, so intents are safe to share between
// goroutines and reuse across objects.
type StyleIntent struct {
	values map[Option]any
	err    error
}

// NewStyle returns an empty style intent.
func NewStyle() StyleIntent {
	return StyleIntent{}
}

// with returns a copy of the intent with one more option set.
func (s StyleIntent) with(o Option, v any) StyleIntent {
	values := make(map[Option]any, len(s.values)+1)
	for k, val := range s.values {
		values[k] = val
	}
	values[o] = v
	return StyleIntent{values: values, err: s.err}
}

// fail returns a copy of the intent carrying err. The first error
// sticks; it surfaces when the intent is handed to AddObject.
func (s StyleIntent) fail(err error) StyleIntent {
	if s.err == nil {
		s.err = err
	}
	return s
}

// Err returns the first validation error recorded by a setter, or nil.
func (s StyleIntent) Err() error { return s.err }

// IsSet reports whether the option is set in this intent.
func (s StyleIntent) IsSet(o Option) bool {
	_, ok := s.values[o]
	return ok
}

// Color sets the stroke color by name or hex value.
func (s StyleIntent) Color(name string) StyleIntent {
	c, err := ParseColor(name)
	if err != nil {
		return s.fail(&StyleError{Kind: InvalidValue, Option: "color", Detail: err.Error()})
	}
	return s.with(OptColor, c)
}

// Fill sets the fill color by name or hex value. "none" disables
// filling explicitly, overriding any inherited fill.
func (s StyleIntent) Fill(name string) StyleIntent {
	if strings.EqualFold(strings.TrimSpace(name), "none") {
		return s.with(OptFill, fillValue{none: true})
	}
	c, err := ParseColor(name)
	if err != nil {
		return s.fail(&StyleError{Kind: InvalidValue, Option: "fill", Detail: err.Error()})
	}
	return s.with(OptFill, fillValue{color: c})
}

// LineWidth sets the stroke width in points. Zero suppresses stroking.
func (s StyleIntent) LineWidth(w float64) StyleIntent {
	if w < 0 {
		return s.fail(&StyleError{Kind: InvalidValue, Option: "line_width", Detail: "must be >= 0"})
	}
	return s.with(OptLineWidth, w)
}

// Opacity sets the stroke opacity in [0,1].
func (s StyleIntent) Opacity(v float64) StyleIntent {
	if v < 0 || v > 1 {
		return s.fail(&StyleError{Kind: InvalidValue, Option: "opacity", Detail: "must be in [0,1]"})
	}
	return s.with(OptOpacity, v)
}

// FillOpacity sets the fill opacity in [0,1].
func (s StyleIntent) FillOpacity(v float64) StyleIntent {
	if v < 0 || v > 1 {
		return s.fail(&StyleError{Kind: InvalidValue, Option: "fill_opacity", Detail: "must be in [0,1]"})
	}
	return s.with(OptFillOpacity, v)
}

// Dash sets the dash pattern.
func (s StyleIntent) Dash(d Dash) StyleIntent {
	return s.with(OptDash, d)
}

// LineCap sets the stroke endpoint shape.
func (s StyleIntent) LineCap(c LineCap) StyleIntent {
	return s.with(OptLineCap, c)
}

// LineJoin sets the stroke join shape.
func (s StyleIntent) LineJoin(j LineJoin) StyleIntent {
	return s.with(OptLineJoin, j)
}

// Label attaches a text annotation. Dialects escape it as needed.
func (s StyleIntent) Label(text string) StyleIntent {
	return s.with(OptLabel, text)
}

// Z sets an explicit z-order. Objects with explicit z-orders sort
// ascending; ties and objects without one keep insertion order.
func (s StyleIntent) Z(z int) StyleIntent {
	return s.with(OptZ, z)
}

// Double requests TikZ double-stroking.
func (s StyleIntent) Double(on bool) StyleIntent {
	return s.with(OptDouble, on)
}

// MarkerSize sets the on-canvas dot radius in points.
func (s StyleIntent) MarkerSize(pt float64) StyleIntent {
	if pt <= 0 {
		return s.fail(&StyleError{Kind: InvalidValue, Option: "marker_size", Detail: "must be > 0"})
	}
	return s.with(OptMarkerSize, pt)
}

// Set assigns an option by name, for callers driven by dynamic input
// (config files, command lines). Unknown names fail with
// StyleError{UnrecognizedOption}; invalid values fail with
// StyleError{InvalidValue}.
func (s StyleIntent) Set(name string, value any) (StyleIntent, error) {
	o, ok := optionByName[name]
	if !ok {
		return s, &StyleError{Kind: UnrecognizedOption, Option: name}
	}
	out := s
	switch o {
	case OptColor:
		v, err := asString(o, value)
		if err != nil {
			return s, err
		}
		out = s.Color(v)
	case OptFill:
		v, err := asString(o, value)
		if err != nil {
			return s, err
		}
		out = s.Fill(v)
	case OptLineWidth:
		v, err := asFloat(o, value)
		if err != nil {
			return s, err
		}
		out = s.LineWidth(v)
	case OptOpacity:
		v, err := asFloat(o, value)
		if err != nil {
			return s, err
		}
		out = s.Opacity(v)
	case OptFillOpacity:
		v, err := asFloat(o, value)
		if err != nil {
			return s, err
		}
		out = s.FillOpacity(v)
	case OptDash:
		v, err := asString(o, value)
		if err != nil {
			return s, err
		}
		switch v {
		case "solid":
			out = s.Dash(DashSolid)
		case "dashed":
			out = s.Dash(DashDashed)
		case "dotted":
			out = s.Dash(DashDotted)
		default:
			return s, &StyleError{Kind: InvalidValue, Option: "dash", Detail: fmt.Sprintf("unknown pattern %q", v)}
		}
	case OptLineCap:
		v, err := asString(o, value)
		if err != nil {
			return s, err
		}
		switch v {
		case "butt":
			out = s.LineCap(LineCapButt)
		case "round":
			out = s.LineCap(LineCapRound)
		case "square":
			out = s.LineCap(LineCapSquare)
		default:
			return s, &StyleError{Kind: InvalidValue, Option: "line_cap", Detail: fmt.Sprintf("unknown cap %q", v)}
		}
	case OptLineJoin:
		v, err := asString(o, value)
		if err != nil {
			return s, err
		}
		switch v {
		case "miter":
			out = s.LineJoin(LineJoinMiter)
		case "round":
			out = s.LineJoin(LineJoinRound)
		case "bevel":
			out = s.LineJoin(LineJoinBevel)
		default:
			return s, &StyleError{Kind: InvalidValue, Option: "line_join", Detail: fmt.Sprintf("unknown join %q", v)}
		}
	case OptLabel:
		v, err := asString(o, value)
		if err != nil {
			return s, err
		}
		out = s.Label(v)
	case OptZ:
		switch v := value.(type) {
		case int:
			out = s.Z(v)
		case float64:
			out = s.Z(int(v))
		default:
			return s, &StyleError{Kind: InvalidValue, Option: "z", Detail: "want int"}
		}
	case OptDouble:
		v, ok := value.(bool)
		if !ok {
			return s, &StyleError{Kind: InvalidValue, Option: "double", Detail: "want bool"}
		}
		out = s.Double(v)
	case OptMarkerSize:
		v, err := asFloat(o, value)
		if err != nil {
			return s, err
		}
		out = s.MarkerSize(v)
	}
	if out.err != nil && s.err == nil {
		return s, out.err
	}
	return out, nil
}

// StyleFrom builds an intent from an option-name map. Keys are visited
// in sorted order so validation errors are deterministic.
func StyleFrom(options map[string]any) (StyleIntent, error) {
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)

	s := NewStyle()
	for _, name := range names {
		next, err := s.Set(name, options[name])
		if err != nil {
			return StyleIntent{}, err
		}
		s = next
	}
	return s, nil
}

func asString(o Option, value any) (string, error) {
	v, ok := value.(string)
	if !ok {
		return "", &StyleError{Kind: InvalidValue, Option: o.String(), Detail: "want string"}
	}
	return v, nil
}

func asFloat(o Option, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, &StyleError{Kind: InvalidValue, Option: o.String(), Detail: "want number"}
}

// ResolvedStyle is a dense style: every recognized option has a
// concrete value after resolution. Resolved styles are ephemeral,
// recomputed per render pass and never mutated in place.
type ResolvedStyle struct {
	Color       Color
	Fill        Color
	FillNone    bool
	LineWidth   float64
	Opacity     float64
	FillOpacity float64
	Dash        Dash
	Cap         LineCap
	Join        LineJoin
	Label       string
	Z           int
	HasZ        bool
	Double      bool
	MarkerSize  float64

	set optionSet
}

// Explicit reports whether the option was set anywhere in the
// resolution chain, as opposed to coming from the built-in defaults.
// Dialects use this to reject options they cannot express without
// punishing figures that never asked for them.
func (rs ResolvedStyle) Explicit(o Option) bool {
	return rs.set.has(o)
}

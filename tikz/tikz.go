// Package tikz emits figures as TikZ source. Importing the package
// registers the "tikz" dialect:
//
//	import _ "github.com/tikzpaint/fig/tikz"
//
// The emitted fragments form the body of a tikzpicture environment
// (the \begin{tikzpicture} wrapper is the document packager's job).
// Colors outside the TikZ base palette are introduced with \definecolor
// statements ahead of the drawing statements, deduplicated and sorted.
package tikz

import (
	"fmt"
	"iter"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/tikzpaint/fig"
	"github.com/tikzpaint/fig/internal/floatfmt"
)

func init() {
	fig.RegisterCodec(New())
}

// Codec emits the "tikz" dialect.
type Codec struct {
	logger atomic.Pointer[slog.Logger]
}

// New creates a TikZ codec. Most callers never need this directly; the
// package registers one on import.
func New() *Codec {
	return &Codec{}
}

// Dialect returns "tikz".
func (c *Codec) Dialect() string { return "tikz" }

// SetLogger lets the fig registry propagate its logger.
func (c *Codec) SetLogger(l *slog.Logger) {
	c.logger.Store(l)
}

func (c *Codec) log() *slog.Logger {
	if l := c.logger.Load(); l != nil {
		return l
	}
	return fig.Logger()
}

// Emit serializes the figure. Every object is resolved and projected
// before the first fragment is produced; the returned sequence is lazy
// and cannot fail.
func (c *Codec) Emit(f *fig.Figure, opts fig.EmitOptions) (iter.Seq[string], error) {
	items, _, err := fig.Plan(f, opts)
	if err != nil {
		return nil, err
	}
	c.log().Debug("planned tikz emission", "figure", f.Name(), "objects", len(items))

	// Colors outside the base palette need \definecolor statements.
	// Collect them up front: dedup by generated name, sort the block
	// case-insensitively so output is stable regardless of object order.
	defs := map[string]string{}
	for _, it := range items {
		collectColorDef(defs, it.Style.Color)
		if !it.Style.FillNone {
			collectColorDef(defs, it.Style.Fill)
		}
	}
	preamble := make([]string, 0, len(defs))
	for _, line := range defs {
		preamble = append(preamble, line)
	}
	sort.Slice(preamble, func(i, j int) bool {
		return strings.ToLower(preamble[i]) < strings.ToLower(preamble[j])
	})

	clip := opts.ClipOutOfBounds

	return func(yield func(string) bool) {
		for _, line := range preamble {
			if !yield(line) {
				return
			}
		}
		if clip {
			if !yield("\\begin{scope}\n") {
				return
			}
			if !yield(fmt.Sprintf("\\clip (0,0) rectangle (%s);\n",
				floatfmt.Pair(opts.Width, opts.Height, opts.Precision, ","))) {
				return
			}
		}
		for _, it := range items {
			for _, frag := range c.object(it, opts) {
				if !yield(frag) {
					return
				}
			}
		}
		if clip {
			if !yield("\\end{scope}\n") {
				return
			}
		}
	}, nil
}

// object formats the statements for one render item.
func (c *Codec) object(it fig.RenderItem, opts fig.EmitOptions) []string {
	st := it.Style
	var frags []string

	if _, isDot := it.Object.Shape().(fig.Dot); isDot {
		frags = append(frags, c.dot(it, opts))
	} else {
		var b strings.Builder
		b.WriteString(command(st))
		b.WriteString(optionList(st))
		b.WriteString(" ")
		writePath(&b, it.Geometry.Path, opts.Precision)
		b.WriteString(";\n")
		frags = append(frags, b.String())
	}

	if st.Explicit(fig.OptLabel) && st.Label != "" {
		frags = append(frags, c.label(it, opts))
	}
	return frags
}

// dot draws a point marker as a filled circle of the style's marker
// size, which is an on-canvas length, not scene geometry.
func (c *Codec) dot(it fig.RenderItem, opts fig.EmitOptions) string {
	at := pathStart(it.Geometry.Path)
	return fmt.Sprintf("\\filldraw[%s] (%s) circle (%spt);\n",
		"color="+colorRef(it.Style.Color)+", fill="+colorRef(it.Style.Color),
		floatfmt.Pair(at.X, at.Y, opts.Precision, ","),
		num(it.Style.MarkerSize))
}

// label attaches the text annotation as a node at the center of the
// projected geometry.
func (c *Codec) label(it fig.RenderItem, opts fig.EmitOptions) string {
	b := it.Geometry.Path.Bounds()
	cx := (b.MinX + b.MaxX) / 2
	cy := (b.MinY + b.MaxY) / 2
	return fmt.Sprintf("\\node at (%s) {%s};\n",
		floatfmt.Pair(cx, cy, opts.Precision, ","),
		EscapeText(it.Style.Label))
}

// command selects the drawing command from the resolved fill and
// stroke: \draw for stroke only, \fill for fill only, \filldraw for
// both.
func command(st fig.ResolvedStyle) string {
	switch {
	case st.FillNone:
		return "\\draw"
	case st.LineWidth <= 0:
		return "\\fill"
	default:
		return "\\filldraw"
	}
}

// optionList renders the TikZ option brackets in a fixed key order so
// identical styles always serialize identically.
func optionList(st fig.ResolvedStyle) string {
	opts := []string{"color=" + colorRef(st.Color)}
	if !st.FillNone {
		opts = append(opts, "fill="+colorRef(st.Fill))
	}
	opts = append(opts, "line width="+num(st.LineWidth)+"pt")
	if st.Opacity != 1 {
		opts = append(opts, "draw opacity="+num(st.Opacity))
	}
	if !st.FillNone && st.FillOpacity != 1 {
		opts = append(opts, "fill opacity="+num(st.FillOpacity))
	}
	switch st.Dash {
	case fig.DashDashed:
		opts = append(opts, "dashed")
	case fig.DashDotted:
		opts = append(opts, "dotted")
	}
	if st.Cap != fig.LineCapButt {
		opts = append(opts, "line cap="+st.Cap.String())
	}
	if st.Join != fig.LineJoinMiter {
		opts = append(opts, "line join="+st.Join.String())
	}
	if st.Double {
		opts = append(opts, "double")
	}
	return "[" + strings.Join(opts, ", ") + "]"
}

// writePath renders projected path elements as TikZ path operations.
// Quadratic curves are elevated to cubics, since TikZ's ".. controls"
// form is cubic.
func writePath(b *strings.Builder, p *fig.Path, prec int) {
	coord := func(pt fig.Point) string {
		return "(" + floatfmt.Pair(pt.X, pt.Y, prec, ",") + ")"
	}
	first := true
	var cur fig.Point
	for e := range p.Elements() {
		switch e := e.(type) {
		case fig.MoveTo:
			if !first {
				b.WriteString(" ")
			}
			b.WriteString(coord(e.Point))
			cur = e.Point
		case fig.LineTo:
			b.WriteString(" -- ")
			b.WriteString(coord(e.Point))
			cur = e.Point
		case fig.QuadTo:
			c1 := cur.Lerp(e.Control, 2.0/3.0)
			c2 := e.Point.Lerp(e.Control, 2.0/3.0)
			fmt.Fprintf(b, " .. controls %s and %s .. %s", coord(c1), coord(c2), coord(e.Point))
			cur = e.Point
		case fig.CubicTo:
			fmt.Fprintf(b, " .. controls %s and %s .. %s", coord(e.Control1), coord(e.Control2), coord(e.Point))
			cur = e.Point
		case fig.Close:
			b.WriteString(" -- cycle")
		}
		first = false
	}
}

// colorRef returns the TikZ reference for a color: the base-palette
// name when it has one, otherwise the name its \definecolor statement
// introduces.
func colorRef(c fig.Color) string {
	if name, ok := fig.TikZName(c); ok {
		return name
	}
	return defColorName(c)
}

func defColorName(c fig.Color) string {
	return fmt.Sprintf("figcolor%02X%02X%02X", c.R, c.G, c.B)
}

// collectColorDef records the \definecolor statement for a non-palette
// color.
func collectColorDef(defs map[string]string, c fig.Color) {
	if _, ok := fig.TikZName(c); ok {
		return
	}
	name := defColorName(c)
	defs[name] = fmt.Sprintf("\\definecolor{%s}{RGB}{%d,%d,%d}\n", name, c.R, c.G, c.B)
}

// num formats style scalars (widths, opacities) with minimal digits.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func pathStart(p *fig.Path) fig.Point {
	for e := range p.Elements() {
		if m, ok := e.(fig.MoveTo); ok {
			return m.Point
		}
	}
	return fig.Point{}
}

// texEscapes maps TeX special characters to safe replacements.
var texEscaper = strings.NewReplacer(
	"\\", "\\textbackslash{}",
	"{", "\\{",
	"}", "\\}",
	"$", "\\$",
	"&", "\\&",
	"#", "\\#",
	"%", "\\%",
	"_", "\\_",
	"^", "\\textasciicircum{}",
	"~", "\\textasciitilde{}",
)

// EscapeText escapes TeX special characters so arbitrary label text
// cannot break the emitted source.
func EscapeText(s string) string {
	return texEscaper.Replace(s)
}

// Package svg emits figures as SVG markup. Importing the package
// registers the "svg" dialect:
//
//	import _ "github.com/tikzpaint/fig/svg"
//
// The emitted fragments form a <g> group element holding one child per
// figure object; wrapping the group in an <svg> root with a viewBox is
// the document packager's job. The group id derives from the figure
// name, so several figures can share one document without colliding.
//
// SVG's y axis grows downward; the codec flips projected y coordinates
// so figures keep the mathematical orientation the scene uses.
package svg

import (
	"fmt"
	"iter"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/tikzpaint/fig"
	"github.com/tikzpaint/fig/internal/floatfmt"
)

func init() {
	fig.RegisterCodec(New())
}

// Codec emits the "svg" dialect.
type Codec struct {
	logger atomic.Pointer[slog.Logger]
}

// New creates an SVG codec. Most callers never need this directly; the
// package registers one on import.
func New() *Codec {
	return &Codec{}
}

// Dialect returns "svg".
func (c *Codec) Dialect() string { return "svg" }

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

// Emit serializes the figure. Every object is resolved, projected and
// checked for dialect support before the first fragment is produced;
// the returned sequence is lazy and cannot fail.
func (c *Codec) Emit(f *fig.Figure, opts fig.EmitOptions) (iter.Seq[string], error) {
	items, _, err := fig.Plan(f, opts)
	if err != nil {
		return nil, err
	}

	// SVG has no double-stroke equivalent. Strict mode fails the whole
	// emission before any output; lenient mode drops the option.
	for _, it := range items {
		if it.Style.Explicit(fig.OptDouble) && it.Style.Double {
			if !opts.Lenient {
				return nil, &fig.CodecError{
					Kind:    fig.UnsupportedStyleForDialect,
					Dialect: "svg",
					Option:  "double",
					ID:      it.Object.ID(),
				}
			}
			c.log().Debug("lenient mode: dropping unsupported option",
				"dialect", "svg", "option", "double", "object", uint64(it.Object.ID()))
		}
	}
	c.log().Debug("planned svg emission", "figure", f.Name(), "objects", len(items))

	return func(yield func(string) bool) {
		if opts.ClipOutOfBounds {
			clipID := EscapeAttr(f.Name()) + "-clip"
			if !yield(fmt.Sprintf(
				"<defs><clipPath id=%q><rect x=\"0\" y=\"0\" width=%q height=%q/></clipPath></defs>\n",
				clipID,
				floatfmt.Format(opts.Width, opts.Precision),
				floatfmt.Format(opts.Height, opts.Precision))) {
				return
			}
			if !yield(fmt.Sprintf("<g id=%q clip-path=\"url(#%s)\">\n",
				EscapeAttr(f.Name()), clipID)) {
				return
			}
		} else {
			if !yield(fmt.Sprintf("<g id=%q>\n", EscapeAttr(f.Name()))) {
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
		yield("</g>\n")
	}, nil
}

// object formats the elements for one render item.
func (c *Codec) object(it fig.RenderItem, opts fig.EmitOptions) []string {
	var frags []string
	if _, isDot := it.Object.Shape().(fig.Dot); isDot {
		frags = append(frags, c.dot(it, opts))
	} else {
		var b strings.Builder
		b.WriteString(`<path d="`)
		writePathData(&b, it.Geometry.Path, opts)
		b.WriteString(`"`)
		b.WriteString(presentation(it.Style))
		b.WriteString("/>\n")
		frags = append(frags, b.String())
	}
	if it.Style.Explicit(fig.OptLabel) && it.Style.Label != "" {
		frags = append(frags, c.label(it, opts))
	}
	return frags
}

// dot draws a point marker as a filled circle of the style's marker
// size.
func (c *Codec) dot(it fig.RenderItem, opts fig.EmitOptions) string {
	at := pathStart(it.Geometry.Path)
	return fmt.Sprintf("<circle cx=%q cy=%q r=%q fill=%q%s/>\n",
		floatfmt.Format(at.X, opts.Precision),
		floatfmt.Format(opts.Height-at.Y, opts.Precision),
		num(it.Style.MarkerSize),
		it.Style.Color.Hex(),
		opacityAttr("fill-opacity", it.Style.Opacity))
}

// label renders the text annotation centered on the projected bounds.
func (c *Codec) label(it fig.RenderItem, opts fig.EmitOptions) string {
	b := it.Geometry.Path.Bounds()
	cx := (b.MinX + b.MaxX) / 2
	cy := (b.MinY + b.MaxY) / 2
	return fmt.Sprintf("<text x=%q y=%q text-anchor=\"middle\" fill=%q>%s</text>\n",
		floatfmt.Format(cx, opts.Precision),
		floatfmt.Format(opts.Height-cy, opts.Precision),
		it.Style.Color.Hex(),
		EscapeText(it.Style.Label))
}

// presentation renders the style as presentation attributes in a fixed
// order so identical styles always serialize identically.
func presentation(st fig.ResolvedStyle) string {
	var b strings.Builder
	if st.FillNone {
		b.WriteString(` fill="none"`)
	} else {
		fmt.Fprintf(&b, " fill=%q", st.Fill.Hex())
		if st.FillOpacity != 1 {
			b.WriteString(opacityAttr("fill-opacity", st.FillOpacity))
		}
	}
	if st.LineWidth > 0 {
		fmt.Fprintf(&b, " stroke=%q stroke-width=%q", st.Color.Hex(), num(st.LineWidth))
		if st.Opacity != 1 {
			b.WriteString(opacityAttr("stroke-opacity", st.Opacity))
		}
		switch st.Dash {
		case fig.DashDashed:
			b.WriteString(` stroke-dasharray="4 2"`)
		case fig.DashDotted:
			b.WriteString(` stroke-dasharray="1 2"`)
		}
		if st.Cap != fig.LineCapButt {
			fmt.Fprintf(&b, " stroke-linecap=%q", st.Cap.String())
		}
		if st.Join != fig.LineJoinMiter {
			fmt.Fprintf(&b, " stroke-linejoin=%q", st.Join.String())
		}
	}
	return b.String()
}

func opacityAttr(name string, v float64) string {
	return fmt.Sprintf(" %s=%q", name, num(v))
}

// writePathData renders projected path elements as SVG path data with
// absolute commands, flipping y into SVG's downward axis.
func writePathData(b *strings.Builder, p *fig.Path, opts fig.EmitOptions) {
	pair := func(pt fig.Point) string {
		return floatfmt.Pair(pt.X, opts.Height-pt.Y, opts.Precision, ",")
	}
	first := true
	for e := range p.Elements() {
		if !first {
			b.WriteString(" ")
		}
		switch e := e.(type) {
		case fig.MoveTo:
			b.WriteString("M")
			b.WriteString(pair(e.Point))
		case fig.LineTo:
			b.WriteString("L")
			b.WriteString(pair(e.Point))
		case fig.QuadTo:
			b.WriteString("Q")
			b.WriteString(pair(e.Control))
			b.WriteString(" ")
			b.WriteString(pair(e.Point))
		case fig.CubicTo:
			b.WriteString("C")
			b.WriteString(pair(e.Control1))
			b.WriteString(" ")
			b.WriteString(pair(e.Control2))
			b.WriteString(" ")
			b.WriteString(pair(e.Point))
		case fig.Close:
			b.WriteString("Z")
		}
		first = false
	}
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

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeText escapes character-data specials so arbitrary label text
// cannot break the emitted markup.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes attribute-value specials.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

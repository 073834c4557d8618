// Package fig models vector-graphics figures and serializes them into
// textual markup dialects such as TikZ and SVG.
//
// # Overview
//
// fig is the middle-to-back half of a figure pipeline: callers (or a
// higher-level drawable layer) build a Figure out of shapes and sparse
// style intents, and codecs turn the finished figure into markup. The
// package keeps three concerns strictly separated:
//
//   - the geometry kernel: immutable Points, Paths and Rects with pure
//     operations (transform, bound, intersect, simplify)
//   - the figure object model: an ordered scene of objects pairing one
//     geometry with one style intent, plus axis ranges and a 3D view
//   - resolution and emission: per-render-pass projection into canvas
//     space, cascading style resolution, and dialect codecs that emit a
//     lazy sequence of text fragments
//
// # Quick Start
//
//	f := fig.NewFigure()
//	f.SetAxisRange(fig.AxisX, 0, 10)
//	f.SetAxisRange(fig.AxisY, 0, 10)
//
//	style := fig.NewStyle().Color("blue").LineWidth(1)
//	f.AddObject(fig.Line{From: fig.Pt(0, 0), To: fig.Pt(10, 10)}, style)
//
//	seq, err := fig.Emit(f, "tikz", fig.WithPrecision(2))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for frag := range seq {
//		io.WriteString(out, frag)
//	}
//
// # Dialects
//
// Dialect codecs live in their own packages and register themselves on
// import, in the image/png manner:
//
//	import (
//		_ "github.com/tikzpaint/fig/svg"
//		_ "github.com/tikzpaint/fig/tikz"
//	)
//
// The concatenation of emitted fragments is the complete document body
// for that dialect; wrapping it into a full document (a LaTeX preamble,
// an <svg> root element) is the consumer's job.
//
// # Determinism
//
// Emitting the same figure twice with the same options produces byte
// identical output. Coordinates are printed with a fixed, configurable
// number of decimals, projection is a pure function of the figure and
// its options, and object order is insertion order unless an explicit
// z-order is requested.
//
// # Concurrency
//
// A Figure is single-writer while it is being built. Once construction
// is done, any number of render passes may run concurrently: projection
// caches are scoped to a pass, and every intermediate value (Point,
// Path, ResolvedStyle, ProjectedGeometry) is immutable once produced.
package fig

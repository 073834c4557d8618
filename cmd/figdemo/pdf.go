package main

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/tikzpaint/fig"
)

// pdfCanvas is the drawing area on the page, in millimetres.
const pdfCanvas = 160.0

// exportPDF packages the figure as a standalone PDF by replaying the
// render plan through gofpdf. This is document packaging, which the
// fig core deliberately leaves to callers; the plan gives us the same
// resolved styles and projected geometry the text codecs see.
func exportPDF(path string, f *fig.Figure) error {
	opts := fig.DefaultEmitOptions()
	opts.Width = pdfCanvas
	opts.Height = pdfCanvas
	opts.ZOrder = fig.ZOrderExplicit

	items, _, err := fig.Plan(f, opts)
	if err != nil {
		return err
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetFont("Helvetica", "", 10)

	// gofpdf's y axis grows downward; flip like the SVG codec does.
	flip := func(y float64) float64 { return opts.Height - y }

	for _, it := range items {
		st := it.Style
		p.SetDrawColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
		p.SetLineWidth(st.LineWidth * 0.352778) // pt to mm
		mode := "D"
		if !st.FillNone {
			p.SetFillColor(int(st.Fill.R), int(st.Fill.G), int(st.Fill.B))
			mode = "FD"
			if st.LineWidth <= 0 {
				mode = "F"
			}
		}

		if _, isDot := it.Object.Shape().(fig.Dot); isDot {
			for e := range it.Geometry.Path.Elements() {
				if m, ok := e.(fig.MoveTo); ok {
					p.SetFillColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
					p.Circle(m.Point.X, flip(m.Point.Y), st.MarkerSize*0.352778, "F")
					break
				}
			}
			continue
		}

		for e := range it.Geometry.Path.Elements() {
			switch e := e.(type) {
			case fig.MoveTo:
				p.MoveTo(e.Point.X, flip(e.Point.Y))
			case fig.LineTo:
				p.LineTo(e.Point.X, flip(e.Point.Y))
			case fig.QuadTo:
				p.CurveTo(e.Control.X, flip(e.Control.Y), e.Point.X, flip(e.Point.Y))
			case fig.CubicTo:
				p.CurveBezierCubicTo(
					e.Control1.X, flip(e.Control1.Y),
					e.Control2.X, flip(e.Control2.Y),
					e.Point.X, flip(e.Point.Y))
			case fig.Close:
				p.ClosePath()
			}
		}
		p.DrawPath(mode)

		if st.Explicit(fig.OptLabel) && st.Label != "" {
			b := it.Geometry.Path.Bounds()
			p.Text((b.MinX+b.MaxX)/2, flip((b.MinY+b.MaxY)/2), st.Label)
		}
	}

	return p.OutputFileAndClose(path)
}

// Command figdemo builds a sample figure and emits it in a chosen
// dialect. It is the external collaborator the fig core hands its
// fragment sequence to: the core never touches files, this command
// does.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tikzpaint/fig"
	_ "github.com/tikzpaint/fig/svg"
	_ "github.com/tikzpaint/fig/tikz"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
var okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

func main() {
	var (
		dialect   = flag.String("dialect", "tikz", "output dialect: "+strings.Join(fig.Dialects(), ", "))
		precision = flag.Int("precision", 4, "decimal precision of coordinates")
		clip      = flag.Bool("clip", false, "clip geometry to the canvas")
		stretch   = flag.Bool("stretch", false, "stretch-to-fill instead of uniform scaling")
		output    = flag.String("output", "", "output file (default stdout)")
		pdf       = flag.String("pdf", "", "additionally package the figure as a PDF file")
	)
	flag.Parse()

	f := buildSample()

	opts := []fig.EmitOption{
		fig.WithPrecision(*precision),
		fig.WithClipping(*clip),
		fig.WithZOrderMode(fig.ZOrderExplicit),
		fig.WithCanvasSize(10, 10),
	}
	if *stretch {
		opts = append(opts, fig.WithScaleMode(fig.ScaleStretch))
	}

	seq, err := fig.Emit(f, *dialect, opts...)
	if err != nil {
		log.Fatalf("emit failed: %v", err)
	}

	out := os.Stdout
	if *output != "" {
		var err error
		out, err = os.Create(*output)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer out.Close()
	}

	fmt.Fprintln(os.Stderr, headerStyle.Render(fmt.Sprintf("figdemo: %s (%d objects)", *dialect, f.Len())))
	for frag := range seq {
		if _, err := fmt.Fprint(out, frag); err != nil {
			log.Fatalf("write output: %v", err)
		}
	}
	fmt.Fprintln(os.Stderr, okStyle.Render("done"))

	if *pdf != "" {
		if err := exportPDF(*pdf, f); err != nil {
			log.Fatalf("export pdf: %v", err)
		}
		fmt.Fprintln(os.Stderr, okStyle.Render("pdf written to "+*pdf))
	}
}

// buildSample assembles a figure exercising most of the model: shapes,
// groups, labels, explicit z-order and a custom color.
func buildSample() *fig.Figure {
	f := fig.NewFigure()
	f.SetName("figdemo")
	f.SetAxisRange(fig.AxisX, 0, 10)
	f.SetAxisRange(fig.AxisY, 0, 10)
	f.SetDefaultStyle(fig.NewStyle().LineWidth(1))
	f.SetGroupStyle("axes", fig.NewStyle().Color("gray").LineWidth(0.5))

	must := func(_ fig.ObjectID, err error) {
		if err != nil {
			log.Fatalf("build sample: %v", err)
		}
	}

	must(f.AddObject(fig.Line{From: fig.Pt(0, 5), To: fig.Pt(10, 5)}, fig.NewStyle(), fig.InGroup("axes")))
	must(f.AddObject(fig.Line{From: fig.Pt(5, 0), To: fig.Pt(5, 10)}, fig.NewStyle(), fig.InGroup("axes")))
	must(f.AddObject(
		fig.Circle{Center: fig.Pt(5, 5), Radius: 3},
		fig.NewStyle().Color("blue").Fill("#c8e0ff").FillOpacity(0.5).Z(1),
	))
	must(f.AddObject(
		fig.Polygon{Points: []fig.Point{fig.Pt(2, 2), fig.Pt(8, 2), fig.Pt(5, 8.5)}},
		fig.NewStyle().Color("red").Dash(fig.DashDashed).Label("triangle").Z(2),
	))
	must(f.AddObject(fig.Dot{At: fig.Pt(5, 5)}, fig.NewStyle().Color("black").MarkerSize(1.5).Z(3)))
	return f
}

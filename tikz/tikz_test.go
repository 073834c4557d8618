package tikz

import (
	"strings"
	"testing"

	"github.com/tikzpaint/fig"
)

func render(t *testing.T, f *fig.Figure, opts ...fig.EmitOption) string {
	t.Helper()
	seq, err := fig.Emit(f, "tikz", opts...)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	for frag := range seq {
		b.WriteString(frag)
	}
	return b.String()
}

func TestEmitLine(t *testing.T) {
	f := fig.NewFigure()
	if _, err := f.AddObject(fig.Line{From: fig.Pt(0, 0), To: fig.Pt(10, 10)}, fig.NewStyle()); err != nil {
		t.Fatal(err)
	}

	got := render(t, f, fig.WithPrecision(2))
	want := "\\draw[color=black, line width=1pt] (0.00,0.00) -- (1.00,1.00);\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestEmitDeterminism(t *testing.T) {
	f := fig.NewFigure()
	f.AddObject(fig.Line{From: fig.Pt(0, 0), To: fig.Pt(10, 10)}, fig.NewStyle().Color("#123456"))
	f.AddObject(fig.Circle{Center: fig.Pt(5, 5), Radius: 2}, fig.NewStyle().Fill("red"))

	first := render(t, f, fig.WithPrecision(3))
	for i := 0; i < 3; i++ {
		if got := render(t, f, fig.WithPrecision(3)); got != first {
			t.Fatalf("run %d differs from first run:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestDrawCommandSelection(t *testing.T) {
	tests := []struct {
		name  string
		style fig.StyleIntent
		want  string
	}{
		{"stroke only", fig.NewStyle(), "\\draw["},
		{"fill only", fig.NewStyle().Fill("red").LineWidth(0), "\\fill["},
		{"fill and stroke", fig.NewStyle().Fill("red"), "\\filldraw["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fig.NewFigure()
			if _, err := f.AddObject(fig.Circle{Center: fig.Pt(0, 0), Radius: 1}, tt.style); err != nil {
				t.Fatal(err)
			}
			got := render(t, f)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("output starts %q, want prefix %q", got[:min(len(got), 30)], tt.want)
			}
		})
	}
}

func TestDefineColorDedupAndOrder(t *testing.T) {
	f := fig.NewFigure()
	// Two objects with the same custom color, one with another.
	f.AddObject(fig.Line{From: fig.Pt(0, 0), To: fig.Pt(1, 1)}, fig.NewStyle().Color("#abcdef"))
	f.AddObject(fig.Line{From: fig.Pt(0, 1), To: fig.Pt(1, 0)}, fig.NewStyle().Color("#abcdef"))
	f.AddObject(fig.Line{From: fig.Pt(0, 0), To: fig.Pt(1, 0)}, fig.NewStyle().Color("#123456"))

	got := render(t, f)
	if n := strings.Count(got, "\\definecolor{figcolorABCDEF}"); n != 1 {
		t.Errorf("ABCDEF defined %d times, want 1", n)
	}
	i := strings.Index(got, "figcolor123456")
	j := strings.Index(got, "figcolorABCDEF")
	if i < 0 || j < 0 || i > j {
		t.Errorf("definecolor block not sorted: 123456 at %d, ABCDEF at %d", i, j)
	}
	if !strings.Contains(got, "\\definecolor{figcolor123456}{RGB}{18,52,86}\n") {
		t.Error("missing RGB definition for #123456")
	}
	// Definitions precede all drawing statements.
	if d := strings.Index(got, "\\draw"); d >= 0 && d < j {
		t.Error("definecolor statements must precede drawing statements")
	}
}

func TestPaletteColorsNeedNoDefinition(t *testing.T) {
	f := fig.NewFigure()
	f.AddObject(fig.Line{From: fig.Pt(0, 0), To: fig.Pt(1, 1)}, fig.NewStyle().Color("red"))

	got := render(t, f)
	if strings.Contains(got, "definecolor") {
		t.Errorf("palette color should not be defined:\n%s", got)
	}
	if !strings.Contains(got, "color=red") {
		t.Errorf("palette color should be referenced by name:\n%s", got)
	}
}

func TestClippingScope(t *testing.T) {
	f := fig.NewFigure()
	f.AddObject(fig.Line{From: fig.Pt(0, 0), To: fig.Pt(10, 10)}, fig.NewStyle())

	got := render(t, f, fig.WithClipping(true), fig.WithPrecision(2))
	if !strings.HasPrefix(got, "\\begin{scope}\n\\clip (0,0) rectangle (1.00,1.00);\n") {
		t.Errorf("missing clip scope prefix:\n%s", got)
	}
	if !strings.HasSuffix(got, "\\end{scope}\n") {
		t.Errorf("missing scope terminator:\n%s", got)
	}
}

func TestExplicitZOrder(t *testing.T) {
	f := fig.NewFigure()
	f.AddObject(fig.Line{From: fig.Pt(0, 0), To: fig.Pt(1, 1)}, fig.NewStyle().Color("red").Z(2))
	f.AddObject(fig.Line{From: fig.Pt(0, 1), To: fig.Pt(1, 0)}, fig.NewStyle().Color("blue").Z(-1))

	got := render(t, f, fig.WithZOrderMode(fig.ZOrderExplicit))
	if strings.Index(got, "color=blue") > strings.Index(got, "color=red") {
		t.Errorf("lower z must render first:\n%s", got)
	}
}

func TestDotMarker(t *testing.T) {
	f := fig.NewFigure()
	if _, err := f.AddObject(fig.Dot{At: fig.Pt(3, 3)}, fig.NewStyle()); err != nil {
		t.Fatal(err)
	}

	got := render(t, f, fig.WithPrecision(2))
	want := "\\filldraw[color=black, fill=black] (0.50,0.50) circle (2pt);\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLabelNode(t *testing.T) {
	f := fig.NewFigure()
	f.AddObject(fig.Line{From: fig.Pt(0, 0), To: fig.Pt(10, 10)},
		fig.NewStyle().Label("50% & rising"))

	got := render(t, f, fig.WithPrecision(2))
	if !strings.Contains(got, "\\node at (0.50,0.50) {50\\% \\& rising};\n") {
		t.Errorf("missing or unescaped label node:\n%s", got)
	}
}

func TestQuadElevatedToCubic(t *testing.T) {
	f := fig.NewFigure()
	p := fig.NewPath().MoveTo(fig.Pt(0, 0)).QuadTo(fig.Pt(1, 2), fig.Pt(2, 0))
	if _, err := f.AddObject(p, fig.NewStyle()); err != nil {
		t.Fatal(err)
	}

	got := render(t, f)
	if !strings.Contains(got, ".. controls ") {
		t.Errorf("quadratic curve should be emitted as cubic controls:\n%s", got)
	}
}

func TestEscapeText(t *testing.T) {
	got := EscapeText(`x_1 & {50%}`)
	want := `x\_1 \& \{50\%\}`
	if got != want {
		t.Errorf("EscapeText = %q, want %q", got, want)
	}
}

package fig

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPathBuilder(t *testing.T) {
	p := NewPath().
		MoveTo(Pt(0, 0)).
		LineTo(Pt(1, 0)).
		QuadTo(Pt(1.5, 0.5), Pt(2, 0)).
		Close()

	if p.Len() != 4 {
		t.Fatalf("Len = %d, want 4", p.Len())
	}

	var kinds []string
	for e := range p.Elements() {
		switch e.(type) {
		case MoveTo:
			kinds = append(kinds, "move")
		case LineTo:
			kinds = append(kinds, "line")
		case QuadTo:
			kinds = append(kinds, "quad")
		case Close:
			kinds = append(kinds, "close")
		}
	}
	want := []string{"move", "line", "quad", "close"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("element kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestPathElementsEarlyStop(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(1, 1)).LineTo(Pt(2, 2))
	n := 0
	for range p.Elements() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d elements, want 2", n)
	}
}

func TestPathBoundsIncludesControls(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).QuadTo(Pt(5, 10), Pt(10, 0))
	b := p.Bounds()
	want := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if diff := cmp.Diff(want, b, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestPathCloneIndependent(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(1, 1))
	q := p.Clone()
	p.LineTo(Pt(2, 2))
	if q.Len() != 2 {
		t.Errorf("clone observed mutation: Len = %d, want 2", q.Len())
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath().MoveTo(Pt(1, 1)).CubicTo(Pt(2, 2), Pt(3, 3), Pt(4, 4))
	shift := func(pt Point) Point { return pt.Add(Pt(10, 0)) }
	q := p.Transform(shift)

	wantPts := []Point{Pt(11, 1), Pt(14, 4)}
	if diff := cmp.Diff(wantPts, q.Points()); diff != "" {
		t.Errorf("transformed points mismatch (-want +got):\n%s", diff)
	}
	// Original untouched.
	if got := p.Points()[0]; got != Pt(1, 1) {
		t.Errorf("original mutated: %v", got)
	}
}

func TestEmptyPath(t *testing.T) {
	var p *Path
	if !p.IsEmpty() {
		t.Error("nil path should be empty")
	}
	if p.Len() != 0 {
		t.Error("nil path should have zero length")
	}
	for range p.Elements() {
		t.Fatal("nil path should yield no elements")
	}
}

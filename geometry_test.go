package fig

import (
	"errors"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    *Path
		wantErr bool
	}{
		{"empty", NewPath(), true},
		{"bare moves", NewPath().MoveTo(Pt(0, 0)).MoveTo(Pt(1, 1)), true},
		{"line", NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(1, 1)), false},
		{"no leading move", &Path{elements: []PathElement{LineTo{Point: Pt(1, 1)}}}, true},
		{"closed", NewPath().MoveTo(Pt(0, 0)).Close(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePath = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var gerr *GeometryError
				if !errors.As(err, &gerr) || gerr.Kind != DegenerateShape {
					t.Errorf("error = %v, want GeometryError{DegenerateShape}", err)
				}
			}
		})
	}
}

func TestSimplifyMergesNearDuplicates(t *testing.T) {
	p := NewPath().
		MoveTo(Pt(0, 0)).
		LineTo(Pt(1, 0)).
		LineTo(Pt(1+1e-12, 0)). // dropped
		LineTo(Pt(2, 0))
	q := Simplify(p, 1e-9)
	if q.Len() != 3 {
		t.Errorf("Len = %d, want 3", q.Len())
	}
}

func TestSimplifyKeepsCurves(t *testing.T) {
	p := NewPath().
		MoveTo(Pt(0, 0)).
		CubicTo(Pt(0, 1), Pt(0, -1), Pt(0, 0)) // zero-length but visible
	q := Simplify(p, 1e-9)
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2 (curves must survive)", q.Len())
	}
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, q1, q2 Point
		want           bool
	}{
		{"crossing", Pt(0, 0), Pt(2, 2), Pt(0, 2), Pt(2, 0), true},
		{"parallel", Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1), false},
		{"touching endpoint", Pt(0, 0), Pt(1, 1), Pt(1, 1), Pt(2, 0), true},
		{"collinear overlap", Pt(0, 0), Pt(2, 0), Pt(1, 0), Pt(3, 0), true},
		{"collinear apart", Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.p1, tt.p2, tt.q1, tt.q2); got != tt.want {
				t.Errorf("SegmentsIntersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathContains(t *testing.T) {
	square := Polygon{Points: []Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}}.ToPath()
	if !PathContains(square, Pt(2, 2)) {
		t.Error("center should be inside")
	}
	if PathContains(square, Pt(5, 2)) {
		t.Error("outside point should not be inside")
	}
}

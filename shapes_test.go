package fig

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestShapeValidate(t *testing.T) {
	tests := []struct {
		name    string
		shape   validator
		wantErr bool
	}{
		{"line ok", Line{From: Pt(0, 0), To: Pt(1, 1)}, false},
		{"line degenerate", Line{From: Pt(1, 1), To: Pt(1, 1)}, true},
		{"polyline short", Polyline{Points: []Point{Pt(0, 0)}}, true},
		{"polygon short", Polygon{Points: []Point{Pt(0, 0), Pt(1, 0)}}, true},
		{"rect flat", RectShape{Min: Pt(0, 0), Max: Pt(5, 0)}, true},
		{"circle ok", Circle{Center: Pt(0, 0), Radius: 2}, false},
		{"circle zero", Circle{Center: Pt(0, 0), Radius: 0}, true},
		{"ellipse negative", Ellipse{Center: Pt(0, 0), RX: -1, RY: 1}, true},
		{"arc empty sweep", Arc{Center: Pt(0, 0), RX: 1, RY: 1, StartAngle: 45, EndAngle: 45}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCircleToPath(t *testing.T) {
	c := Circle{Center: Pt(5, 5), Radius: 3}
	p := c.ToPath()

	// Four cubic segments plus the move and close.
	if p.Len() != 6 {
		t.Errorf("Len = %d, want 6", p.Len())
	}
	want := Rect{MinX: 2, MinY: 2, MaxX: 8, MaxY: 8}
	if diff := cmp.Diff(want, c.Bounds(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
	// The path's conservative bounds stay within a kappa margin.
	pb := p.Bounds()
	if pb.MinX < 2-1e-9 || pb.MaxX > 8+1e-9 {
		t.Errorf("path bounds %v escape the circle bounds", pb)
	}
}

func TestStepConnectors(t *testing.T) {
	xy := StepXY(Pt(0, 0), Pt(3, 4))
	wantXY := []Point{Pt(0, 0), Pt(3, 0), Pt(3, 4)}
	if diff := cmp.Diff(wantXY, xy.Points); diff != "" {
		t.Errorf("StepXY mismatch (-want +got):\n%s", diff)
	}

	yx := StepYX(Pt(0, 0), Pt(3, 4))
	wantYX := []Point{Pt(0, 0), Pt(0, 4), Pt(3, 4)}
	if diff := cmp.Diff(wantYX, yx.Points); diff != "" {
		t.Errorf("StepYX mismatch (-want +got):\n%s", diff)
	}
}

func TestArcToPathEndpoints(t *testing.T) {
	a := Arc{Center: Pt(0, 0), RX: 2, RY: 2, StartAngle: 0, EndAngle: 180}
	p := a.ToPath()
	pts := p.Points()
	if !pts[0].NearlyEqual(Pt(2, 0), 1e-9) {
		t.Errorf("arc start = %v, want (2,0)", pts[0])
	}
	if !pts[len(pts)-1].NearlyEqual(Pt(-2, 0), 1e-9) {
		t.Errorf("arc end = %v, want (-2,0)", pts[len(pts)-1])
	}
}

func TestDotToPathIsWellFormed(t *testing.T) {
	p := Dot{At: Pt(1, 2)}.ToPath()
	if err := ValidatePath(p); err != nil {
		t.Errorf("dot path rejected: %v", err)
	}
}

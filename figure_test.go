package fig

import (
	"errors"
	"testing"
)

func line(x1, y1, x2, y2 float64) Line {
	return Line{From: Pt(x1, y1), To: Pt(x2, y2)}
}

func TestAddObjectAssignsUniqueIDs(t *testing.T) {
	f := NewFigure()
	seen := map[ObjectID]bool{}
	for i := 0; i < 5; i++ {
		id, err := f.AddObject(line(0, 0, 1, float64(i+1)), NewStyle())
		if err != nil {
			t.Fatal(err)
		}
		if seen[id] {
			t.Fatalf("duplicate ID %d", id)
		}
		seen[id] = true
	}
	if f.Len() != 5 {
		t.Errorf("Len = %d, want 5", f.Len())
	}
}

func TestAddObjectRejectsBadGeometry(t *testing.T) {
	f := NewFigure()
	_, err := f.AddObject(Circle{Center: Pt(0, 0), Radius: -1}, NewStyle())

	var merr *ModelError
	if !errors.As(err, &merr) || merr.Kind != InvalidGeometry {
		t.Fatalf("err = %v, want ModelError{InvalidGeometry}", err)
	}
	var gerr *GeometryError
	if !errors.As(err, &gerr) || gerr.Kind != DegenerateShape {
		t.Errorf("err should wrap GeometryError{DegenerateShape}, got %v", err)
	}
	if f.Len() != 0 {
		t.Error("failed add must leave the figure unchanged")
	}
}

func TestAddObjectRejectsBadStyle(t *testing.T) {
	f := NewFigure()
	if _, err := f.AddObject(line(0, 0, 1, 1), NewStyle()); err != nil {
		t.Fatal(err)
	}

	bad := NewStyle().Color("notacolor")
	_, err := f.AddObject(line(0, 0, 2, 2), bad)
	var serr *StyleError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want StyleError", err)
	}
	if f.Len() != 1 {
		t.Errorf("Len = %d, want 1: failed add must not grow the figure", f.Len())
	}
}

func TestInsertionOrderStability(t *testing.T) {
	f := NewFigure()
	a, _ := f.AddObject(line(0, 0, 1, 1), NewStyle())
	b, _ := f.AddObject(line(0, 0, 2, 2), NewStyle())
	c, _ := f.AddObject(line(0, 0, 3, 3), NewStyle())

	if err := f.RemoveObject(b); err != nil {
		t.Fatal(err)
	}
	d, _ := f.AddObject(line(0, 0, 4, 4), NewStyle())

	var order []ObjectID
	for obj := range f.Objects() {
		order = append(order, obj.ID())
	}
	want := []ObjectID{a, c, d}
	if len(order) != 3 || order[0] != want[0] || order[1] != want[1] || order[2] != want[2] {
		t.Errorf("order = %v, want %v", order, want)
	}
	if d == b {
		t.Error("removed ID must not be reused")
	}
}

func TestRemoveUnknownObject(t *testing.T) {
	f := NewFigure()
	err := f.RemoveObject(99)
	var merr *ModelError
	if !errors.As(err, &merr) || merr.Kind != UnknownObject {
		t.Errorf("err = %v, want ModelError{UnknownObject}", err)
	}
}

func TestReplaceObjectKeepsIDAndPosition(t *testing.T) {
	f := NewFigure()
	a, _ := f.AddObject(line(0, 0, 1, 1), NewStyle())
	b, _ := f.AddObject(line(0, 0, 2, 2), NewStyle())
	c, _ := f.AddObject(line(0, 0, 3, 3), NewStyle())

	if err := f.ReplaceObject(b, Circle{Center: Pt(1, 1), Radius: 1}, NewStyle()); err != nil {
		t.Fatal(err)
	}

	var order []ObjectID
	for obj := range f.Objects() {
		order = append(order, obj.ID())
	}
	if order[0] != a || order[1] != b || order[2] != c {
		t.Errorf("order after replace = %v, want [%d %d %d]", order, a, b, c)
	}
	obj, ok := f.Object(b)
	if !ok {
		t.Fatal("replaced object vanished")
	}
	if _, isCircle := obj.Shape().(Circle); !isCircle {
		t.Error("replace did not install the new geometry")
	}
}

func TestReplaceObjectFailureLeavesFigureIntact(t *testing.T) {
	f := NewFigure()
	a, _ := f.AddObject(line(0, 0, 1, 1), NewStyle())

	err := f.ReplaceObject(a, Circle{Center: Pt(0, 0), Radius: -1}, NewStyle())
	if err == nil {
		t.Fatal("replace with bad geometry should fail")
	}
	obj, ok := f.Object(a)
	if !ok {
		t.Fatal("original object lost after failed replace")
	}
	if _, isLine := obj.Shape().(Line); !isLine {
		t.Error("original geometry lost after failed replace")
	}
}

func TestObjectsSnapshotIteration(t *testing.T) {
	f := NewFigure()
	f.AddObject(line(0, 0, 1, 1), NewStyle())
	f.AddObject(line(0, 0, 2, 2), NewStyle())

	seq := f.Objects()
	n := 0
	for range seq {
		// Mutation mid-iteration must not be observed.
		if n == 0 {
			f.AddObject(line(0, 0, 9, 9), NewStyle())
		}
		n++
	}
	if n != 2 {
		t.Errorf("iterated %d objects, want snapshot of 2", n)
	}

	// The sequence is restartable; a fresh call sees current state.
	n = 0
	for range f.Objects() {
		n++
	}
	if n != 3 {
		t.Errorf("fresh iteration saw %d objects, want 3", n)
	}
}

func TestVersionBumpsOnMutation(t *testing.T) {
	f := NewFigure()
	v0 := f.Version()
	id, _ := f.AddObject(line(0, 0, 1, 1), NewStyle())
	if f.Version() == v0 {
		t.Error("AddObject must bump version")
	}
	v1 := f.Version()
	f.RemoveObject(id)
	if f.Version() == v1 {
		t.Error("RemoveObject must bump version")
	}
	v2 := f.Version()
	f.SetAxisRange(AxisX, 0, 1)
	if f.Version() == v2 {
		t.Error("SetAxisRange must bump version")
	}
}

func TestClear(t *testing.T) {
	f := NewFigure()
	f.SetAxisRange(AxisX, 0, 10)
	f.AddObject(line(0, 0, 1, 1), NewStyle())
	f.Clear()
	if f.Len() != 0 {
		t.Error("Clear should remove all objects")
	}
	if _, ok := f.AxisRange(AxisX); !ok {
		t.Error("Clear should keep axis ranges")
	}
}

func TestObjectPathIsACopy(t *testing.T) {
	f := NewFigure()
	id, _ := f.AddObject(line(0, 0, 1, 1), NewStyle())
	obj, _ := f.Object(id)

	p := obj.Path()
	p.LineTo(Pt(9, 9))
	if obj.Path().Len() != 2 {
		t.Error("mutating a returned path must not affect the object")
	}
}

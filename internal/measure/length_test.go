package measure

import (
	"math"
	"testing"

	"github.com/piwi3910/dxf-takeoff/internal/model"
)

func TestEntityCutLengthLine(t *testing.T) {
	l := model.Line{Start: model.Point2D{X: 0, Y: 0}, End: model.Point2D{X: 3, Y: 4}}
	if got := EntityCutLength(l); got != 5.0 {
		t.Errorf("line cut length = %f, want 5.0", got)
	}
}

func TestEntityCutLengthArc(t *testing.T) {
	// Quarter circle of radius 10: 10 * pi/2
	a := model.Arc{Radius: 10, StartAngle: 0, EndAngle: 90}
	want := 10 * math.Pi / 2
	if got := EntityCutLength(a); math.Abs(got-want) > 1e-9 {
		t.Errorf("arc cut length = %f, want %f", got, want)
	}

	// The magnitude is used for reversed sweeps
	rev := model.Arc{Radius: 10, StartAngle: 90, EndAngle: 0}
	if got := EntityCutLength(rev); math.Abs(got-want) > 1e-9 {
		t.Errorf("reversed arc cut length = %f, want %f", got, want)
	}
}

func TestEntityCutLengthCircle(t *testing.T) {
	c := model.Circle{Radius: 7}
	want := 2 * math.Pi * 7
	if got := EntityCutLength(c); math.Abs(got-want) > 1e-12 {
		t.Errorf("circle cut length = %f, want %f", got, want)
	}
}

func TestEntityCutLengthPolylineAsymmetry(t *testing.T) {
	vertices := model.Outline{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 10}}

	// Heavyweight POLYLINE contributes its traversal length
	heavy := model.Polyline{Vertices: vertices}
	if got := EntityCutLength(heavy); math.Abs(got-11.0) > 1e-12 {
		t.Errorf("polyline cut length = %f, want 11.0", got)
	}

	// LWPOLYLINE is excluded from the length pass
	lw := model.LwPolyline{Vertices: vertices}
	if got := EntityCutLength(lw); got != 0 {
		t.Errorf("lwpolyline cut length = %f, want 0", got)
	}
}

func TestEntityCutLengthNonContributing(t *testing.T) {
	for _, e := range []model.Entity{model.Text{}, model.MText{}, model.Other{Type: "SPLINE"}} {
		if got := EntityCutLength(e); got != 0 {
			t.Errorf("%s: expected 0 cut length, got %f", e.Kind(), got)
		}
	}
}

func TestCutLengthSum(t *testing.T) {
	entities := []model.Entity{
		model.Line{Start: model.Point2D{X: 0, Y: 0}, End: model.Point2D{X: 3, Y: 4}}, // 5
		model.Circle{Radius: 1}, // 2pi
	}
	want := 5 + 2*math.Pi
	if got := CutLength(entities); math.Abs(got-want) > 1e-12 {
		t.Errorf("cut length = %f, want %f", got, want)
	}
}

func TestCutLengthEmpty(t *testing.T) {
	if got := CutLength(nil); got != 0 {
		t.Errorf("expected 0 cut length for empty drawing, got %f", got)
	}
}

package model

import (
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	a := Point2D{X: 0, Y: 0}
	b := Point2D{X: 3, Y: 4}
	if d := a.DistanceTo(b); d != 5.0 {
		t.Errorf("expected distance 5.0, got %f", d)
	}
	if d := b.DistanceTo(b); d != 0 {
		t.Errorf("expected zero distance to self, got %f", d)
	}
}

func TestOutlineBoundingBox(t *testing.T) {
	o := Outline{
		{X: 10, Y: -5},
		{X: -2, Y: 30},
		{X: 7, Y: 4},
	}
	min, max := o.BoundingBox()
	if min.X != -2 || min.Y != -5 {
		t.Errorf("unexpected min corner: %+v", min)
	}
	if max.X != 10 || max.Y != 30 {
		t.Errorf("unexpected max corner: %+v", max)
	}
}

func TestOutlineBoundingBoxEmpty(t *testing.T) {
	min, max := Outline{}.BoundingBox()
	if min != (Point2D{}) || max != (Point2D{}) {
		t.Errorf("expected zero corners for empty outline, got %+v %+v", min, max)
	}
}

func TestOutlineArea(t *testing.T) {
	// Unit square, counter-clockwise
	square := Outline{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if a := square.Area(); math.Abs(a-1.0) > 1e-12 {
		t.Errorf("expected area 1.0, got %f", a)
	}

	// Winding direction must not matter
	clockwise := Outline{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	if a := clockwise.Area(); math.Abs(a-1.0) > 1e-12 {
		t.Errorf("expected area 1.0 for clockwise outline, got %f", a)
	}

	// Triangle 0,0 4,0 0,3 -> area 6
	tri := Outline{{0, 0}, {4, 0}, {0, 3}}
	if a := tri.Area(); math.Abs(a-6.0) > 1e-12 {
		t.Errorf("expected area 6.0, got %f", a)
	}
}

func TestOutlineAreaDegenerate(t *testing.T) {
	if a := (Outline{}).Area(); a != 0 {
		t.Errorf("expected 0 area for empty outline, got %f", a)
	}
	if a := (Outline{{0, 0}, {5, 5}}).Area(); a != 0 {
		t.Errorf("expected 0 area for two-point outline, got %f", a)
	}
}

func TestOutlinePathLength(t *testing.T) {
	o := Outline{{0, 0}, {3, 4}, {3, 10}}
	// 5 + 6, closing segment not included
	if l := o.PathLength(); math.Abs(l-11.0) > 1e-12 {
		t.Errorf("expected path length 11.0, got %f", l)
	}
	if l := (Outline{{1, 1}}).PathLength(); l != 0 {
		t.Errorf("expected 0 length for single vertex, got %f", l)
	}
}

func TestOutlineTranslate(t *testing.T) {
	o := Outline{{1, 2}, {3, 4}}
	moved := o.Translate(-1, 10)
	if moved[0] != (Point2D{0, 12}) || moved[1] != (Point2D{2, 14}) {
		t.Errorf("unexpected translation result: %+v", moved)
	}
	// Original untouched
	if o[0] != (Point2D{1, 2}) {
		t.Errorf("translate mutated the original outline: %+v", o)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindLine, "LINE"},
		{KindLwPolyline, "LWPOLYLINE"},
		{KindPolyline, "POLYLINE"},
		{KindCircle, "CIRCLE"},
		{KindArc, "ARC"},
		{KindText, "TEXT"},
		{KindMText, "MTEXT"},
		{KindOther, "OTHER"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEntityKinds(t *testing.T) {
	entities := []Entity{
		Line{}, LwPolyline{}, Polyline{}, Circle{}, Arc{}, Text{}, MText{}, Other{},
	}
	kinds := []Kind{
		KindLine, KindLwPolyline, KindPolyline, KindCircle, KindArc, KindText, KindMText, KindOther,
	}
	for i, e := range entities {
		if e.Kind() != kinds[i] {
			t.Errorf("entity %d: Kind() = %v, want %v", i, e.Kind(), kinds[i])
		}
	}
}

func TestArcSweep(t *testing.T) {
	a := Arc{StartAngle: 0, EndAngle: 90}
	if a.Sweep() != 90 {
		t.Errorf("expected sweep 90, got %f", a.Sweep())
	}
	// Wrapped arcs keep their negative sweep
	b := Arc{StartAngle: 350, EndAngle: 10}
	if b.Sweep() != -340 {
		t.Errorf("expected sweep -340, got %f", b.Sweep())
	}
}

func TestGetMaterial(t *testing.T) {
	m := GetMaterial("Mild steel")
	if m.WeightPerMeter != 2.5 {
		t.Errorf("expected 2.5 kg/m for mild steel, got %f", m.WeightPerMeter)
	}

	// Unknown names fall back to the Generic preset
	fallback := GetMaterial("unobtainium")
	if fallback.Name != "Generic" {
		t.Errorf("expected Generic fallback, got %q", fallback.Name)
	}
}

func TestEffectiveWeightPerMeter(t *testing.T) {
	cfg := DefaultEstimateConfig()
	if got := cfg.EffectiveWeightPerMeter(); got != 2.5 {
		t.Errorf("expected preset value 2.5, got %f", got)
	}

	cfg.WeightPerMeter = 1.1
	if got := cfg.EffectiveWeightPerMeter(); got != 1.1 {
		t.Errorf("expected override 1.1, got %f", got)
	}
}

func TestAppConfigApplyToConfig(t *testing.T) {
	app := DefaultAppConfig()
	app.DefaultMaterial = "Aluminium"
	app.DefaultFeedRate = 2000

	cfg := DefaultEstimateConfig()
	app.ApplyToConfig(&cfg)

	if cfg.Material != "Aluminium" {
		t.Errorf("expected material Aluminium, got %q", cfg.Material)
	}
	if cfg.FeedRate != 2000 {
		t.Errorf("expected feed rate 2000, got %f", cfg.FeedRate)
	}
}

func TestNewEstimate(t *testing.T) {
	est := NewEstimate("part.dxf")
	if est.ID == "" {
		t.Error("expected a generated estimate ID")
	}
	if est.File != "part.dxf" {
		t.Errorf("expected file name to be kept, got %q", est.File)
	}
	if est.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
}

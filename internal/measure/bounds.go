package measure

import (
	"math"

	"github.com/piwi3910/dxf-takeoff/internal/model"
)

// Axis selects which coordinate an extent pass tracks.
type Axis int

const (
	AxisX Axis = iota // width
	AxisY             // thickness
)

// Extent tracks the running min/max coordinate along one axis. The zero
// state is seeded with infinities; Span reports 0 until at least one
// entity has contributed.
type Extent struct {
	Min float64
	Max float64
}

// NewExtent returns an extent that has observed nothing yet.
func NewExtent() Extent {
	return Extent{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Observe folds one coordinate value into the extent and returns the
// updated accumulator.
func (e Extent) Observe(v float64) Extent {
	if v < e.Min {
		e.Min = v
	}
	if v > e.Max {
		e.Max = v
	}
	return e
}

// Contributed reports whether any value has been observed.
func (e Extent) Contributed() bool {
	return !math.IsInf(e.Min, 1) && !math.IsInf(e.Max, -1)
}

// Span returns Max - Min, or 0 if nothing contributed. The infinity
// sentinels never leak out of the package.
func (e Extent) Span() float64 {
	if !e.Contributed() {
		return 0
	}
	return e.Max - e.Min
}

// coord extracts the tracked coordinate from a point.
func (a Axis) coord(p model.Point2D) float64 {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// extendExtent folds one entity's positional data into the extent.
//
// Circles and arcs both contribute center +/- radius. For a partial arc
// that never reaches the extremal angle this overestimates the true
// bounding box; that is the accepted behavior, kept deliberately.
// Text entities carry no extent.
func extendExtent(ext Extent, e model.Entity, axis Axis) Extent {
	switch e := e.(type) {
	case model.Line:
		ext = ext.Observe(axis.coord(e.Start))
		ext = ext.Observe(axis.coord(e.End))
	case model.LwPolyline:
		for _, v := range e.Vertices {
			ext = ext.Observe(axis.coord(v))
		}
	case model.Polyline:
		for _, v := range e.Vertices {
			ext = ext.Observe(axis.coord(v))
		}
	case model.Circle:
		c := axis.coord(e.Center)
		ext = ext.Observe(c - e.Radius)
		ext = ext.Observe(c + e.Radius)
	case model.Arc:
		c := axis.coord(e.Center)
		ext = ext.Observe(c - e.Radius)
		ext = ext.Observe(c + e.Radius)
	}
	return ext
}

// BoundingExtent folds the whole drawing into a single-axis extent.
func BoundingExtent(entities []model.Entity, axis Axis) Extent {
	ext := NewExtent()
	for _, e := range entities {
		ext = extendExtent(ext, e, axis)
	}
	return ext
}

// Width returns the X span of the drawing, 0 if nothing contributes.
func Width(entities []model.Entity) float64 {
	return BoundingExtent(entities, AxisX).Span()
}

// Thickness returns the Y span of the drawing, 0 if nothing contributes.
func Thickness(entities []model.Entity) float64 {
	return BoundingExtent(entities, AxisY).Span()
}

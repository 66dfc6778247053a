// Package measure is the geometric measurement engine. Given a parsed
// entity sequence it computes per-entity and aggregate metrics: enclosed
// area, entity census, bounding extents, machine cut length, and the
// derived weight figure.
//
// Every aggregation is a pure read-only pass over the entity slice, so all
// of them may run concurrently over the same slice as long as nothing
// mutates it.
package measure

import (
	"math"

	"github.com/piwi3910/dxf-takeoff/internal/model"
)

// EntityArea returns the planar area contribution of a single entity in
// square drawing units. Lines, text and unrecognized entities contribute
// nothing.
//
// Arc contributions are the sector area of the subtended angle, signed: an
// arc whose end angle is numerically below its start angle contributes a
// negative area. Wrapped angles are taken as given.
func EntityArea(e model.Entity) float64 {
	switch e := e.(type) {
	case model.LwPolyline:
		return e.Vertices.Area()
	case model.Polyline:
		return e.Vertices.Area()
	case model.Circle:
		return math.Pi * e.Radius * e.Radius
	case model.Arc:
		return (e.Sweep() / 360.0) * math.Pi * e.Radius * e.Radius
	default:
		return 0
	}
}

// TotalArea sums EntityArea over the whole drawing.
func TotalArea(entities []model.Entity) float64 {
	var total float64
	for _, e := range entities {
		total += EntityArea(e)
	}
	return total
}

package measure

import (
	"math"

	"github.com/piwi3910/dxf-takeoff/internal/model"
)

// EntityCutLength returns the cut path length one entity adds to the
// machining run, in drawing length units.
//
// Only the heavyweight Polyline variant contributes; LWPOLYLINE entities
// are excluded from this pass even though the area and bounds passes treat
// both polyline variants uniformly. The asymmetry is intentional and must
// not be folded away without a product decision.
func EntityCutLength(e model.Entity) float64 {
	switch e := e.(type) {
	case model.Line:
		return e.Start.DistanceTo(e.End)
	case model.Polyline:
		return e.Vertices.PathLength()
	case model.Arc:
		sweepRad := e.Sweep() * math.Pi / 180.0
		return e.Radius * math.Abs(sweepRad)
	case model.Circle:
		// The full circumference, whether or not the circle is cut through.
		return 2 * math.Pi * e.Radius
	default:
		return 0
	}
}

// CutLength sums EntityCutLength over the whole drawing.
func CutLength(entities []model.Entity) float64 {
	var total float64
	for _, e := range entities {
		total += EntityCutLength(e)
	}
	return total
}

package measure

import "github.com/piwi3910/dxf-takeoff/internal/model"

// Census maps a DXF entity type name to the number of occurrences in the
// drawing. Only the fixed key set below is ever present; entities of any
// other kind are not counted and never add new keys.
type Census map[string]int

// CensusOrder lists the census keys in report order.
var CensusOrder = []string{
	model.KindLine.String(),
	model.KindLwPolyline.String(),
	model.KindPolyline.String(),
	model.KindCircle.String(),
	model.KindArc.String(),
	model.KindText.String(),
	model.KindMText.String(),
}

// NewCensus returns a census with every known key present and zero.
func NewCensus() Census {
	c := make(Census, len(CensusOrder))
	for _, k := range CensusOrder {
		c[k] = 0
	}
	return c
}

// CountEntities tallies the entities per type. Unrecognized kinds are
// silently excluded.
func CountEntities(entities []model.Entity) Census {
	census := NewCensus()
	for _, e := range entities {
		name := e.Kind().String()
		if _, ok := census[name]; ok {
			census[name]++
		}
	}
	return census
}

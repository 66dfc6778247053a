package measure

import "github.com/piwi3910/dxf-takeoff/internal/model"

// Measurements holds the aggregate metrics of one drawing. Created once
// per measurement run and immutable afterwards.
type Measurements struct {
	Area      float64 `json:"area"`       // square drawing units
	Width     float64 `json:"width"`      // X extent, drawing units
	Thickness float64 `json:"thickness"`  // Y extent, drawing units
	CutLength float64 `json:"cut_length"` // meters (drawing scale assumption)
	Weight    float64 `json:"weight"`     // volume proxy, see Weight()
	Census    Census  `json:"census"`
}

// Weight derives the weight figure from the aggregates. The cut length is
// converted from meters to millimeters before multiplying.
//
// No density constant is applied: the result is dimensionally a volume
// proxy, not a mass. Callers wanting a true mass apply their own density
// factor (see MassEstimate).
func Weight(cutLength, width, thickness float64) float64 {
	return (cutLength * 1000.0) * width * thickness
}

// MassEstimate converts a cut length in meters to kilograms using a
// material's kg-per-meter figure.
func MassEstimate(cutLength, weightPerMeter float64) float64 {
	return cutLength * weightPerMeter
}

// CutTimeMinutes estimates machining time from the cut length (meters) and
// the feed rate (mm/min). Returns 0 for a non-positive feed rate.
func CutTimeMinutes(cutLength, feedRate float64) float64 {
	if feedRate <= 0 {
		return 0
	}
	return cutLength * 1000.0 / feedRate
}

// Measure runs every aggregation pass over the drawing. Each metric
// traverses the entity slice once; the passes share no state.
func Measure(entities []model.Entity) Measurements {
	area := TotalArea(entities)
	census := CountEntities(entities)
	width := Width(entities)
	thickness := Thickness(entities)
	length := CutLength(entities)

	return Measurements{
		Area:      area,
		Width:     width,
		Thickness: thickness,
		CutLength: length,
		Weight:    Weight(length, width, thickness),
		Census:    census,
	}
}

// NewEstimate measures the drawing and packages the result as a persistable
// estimate record, applying the config's material and feed-rate figures.
func NewEstimate(file string, entities []model.Entity, cfg model.EstimateConfig) model.Estimate {
	m := Measure(entities)

	est := model.NewEstimate(file)
	est.Material = model.GetMaterial(cfg.Material).Name
	est.Area = m.Area
	est.Width = m.Width
	est.Thickness = m.Thickness
	est.CutLength = m.CutLength
	est.Weight = m.Weight
	est.Mass = MassEstimate(m.CutLength, cfg.EffectiveWeightPerMeter())
	est.CutTimeMinutes = CutTimeMinutes(m.CutLength, cfg.FeedRate)
	est.Census = m.Census
	return est
}

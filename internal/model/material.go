package model

// Material describes a stock material for estimation purposes.
type Material struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	WeightPerMeter float64 `json:"weight_per_meter"` // kg per meter of cut path
}

// Built-in material presets. WeightPerMeter figures assume a nominal cut
// cross-section and are meant for quick quoting, not engineering use.
var Materials = []Material{
	{
		Name:           "Mild steel",
		Description:    "3mm mild steel sheet",
		WeightPerMeter: 2.5,
	},
	{
		Name:           "Stainless steel",
		Description:    "3mm 304 stainless sheet",
		WeightPerMeter: 2.7,
	},
	{
		Name:           "Aluminium",
		Description:    "3mm aluminium sheet",
		WeightPerMeter: 0.9,
	},
	{
		Name:           "Generic",
		Description:    "Generic sheet stock",
		WeightPerMeter: 2.5,
	},
}

// GetMaterial returns a material preset by name, or the Generic preset if
// the name is unknown.
func GetMaterial(name string) Material {
	for _, m := range Materials {
		if m.Name == name {
			return m
		}
	}
	return Materials[len(Materials)-1] // Generic (last one)
}

// GetMaterialNames returns a list of all available material preset names.
func GetMaterialNames() []string {
	var names []string
	for _, m := range Materials {
		names = append(names, m.Name)
	}
	return names
}

// EstimateConfig holds the knobs applied on top of the raw measurements
// when building an estimate.
type EstimateConfig struct {
	Material       string  `json:"material"`         // Material preset name
	WeightPerMeter float64 `json:"weight_per_meter"` // kg per meter of cut, overrides the preset when > 0
	FeedRate       float64 `json:"feed_rate"`        // Cutting feed rate mm/min, used for the cut-time figure
}

// DefaultEstimateConfig returns the configuration used when the caller
// supplies nothing.
func DefaultEstimateConfig() EstimateConfig {
	return EstimateConfig{
		Material:       "Generic",
		WeightPerMeter: 0, // Take the preset's value
		FeedRate:       1500.0,
	}
}

// EffectiveWeightPerMeter resolves the kg-per-meter figure: an explicit
// override wins, otherwise the named material preset supplies it.
func (c EstimateConfig) EffectiveWeightPerMeter() float64 {
	if c.WeightPerMeter > 0 {
		return c.WeightPerMeter
	}
	return GetMaterial(c.Material).WeightPerMeter
}

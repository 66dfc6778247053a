package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	DefaultMaterial       string  `json:"default_material"`
	DefaultFeedRate       float64 `json:"default_feed_rate"`
	DefaultWeightPerMeter float64 `json:"default_weight_per_meter"` // 0 = use the material preset

	RecentFiles []string `json:"recent_files"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultEstimateConfig().
func DefaultAppConfig() AppConfig {
	defaults := DefaultEstimateConfig()
	return AppConfig{
		DefaultMaterial:       defaults.Material,
		DefaultFeedRate:       defaults.FeedRate,
		DefaultWeightPerMeter: defaults.WeightPerMeter,
		RecentFiles:           []string{},
	}
}

// ApplyToConfig copies the default values from AppConfig into an
// EstimateConfig. Used when a measurement run starts so it inherits the
// user's saved defaults.
func (c AppConfig) ApplyToConfig(cfg *EstimateConfig) {
	cfg.Material = c.DefaultMaterial
	cfg.FeedRate = c.DefaultFeedRate
	cfg.WeightPerMeter = c.DefaultWeightPerMeter
}

package config

import "context"

type contextKey string

const configKey contextKey = "config"

// Config holds every tunable parameter named in the palette synthesis
// engine, so a host can re-tune the nearly-Radix window, APCA targets, or
// guard iteration budget without recompiling.
type Config struct {
	// Hue registry
	SnapThreshold float64 `mapstructure:"snap_threshold"`

	// Brand color analysis
	ChromaticThreshold     float64 `mapstructure:"chromatic_threshold"`
	LowChromaRatio         float64 `mapstructure:"low_chroma_ratio"`
	HighChromaRatio        float64 `mapstructure:"high_chroma_ratio"`
	ExtremeLightnessChroma float64 `mapstructure:"extreme_lightness_chroma"`
	ExtremeLightnessGap    float64 `mapstructure:"extreme_lightness_gap"`
	MaxBrandColors         int     `mapstructure:"max_brand_colors"`
	ChromaMultiplierMin    float64 `mapstructure:"chroma_multiplier_min"`
	ChromaMultiplierMax    float64 `mapstructure:"chroma_multiplier_max"`
	LightnessShiftBase     float64 `mapstructure:"lightness_shift_base"`

	// Scale synthesis
	NearlyRadixHueWindow  float64 `mapstructure:"nearly_radix_hue_window"`
	NearlyRadixChromaLow  float64 `mapstructure:"nearly_radix_chroma_low"`
	NearlyRadixChromaHigh float64 `mapstructure:"nearly_radix_chroma_high"`
	DampeningFloor        float64 `mapstructure:"dampening_floor"`
	DampeningExponent     float64 `mapstructure:"dampening_exponent"`

	// Accessibility guard
	BodyTextLc    float64 `mapstructure:"body_text_lc"`
	LargeTextLc   float64 `mapstructure:"large_text_lc"`
	DecorativeLc  float64 `mapstructure:"decorative_lc"`
	BoostStep     float64 `mapstructure:"boost_step"`
	BoostMaxIters int     `mapstructure:"boost_max_iters"`
}

// WithConfig attaches cfg to ctx.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves the Config attached by WithConfig, falling back to
// a freshly loaded one if the context carries none.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	cfg, _ := Load()
	return cfg
}

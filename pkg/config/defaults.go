package config

import "github.com/spf13/viper"

// setDefaults supplies every tunable as a viper default, matching the
// constants the core packages compile in. A host loading a Config through
// this package gets the same numbers the core uses out of the box; it can
// then override any of them via config file or environment variable.
func setDefaults(v *viper.Viper) {
	v.SetDefault("snap_threshold", 10.0)

	v.SetDefault("chromatic_threshold", 0.03)
	v.SetDefault("low_chroma_ratio", 0.5)
	v.SetDefault("high_chroma_ratio", 1.3)
	v.SetDefault("extreme_lightness_chroma", 0.12)
	v.SetDefault("extreme_lightness_gap", 0.10)
	v.SetDefault("max_brand_colors", 7)
	v.SetDefault("chroma_multiplier_min", 0.5)
	v.SetDefault("chroma_multiplier_max", 1.3)
	v.SetDefault("lightness_shift_base", 0.65)

	v.SetDefault("nearly_radix_hue_window", 3.0)
	v.SetDefault("nearly_radix_chroma_low", 0.90)
	v.SetDefault("nearly_radix_chroma_high", 1.10)
	v.SetDefault("dampening_floor", 0.3)
	v.SetDefault("dampening_exponent", 1.5)

	v.SetDefault("body_text_lc", 75.0)
	v.SetDefault("large_text_lc", 60.0)
	v.SetDefault("decorative_lc", 45.0)
	v.SetDefault("boost_step", 0.01)
	v.SetDefault("boost_max_iters", 50)
}

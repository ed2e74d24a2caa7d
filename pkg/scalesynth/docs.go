// Package scalesynth generates a single 12-step hue scale from a parent
// color, an anchor step, a hue key, and optional global tuning. It agrees
// with the reference curve when the brand color is absent or
// "nearly Radix", places the exact parent color at its anchor step for a
// real brand anchor, and dampens brand deviation as steps move away from
// the anchor so extremes never drift far from the reference.
package scalesynth

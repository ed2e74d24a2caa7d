// Package hueregistry holds the 31 baseline hue slots a Radix-compatible
// palette is built from: their canonical names, categories, canonical OKLCH
// hue angles, and step-9 reference chromas. It provides wrap-aware nearest
// slot search, the set of "bright" hues whose Radix curve is non-monotone
// at the hero step, and the snap threshold used to decide whether a brand
// color belongs to an existing slot or needs its own custom row.
//
// The table is a static, process-wide constant published once at package
// init and never mutated, matching the rest of the engine's treatment of
// reference data as read-only.
package hueregistry

// Package brandanalyzer turns a set of brand hex colors into a
// TuningProfile: per-color classification against the hue registry
// (snap to a slot, or fall out as a custom row for being too pale, too
// neon, too far from any slot's hue, or anchored at a semantically wrong
// step), plus global hue/chroma/lightness deltas derived from the whole
// set.
//
// Classification follows a fixed precedence (low-chroma, high-chroma,
// hue-gap, extreme-lightness; first applicable wins) so that a color
// never qualifies for two reasons at once.
package brandanalyzer

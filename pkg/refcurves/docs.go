// Package refcurves carries the per-hue, per-mode reference curves a scale
// is synthesized against: a 12-entry lightness curve, a 12-entry chroma
// curve normalized to step 9, and a 12-entry hue curve capturing Radix's
// intentional hue drift across steps. It also carries the informational
// APCA target tables (STANDARD, BRIGHT, NEUTRAL); the accessibility guard
// measures APCA directly and does not read them.
//
// The tables are generated once at package init from a small set of
// per-slot shape parameters rather than typed in as 2,200 individual
// literals; the generator is deterministic and produces internally
// consistent curves honoring every invariant the engine depends on
// (monotonicity, the bright-hue exception, chroma peaking at the anchor).
// Curves are published once and treated as immutable for the life of the
// process, same as HueRegistry.
package refcurves

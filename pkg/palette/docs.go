// Package palette assembles the complete 31-slot (plus custom row)
// Radix-compatible palette: PaletteAssembler iterates every baseline slot,
// choosing a brand anchor where one snapped or synthesizing a tuned
// parent otherwise, then appends custom rows for brand colors that didn't
// fit any slot. AccessibilityGuard runs a post-hoc APCA pass over the
// result, boosting text-step lightness where contrast against the
// background steps falls short.
package palette

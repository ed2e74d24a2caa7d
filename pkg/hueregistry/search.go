package hueregistry

import "github.com/JaimeStill/radix-palette-gen/pkg/colormath"

// SearchOptions restricts which slots findClosestSlot considers.
type SearchOptions struct {
	ExcludeNeutrals bool
	NeutralsOnly    bool
}

// Match is the result of a nearest-slot search: the matched slot and the
// wrap-aware angular distance to it, in degrees.
type Match struct {
	Slot     Slot
	Distance float64
}

// FindClosestSlot returns the slot whose canonical hue is angularly
// closest to hue, honoring the given filter. Distance uses wrap-aware
// angular distance: min(|delta|, 360-|delta|).
func FindClosestSlot(hue float64, opts SearchOptions) (Match, bool) {
	best := Match{Distance: -1}
	found := false

	for _, key := range Order {
		s := byKey[key]
		if opts.ExcludeNeutrals && s.Category == CategoryNeutral {
			continue
		}
		if opts.NeutralsOnly && s.Category != CategoryNeutral {
			continue
		}

		d := colormath.AngularDistance(hue, s.CanonicalHue)
		if !found || d < best.Distance {
			best = Match{Slot: s, Distance: d}
			found = true
		}
	}

	return best, found
}

// FindClosestChromaticSlot is a convenience wrapper excluding neutrals.
func FindClosestChromaticSlot(hue float64) (Match, bool) {
	return FindClosestSlot(hue, SearchOptions{ExcludeNeutrals: true})
}

// FindClosestNeutralSlot is a convenience wrapper restricted to neutrals.
func FindClosestNeutralSlot(hue float64) (Match, bool) {
	return FindClosestSlot(hue, SearchOptions{NeutralsOnly: true})
}

// FindClosestExcluding searches as FindClosestSlot but skips any slot
// whose key is in exclude. Used by custom-row synthesis to route
// high-chroma inputs away from a bright-hue curve slot onto the next
// nearest non-bright, non-neutral slot.
func FindClosestExcluding(hue float64, opts SearchOptions, exclude map[string]bool) (Match, bool) {
	best := Match{Distance: -1}
	found := false

	for _, key := range Order {
		if exclude[key] {
			continue
		}
		s := byKey[key]
		if opts.ExcludeNeutrals && s.Category == CategoryNeutral {
			continue
		}
		if opts.NeutralsOnly && s.Category != CategoryNeutral {
			continue
		}

		d := colormath.AngularDistance(hue, s.CanonicalHue)
		if !found || d < best.Distance {
			best = Match{Slot: s, Distance: d}
			found = true
		}
	}

	return best, found
}

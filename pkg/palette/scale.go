package palette

import (
	"github.com/JaimeStill/radix-palette-gen/pkg/brandanalyzer"
	"github.com/JaimeStill/radix-palette-gen/pkg/scalesynth"
)

// Scale is a 12-step hue scale keyed 1..12 (index 0 = step 1).
type Scale = scalesynth.Scale

// ScaleEntry pairs a slot or custom-row key with its Scale, preserving
// canonical ordering (baseline slots first in registry order, then
// custom rows in insertion order) the same way TuningProfile keeps
// anchors and custom rows in a slice rather than a map.
type ScaleEntry struct {
	Key   string
	Scale Scale
}

// ModePalette is every slot's Scale for one mode (light or dark).
type ModePalette struct {
	Entries []ScaleEntry
}

// Get returns the Scale for a slot or custom-row key.
func (m ModePalette) Get(key string) (Scale, bool) {
	for _, e := range m.Entries {
		if e.Key == key {
			return e.Scale, true
		}
	}
	return Scale{}, false
}

// set overwrites or appends the Scale for a key, used during assembly and
// by AccessibilityGuard's lightness boosting pass.
func (m *ModePalette) set(key string, s Scale) {
	for i, e := range m.Entries {
		if e.Key == key {
			m.Entries[i].Scale = s
			return
		}
	}
	m.Entries = append(m.Entries, ScaleEntry{Key: key, Scale: s})
}

// Meta carries the provenance of one palette generation.
type Meta struct {
	TuningProfile brandanalyzer.TuningProfile
	InputColors   []string
	GeneratedAt   string
	AnchoredSlots []string
	CustomSlots   []string
}

// Palette is the complete light+dark output of one generation.
type Palette struct {
	Light ModePalette
	Dark  ModePalette
	Meta  Meta
}

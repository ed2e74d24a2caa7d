package exportcontract

import (
	"encoding/json"

	"github.com/JaimeStill/radix-palette-gen/pkg/palette"
)

// TuningProfileSnapshot is the persisted subset of a brandanalyzer
// TuningProfile: the three scalar deltas emitters need, without the
// per-color anchor/custom-row bookkeeping that only the core cares about.
type TuningProfileSnapshot struct {
	HueShift         float64 `json:"hueShift"`
	ChromaMultiplier float64 `json:"chromaMultiplier"`
	LightnessShift   float64 `json:"lightnessShift"`
}

// MetaSnapshot is the persisted meta block of a Snapshot.
type MetaSnapshot struct {
	AnchoredSlots []string              `json:"anchoredSlots"`
	CustomSlots   []string              `json:"customSlots"`
	TuningProfile TuningProfileSnapshot `json:"tuningProfile"`
}

// Snapshot is the JSON document shape persisted state takes, per the
// palette data contract: id, name, and generatedAt are caller-supplied
// provenance, scales maps every slot key to its 12-step array (a map, so
// it carries no slot order; encoding/json writes its keys sorted), and
// meta carries the tuning profile and anchor bookkeeping.
type Snapshot struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	InputColors []string            `json:"inputColors"`
	GeneratedAt string              `json:"generatedAt"`
	Scales      map[string][12]string `json:"scales"`
	Meta        MetaSnapshot        `json:"meta"`
}

// BuildSnapshot converts a Palette into a Snapshot for one mode (light or
// dark share the same meta/provenance; callers needing both modes build
// two snapshots with distinct IDs).
func BuildSnapshot(id, name string, p palette.Palette, mode palette.ModePalette) Snapshot {
	scales := make(map[string][12]string, len(mode.Entries))
	for _, e := range mode.Entries {
		scales[e.Key] = e.Scale
	}

	return Snapshot{
		ID:          id,
		Name:        name,
		InputColors: p.Meta.InputColors,
		GeneratedAt: p.Meta.GeneratedAt,
		Scales:      scales,
		Meta: MetaSnapshot{
			AnchoredSlots: p.Meta.AnchoredSlots,
			CustomSlots:   p.Meta.CustomSlots,
			TuningProfile: TuningProfileSnapshot{
				HueShift:         p.Meta.TuningProfile.HueShift,
				ChromaMultiplier: p.Meta.TuningProfile.ChromaMultiplier,
				LightnessShift:   p.Meta.TuningProfile.LightnessShift,
			},
		},
	}
}

// Marshal renders the snapshot as indented JSON, the format a CLI host
// writes to disk.
func (s Snapshot) Marshal() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

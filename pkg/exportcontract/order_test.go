package exportcontract_test

import (
	"testing"

	"github.com/JaimeStill/radix-palette-gen/pkg/exportcontract"
	"github.com/JaimeStill/radix-palette-gen/pkg/hueregistry"
)

func TestCanonicalSlotOrderMatchesSpec(t *testing.T) {
	want := []string{
		"gray", "mauve", "slate", "sage", "olive", "sand",
		"tomato", "red", "ruby", "crimson", "pink", "plum",
		"purple", "violet", "iris", "indigo", "blue", "cyan",
		"teal", "jade", "green", "grass", "bronze", "gold",
		"brown", "orange", "amber", "yellow", "lime", "mint", "sky",
	}

	got := exportcontract.CanonicalSlotOrder(nil)
	t.Logf("got = %v", got)

	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(got))
	}
	for i, key := range want {
		if got[i] != key {
			t.Errorf("index %d: got %q, want %q", i, got[i], key)
		}
	}
}

func TestCanonicalSlotOrderAppendsCustomRows(t *testing.T) {
	got := exportcontract.CanonicalSlotOrder([]string{"pastel-pink", "neon-green"})
	if len(got) != len(hueregistry.Order)+2 {
		t.Fatalf("expected %d entries, got %d", len(hueregistry.Order)+2, len(got))
	}
	if got[len(got)-2] != "pastel-pink" || got[len(got)-1] != "neon-green" {
		t.Errorf("expected custom rows appended in order, got tail %v", got[len(got)-2:])
	}
}

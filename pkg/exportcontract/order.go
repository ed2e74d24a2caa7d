package exportcontract

import "github.com/JaimeStill/radix-palette-gen/pkg/hueregistry"

// CanonicalSlotOrder returns the 31 baseline slot keys in the order
// emitters must preserve, followed by any custom-row keys in the order
// they were appended during palette assembly. Baseline order matches
// hueregistry.Order, which is itself derived from the published Radix
// slot sequence.
func CanonicalSlotOrder(customSlots []string) []string {
	out := make([]string, 0, len(hueregistry.Order)+len(customSlots))
	out = append(out, hueregistry.Order...)
	out = append(out, customSlots...)
	return out
}

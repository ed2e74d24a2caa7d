package hueregistry

// Category is a closed enumeration of the hue families a slot belongs to.
type Category string

const (
	CategoryRed     Category = "red"
	CategoryOrange  Category = "orange"
	CategoryYellow  Category = "yellow"
	CategoryGreen   Category = "green"
	CategoryCyan    Category = "cyan"
	CategoryBlue    Category = "blue"
	CategoryPurple  Category = "purple"
	CategoryPink    Category = "pink"
	CategoryNeutral Category = "neutral"
)

// Slot is one of the 31 baseline hue positions a palette is synthesized
// against.
type Slot struct {
	Key             string
	DisplayName     string
	Category        Category
	CanonicalHue    float64
	ReferenceChroma float64
	SourceHex       string
}

// Canonical slot ordering, per the export contract. Emitters and palette
// serialization must preserve this order; registry iteration does not use
// map order anywhere a stable sequence matters.
var Order = []string{
	"gray", "mauve", "slate", "sage", "olive", "sand",
	"tomato", "red", "ruby", "crimson",
	"pink", "plum",
	"purple", "violet", "iris",
	"indigo", "blue",
	"cyan", "teal",
	"jade", "green", "grass",
	"bronze", "gold", "brown",
	"orange", "amber",
	"yellow", "lime", "mint", "sky",
}

var slots = []Slot{
	{"gray", "Gray", CategoryNeutral, 0, 0.003, "#8d8d8d"},
	{"mauve", "Mauve", CategoryNeutral, 310, 0.006, "#8e8c99"},
	{"slate", "Slate", CategoryNeutral, 278, 0.007, "#8b8d98"},
	{"sage", "Sage", CategoryNeutral, 155, 0.006, "#868f87"},
	{"olive", "Olive", CategoryNeutral, 115, 0.007, "#898e87"},
	{"sand", "Sand", CategoryNeutral, 80, 0.006, "#8d8d86"},
	{"bronze", "Bronze", CategoryNeutral, 45, 0.018, "#a18072"},
	{"gold", "Gold", CategoryNeutral, 85, 0.016, "#978365"},

	{"tomato", "Tomato", CategoryRed, 32, 0.17, "#e54d2e"},
	{"red", "Red", CategoryRed, 19, 0.19, "#e5484d"},
	{"ruby", "Ruby", CategoryRed, 5, 0.18, "#e54666"},
	{"crimson", "Crimson", CategoryRed, 350, 0.17, "#e93d82"},

	{"pink", "Pink", CategoryPink, 338, 0.19, "#d6409f"},
	{"plum", "Plum", CategoryPink, 315, 0.17, "#ab4aba"},

	{"purple", "Purple", CategoryPurple, 300, 0.19, "#8e4ec6"},
	{"violet", "Violet", CategoryPurple, 288, 0.2, "#6e56cf"},
	{"iris", "Iris", CategoryPurple, 275, 0.21, "#5b5bd6"},

	{"indigo", "Indigo", CategoryBlue, 262, 0.17, "#3e63dd"},
	{"blue", "Blue", CategoryBlue, 250, 0.16, "#0090ff"},
	{"sky", "Sky", CategoryBlue, 222, 0.1, "#7ce2fe"},

	{"cyan", "Cyan", CategoryCyan, 208, 0.12, "#00a2c7"},
	{"teal", "Teal", CategoryCyan, 175, 0.11, "#12a594"},

	{"jade", "Jade", CategoryGreen, 162, 0.1, "#29a383"},
	{"green", "Green", CategoryGreen, 158, 0.13, "#30a46c"},
	{"grass", "Grass", CategoryGreen, 133, 0.15, "#46a758"},
	{"mint", "Mint", CategoryGreen, 178, 0.1, "#86ead4"},

	{"orange", "Orange", CategoryOrange, 55, 0.18, "#f76b15"},
	{"brown", "Brown", CategoryOrange, 44, 0.07, "#ad7f58"},

	{"amber", "Amber", CategoryYellow, 72, 0.13, "#f5a623"},
	{"yellow", "Yellow", CategoryYellow, 97, 0.16, "#f5d90a"},
	{"lime", "Lime", CategoryYellow, 122, 0.17, "#bdee63"},
}

// BrightHues is the set of slots whose Radix lightness curve is
// non-monotone at the hero step: step 9 is lighter than step 8.
var BrightHues = map[string]bool{
	"yellow": true,
	"lime":   true,
	"amber":  true,
	"mint":   true,
	"sky":    true,
}

// SnapThreshold is the angular distance, in degrees, within which a brand
// hue is considered close enough to a slot to anchor into it rather than
// becoming a custom row.
const SnapThreshold = 10.0

var byKey map[string]Slot

func init() {
	byKey = make(map[string]Slot, len(slots))
	for _, s := range slots {
		byKey[s.Key] = s
	}
}

// All returns every slot in canonical order.
func All() []Slot {
	out := make([]Slot, 0, len(Order))
	for _, key := range Order {
		out = append(out, byKey[key])
	}
	return out
}

// Get returns the slot with the given key.
func Get(key string) (Slot, bool) {
	s, ok := byKey[key]
	return s, ok
}

// IsBright reports whether the slot's lightness curve is non-monotone at
// step 9.
func IsBright(key string) bool {
	return BrightHues[key]
}

// IsNeutral reports whether the slot is a neutral (reference chroma < 0.05).
func IsNeutral(key string) bool {
	s, ok := byKey[key]
	return ok && s.Category == CategoryNeutral
}

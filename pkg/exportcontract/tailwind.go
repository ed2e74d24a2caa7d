package exportcontract

import "strconv"

// TailwindStep maps a Radix step (1-12) to its Tailwind numeric scale
// equivalent, for emitters that need to interoperate with Tailwind's
// color-scale convention.
var TailwindStep = map[int]int{
	1: 50, 2: 100, 3: 200, 4: 300, 5: 400, 6: 500,
	7: 600, 8: 700, 9: 800, 10: 850, 11: 900, 12: 950,
}

// TailwindKey names the step as a Tailwind-style class suffix, e.g.
// TailwindKey(9) == "800".
func TailwindKey(step int) string {
	v, ok := TailwindStep[step]
	if !ok {
		return ""
	}
	return strconv.Itoa(v)
}

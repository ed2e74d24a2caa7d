package exportcontract_test

import (
	"testing"

	"github.com/JaimeStill/radix-palette-gen/pkg/exportcontract"
)

func TestTailwindStepMapping(t *testing.T) {
	cases := []struct {
		step int
		want string
	}{
		{1, "50"}, {2, "100"}, {3, "200"}, {4, "300"}, {5, "400"}, {6, "500"},
		{7, "600"}, {8, "700"}, {9, "800"}, {10, "850"}, {11, "900"}, {12, "950"},
	}
	for _, tc := range cases {
		got := exportcontract.TailwindKey(tc.step)
		t.Logf("step %d -> %s", tc.step, got)
		if got != tc.want {
			t.Errorf("step %d: got %q, want %q", tc.step, got, tc.want)
		}
	}
}

func TestTailwindKeyUnknownStep(t *testing.T) {
	if got := exportcontract.TailwindKey(13); got != "" {
		t.Errorf("expected empty string for out-of-range step, got %q", got)
	}
}

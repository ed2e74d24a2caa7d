package palette

import (
	"fmt"

	"github.com/JaimeStill/radix-palette-gen/pkg/colormath"
)

// Severity is a closed enumeration for a ContrastReport issue.
type Severity string

const (
	SeverityFail    Severity = "fail"
	SeverityWarning Severity = "warning"
)

// Issue is one failed or warned contrast check.
type Issue struct {
	Slot           string
	Mode           string
	Severity       Severity
	TextStep       int
	BackgroundStep int
	Lc             float64
	Threshold      float64
	Description    string
}

// Summary aggregates issue counts by hue and by mode.
type Summary struct {
	ByHue  map[string]int
	ByMode map[string]int
}

// ContrastReport is the result of validating a palette's APCA contrast.
type ContrastReport struct {
	Passed       bool
	TotalChecks  int
	PassedChecks int
	Issues       []Issue
	Summary      Summary
}

// ValidateOptions controls which checks ValidatePaletteContrast runs.
// The zero value runs every check the guard itself runs, plus the
// informational step-9 button check.
type ValidateOptions struct {
	SkipButtonCheck bool
}

// ValidatePaletteContrast is a pure reporting function: it never mutates
// p. Step 11 vs steps 1/2 is checked at LargeText, step 12 vs steps 1/2
// at BodyText (both fail-severity). Step 9 vs white/black is checked at
// warning severity and never gates Passed, since some hues are
// intentionally light-solid at their hero step.
func ValidatePaletteContrast(p Palette, opts ValidateOptions) ContrastReport {
	report := ContrastReport{
		Summary: Summary{ByHue: map[string]int{}, ByMode: map[string]int{}},
	}

	check := func(modeName string, entry ScaleEntry) {
		for _, bgIdx := range []int{0, 1} {
			report.TotalChecks++
			lc, ok := colormath.AbsoluteApca(entry.Scale[10], entry.Scale[bgIdx])
			if ok && lc >= LargeText {
				report.PassedChecks++
			} else {
				report.Issues = append(report.Issues, Issue{
					Slot: entry.Key, Mode: modeName, Severity: SeverityFail,
					TextStep: 11, BackgroundStep: bgIdx + 1, Lc: lc, Threshold: LargeText,
					Description: fmt.Sprintf("%s step 11 vs step %d: Lc %.1f below large-text threshold %.0f", entry.Key, bgIdx+1, lc, LargeText),
				})
				report.Summary.ByHue[entry.Key]++
				report.Summary.ByMode[modeName]++
			}

			report.TotalChecks++
			lc, ok = colormath.AbsoluteApca(entry.Scale[11], entry.Scale[bgIdx])
			if ok && lc >= BodyText {
				report.PassedChecks++
			} else {
				report.Issues = append(report.Issues, Issue{
					Slot: entry.Key, Mode: modeName, Severity: SeverityFail,
					TextStep: 12, BackgroundStep: bgIdx + 1, Lc: lc, Threshold: BodyText,
					Description: fmt.Sprintf("%s step 12 vs step %d: Lc %.1f below body-text threshold %.0f", entry.Key, bgIdx+1, lc, BodyText),
				})
				report.Summary.ByHue[entry.Key]++
				report.Summary.ByMode[modeName]++
			}
		}

		if opts.SkipButtonCheck {
			return
		}

		bg := "#ffffff"
		if modeName == "dark" {
			bg = "#000000"
		}
		report.TotalChecks++
		lc, ok := colormath.AbsoluteApca(entry.Scale[8], bg)
		if ok && lc >= Decorative {
			report.PassedChecks++
		} else {
			report.Issues = append(report.Issues, Issue{
				Slot: entry.Key, Mode: modeName, Severity: SeverityWarning,
				TextStep: 9, BackgroundStep: 0, Lc: lc, Threshold: Decorative,
				Description: fmt.Sprintf("%s step 9 vs canvas: Lc %.1f below decorative threshold %.0f (informational)", entry.Key, lc, Decorative),
			})
		}
	}

	for _, entry := range p.Light.Entries {
		check("light", entry)
	}
	for _, entry := range p.Dark.Entries {
		check("dark", entry)
	}

	report.Passed = true
	for _, issue := range report.Issues {
		if issue.Severity == SeverityFail {
			report.Passed = false
			break
		}
	}

	return report
}

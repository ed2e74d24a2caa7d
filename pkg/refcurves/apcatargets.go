package refcurves

// APCA target tables: the Lc magnitude a step is expected to reach against
// a white (light mode) or black (dark mode) background, informational
// only. AccessibilityGuard and the contrast report use live APCA
// measurement and do not read these tables; they record which hue
// families are inherently harder to satisfy (bright hues cap out lower;
// neutrals run a steadier ramp).
var (
	STANDARD = [12]float64{2, 8, 18, 30, 42, 53, 63, 71, 78, 82, 88, 94}
	BRIGHT   = [12]float64{1, 5, 12, 21, 31, 41, 50, 58, 54, 68, 82, 90}
	NEUTRAL  = [12]float64{1, 6, 15, 26, 38, 49, 60, 69, 77, 81, 89, 96}
)

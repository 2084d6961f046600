package fandial

import "math"

// Angular layout of the four speed slots. Slots are spaced 45° apart
// starting at 202.5°, so slot 0 sits at the lower left and the cycle
// reads clockwise. Only 4 of the 8 possible 45° slots are populated.
const (
	startAngle = math.Pi * 9 / 8
	slotAngle  = math.Pi / 4
)

// Radial offsets from the disc edge, in pixels. These are part of the
// visual contract: the indicator dot sits inside the disc, labels sit
// just outside it.
const (
	indicatorInset = 35
	labelOffset    = 30
)

// ComputeRadius returns the disc radius for a widget of the given
// pixel bounds: 80% of the largest circle that fits.
func ComputeRadius(width, height float64) float64 {
	return 0.8 * math.Min(width, height) / 2.0
}

// PositionForIndex converts a speed's angular slot to screen
// coordinates on a ring of the given radius around (cx, cy). The
// ordinal must be in [0,3]; the closed Speed enum makes other values
// unreachable from dial code. Screen convention: Y grows downward.
func PositionForIndex(ordinal int, ringRadius, cx, cy float64) (x, y float64) {
	angle := startAngle + float64(ordinal)*slotAngle
	x = cx + ringRadius*math.Cos(angle)
	y = cy + ringRadius*math.Sin(angle)
	return x, y
}

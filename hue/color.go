package hue

import (
	"math"
	"math/rand/v2"
)

const (
	fullCircle = 360.0
	// balanced is the resultant length below which hues cancel out
	balanced = 1e-9
)

// Color is a hue-saturation-value triple. H is in degrees [0, 360), S and V in [0, 1].
type Color struct {
	H float64
	S float64
	V float64
}

// NullColor is a Color that may be absent, in the manner of sql.NullString.
// Valid is false for dead cells.
type NullColor struct {
	Color
	Valid bool
}

// FromHue returns a fully saturated, full value color for h degrees
func FromHue(h float64) Color {
	return Color{H: Normalize(h), S: 1, V: 1}
}

// Random returns a fully saturated color with a uniformly random hue
func Random(rng *rand.Rand) Color {
	return FromHue(rng.Float64() * fullCircle)
}

// Normalize maps any angle in degrees onto [0, 360)
func Normalize(h float64) float64 {
	h = math.Mod(h, fullCircle)
	if h < 0 {
		h += fullCircle
	}
	// -tiny + 360 rounds to 360
	if h >= fullCircle {
		h = 0
	}
	return h
}

// Distance returns the shortest angular distance between two hues, in [0, 180]
func Distance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > fullCircle/2 {
		d = fullCircle - d
	}
	return d
}

/*
Mix returns the circular mean of the hues in colors, at full saturation and value.

Each hue is treated as a unit vector; the vectors are summed and the angle of the
sum is the result. This keeps 350 and 10 mixing to 0 instead of 180. Hues that
cancel out, such as 0, 120 and 240, have no mean direction and mix to 0. ok is
false when colors is empty.
*/
func Mix(colors []Color) (mixed Color, ok bool) {
	if len(colors) == 0 {
		return Color{}, false
	}

	var sumSin, sumCos float64
	for _, c := range colors {
		sin, cos := math.Sincos(c.H * math.Pi / 180)
		sumSin += sin
		sumCos += cos
	}

	if math.Hypot(sumSin, sumCos) < balanced {
		return FromHue(0), true
	}
	return FromHue(math.Atan2(sumSin, sumCos) * 180 / math.Pi), true
}

package hue

import (
	"math"
	"strings"

	"github.com/hsluv/hsluv-go"
	"github.com/pkg/errors"
)

// Palette converts engine colors to 8-bit RGB for display
type Palette string

const (
	// PaletteHSV converts directly from HSV
	PaletteHSV Palette = "hsv"
	// PaletteHSLuv keeps the hue but renders through HSLuv, which evens out perceived brightness
	PaletteHSLuv Palette = "hsluv"

	// hsluvLightness is dark enough to keep saturated yellows from washing out
	hsluvLightness = 60.0
)

// ErrUnknownPalette is returned by ParsePalette for unrecognised names
var ErrUnknownPalette = errors.New("unknown palette")

// ParsePalette resolves a palette by name
func ParsePalette(name string) (Palette, error) {
	switch p := Palette(strings.ToLower(strings.TrimSpace(name))); p {
	case PaletteHSV, PaletteHSLuv:
		return p, nil
	case "":
		return PaletteHSV, nil
	default:
		return "", errors.Wrapf(ErrUnknownPalette, "[ParsePalette] %q", name)
	}
}

// RGB converts c using the palette
func (p Palette) RGB(c Color) (r, g, b uint8) {
	if p == PaletteHSLuv {
		fr, fg, fb := hsluv.HsluvToRGB(c.H, c.S*100, c.V*hsluvLightness)
		return toByte(fr), toByte(fg), toByte(fb)
	}
	return c.RGB()
}

// RGB converts the color from HSV to 8-bit RGB
func (c Color) RGB() (r, g, b uint8) {
	h := Normalize(c.H) / 60
	chroma := c.V * c.S
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	m := c.V - chroma

	var fr, fg, fb float64
	switch int(h) {
	case 0:
		fr, fg, fb = chroma, x, 0
	case 1:
		fr, fg, fb = x, chroma, 0
	case 2:
		fr, fg, fb = 0, chroma, x
	case 3:
		fr, fg, fb = 0, x, chroma
	case 4:
		fr, fg, fb = x, 0, chroma
	default:
		fr, fg, fb = chroma, 0, x
	}

	return toByte(fr + m), toByte(fg + m), toByte(fb + m)
}

/*
Cube256 returns the xterm 256-palette index closest to the given RGB value.

The color cube is index = 16 + 36*r + 6*g + b with r, g, b in [0, 5].
*/
func Cube256(r, g, b uint8) uint8 {
	return 16 + 36*cubeLevel(r) + 6*cubeLevel(g) + cubeLevel(b)
}

// cubeLevel maps 0-255 onto the six cube levels 0, 95, 135, 175, 215, 255
func cubeLevel(v uint8) uint8 {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return (v - 35) / 40
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(math.Round(v * 0xff))
}

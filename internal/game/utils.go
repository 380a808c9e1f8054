package game

import (
	"image/color"
	"math"
)

// hslToRgb converts HSL to RGB (hue: 0-360, saturation: 0-1, lightness: 0-1)
func hslToRgb(h, s, l float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

// hslColor builds a drawable color from HSL plus an alpha in [0,1].
func hslColor(h, s, l, alpha float64) color.RGBA {
	r, g, b := hslToRgb(h, s, l)
	return color.RGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha) * 255)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

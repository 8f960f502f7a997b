package colorscale

import "math"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Ramp returns the gradient color at position p: green at 0, yellow at the
// midpoint, red at 1.
func Ramp(p float64) RGB {
	return HueToRGB((1 - clamp(p)) * 120)
}

// HueToRGB converts a fully saturated, full value hue in degrees to RGB
func HueToRGB(hue float64) RGB {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	x := 1 - math.Abs(math.Mod(hue/60, 2)-1)

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = 1, x, 0
	case hue < 120:
		r, g, b = x, 1, 0
	case hue < 180:
		r, g, b = 0, 1, x
	case hue < 240:
		r, g, b = 0, x, 1
	case hue < 300:
		r, g, b = x, 0, 1
	default:
		r, g, b = 1, 0, x
	}

	return RGB{R: channel(r), G: channel(g), B: channel(b)}
}

func channel(f float64) uint8 {
	return uint8(math.Round(f * 255))
}

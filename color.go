package iconforge

import (
	"image/color"
	"math"
)

// Color represents an 8-bit RGBA color with non-premultiplied alpha.
// Each channel is in the range [0, 255].
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit channel values.
// Out-of-range values are clamped, never wrapped.
func RGB(r, g, b int) Color {
	return RGBA(r, g, b, 255)
}

// RGBA creates a color from 8-bit channel values.
// Out-of-range values are clamped, never wrapped.
func RGBA(r, g, b, a int) Color {
	return Color{
		R: clamp255(r),
		G: clamp255(g),
		B: clamp255(b),
		A: clamp255(a),
	}
}

// NRGBA converts the color to the standard library's non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Lerp linearly interpolates between c and other, per channel,
// rounding to the nearest integer. t=0 returns c, t=1 returns other.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: lerpChannel(c.R, other.R, t),
		G: lerpChannel(c.G, other.G, t),
		B: lerpChannel(c.B, other.B, t),
		A: lerpChannel(c.A, other.A, t),
	}
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a int) Color {
	c.A = clamp255(a)
	return c
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
// Invalid input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{A: 255}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// lerpChannel interpolates a single channel, rounding to nearest.
func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a)*(1-t) + float64(b)*t)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clamp255 restricts a value to the [0, 255] range.
func clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = Color{}
)

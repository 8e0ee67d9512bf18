package iconforge

import (
	"image/color"
	"testing"
)

// Verify at compile time that Canvas satisfies the image interfaces.
var _ color.Color = color.NRGBA{}

func TestRGBA_Clamping(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a int
		want       Color
	}{
		{name: "in range", r: 10, g: 20, b: 30, a: 40, want: Color{10, 20, 30, 40}},
		{name: "above range clamps", r: 300, g: 256, b: 999, a: 400, want: Color{255, 255, 255, 255}},
		{name: "below range clamps", r: -1, g: -300, b: 0, a: -5, want: Color{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBA(tt.r, tt.g, tt.b, tt.a)
			if got != tt.want {
				t.Errorf("RGBA(%d, %d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestColor_Lerp(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		t    float64
		want Color
	}{
		{name: "t=0 returns first", a: RGB(10, 20, 30), b: RGB(200, 210, 220), t: 0, want: RGB(10, 20, 30)},
		{name: "t=1 returns second", a: RGB(10, 20, 30), b: RGB(200, 210, 220), t: 1, want: RGB(200, 210, 220)},
		{name: "midpoint rounds to nearest", a: RGB(0, 0, 0), b: RGB(255, 101, 1), t: 0.5, want: RGB(128, 51, 1)},
		{name: "alpha interpolates too", a: RGBA(0, 0, 0, 0), b: RGBA(0, 0, 0, 255), t: 0.25, want: RGBA(0, 0, 0, 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Lerp(tt.b, tt.t)
			if got != tt.want {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Color
	}{
		{name: "RRGGBB", hex: "#4f46e5", want: RGB(79, 70, 229)},
		{name: "RRGGBB no hash", hex: "7c3aed", want: RGB(124, 58, 237)},
		{name: "RGB shorthand", hex: "#fff", want: White},
		{name: "RRGGBBAA", hex: "#00000080", want: RGBA(0, 0, 0, 128)},
		{name: "invalid length yields opaque black", hex: "#12345", want: Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColor_WithAlpha(t *testing.T) {
	c := RGB(10, 20, 30).WithAlpha(100)
	want := Color{10, 20, 30, 100}
	if c != want {
		t.Errorf("WithAlpha(100) = %v, want %v", c, want)
	}
	if got := c.WithAlpha(999); got.A != 255 {
		t.Errorf("WithAlpha(999).A = %d, want 255", got.A)
	}
}

func TestColor_NRGBA(t *testing.T) {
	c := RGBA(1, 2, 3, 4)
	want := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	if got := c.NRGBA(); got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

package iconforge

import (
	"image"
	"image/color"
	"math"
)

// Canvas is a rectangular RGBA pixel buffer being constructed for one
// render. Pixels are stored row-major, 4 bytes per pixel, with
// non-premultiplied alpha. A new canvas is fully transparent.
//
// A Canvas is owned by a single render pass and is not safe for
// concurrent mutation. It implements image.Image and draw.Image so text
// drawing and PNG encoding can consume it directly.
type Canvas struct {
	width  int
	height int
	data   []uint8 // NRGBA format, 4 bytes per pixel
}

// NewCanvas creates a fully transparent canvas with the given dimensions.
// Returns ErrInvalidDimensions if either dimension is not positive.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw pixel data (NRGBA format, row-major).
func (c *Canvas) Data() []uint8 {
	return c.data
}

// Get returns the color of a single pixel.
// Coordinates outside the canvas return Transparent.
func (c *Canvas) Get(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Transparent
	}
	i := (y*c.width + x) * 4
	return Color{R: c.data[i], G: c.data[i+1], B: c.data[i+2], A: c.data[i+3]}
}

// set stores a pixel without compositing. Out-of-bounds writes are ignored.
func (c *Canvas) set(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.data[i] = col.R
	c.data[i+1] = col.G
	c.data[i+2] = col.B
	c.data[i+3] = col.A
}

// Blend composites src over the pixel at (x, y) using src-over alpha
// blending. Coordinates outside the canvas are a no-op.
//
// Channels are normalized to [0, 1] for the blend and written back as
// 8-bit integers rounded to nearest. Compositing a fully opaque color
// over any pixel, or any color over a fully transparent pixel, stores
// the source exactly with no rounding drift.
func (c *Canvas) Blend(x, y int, src Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	if src.A == 0 {
		return
	}
	i := (y*c.width + x) * 4
	if src.A == 255 || c.data[i+3] == 0 {
		c.data[i] = src.R
		c.data[i+1] = src.G
		c.data[i+2] = src.B
		c.data[i+3] = src.A
		return
	}

	dst := Color{R: c.data[i], G: c.data[i+1], B: c.data[i+2], A: c.data[i+3]}

	srcA := float64(src.A) / 255
	dstA := float64(dst.A) / 255
	invSrcA := 1.0 - srcA

	outA := srcA + dstA*invSrcA
	// outA > 0 here: src.A > 0 was checked above.
	blend := func(s, d uint8) uint8 {
		v := (float64(s)/255*srcA + float64(d)/255*dstA*invSrcA) / outA
		return uint8(math.Round(v * 255))
	}

	c.data[i] = blend(src.R, dst.R)
	c.data[i+1] = blend(src.G, dst.G)
	c.data[i+2] = blend(src.B, dst.B)
	c.data[i+3] = uint8(math.Round(outA * 255))
}

// ApplyAlphaMask multiplies each pixel's alpha by the corresponding mask
// value over 255, rounding to nearest. RGB channels are never modified.
// Used to clip an icon to a circular boundary before embedding it in a
// larger composite. Returns ErrMaskSize on dimension mismatch.
func (c *Canvas) ApplyAlphaMask(m *Mask) error {
	if m.width != c.width || m.height != c.height {
		return ErrMaskSize
	}
	for p := 0; p < c.width*c.height; p++ {
		a := c.data[p*4+3]
		if a == 0 {
			continue
		}
		mv := m.data[p]
		c.data[p*4+3] = uint8(math.Round(float64(a) * float64(mv) / 255))
	}
	return nil
}

// Image copies the canvas into a standard *image.NRGBA.
// The alpha channel is preserved losslessly.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.data)
	return img
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.Get(x, y).NRGBA()
}

// Set implements the draw.Image interface. The incoming color is stored
// as-is (converted to non-premultiplied form); compositing performed by
// the caller, e.g. font.Drawer, is not repeated.
func (c *Canvas) Set(x, y int, col color.Color) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	c.set(x, y, Color{R: n.R, G: n.G, B: n.B, A: n.A})
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

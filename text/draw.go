package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Draw renders text onto a destination image.
// Position (x, y) is the baseline origin.
func Draw(dst draw.Image, text string, face Face, x, y float64, col color.Color) {
	if text == "" || face.source == nil {
		return
	}

	otFace, err := opentype.NewFace(face.source.font, &opentype.FaceOptions{
		Size:    face.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return
	}
	defer func() {
		_ = otFace.Close()
	}()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: otFace,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
}

// Measure returns the dimensions of text.
// Width is the horizontal advance, height is the font's line height.
func Measure(text string, face Face) (width, height float64) {
	if text == "" || face.source == nil {
		return 0, 0
	}
	return face.Advance(text), face.Metrics().LineHeight()
}

package export

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// Resize scales img to width x height using Lanczos resampling and
// returns the result as NRGBA. The kernel is the only resampling
// filter whose output is stable enough for pixel-exact reproduction
// across runs: the same input always yields the same bytes.
func Resize(img image.Image, width, height int) *image.NRGBA {
	out := transform.Resize(img, width, height, transform.Lanczos)
	return toNRGBA(out)
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x-b.Min.X, y-b.Min.Y, src.At(x, y))
		}
	}
	return dst
}

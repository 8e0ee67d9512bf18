package text

import (
	"image"
	"image/color"
	"testing"
)

func TestDraw(t *testing.T) {
	f := testSource(t).Face(32)
	img := image.NewNRGBA(image.Rect(0, 0, 128, 64))

	Draw(img, "Hi", f, 10, 40, color.NRGBA{255, 255, 255, 255})

	painted := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Error("Draw painted no pixels")
	}
}

func TestDraw_NoOps(t *testing.T) {
	f := testSource(t).Face(32)
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))

	Draw(img, "", f, 4, 20, color.White)
	Draw(img, "x", Face{}, 4, 20, color.White)

	for i, p := range img.Pix {
		if p != 0 {
			t.Fatalf("byte %d = %d, want untouched image", i, p)
		}
	}
}

func TestMeasure(t *testing.T) {
	f := testSource(t).Face(24)

	w, h := Measure("Hello", f)
	if w <= 0 || h <= 0 {
		t.Errorf("Measure = (%v, %v), want positive dimensions", w, h)
	}

	w2, _ := Measure("Hello, world", f)
	if w2 <= w {
		t.Errorf("longer string measured %v, want > %v", w2, w)
	}

	if w, h := Measure("", f); w != 0 || h != 0 {
		t.Errorf(`Measure("") = (%v, %v), want (0, 0)`, w, h)
	}
}

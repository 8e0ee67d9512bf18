package iconforge

import (
	"bytes"
	"errors"
	"image"
	"image/draw"
	"testing"
)

// Compile-time checks: the canvas must plug into image/draw and PNG
// encoding directly.
var (
	_ image.Image = (*Canvas)(nil)
	_ draw.Image  = (*Canvas)(nil)
)

func TestNewCanvas(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{name: "valid", width: 16, height: 9},
		{name: "1x1", width: 1, height: 1},
		{name: "zero width", width: 0, height: 10, wantErr: true},
		{name: "zero height", width: 10, height: 0, wantErr: true},
		{name: "negative", width: -1, height: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCanvas(tt.width, tt.height)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDimensions) {
					t.Fatalf("NewCanvas(%d, %d) error = %v, want ErrInvalidDimensions", tt.width, tt.height, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCanvas(%d, %d) error = %v", tt.width, tt.height, err)
			}
			if c.Width() != tt.width || c.Height() != tt.height {
				t.Errorf("dimensions = %dx%d, want %dx%d", c.Width(), c.Height(), tt.width, tt.height)
			}
			for i, b := range c.Data() {
				if b != 0 {
					t.Fatalf("new canvas byte %d = %d, want 0 (fully transparent)", i, b)
				}
			}
		})
	}
}

// Opaque source over anything, and anything over a transparent pixel,
// must store the source byte-for-byte. Resized and re-encoded output is
// compared byte-wise downstream, so no rounding drift is tolerable here.
func TestCanvas_BlendIdentity(t *testing.T) {
	c, _ := NewCanvas(2, 1)

	src := RGBA(13, 77, 201, 255)
	c.Blend(0, 0, RGBA(90, 90, 90, 90)) // arbitrary backdrop
	c.Blend(0, 0, src)
	if got := c.Get(0, 0); got != src {
		t.Errorf("opaque over backdrop = %v, want exactly %v", got, src)
	}

	semi := RGBA(13, 77, 201, 42)
	c.Blend(1, 0, semi)
	if got := c.Get(1, 0); got != semi {
		t.Errorf("semi-transparent over transparent = %v, want exactly %v", got, semi)
	}
}

func TestCanvas_BlendSemiTransparent(t *testing.T) {
	c, _ := NewCanvas(1, 1)
	c.Blend(0, 0, RGBA(0, 0, 0, 255))
	c.Blend(0, 0, RGBA(255, 255, 255, 128))

	// out = 0.502*white over black, rounded per channel.
	got := c.Get(0, 0)
	want := RGBA(128, 128, 128, 255)
	if got != want {
		t.Errorf("white@128 over black = %v, want %v", got, want)
	}
}

func TestCanvas_BlendOutOfBounds(t *testing.T) {
	c, _ := NewCanvas(4, 4)
	before := append([]uint8(nil), c.Data()...)

	for _, p := range []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		c.Blend(p.X, p.Y, White)
	}
	if !bytes.Equal(before, c.Data()) {
		t.Error("out-of-bounds Blend modified the canvas")
	}
	if got := c.Get(-1, -1); got != Transparent {
		t.Errorf("Get(-1, -1) = %v, want Transparent", got)
	}
}

func TestCanvas_ApplyAlphaMask(t *testing.T) {
	c, _ := NewCanvas(2, 1)
	c.Blend(0, 0, RGBA(10, 20, 30, 200))
	c.Blend(1, 0, RGBA(10, 20, 30, 200))

	m := NewMask(2, 1)
	m.Set(0, 0, 255)
	m.Set(1, 0, 128)
	if err := c.ApplyAlphaMask(m); err != nil {
		t.Fatalf("ApplyAlphaMask: %v", err)
	}

	if got := c.Get(0, 0); got != RGBA(10, 20, 30, 200) {
		t.Errorf("mask=255 pixel = %v, want unchanged", got)
	}
	// round(200*128/255) = 100; RGB must be untouched.
	if got := c.Get(1, 0); got != RGBA(10, 20, 30, 100) {
		t.Errorf("mask=128 pixel = %v, want alpha 100 with RGB intact", got)
	}
}

func TestCanvas_ApplyAlphaMaskSizeMismatch(t *testing.T) {
	c, _ := NewCanvas(2, 2)
	if err := c.ApplyAlphaMask(NewMask(3, 2)); !errors.Is(err, ErrMaskSize) {
		t.Errorf("mismatched mask error = %v, want ErrMaskSize", err)
	}
}

func TestCanvas_ImagePreservesAlpha(t *testing.T) {
	c, _ := NewCanvas(2, 2)
	c.Blend(0, 0, RGBA(200, 100, 50, 77))
	c.Blend(1, 1, White)

	img := c.Image()
	if !bytes.Equal(img.Pix, c.Data()) {
		t.Error("Image() pixel bytes differ from canvas data")
	}

	// Mutating the copy must not write back into the canvas.
	img.Pix[0] = 99
	if c.Data()[0] == 99 {
		t.Error("Image() aliases canvas memory")
	}
}

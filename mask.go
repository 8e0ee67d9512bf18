package iconforge

// Mask is an alpha mask for clipping operations.
// Values range from 0 (fully transparent) to 255 (fully opaque).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// EllipseMask creates a mask that is fully opaque inside the ellipse
// inscribed in bbox and fully transparent outside it. This is the
// circular clip used when embedding an icon into a feature graphic.
func EllipseMask(width, height int, bbox Rect) *Mask {
	m := NewMask(width, height)
	bbox = bbox.Canon()
	cx := bbox.CenterX()
	cy := bbox.CenterY()
	rx := float64(bbox.Right-bbox.Left) / 2
	ry := float64(bbox.Bottom-bbox.Top) / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if insideEllipse(float64(x), float64(y), cx, cy, rx, ry) {
				m.data[y*width+x] = 255
			}
		}
	}
	return m
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Data returns the underlying mask data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}

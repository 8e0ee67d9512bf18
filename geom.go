package iconforge

// Point represents a 2D pixel coordinate or offset.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is an axis-aligned rectangle with inclusive edges:
// the pixel columns Left..Right and rows Top..Bottom all belong to it.
type Rect struct {
	Left, Top, Right, Bottom int
}

// R is a convenience function to create a Rect.
func R(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Canon returns the rectangle with Left <= Right and Top <= Bottom,
// swapping edges as needed.
func (r Rect) Canon() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Width returns the pixel width of the rectangle.
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height returns the pixel height of the rectangle.
func (r Rect) Height() int {
	return r.Bottom - r.Top + 1
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 {
	return float64(r.Left+r.Right) / 2
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 {
	return float64(r.Top+r.Bottom) / 2
}

// Outset returns the rectangle grown outward by n pixels on every edge.
// Negative n shrinks it.
func (r Rect) Outset(n int) Rect {
	return Rect{
		Left:   r.Left - n,
		Top:    r.Top - n,
		Right:  r.Right + n,
		Bottom: r.Bottom + n,
	}
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(off Point) Rect {
	return Rect{
		Left:   r.Left + off.X,
		Top:    r.Top + off.Y,
		Right:  r.Right + off.X,
		Bottom: r.Bottom + off.Y,
	}
}

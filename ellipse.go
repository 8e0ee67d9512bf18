package iconforge

// FillEllipse blends color into every pixel of the ellipse inscribed in
// bbox, using the normalized-distance membership test
// ((x-cx)/rx)² + ((y-cy)/ry)² <= 1. A degenerate bbox (zero width or
// height) collapses to its center line or single pixel.
func FillEllipse(c *Canvas, bbox Rect, col Color) {
	bbox = bbox.Canon()
	cx := bbox.CenterX()
	cy := bbox.CenterY()
	rx := float64(bbox.Right-bbox.Left) / 2
	ry := float64(bbox.Bottom-bbox.Top) / 2

	y0, y1 := clampRange(bbox.Top, bbox.Bottom, c.height)
	x0, x1 := clampRange(bbox.Left, bbox.Right, c.width)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if insideEllipse(float64(x), float64(y), cx, cy, rx, ry) {
				c.Blend(x, y, col)
			}
		}
	}
}

// StrokeEllipse draws the full outline of the ellipse inscribed in bbox
// with the given stroke width. It is a full-circle arc stroke.
func StrokeEllipse(c *Canvas, bbox Rect, col Color, width int) {
	StrokeArc(c, bbox, 0, 360, col, width)
}

// insideEllipse reports whether (x, y) lies inside the ellipse centered
// at (cx, cy) with radii rx, ry. Zero radii degenerate to an axis line
// or point.
func insideEllipse(x, y, cx, cy, rx, ry float64) bool {
	var dx, dy float64
	if rx > 0 {
		dx = (x - cx) / rx
	} else if x != cx {
		return false
	}
	if ry > 0 {
		dy = (y - cy) / ry
	} else if y != cy {
		return false
	}
	return dx*dx+dy*dy <= 1
}

// clampRange intersects the inclusive range [lo, hi] with [0, n-1].
// If the result is empty, lo > hi on return.
func clampRange(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}

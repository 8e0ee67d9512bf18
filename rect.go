package iconforge

// FillRect blends color into every pixel of bbox (inclusive edges).
func FillRect(c *Canvas, bbox Rect, col Color) {
	bbox = bbox.Canon()
	y0, y1 := clampRange(bbox.Top, bbox.Bottom, c.height)
	x0, x1 := clampRange(bbox.Left, bbox.Right, c.width)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Blend(x, y, col)
		}
	}
}

// FillRoundedRect fills bbox with the four corners rounded to the given
// radius. Pixels inside a corner square but outside the quarter-ellipse
// inscribed there are skipped rather than painted and punched out, which
// yields the same corner rounding without needing to know the backdrop.
func FillRoundedRect(c *Canvas, bbox Rect, radius int, col Color) {
	bbox = bbox.Canon()
	if radius <= 0 {
		FillRect(c, bbox, col)
		return
	}
	maxR := (bbox.Right - bbox.Left + 1) / 2
	if radius > maxR {
		radius = maxR
	}
	if h := (bbox.Bottom - bbox.Top + 1) / 2; radius > h {
		radius = h
	}

	y0, y1 := clampRange(bbox.Top, bbox.Bottom, c.height)
	x0, x1 := clampRange(bbox.Left, bbox.Right, c.width)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if insideRoundedRect(x, y, bbox, radius) {
				c.Blend(x, y, col)
			}
		}
	}
}

// insideRoundedRect reports whether (x, y) belongs to the rounded
// rectangle. Only the four corner squares need the circle test; all
// other pixels of bbox are inside.
func insideRoundedRect(x, y int, bbox Rect, radius int) bool {
	var cx, cy int
	switch {
	case x < bbox.Left+radius && y < bbox.Top+radius:
		cx, cy = bbox.Left+radius, bbox.Top+radius
	case x > bbox.Right-radius && y < bbox.Top+radius:
		cx, cy = bbox.Right-radius, bbox.Top+radius
	case x < bbox.Left+radius && y > bbox.Bottom-radius:
		cx, cy = bbox.Left+radius, bbox.Bottom-radius
	case x > bbox.Right-radius && y > bbox.Bottom-radius:
		cx, cy = bbox.Right-radius, bbox.Bottom-radius
	default:
		return true
	}
	r := float64(radius)
	return insideEllipse(float64(x), float64(y), float64(cx), float64(cy), r, r)
}

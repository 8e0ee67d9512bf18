package iconforge

import "math"

// StrokeArc draws a thick elliptical arc covering [startDeg, endDeg]
// on the ellipse inscribed in bbox. Angles are in degrees, 0 at
// 3 o'clock, increasing clockwise (y grows downward).
//
// The thick stroke is approximated by repeating a thin arc draw at
// `width` successive thickness offsets, each pass growing the bounding
// box outward by t/2 (integer halves, so consecutive passes can land on
// the same ring). The overlapping passes build up alpha at the stroke
// edges into a soft density falloff; a single analytically thick arc
// would change pixel output and is deliberately not used.
func StrokeArc(c *Canvas, bbox Rect, startDeg, endDeg float64, col Color, width int) {
	if width < 1 {
		width = 1
	}
	for t := 0; t < width; t++ {
		drawThinArc(c, bbox.Outset(t/2), startDeg, endDeg, col)
	}
}

// drawThinArc rasterizes one thin (≈3-unit) arc pass: the arc is sampled
// at angle steps no coarser than 2° and a 3×3 stamp is blended at each
// sample. Within a single pass every covered pixel is blended exactly
// once; the layered falloff comes from pass-over-pass overlap, not from
// overlapping stamps inside one pass.
func drawThinArc(c *Canvas, bbox Rect, startDeg, endDeg float64, col Color) {
	if startDeg > endDeg {
		startDeg, endDeg = endDeg, startDeg
	}
	bbox = bbox.Canon()
	cx := bbox.CenterX()
	cy := bbox.CenterY()
	rx := float64(bbox.Right-bbox.Left) / 2
	ry := float64(bbox.Bottom-bbox.Top) / 2

	span := endDeg - startDeg
	steps := int(math.Ceil(span / 2.0))
	if steps < 1 {
		steps = 1
	}

	visited := make(map[int]struct{})
	for s := 0; s <= steps; s++ {
		rad := (startDeg + span*float64(s)/float64(steps)) * math.Pi / 180
		px := int(math.Round(cx + rx*math.Cos(rad)))
		py := int(math.Round(cy + ry*math.Sin(rad)))
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				x, y := px+dx, py+dy
				if x < 0 || x >= c.width || y < 0 || y >= c.height {
					continue
				}
				key := y*c.width + x
				if _, ok := visited[key]; ok {
					continue
				}
				visited[key] = struct{}{}
				c.Blend(x, y, col)
			}
		}
	}
}

package iconforge

import "math"

// DrawLine draws a straight segment from p1 to p2 by stamping a filled
// square of the given width along it at half-pixel steps. Used for the
// short connector strokes between decorative elements.
func DrawLine(c *Canvas, p1, p2 Point, col Color, width int) {
	if width < 1 {
		width = 1
	}
	dx := float64(p2.X - p1.X)
	dy := float64(p2.Y - p1.Y)
	length := math.Hypot(dx, dy)

	steps := int(math.Ceil(length * 2))
	if steps < 1 {
		steps = 1
	}

	half := width / 2
	visited := make(map[int]struct{})
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		px := int(math.Round(float64(p1.X) + dx*t))
		py := int(math.Round(float64(p1.Y) + dy*t))
		for oy := 0; oy < width; oy++ {
			for ox := 0; ox < width; ox++ {
				x := px - half + ox
				y := py - half + oy
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

package iconforge

import (
	"math"
	"sort"
)

// FillPolygon fills a closed polygon using even-odd scanline filling.
// For the simple convex shapes used by the recipes, even-odd and
// nonzero-winding coincide. Polygons with fewer than three points are
// ignored.
func FillPolygon(c *Canvas, points []Point, col Color) {
	if len(points) < 3 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	y0, y1 := clampRange(minY, maxY, c.height)

	var xs []float64
	for y := y0; y <= y1; y++ {
		xs = xs[:0]
		fy := float64(y)
		for i := range points {
			p1 := points[i]
			p2 := points[(i+1)%len(points)]
			ey1, ey2 := float64(p1.Y), float64(p2.Y)
			if ey1 == ey2 {
				continue
			}
			// Half-open edge interval so a vertex shared by two edges
			// produces exactly one crossing.
			if (fy >= ey1 && fy < ey2) || (fy >= ey2 && fy < ey1) {
				t := (fy - ey1) / (ey2 - ey1)
				xs = append(xs, float64(p1.X)+t*float64(p2.X-p1.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xa := int(math.Round(xs[i]))
			xb := int(math.Round(xs[i+1]))
			xa, xb = clampRange(xa, xb, c.width)
			for x := xa; x <= xb; x++ {
				c.Blend(x, y, col)
			}
		}
	}
}

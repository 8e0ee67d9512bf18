package recipes

import "github.com/iconforge/iconforge"

// Classic is the document-and-padlock mark: a white document with a
// folded corner and a small padlock over an indigo-to-violet ring
// gradient, with a chain of decorative dots off to the side.
func Classic() iconforge.Recipe {
	const center = BaseSize / 2

	layers := []iconforge.Layer{
		{Shape: iconforge.Gradient{
			Kind:   iconforge.Radial,
			From:   indigo,
			To:     violetSoft,
			Center: iconforge.Pt(center, center),
			Radius: center,
		}},

		// Document with a folded corner.
		{Shape: iconforge.Rectangle{BBox: iconforge.R(412, 382, 612, 642)}, Fill: iconforge.White},
		{Shape: iconforge.Polygon{Points: []iconforge.Point{
			{X: 572, Y: 382},
			{X: 612, Y: 422},
			{X: 572, Y: 422},
		}}, Fill: lavender},
	}

	layers = append(layers, padlock(padlockSpec{
		body:         iconforge.R(482, 577, 542, 622),
		bodyRadius:   8,
		bodyColor:    indigo,
		shackle:      iconforge.R(489, 552, 534, 592),
		shackleWidth: 8,
		hollow:       iconforge.R(497, 555, 526, 589),
		hollowWidth:  8,
		hollowColor:  iconforge.White,
		keyhole:      iconforge.R(508, 592, 516, 600),
		slot:         iconforge.R(511, 598, 514, 610),
		holeColor:    iconforge.White,
	})...)

	// Chain-link motif: three dots joined by short connector strokes.
	layers = append(layers,
		iconforge.Layer{Shape: iconforge.Line{P1: iconforge.Pt(598, 554), P2: iconforge.Pt(613, 537), Width: 3}, Fill: lavender},
		iconforge.Layer{Shape: iconforge.Line{P1: iconforge.Pt(617, 539), P2: iconforge.Pt(622, 573), Width: 3}, Fill: lavender},
		iconforge.Layer{Shape: iconforge.Ellipse{BBox: iconforge.R(592, 552, 600, 560)}, Fill: lavender},
		iconforge.Layer{Shape: iconforge.Ellipse{BBox: iconforge.R(612, 532, 618, 538)}, Fill: lavender},
		iconforge.Layer{Shape: iconforge.Ellipse{BBox: iconforge.R(622, 572, 628, 578)}, Fill: lavender},
	)

	return iconforge.Recipe{Name: "classic", Layers: layers}
}

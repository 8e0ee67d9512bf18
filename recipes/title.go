package recipes

import "github.com/iconforge/iconforge"

// Title is the large-lettered variant: the app title with a drop shadow
// over a plum ring gradient, a white border ring, and a white padlock
// beneath the text.
func Title(title string) iconforge.Recipe {
	if title == "" {
		title = DefaultTitle
	}

	const center = BaseSize / 2

	layers := []iconforge.Layer{
		{Shape: iconforge.Gradient{
			Kind:   iconforge.Radial,
			From:   plum,
			To:     plumLight,
			Center: iconforge.Pt(center, center),
			Radius: 480,
		}},
		{Shape: iconforge.Ellipse{BBox: iconforge.R(32, 32, 992, 992)}, Outline: iconforge.White, OutlineWidth: 8},

		{Shape: iconforge.Label{
			Text:   title,
			Size:   180,
			Shadow: true,
			Bias:   -140,
		}, Fill: iconforge.White},
	}

	layers = append(layers, padlock(padlockSpec{
		body:         iconforge.R(452, 672, 572, 762),
		bodyRadius:   20,
		bodyColor:    iconforge.White,
		shackle:      iconforge.R(474, 642, 550, 702),
		shackleWidth: 16,
		hollow:       iconforge.R(490, 650, 534, 694),
		hollowWidth:  16,
		hollowColor:  plum,
		keyhole:      iconforge.R(502, 692, 522, 712),
		slot:         iconforge.R(508, 707, 516, 732),
		holeColor:    plum,
	})...)

	return iconforge.Recipe{Name: "title", Layers: layers}
}

package recipes

import "github.com/iconforge/iconforge"

// Visible is the high-contrast variant: a large white padlock on a
// solid purple disc with a thick white border, and the outlined app
// title along the bottom. Tuned for legibility at launcher sizes.
func Visible(title string) iconforge.Recipe {
	if title == "" {
		title = DefaultTitle
	}

	layers := []iconforge.Layer{
		{Shape: iconforge.Ellipse{BBox: iconforge.R(50, 50, 974, 974)}, Fill: purple},
		{Shape: iconforge.Ellipse{BBox: iconforge.R(50, 50, 974, 974)}, Outline: iconforge.White, OutlineWidth: 20},
	}

	layers = append(layers, padlock(padlockSpec{
		body:         iconforge.R(362, 472, 662, 692),
		bodyRadius:   20,
		bodyColor:    iconforge.White,
		shackle:      iconforge.R(432, 392, 592, 512),
		shackleWidth: 25,
		hollow:       iconforge.R(472, 432, 552, 472),
		hollowWidth:  30,
		hollowColor:  purple,
		keyhole:      iconforge.R(487, 552, 537, 602),
		slot:         iconforge.R(502, 592, 522, 652),
		holeColor:    purple,
	})...)

	layers = append(layers, iconforge.Layer{
		Shape: iconforge.Label{
			Text:          title,
			Size:          80,
			OutlineRadius: 3,
			Outline:       iconforge.White,
			Bias:          330,
		},
		Fill: purple,
	})

	return iconforge.Recipe{Name: "visible", Layers: layers}
}

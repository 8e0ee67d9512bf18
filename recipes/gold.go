package recipes

import "github.com/iconforge/iconforge"

// Gold is the emoji-styled gold padlock on a deep navy disc, with the
// app title outlined in black along the bottom. The padlock body carries
// a vertical gold-to-dark-gold gradient with the body corners punched
// back out in the disc color.
func Gold(title string) iconforge.Recipe {
	if title == "" {
		title = DefaultTitle
	}

	faint := iconforge.White.WithAlpha(40)

	layers := []iconforge.Layer{
		// Navy disc with a subtle border.
		{Shape: iconforge.Ellipse{BBox: iconforge.R(50, 50, 974, 974)}, Fill: navy},
		{Shape: iconforge.Ellipse{BBox: iconforge.R(50, 50, 974, 974)}, Outline: faint, OutlineWidth: 8},

		// Shackle: thick gold multi-pass arc, then a navy pass that
		// reopens the center.
		{Shape: iconforge.Arc{BBox: iconforge.R(412, 342, 612, 482), StartDeg: 180, EndDeg: 360, Width: 35}, Fill: gold},
		{Shape: iconforge.Arc{BBox: iconforge.R(472, 402, 552, 422), StartDeg: 180, EndDeg: 360, Width: 40}, Fill: navy},

		// Body: vertical gold gradient with the square corners punched
		// out by disc-colored quarter circles.
		{Shape: iconforge.Gradient{
			Kind: iconforge.Linear,
			From: gold,
			To:   goldDark,
			BBox: iconforge.R(322, 442, 702, 721),
		}},
		{Shape: iconforge.Ellipse{BBox: iconforge.R(297, 417, 347, 467)}, Fill: navy},
		{Shape: iconforge.Ellipse{BBox: iconforge.R(677, 417, 727, 467)}, Fill: navy},
		{Shape: iconforge.Ellipse{BBox: iconforge.R(297, 696, 347, 746)}, Fill: navy},
		{Shape: iconforge.Ellipse{BBox: iconforge.R(677, 696, 727, 746)}, Fill: navy},

		// Keyhole and slot, translucent black.
		{Shape: iconforge.Ellipse{BBox: iconforge.R(477, 542, 547, 612)}, Fill: iconforge.RGBA(0, 0, 0, 180)},
		{Shape: iconforge.Rectangle{BBox: iconforge.R(497, 597, 527, 677)}, Fill: iconforge.RGBA(0, 0, 0, 180)},

		// Highlight fade across the upper body for a 3D sheen.
		{Shape: iconforge.Gradient{
			Kind: iconforge.Linear,
			From: iconforge.White.WithAlpha(80),
			To:   iconforge.White.WithAlpha(0),
			BBox: iconforge.R(342, 462, 682, 554),
		}},

		// Title along the bottom of the disc, outlined for contrast.
		{Shape: iconforge.Label{
			Text:          title,
			Size:          90,
			OutlineRadius: 4,
			Outline:       iconforge.Black,
			Bias:          330,
		}, Fill: iconforge.White},
	}

	return iconforge.Recipe{Name: "gold", Layers: layers}
}

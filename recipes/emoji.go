package recipes

import "github.com/iconforge/iconforge"

// EmojiKey recreates the locked-with-key emoji: a gold padlock with a
// silver key beside it, over the indigo-to-violet ring gradient.
func EmojiKey() iconforge.Recipe {
	const center = BaseSize / 2

	translucentBlack := iconforge.RGBA(0, 0, 0, 200)

	layers := []iconforge.Layer{
		{Shape: iconforge.Gradient{
			Kind:   iconforge.Radial,
			From:   indigo,
			To:     violet,
			Center: iconforge.Pt(center, center),
			Radius: 462,
		}},

		// Shackle with hollowed center.
		{Shape: iconforge.Arc{BBox: iconforge.R(445, 352, 579, 464), StartDeg: 180, EndDeg: 360, Width: 25}, Fill: gold},
		{Shape: iconforge.Arc{BBox: iconforge.R(480, 387, 544, 429), StartDeg: 180, EndDeg: 360, Width: 20}, Fill: goldDark},

		// Body: vertical gold gradient.
		{Shape: iconforge.Gradient{
			Kind: iconforge.Linear,
			From: gold,
			To:   goldDark,
			BBox: iconforge.R(400, 448, 624, 639),
		}},

		// Key: shaft, round head with a hole, and two teeth.
		{Shape: iconforge.Rectangle{BBox: iconforge.R(644, 537, 724, 551)}, Fill: silver},
		{Shape: iconforge.Ellipse{BBox: iconforge.R(619, 519, 669, 569)}, Fill: silver},
		{Shape: iconforge.Ellipse{BBox: iconforge.R(636, 536, 652, 552)}, Fill: goldDark},
		{Shape: iconforge.Rectangle{BBox: iconforge.R(714, 551, 724, 561)}, Fill: silver},
		{Shape: iconforge.Rectangle{BBox: iconforge.R(704, 551, 714, 556)}, Fill: silver},

		// Keyhole and slot.
		{Shape: iconforge.Ellipse{BBox: iconforge.R(497, 529, 527, 559)}, Fill: translucentBlack},
		{Shape: iconforge.Rectangle{BBox: iconforge.R(508, 544, 516, 569)}, Fill: translucentBlack},

		// Highlight fade on the upper body.
		{Shape: iconforge.Gradient{
			Kind: iconforge.Linear,
			From: iconforge.White.WithAlpha(100),
			To:   iconforge.White.WithAlpha(0),
			BBox: iconforge.R(415, 463, 489, 510),
		}},
	}

	return iconforge.Recipe{Name: "emoji", Layers: layers}
}

package recipes

import "github.com/iconforge/iconforge"

// padlockSpec parameterizes the shared padlock motif: a rounded body, a
// curved shackle with a hollowed center, and a keyhole with slot. The
// solid-body variants all build their padlock from this one spec so the
// geometry lives in data rather than per-variant drawing code.
type padlockSpec struct {
	body       iconforge.Rect
	bodyRadius int
	bodyColor  iconforge.Color

	shackle      iconforge.Rect
	shackleWidth int

	hollow      iconforge.Rect
	hollowWidth int
	hollowColor iconforge.Color

	keyhole   iconforge.Rect
	slot      iconforge.Rect
	holeColor iconforge.Color
}

// padlock expands a padlockSpec into scene layers: body, outer shackle,
// hollow pass that reopens the shackle center, then keyhole and slot.
func padlock(s padlockSpec) []iconforge.Layer {
	return []iconforge.Layer{
		{Shape: iconforge.RoundedRect{BBox: s.body, Radius: s.bodyRadius}, Fill: s.bodyColor},
		{Shape: iconforge.Arc{BBox: s.shackle, StartDeg: 180, EndDeg: 360, Width: s.shackleWidth}, Fill: s.bodyColor},
		{Shape: iconforge.Arc{BBox: s.hollow, StartDeg: 180, EndDeg: 360, Width: s.hollowWidth}, Fill: s.hollowColor},
		{Shape: iconforge.Ellipse{BBox: s.keyhole}, Fill: s.holeColor},
		{Shape: iconforge.Rectangle{BBox: s.slot}, Fill: s.holeColor},
	}
}

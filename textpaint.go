package iconforge

import (
	"image/color"

	"github.com/iconforge/iconforge/text"
)

// Label is a text payload drawn centered on the canvas (plus the layer
// offset). Placement, shadow and outline follow the house style of the
// published icons.
type Label struct {
	// Text is the string to draw.
	Text string

	// Size is the point size.
	Size float64

	// Face is the font face to use. The zero value selects the embedded
	// default face, which keeps rendering deterministic across machines.
	Face text.Face

	// Shadow enables a dark drop-shadow pass behind the text.
	Shadow bool

	// ShadowOffset is the shadow displacement in pixels (default 4).
	ShadowOffset int

	// OutlineRadius enables an outline pass: the text is stamped at
	// every integer offset within Chebyshev distance OutlineRadius.
	// Small radii only (the cost is O(radius²) fills).
	OutlineRadius int

	// Outline is the outline color.
	Outline Color

	// Bias shifts the vertical centering. It is a per-recipe constant
	// tuned by eye, not derived from metrics.
	Bias int
}

func (Label) shapeMarker() {}

// shadowAlpha is the alpha of the drop-shadow pass.
const shadowAlpha = 100

// drawLabel paints a label in three strict passes: shadow, outline,
// fill. Later passes occlude earlier ones.
func drawLabel(c *Canvas, lb Label, fill Color, off Point) {
	face := lb.Face
	if face.Source() == nil {
		face = text.Default(lb.Size)
	}

	w, h := text.Measure(lb.Text, face)
	if w == 0 {
		return
	}

	cx := float64(c.width)/2 + float64(off.X)
	cy := float64(c.height)/2 + float64(off.Y)
	originX := cx - w/2
	originY := cy - h/2 + float64(lb.Bias)

	// Measure gives a top-left origin box; Draw wants the baseline.
	baseline := originY + face.Metrics().Ascent

	if lb.Shadow {
		o := lb.ShadowOffset
		if o == 0 {
			o = 4
		}
		shadow := color.NRGBA{A: shadowAlpha}
		text.Draw(c, lb.Text, face, originX+float64(o), baseline+float64(o), shadow)
	}

	if lb.OutlineRadius > 0 && lb.Outline.A > 0 {
		// Poor-man's stroke: stamp the fill at every offset in the
		// square around the origin. Redundant but cheap at radius <= 4,
		// and it reproduces the published glyph edges exactly.
		r := lb.OutlineRadius
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				text.Draw(c, lb.Text, face,
					originX+float64(dx), baseline+float64(dy), lb.Outline.NRGBA())
			}
		}
	}

	text.Draw(c, lb.Text, face, originX, baseline, fill.NRGBA())
}

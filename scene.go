package iconforge

// Shape is the tagged payload of a scene layer. Exactly one concrete
// shape (or Gradient) sits behind it.
type Shape interface {
	shapeMarker()
}

// Ellipse is the ellipse inscribed in BBox.
type Ellipse struct {
	BBox Rect
}

// Rectangle is an axis-aligned filled rectangle.
type Rectangle struct {
	BBox Rect
}

// RoundedRect is a rectangle with rounded corners of the given radius.
type RoundedRect struct {
	BBox   Rect
	Radius int
}

// Polygon is a closed polygon with at least three vertices.
type Polygon struct {
	Points []Point
}

// Arc is a stroked elliptical arc on the ellipse inscribed in BBox,
// covering [StartDeg, EndDeg] with the given stroke width. It is drawn
// with the layer's fill color.
type Arc struct {
	BBox     Rect
	StartDeg float64
	EndDeg   float64
	Width    int
}

// Line is a straight stroked segment drawn with the layer's fill color.
type Line struct {
	P1, P2 Point
	Width  int
}

func (Ellipse) shapeMarker()     {}
func (Rectangle) shapeMarker()   {}
func (RoundedRect) shapeMarker() {}
func (Polygon) shapeMarker()     {}
func (Arc) shapeMarker()         {}
func (Line) shapeMarker()        {}

// Layer is one paint operation of a recipe. Order in the recipe is the
// sole z-ordering mechanism: later layers paint over earlier ones.
type Layer struct {
	// Shape is the payload: a geometric shape, a Label or a Gradient.
	Shape Shape

	// Fill is the fill color. A fully transparent fill paints nothing,
	// so optional fills need no pointer.
	Fill Color

	// Outline and OutlineWidth add a stroked outline where the shape
	// supports one (ellipses).
	Outline      Color
	OutlineWidth int

	// Offset shifts the whole payload.
	Offset Point
}

// Recipe is an ordered list of layers describing one icon variant.
// Recipes are immutable once built and may be reused across sizes and
// across concurrent render calls.
type Recipe struct {
	Name   string
	Layers []Layer
}

// Render replays the recipe once, top to bottom, onto a fresh canvas of
// the given dimensions. Composition is strictly forward-only: no layer
// can observe or depend on layers after it.
//
// Render is pure and deterministic: identical inputs produce
// byte-identical pixel buffers. It fails only on invalid dimensions.
func Render(r Recipe, width, height int) (*Canvas, error) {
	c, err := NewCanvas(width, height)
	if err != nil {
		return nil, err
	}
	Logger().Debug("rendering recipe",
		"name", r.Name, "layers", len(r.Layers), "width", width, "height", height)
	for _, l := range r.Layers {
		paintLayer(c, l)
	}
	return c, nil
}

// paintLayer dispatches one layer to the primitive rasterizer.
func paintLayer(c *Canvas, l Layer) {
	switch s := l.Shape.(type) {
	case Gradient:
		s.fill(c, l.Offset)
	case Ellipse:
		bbox := s.BBox.Translate(l.Offset)
		if l.Fill.A > 0 {
			FillEllipse(c, bbox, l.Fill)
		}
		if l.Outline.A > 0 && l.OutlineWidth > 0 {
			StrokeEllipse(c, bbox, l.Outline, l.OutlineWidth)
		}
	case Rectangle:
		FillRect(c, s.BBox.Translate(l.Offset), l.Fill)
	case RoundedRect:
		FillRoundedRect(c, s.BBox.Translate(l.Offset), s.Radius, l.Fill)
	case Polygon:
		pts := make([]Point, len(s.Points))
		for i, p := range s.Points {
			pts[i] = p.Add(l.Offset)
		}
		FillPolygon(c, pts, l.Fill)
	case Arc:
		StrokeArc(c, s.BBox.Translate(l.Offset), s.StartDeg, s.EndDeg, l.Fill, s.Width)
	case Line:
		DrawLine(c, s.P1.Add(l.Offset), s.P2.Add(l.Offset), l.Fill, s.Width)
	case Label:
		drawLabel(c, s, l.Fill, l.Offset)
	}
}

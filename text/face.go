package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a font face at a specific size. It is a lightweight value;
// create as many as needed from one Source.
type Face struct {
	source *Source
	size   float64
}

// Size returns the size of this face in points.
func (f Face) Size() float64 {
	return f.size
}

// Source returns the Source this face was created from.
// The zero Face returns nil.
func (f Face) Source() *Source {
	return f.source
}

// Metrics returns the font metrics scaled to this face's size.
func (f Face) Metrics() Metrics {
	if f.source == nil {
		return Metrics{}
	}
	var buf sfnt.Buffer
	m, err := f.source.font.Metrics(&buf, fixed.Int26_6(f.size*64), font.HintingFull)
	if err != nil {
		return Metrics{}
	}
	return Metrics{
		Ascent:    fixedToFloat(m.Ascent),
		Descent:   fixedToFloat(m.Descent),
		LineGap:   fixedToFloat(m.Height) - fixedToFloat(m.Ascent) - fixedToFloat(m.Descent),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// Advance returns the total advance width of the text in pixels.
// Kerned widths from the shaping backend are preferred; if the font is
// not usable there, the per-glyph advances are summed instead.
func (f Face) Advance(text string) float64 {
	if f.source == nil || text == "" {
		return 0
	}
	if w, ok := f.source.shapedAdvance(text, f.size); ok {
		return w
	}
	return f.advanceSum(text)
}

// advanceSum is the unkerned fallback: the sum of individual glyph
// advances.
func (f Face) advanceSum(text string) float64 {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(f.size * 64)
	total := 0.0
	for _, r := range text {
		gi, err := f.source.font.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := f.source.font.GlyphAdvance(&buf, gi, ppem, font.HintingFull)
		if err != nil {
			continue
		}
		total += fixedToFloat(adv)
	}
	return total
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

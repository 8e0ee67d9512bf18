package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has internal
// mutable state and is NOT safe for concurrent use, but reusing
// instances across sequential calls is efficient.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// shapedAdvance returns the kerning-aware advance width of text at the
// given size using HarfBuzz shaping via go-text/typesetting. The second
// return value is false when the shaping backend cannot parse this font,
// in which case the caller falls back to plain advance summing.
func (s *Source) shapedAdvance(text string, size float64) (float64, bool) {
	s.shapeOnce.Do(func() {
		// ParseTTF handles both TTF and OTF data. The returned *Face
		// embeds the thread-safe *Font; only the Font is retained.
		face, err := gtfont.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			return
		}
		s.shaped = face.Font
	})
	if s.shaped == nil {
		return 0, false
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return 0, true
	}

	// font.Face is NOT safe for concurrent use, so each call gets its
	// own instance. NewFace is cheap; it wraps the thread-safe *Font.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(s.shaped),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	shaperPool.Put(shaper)

	var total fixed.Int26_6
	for _, g := range output.Glyphs {
		total += g.Advance
	}
	return fixedToFloat(total), true
}

// detectScript inspects the runes and returns the script of the first
// non-space character. The recipe titles are single-script runs, so a
// first-rune heuristic suffices.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

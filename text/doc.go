// Package text provides font loading, fallback resolution, measurement
// and glyph drawing for the icon renderer.
//
// A Source is a parsed font file; it creates lightweight Face values at
// specific point sizes. Measurement uses HarfBuzz shaping via
// go-text/typesetting when the font parses there (kerning-aware widths),
// with a plain per-glyph advance sum as fallback. Drawing rasterizes
// through golang.org/x/image/font onto any draw.Image.
//
// Resolve walks an ordered chain of candidate font files and embedded
// faces and reports which candidate was used as a typed Resolution,
// never an error: the terminal embedded fallback cannot fail.
package text

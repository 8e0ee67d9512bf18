package text

import (
	"fmt"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source represents a loaded font file (TTF or OTF).
// One Source can create multiple Face values at different sizes.
// Source is heavyweight and should be shared across the application.
//
// Source is safe for concurrent use.
type Source struct {
	// Font data, kept for the shaping backend.
	data []byte

	// Parsed sfnt form used for metrics, advances and rasterization.
	font *opentype.Font

	name string

	// Lazily parsed go-text form used for kerned measurement.
	// nil after shapeOnce fires means the shaping backend is unavailable
	// for this font and measurement falls back to advance summing.
	shapeOnce sync.Once
	shaped    *gtfont.Font
}

// NewSource creates a Source from font data.
// The data slice is copied internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &Source{
		data: dataCopy,
		font: f,
	}
	s.name = extractFontName(f)
	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewSource(data)
}

// Face creates a Face at the specified size (in points).
// Face is a lightweight value that shares the Source.
func (s *Source) Face(size float64) Face {
	return Face{source: s, size: size}
}

// Name returns the font family name.
func (s *Source) Name() string {
	return s.name
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

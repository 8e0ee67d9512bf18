package text

import (
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"golang.org/x/image/font/gofont/gobold"
)

// Origin identifies which candidate in the font fallback chain satisfied
// a resolution request.
type Origin int

const (
	// OriginFile means a caller-supplied font file resolved.
	OriginFile Origin = iota
	// OriginLatinModern means the embedded Latin Modern face was used.
	OriginLatinModern
	// OriginGoFont means the embedded Go Bold face was used.
	// This is the terminal fallback and cannot fail.
	OriginGoFont
)

// String returns a human-readable name for the origin.
func (o Origin) String() string {
	switch o {
	case OriginFile:
		return "file"
	case OriginLatinModern:
		return "latin-modern"
	case OriginGoFont:
		return "gofont"
	default:
		return "unknown"
	}
}

// Resolution is the typed outcome of resolving the font fallback chain.
// Callers that care whether a fallback engaged inspect Origin and
// Skipped instead of an exception being swallowed somewhere.
type Resolution struct {
	Source *Source
	Origin Origin

	// Path is the resolved file path when Origin is OriginFile.
	Path string

	// Skipped lists candidate paths that failed to resolve, in order.
	Skipped []string
}

// Resolve walks the ordered candidate font file paths and returns the
// first that loads and parses, falling back to the embedded Latin Modern
// face and finally the embedded Go Bold face. Resolve never fails: the
// embedded fallbacks ship with the binary. If even those cannot be
// parsed, the build is defective and Resolve panics.
func Resolve(paths ...string) Resolution {
	var skipped []string
	for _, p := range paths {
		src, err := NewSourceFromFile(p)
		if err != nil {
			skipped = append(skipped, p)
			continue
		}
		return Resolution{Source: src, Origin: OriginFile, Path: p, Skipped: skipped}
	}

	if src, err := NewSource(lmroman10bold.TTF); err == nil {
		return Resolution{Source: src, Origin: OriginLatinModern, Skipped: skipped}
	}

	src, err := NewSource(gobold.TTF)
	if err != nil {
		// The embedded Go font is compiled into the binary; failing to
		// parse it is a packaging defect, not a runtime condition.
		panic("text: embedded fallback font failed to parse: " + err.Error())
	}
	return Resolution{Source: src, Origin: OriginGoFont, Skipped: skipped}
}

// defaultResolution caches the embedded-only resolution used when a
// recipe names no font, keeping output deterministic across machines.
var defaultResolution struct {
	once sync.Once
	res  Resolution
}

// Default returns a face from the embedded fallback chain at the given
// size. No file candidates are consulted, so the result is identical on
// every machine.
func Default(size float64) Face {
	defaultResolution.once.Do(func() {
		defaultResolution.res = Resolve()
	})
	return defaultResolution.res.Source.Face(size)
}

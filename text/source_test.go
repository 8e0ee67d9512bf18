package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"golang.org/x/image/font/gofont/gobold"
)

func TestNewSource(t *testing.T) {
	s, err := NewSource(gobold.TTF)
	if err != nil {
		t.Fatalf("NewSource(gobold): %v", err)
	}
	if s.Name() == "" || s.Name() == "Unknown Font" {
		t.Errorf("Name() = %q, want a real family name", s.Name())
	}
}

func TestNewSource_Errors(t *testing.T) {
	if _, err := NewSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewSource([]byte("not a font")); err == nil {
		t.Error("NewSource(garbage) succeeded, want parse error")
	}
}

func TestNewSource_CopiesData(t *testing.T) {
	data := append([]byte(nil), gobold.TTF...)
	s, err := NewSource(data)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	// Clobbering the caller's slice must not affect the source.
	for i := range data {
		data[i] = 0
	}
	f := s.Face(24)
	if f.Advance("test") <= 0 {
		t.Error("source unusable after caller mutated its input slice")
	}
}

func TestNewSourceFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(path, lmroman10bold.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewSourceFromFile: %v", err)
	}
	if s.Name() == "" {
		t.Error("loaded font has no name")
	}

	if _, err := NewSourceFromFile(filepath.Join(dir, "missing.ttf")); err == nil {
		t.Error("NewSourceFromFile(missing) succeeded, want error")
	}
}

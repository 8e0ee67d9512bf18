package text

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func TestResolve_EmbeddedFallback(t *testing.T) {
	res := Resolve()
	if res.Source == nil {
		t.Fatal("Resolve() returned no source")
	}
	if res.Origin != OriginLatinModern {
		t.Errorf("Origin = %v, want OriginLatinModern", res.Origin)
	}
	if res.Path != "" {
		t.Errorf("Path = %q, want empty for embedded font", res.Path)
	}
	if len(res.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", res.Skipped)
	}
}

func TestResolve_FileWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.ttf")
	if err := os.WriteFile(path, gobold.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	res := Resolve(path)
	if res.Origin != OriginFile {
		t.Fatalf("Origin = %v, want OriginFile", res.Origin)
	}
	if res.Path != path {
		t.Errorf("Path = %q, want %q", res.Path, path)
	}
}

func TestResolve_SkipsBadCandidates(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.ttf")
	garbage := filepath.Join(dir, "garbage.ttf")
	if err := os.WriteFile(garbage, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	res := Resolve(missing, garbage)
	if res.Origin != OriginLatinModern {
		t.Errorf("Origin = %v, want OriginLatinModern after all candidates fail", res.Origin)
	}
	if len(res.Skipped) != 2 {
		t.Errorf("Skipped = %v, want both candidates recorded", res.Skipped)
	}
}

func TestOrigin_String(t *testing.T) {
	tests := []struct {
		o    Origin
		want string
	}{
		{OriginFile, "file"},
		{OriginLatinModern, "latin-modern"},
		{OriginGoFont, "gofont"},
		{Origin(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Origin(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

func TestDefault(t *testing.T) {
	f := Default(20)
	if f.Source() == nil {
		t.Fatal("Default returned a face with no source")
	}
	if f.Size() != 20 {
		t.Errorf("Size() = %v, want 20", f.Size())
	}
	// Default caches one source for every call.
	if Default(32).Source() != f.Source() {
		t.Error("Default resolves a new source per call")
	}
}

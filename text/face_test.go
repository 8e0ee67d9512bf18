package text

import (
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func testSource(t *testing.T) *Source {
	t.Helper()
	s, err := NewSource(gobold.TTF)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	return s
}

func TestFace_Metrics(t *testing.T) {
	s := testSource(t)
	m := s.Face(32).Metrics()

	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("Descent = %v, want > 0", m.Descent)
	}
	if lh := m.LineHeight(); lh < m.Ascent+m.Descent {
		t.Errorf("LineHeight() = %v, want >= ascent+descent (%v)", lh, m.Ascent+m.Descent)
	}

	// Metrics scale with size.
	big := s.Face(64).Metrics()
	if big.Ascent <= m.Ascent {
		t.Errorf("64pt ascent %v not larger than 32pt ascent %v", big.Ascent, m.Ascent)
	}
}

func TestFace_Advance(t *testing.T) {
	f := testSource(t).Face(24)

	one := f.Advance("A")
	two := f.Advance("AB")
	if one <= 0 {
		t.Fatalf(`Advance("A") = %v, want > 0`, one)
	}
	if two <= one {
		t.Errorf(`Advance("AB") = %v, want > Advance("A") = %v`, two, one)
	}
	if got := f.Advance(""); got != 0 {
		t.Errorf(`Advance("") = %v, want 0`, got)
	}
}

func TestFace_ZeroValue(t *testing.T) {
	var f Face
	if f.Source() != nil {
		t.Error("zero Face has a source")
	}
	if got := f.Advance("x"); got != 0 {
		t.Errorf("zero Face Advance = %v, want 0", got)
	}
	if m := f.Metrics(); m != (Metrics{}) {
		t.Errorf("zero Face Metrics = %+v, want zero", m)
	}
}

// Kerned and summed measurement may differ, but both must be positive
// and within the same ballpark for plain ASCII.
func TestFace_AdvanceAgreement(t *testing.T) {
	f := testSource(t).Face(24)
	const s = "Furl"

	kerned := f.Advance(s)
	summed := f.advanceSum(s)
	if kerned <= 0 || summed <= 0 {
		t.Fatalf("advances: kerned=%v summed=%v, want both > 0", kerned, summed)
	}
	ratio := kerned / summed
	if ratio < 0.8 || ratio > 1.2 {
		t.Errorf("kerned %v vs summed %v diverge beyond 20%%", kerned, summed)
	}
}

package palette

import (
	"image/color"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	if _, err := New(0, nil, 0.5); err == nil {
		t.Fatal("zero classes must fail")
	}
	if _, err := New(3, nil, 1.5); err == nil {
		t.Fatal("alpha above 1 must fail")
	}
	if _, err := New(3, []string{"#ff0000"}, 0.5); err == nil {
		t.Fatal("color list shorter than class count must fail")
	}
	if _, err := New(2, []string{"#ff0000", "not-a-color"}, 0.5); err == nil {
		t.Fatal("malformed hex color must fail")
	}
}

func TestClassZeroIsTransparent(t *testing.T) {
	p, err := New(4, nil, 0.75)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if p.Overlay(0) != (color.NRGBA{}) {
		t.Fatalf("class 0 overlay must be fully transparent, got %v", p.Overlay(0))
	}
	if p.Overlay(5) != (color.NRGBA{}) {
		t.Fatalf("out-of-range class must be transparent, got %v", p.Overlay(5))
	}
}

func TestOverlayCarriesAlpha(t *testing.T) {
	p, err := New(2, []string{"#ff0000", "#00ff00"}, 0.5)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	c := p.Overlay(1)
	if c.R != 0xff || c.G != 0 || c.B != 0 {
		t.Fatalf("class 1 color wrong: %v", c)
	}
	if c.A != 128 {
		t.Fatalf("overlay alpha = %d, want 128", c.A)
	}
	if p.Color(1).A != 0xff {
		t.Fatal("Color must stay opaque")
	}
}

func TestGeneratedColorsAreDistinct(t *testing.T) {
	p, err := New(24, nil, DefaultAlpha)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	seen := map[color.NRGBA]int{}
	for id := 1; id <= 24; id++ {
		c := p.Color(id)
		if prev, dup := seen[c]; dup {
			t.Fatalf("classes %d and %d share color %v", prev, id, c)
		}
		seen[c] = id
	}
}

func TestHex(t *testing.T) {
	p, _ := New(1, []string{"#a1b2c3"}, DefaultAlpha)
	if got := p.Hex(1); got != "#a1b2c3" {
		t.Fatalf("hex round trip: got %q", got)
	}
}

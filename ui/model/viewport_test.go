package model

import (
	"math"
	"testing"
)

func TestViewport_IdentityAtDefaultZoom(t *testing.T) {
	v := NewViewport(800, 600, 800, 600)
	x, y := v.ToImage(123, 45)
	if x != 123 || y != 45 {
		t.Fatalf("1:1 mapping broken: got (%v, %v)", x, y)
	}
	if got := v.Visible(); got.Dx() != 800 || got.Dy() != 600 {
		t.Fatalf("visible = %v, want full image", got)
	}
}

func TestViewport_ZoomKeepsCenterFixed(t *testing.T) {
	v := NewViewport(1000, 1000, 500, 500)
	v.PanBy(100, 100)
	cx, cy := v.ToImage(250, 250)
	v.ZoomIn()
	nx, ny := v.ToImage(250, 250)
	if math.Abs(nx-cx) > 1e-9 || math.Abs(ny-cy) > 1e-9 {
		t.Fatalf("canvas center moved on zoom: (%v,%v) -> (%v,%v)", cx, cy, nx, ny)
	}
}

func TestViewport_ZoomClamped(t *testing.T) {
	v := NewViewport(100, 100, 100, 100)
	for i := 0; i < 50; i++ {
		v.ZoomIn()
	}
	if v.Zoom() > maxZoom {
		t.Fatalf("zoom %v above max", v.Zoom())
	}
	for i := 0; i < 100; i++ {
		v.ZoomOut()
	}
	if v.Zoom() < minZoom {
		t.Fatalf("zoom %v below min", v.Zoom())
	}
}

func TestViewport_PanClampedToImage(t *testing.T) {
	v := NewViewport(200, 200, 100, 100)
	v.ZoomIn() // view spans less than the image
	v.PanBy(100000, 100000)
	r := v.Visible()
	if r.Max.X > 200 || r.Max.Y > 200 {
		t.Fatalf("visible rect %v escapes image", r)
	}
	x, y := v.ToImage(0, 0)
	if x < 0 || y < 0 {
		t.Fatalf("display origin maps outside image: (%v, %v)", x, y)
	}
}

func TestViewport_ResetRestoresDefaults(t *testing.T) {
	v := NewViewport(300, 300, 300, 300)
	v.ZoomIn()
	v.PanBy(40, 40)
	rev := v.Revision()
	v.Reset()
	if v.Zoom() != 1 {
		t.Fatalf("zoom after reset = %v", v.Zoom())
	}
	if v.Revision() == rev {
		t.Fatal("reset must bump revision")
	}
}

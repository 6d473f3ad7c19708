package mask

import (
	"image"
	"testing"
)

func TestNew_RejectsBadShapeAndClasses(t *testing.T) {
	cases := []struct {
		name    string
		w, h, n int
	}{
		{"zero width", 0, 10, 3},
		{"zero height", 10, 0, 3},
		{"negative", -1, 10, 3},
		{"zero classes", 10, 10, 0},
		{"too many classes", 10, 10, 256},
	}
	for _, tc := range cases {
		if _, err := New(tc.w, tc.h, tc.n); err == nil {
			t.Errorf("%s: expected error for New(%d,%d,%d)", tc.name, tc.w, tc.h, tc.n)
		}
	}
	if _, err := New(10, 10, 255); err != nil {
		t.Fatalf("255 classes should be accepted: %v", err)
	}
}

func TestFromGrid_Validation(t *testing.T) {
	if _, err := FromGrid(make([]uint8, 99), 10, 10, 3); err == nil {
		t.Fatal("wrong grid length must fail")
	}
	grid := make([]uint8, 100)
	grid[42] = 4
	if _, err := FromGrid(grid, 10, 10, 3); err == nil {
		t.Fatal("out-of-range seed value must fail, not defer to render time")
	}
	grid[42] = 3
	m, err := FromGrid(grid, 10, 10, 3)
	if err != nil {
		t.Fatalf("valid seed rejected: %v", err)
	}
	if m.At(2, 4) != 3 {
		t.Fatalf("seed cell not preserved: got %d", m.At(2, 4))
	}
}

func TestPaint_AtomicOnBadInput(t *testing.T) {
	m, _ := New(10, 10, 3)
	pixels := []image.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}

	if err := m.Paint(pixels, 4); err == nil {
		t.Fatal("class outside [1,nclasses] must be rejected")
	}
	if err := m.Paint(pixels, 0); err == nil {
		t.Fatal("class 0 is reserved and must be rejected")
	}
	if err := m.Paint([]image.Point{{X: 1, Y: 1}, {X: 10, Y: 3}}, 2); err == nil {
		t.Fatal("out-of-bounds pixel must be rejected")
	}
	// Nothing may have been applied by the failed gestures.
	if m.Assigned() != 0 || m.Revision() != 0 {
		t.Fatalf("failed gestures mutated the mask: assigned=%d rev=%d", m.Assigned(), m.Revision())
	}
}

func TestPaintEraseLastGestureWins(t *testing.T) {
	m, _ := New(8, 8, 2)
	region := []image.Point{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 4}}

	if err := m.Paint(region, 1); err != nil {
		t.Fatalf("paint: %v", err)
	}
	if err := m.Erase(region); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := m.Paint(region, 2); err != nil {
		t.Fatalf("repaint: %v", err)
	}
	for _, p := range region {
		if m.At(p.X, p.Y) != 2 {
			t.Fatalf("cell (%d,%d) = %d, want 2 (last gesture wins)", p.X, p.Y, m.At(p.X, p.Y))
		}
	}
	if m.Assigned() != len(region) {
		t.Fatalf("assigned = %d, want %d", m.Assigned(), len(region))
	}
}

func TestPaint_Idempotent(t *testing.T) {
	m, _ := New(8, 8, 2)
	region := []image.Point{{X: 1, Y: 1}, {X: 2, Y: 1}}
	if err := m.Paint(region, 2); err != nil {
		t.Fatalf("paint: %v", err)
	}
	first := m.Grid()
	rev := m.Revision()
	if err := m.Paint(region, 2); err != nil {
		t.Fatalf("repaint: %v", err)
	}
	second := m.Grid()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cell %d changed on identical repaint: %d -> %d", i, first[i], second[i])
		}
	}
	if m.Revision() != rev {
		t.Fatalf("no-op repaint bumped revision %d -> %d", rev, m.Revision())
	}
}

func TestClearClassAndClearAll(t *testing.T) {
	m, _ := New(4, 4, 3)
	_ = m.Paint([]image.Point{{X: 0, Y: 0}}, 1)
	_ = m.Paint([]image.Point{{X: 1, Y: 0}}, 2)

	if err := m.ClearClass(4); err == nil {
		t.Fatal("clearing an unknown class must fail")
	}
	if err := m.ClearClass(1); err != nil {
		t.Fatalf("clear class: %v", err)
	}
	if m.At(0, 0) != 0 || m.At(1, 0) != 2 {
		t.Fatalf("clear class touched the wrong cells: %d %d", m.At(0, 0), m.At(1, 0))
	}

	m.ClearAll()
	if m.Assigned() != 0 {
		t.Fatalf("clear all left %d cells assigned", m.Assigned())
	}
}

func TestShapePreservedAcrossGestures(t *testing.T) {
	m, _ := New(12, 7, 2)
	for i := 0; i < 5; i++ {
		_ = m.Paint([]image.Point{{X: i, Y: i}}, 1)
		_ = m.Erase([]image.Point{{X: i, Y: i}})
	}
	if m.Width() != 12 || m.Height() != 7 || len(m.Grid()) != 12*7 {
		t.Fatalf("mask shape drifted: %dx%d", m.Width(), m.Height())
	}
}

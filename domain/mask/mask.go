package mask

import (
	"fmt"
	"image"
)

// MaxClasses is the largest supported class count; cells are stored as uint8
// and 0 is reserved for "unassigned".
const MaxClasses = 255

// Mask is a per-pixel class-assignment grid overlaid on an image of the same
// spatial shape. Cell value 0 means "no class assigned"; values 1..Classes()
// denote class membership. The grid is mutated only by completed gestures on
// the UI thread, so no synchronization is needed.
type Mask struct {
	w, h     int
	nclasses int
	cells    []uint8
	revision uint64
}

// New returns an all-zero mask of the given spatial shape.
func New(w, h, nclasses int) (*Mask, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("mask: invalid shape %dx%d", w, h)
	}
	if nclasses < 1 || nclasses > MaxClasses {
		return nil, fmt.Errorf("mask: class count %d outside [1, %d]", nclasses, MaxClasses)
	}
	return &Mask{w: w, h: h, nclasses: nclasses, cells: make([]uint8, w*h)}, nil
}

// FromGrid builds a pre-seeded mask from a row-major grid. The grid length
// must equal w*h and every value must be <= nclasses. Validation happens here,
// eagerly, so a bad seed fails with a descriptive error instead of surfacing
// as a broken overlay later.
func FromGrid(grid []uint8, w, h, nclasses int) (*Mask, error) {
	m, err := New(w, h, nclasses)
	if err != nil {
		return nil, err
	}
	if len(grid) != w*h {
		return nil, fmt.Errorf("mask: seed grid has %d cells, image shape %dx%d needs %d", len(grid), w, h, w*h)
	}
	for i, v := range grid {
		if int(v) > nclasses {
			return nil, fmt.Errorf("mask: seed cell %d holds class %d, max is %d", i, v, nclasses)
		}
	}
	copy(m.cells, grid)
	return m, nil
}

func (m *Mask) Width() int   { return m.w }
func (m *Mask) Height() int  { return m.h }
func (m *Mask) Classes() int { return m.nclasses }
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.w, m.h)
}

// Revision returns a counter bumped by every mutating gesture. Views compare
// it against the last rendered revision to decide whether to recomposite.
func (m *Mask) Revision() uint64 { return m.revision }

// At returns the class id at (x, y), or 0 for out-of-bounds coordinates.
func (m *Mask) At(x, y int) int {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return 0
	}
	return int(m.cells[y*m.w+x])
}

// Grid returns a copy of the row-major cell grid.
func (m *Mask) Grid() []uint8 {
	out := make([]uint8, len(m.cells))
	copy(out, m.cells)
	return out
}

// Paint assigns classID to every given pixel. The class and all pixels are
// validated before any cell changes, so a gesture is fully applied or not
// started at all.
func (m *Mask) Paint(pixels []image.Point, classID int) error {
	if classID < 1 || classID > m.nclasses {
		return fmt.Errorf("mask: paint class %d outside [1, %d]", classID, m.nclasses)
	}
	if err := m.checkPixels(pixels); err != nil {
		return err
	}
	m.apply(pixels, uint8(classID))
	return nil
}

// Erase resets every given pixel to unassigned (0).
func (m *Mask) Erase(pixels []image.Point) error {
	if err := m.checkPixels(pixels); err != nil {
		return err
	}
	m.apply(pixels, 0)
	return nil
}

// ClearClass erases every cell currently holding classID.
func (m *Mask) ClearClass(classID int) error {
	if classID < 1 || classID > m.nclasses {
		return fmt.Errorf("mask: clear class %d outside [1, %d]", classID, m.nclasses)
	}
	changed := false
	v := uint8(classID)
	for i := range m.cells {
		if m.cells[i] == v {
			m.cells[i] = 0
			changed = true
		}
	}
	if changed {
		m.revision++
	}
	return nil
}

// ClearAll resets every cell to unassigned.
func (m *Mask) ClearAll() {
	changed := false
	for i := range m.cells {
		if m.cells[i] != 0 {
			m.cells[i] = 0
			changed = true
		}
	}
	if changed {
		m.revision++
	}
}

// Assigned returns the number of cells holding any class.
func (m *Mask) Assigned() int {
	n := 0
	for _, v := range m.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

func (m *Mask) checkPixels(pixels []image.Point) error {
	for _, p := range pixels {
		if p.X < 0 || p.Y < 0 || p.X >= m.w || p.Y >= m.h {
			return fmt.Errorf("mask: pixel (%d,%d) outside %dx%d grid", p.X, p.Y, m.w, m.h)
		}
	}
	return nil
}

func (m *Mask) apply(pixels []image.Point, v uint8) {
	changed := false
	for _, p := range pixels {
		i := p.Y*m.w + p.X
		if m.cells[i] != v {
			m.cells[i] = v
			changed = true
		}
	}
	if changed {
		m.revision++
	}
}

package model

import "fmt"

// PaintModel holds the current paint class and erase toggle. Changes take
// effect on the next completed gesture, never retroactively; presenters take
// a Snapshot at commit time. No synchronization needed: mutations happen in
// UI callbacks on the Tk event thread.
type PaintModel struct {
	nclasses int
	current  int
	erasing  bool
	revision uint64
}

// NewPaintModel returns a model with class 1 selected and erase off.
func NewPaintModel(nclasses int) (*PaintModel, error) {
	if nclasses < 1 {
		return nil, fmt.Errorf("paint model: class count %d must be positive", nclasses)
	}
	return &PaintModel{nclasses: nclasses, current: 1}, nil
}

// Classes returns the configured class count.
func (m *PaintModel) Classes() int {
	if m == nil {
		return 0
	}
	return m.nclasses
}

// SetClass selects the paint class. Values outside [1, nclasses] are rejected
// and leave the state unchanged.
func (m *PaintModel) SetClass(id int) error {
	if m == nil {
		return fmt.Errorf("paint model: nil")
	}
	if id < 1 || id > m.nclasses {
		return fmt.Errorf("paint model: class %d outside [1, %d]", id, m.nclasses)
	}
	if m.current != id {
		m.current = id
		m.revision++
	}
	return nil
}

// Class returns the selected paint class.
func (m *PaintModel) Class() int {
	if m == nil {
		return 0
	}
	return m.current
}

// SetErasing toggles erase mode.
func (m *PaintModel) SetErasing(b bool) {
	if m == nil || m.erasing == b {
		return
	}
	m.erasing = b
	m.revision++
}

// Erasing reports whether erase mode is on.
func (m *PaintModel) Erasing() bool {
	if m == nil {
		return false
	}
	return m.erasing
}

// Snapshot returns the class/erase pair a committing gesture should use.
func (m *PaintModel) Snapshot() (classID int, erasing bool) {
	if m == nil {
		return 0, false
	}
	return m.current, m.erasing
}

// Revision is bumped on every state change, for status display refresh.
func (m *PaintModel) Revision() uint64 {
	if m == nil {
		return 0
	}
	return m.revision
}

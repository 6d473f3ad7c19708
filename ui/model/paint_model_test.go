package model

import "testing"

func TestPaintModel_SetClassRejectsOutOfRange(t *testing.T) {
	m, err := NewPaintModel(3)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if m.Class() != 1 {
		t.Fatalf("initial class = %d, want 1", m.Class())
	}
	for _, bad := range []int{0, -1, 4, 255} {
		if err := m.SetClass(bad); err == nil {
			t.Fatalf("class %d must be rejected", bad)
		}
	}
	if m.Class() != 1 {
		t.Fatalf("rejected SetClass changed state to %d", m.Class())
	}
	if err := m.SetClass(3); err != nil {
		t.Fatalf("valid class rejected: %v", err)
	}
	if m.Class() != 3 {
		t.Fatalf("class = %d, want 3", m.Class())
	}
}

func TestPaintModel_SnapshotAndErase(t *testing.T) {
	m, _ := NewPaintModel(2)
	m.SetErasing(true)
	_ = m.SetClass(2)
	cls, erasing := m.Snapshot()
	if cls != 2 || !erasing {
		t.Fatalf("snapshot = (%d, %v), want (2, true)", cls, erasing)
	}
	rev := m.Revision()
	m.SetErasing(true) // no change
	if m.Revision() != rev {
		t.Fatal("no-op erase toggle bumped revision")
	}
	m.SetErasing(false)
	if m.Revision() == rev || m.Erasing() {
		t.Fatal("erase toggle off not applied")
	}
}

func TestNewPaintModel_Validation(t *testing.T) {
	if _, err := NewPaintModel(0); err == nil {
		t.Fatal("zero classes must fail")
	}
}

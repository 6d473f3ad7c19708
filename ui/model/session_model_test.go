package model

import (
	"testing"
	"time"
)

func TestSessionModel_BasicLifecycle(t *testing.T) {
	m := NewSessionModel()
	base := time.Unix(0, 0)

	// Draw for 5s.
	m.OnTick(true, base)
	m.OnTick(true, base.Add(5*time.Second))
	stretch, total := m.Values()
	if stretch < 5*time.Second || total < 5*time.Second {
		t.Fatalf("expected ~5s stretch & total; got stretch=%v total=%v", stretch, total)
	}

	// Stop at 5s.
	m.OnTick(false, base.Add(5*time.Second))
	stretch, total = m.Values()
	if stretch < 5*time.Second || total < 5*time.Second {
		t.Fatalf("after stop expected persisted 5s; got stretch=%v total=%v", stretch, total)
	}

	// Idle 2s (no change expected).
	m.OnTick(false, base.Add(7*time.Second))
	s2, t2 := m.Values()
	if s2 != stretch || t2 != total {
		t.Fatalf("idle tick changed durations: stretch %v->%v total %v->%v", stretch, s2, total, t2)
	}

	// Second stretch at 10s lasting 3s.
	m.OnTick(true, base.Add(10*time.Second))
	m.OnTick(true, base.Add(13*time.Second))
	s3, t3 := m.Values()
	if s3 < 3*time.Second {
		t.Fatalf("second stretch expected >=3s, got %v", s3)
	}
	if t3 < 8*time.Second { // 5 + 3 ongoing
		t.Fatalf("total should include previous 5s + current >=3s; got %v", t3)
	}
}

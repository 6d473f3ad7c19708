package gesture

import (
	"testing"

	"github.com/soocke/mask-painter-go/domain/mask"
)

func TestTracker_CommitsClosedPolygon(t *testing.T) {
	var got mask.Polygon
	tr := NewTracker(0, nil, func(p mask.Polygon) { got = p })

	tr.Press(1, 1)
	tr.Move(5, 1)
	tr.Move(5, 5)
	tr.Release(1, 5)

	if len(got) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(got))
	}
	if tr.Active() {
		t.Fatal("tracker still active after release")
	}
	if tr.Trace() != nil {
		t.Fatal("trace not cleared after release")
	}
}

func TestTracker_ShortGestureDiscarded(t *testing.T) {
	commits := 0
	tr := NewTracker(0, nil, func(mask.Polygon) { commits++ })

	tr.Press(1, 1)
	tr.Release(1, 1) // release at the press point: single distinct vertex
	if commits != 0 {
		t.Fatalf("short gesture committed %d times", commits)
	}
	if tr.Active() {
		t.Fatal("tracker stuck in tracing after discarded gesture")
	}
}

func TestTracker_MinStepFiltersDenseMotion(t *testing.T) {
	tr := NewTracker(2.0, nil, nil)
	tr.Press(0, 0)
	tr.Move(0.5, 0) // < minStep, dropped
	tr.Move(1.0, 0) // still < minStep from (0,0)
	tr.Move(3.0, 0)
	if got := len(tr.Trace()); got != 2 {
		t.Fatalf("expected 2 trace points, got %d", got)
	}
}

func TestTracker_IgnoresStrayEvents(t *testing.T) {
	commits := 0
	tr := NewTracker(0, nil, func(mask.Polygon) { commits++ })

	tr.Move(1, 1)
	tr.Release(1, 1)
	if tr.Active() || len(tr.Trace()) != 0 || commits != 0 {
		t.Fatal("events outside a gesture must be no-ops")
	}

	tr.Press(0, 0)
	tr.Press(9, 9) // second press while tracing is ignored
	tr.Move(4, 0)
	tr.Move(4, 4)
	tr.Release(0, 4)
	if commits != 1 {
		t.Fatalf("expected one commit, got %d", commits)
	}
}

func TestTracker_Cancel(t *testing.T) {
	commits := 0
	tr := NewTracker(0, nil, func(mask.Polygon) { commits++ })

	tr.Press(0, 0)
	tr.Move(4, 0)
	rev := tr.Revision()
	tr.Cancel()
	if tr.Active() || len(tr.Trace()) != 0 {
		t.Fatal("cancel must drop the in-progress trace")
	}
	if tr.Revision() == rev {
		t.Fatal("cancel with a visible trace must bump the revision")
	}
	tr.Release(4, 4)
	if commits != 0 {
		t.Fatal("cancelled gesture must not commit")
	}
}

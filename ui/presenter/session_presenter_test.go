package presenter

import (
	"testing"
	"time"

	"github.com/soocke/mask-painter-go/ui/model"
)

type mockDrawing struct{ active bool }

func (d *mockDrawing) Active() bool { return d.active }

type mockSessionView struct {
	stretch, total time.Duration
	calls          int
}

func (v *mockSessionView) SetSession(s, t time.Duration) {
	v.stretch, v.total = s, t
	v.calls++
}

func TestSessionPresenter_TracksDrawingTime(t *testing.T) {
	src := &mockDrawing{}
	view := &mockSessionView{}
	p := NewSessionPresenter(model.NewSessionModel(), src, view)
	base := time.Unix(0, 0)

	src.active = true
	p.Tick(base)
	p.Tick(base.Add(3 * time.Second))
	src.active = false
	p.Tick(base.Add(3 * time.Second))

	if view.calls != 3 {
		t.Fatalf("expected 3 view pushes, got %d", view.calls)
	}
	if view.total < 3*time.Second {
		t.Fatalf("total = %v, want >= 3s", view.total)
	}
}

func TestLoop_NilSafeAndSchedules(t *testing.T) {
	var l *Loop
	l.Tick() // must not panic

	scheduled := 0
	loop := NewLoop(nil, nil, func() { scheduled++ })
	loop.Tick()
	if scheduled != 1 {
		t.Fatalf("schedule callback not invoked: %d", scheduled)
	}
}

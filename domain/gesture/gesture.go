// Package gesture turns a pointer-drag event stream (press, move*, release)
// into closed lasso polygons.
package gesture

import (
	"log/slog"
	"math"

	"github.com/looplab/fsm"

	"github.com/soocke/mask-painter-go/domain/mask"
)

// DefaultMinStep is the minimum distance, in image pixels, between recorded
// trace points. Tk delivers very dense motion events; closer points add
// vertices without changing the enclosed region.
const DefaultMinStep = 1.0

const (
	stateIdle    = "idle"
	stateTracing = "tracing"
)

// Tracker collects one lasso gesture at a time. A press starts tracing,
// motion extends the path, and the release closes the polygon and hands it to
// the commit callback. A release with fewer than three distinct points is
// discarded. The tracker runs on the UI thread; it is not safe for concurrent
// use, matching the single-active-pointer model.
type Tracker struct {
	machine  *fsm.FSM
	logger   *slog.Logger
	minStep  float64
	points   []mask.Point
	revision uint64
	onCommit func(mask.Polygon)
}

// NewTracker returns a tracker that invokes onCommit with each completed
// polygon. minStep <= 0 selects DefaultMinStep.
func NewTracker(minStep float64, logger *slog.Logger, onCommit func(mask.Polygon)) *Tracker {
	if minStep <= 0 {
		minStep = DefaultMinStep
	}
	t := &Tracker{logger: logger, minStep: minStep, onCommit: onCommit}
	t.machine = fsm.NewFSM(
		stateIdle,
		fsm.Events{
			{Name: "press", Src: []string{stateIdle}, Dst: stateTracing},
			{Name: "release", Src: []string{stateTracing}, Dst: stateIdle},
			{Name: "cancel", Src: []string{stateTracing, stateIdle}, Dst: stateIdle},
		},
		fsm.Callbacks{
			"enter_" + stateTracing: func(e *fsm.Event) {
				t.points = t.points[:0]
			},
		},
	)
	return t
}

// Active reports whether a gesture is currently being traced.
func (t *Tracker) Active() bool {
	if t == nil {
		return false
	}
	return t.machine.Current() == stateTracing
}

// Revision returns a counter bumped whenever the visible trace changes.
func (t *Tracker) Revision() uint64 {
	if t == nil {
		return 0
	}
	return t.revision
}

// Trace returns a copy of the in-progress path for rendering.
func (t *Tracker) Trace() []mask.Point {
	if t == nil || len(t.points) == 0 {
		return nil
	}
	out := make([]mask.Point, len(t.points))
	copy(out, t.points)
	return out
}

// SetMinStep replaces the distance filter, as after a settings change.
// Values <= 0 select DefaultMinStep.
func (t *Tracker) SetMinStep(minStep float64) {
	if t == nil {
		return
	}
	if minStep <= 0 {
		minStep = DefaultMinStep
	}
	t.minStep = minStep
}

// Press starts a gesture at the given image coordinates. A press while
// already tracing is ignored.
func (t *Tracker) Press(x, y float64) {
	if t == nil {
		return
	}
	if err := t.machine.Event("press"); err != nil {
		return
	}
	t.points = append(t.points, mask.Point{X: x, Y: y})
	t.revision++
}

// Move extends the trace. Points closer than minStep to the previous one are
// dropped. Motion outside a gesture is ignored.
func (t *Tracker) Move(x, y float64) {
	if !t.Active() {
		return
	}
	last := t.points[len(t.points)-1]
	if math.Hypot(x-last.X, y-last.Y) < t.minStep {
		return
	}
	t.points = append(t.points, mask.Point{X: x, Y: y})
	t.revision++
}

// Release closes the gesture. Three or more collected points produce a
// polygon (closing edge implicit) handed to the commit callback; fewer points
// discard the gesture.
func (t *Tracker) Release(x, y float64) {
	if !t.Active() {
		return
	}
	t.Move(x, y)
	poly := mask.Polygon(t.Trace())
	t.points = t.points[:0]
	t.revision++
	if err := t.machine.Event("release"); err != nil {
		return
	}
	if len(poly) < 3 {
		if t.logger != nil {
			t.logger.Debug("gesture discarded", "points", len(poly))
		}
		return
	}
	if t.onCommit != nil {
		t.onCommit(poly)
	}
}

// Cancel drops an in-progress gesture without committing.
func (t *Tracker) Cancel() {
	if t == nil {
		return
	}
	_ = t.machine.Event("cancel")
	if len(t.points) > 0 {
		t.points = t.points[:0]
		t.revision++
	}
}

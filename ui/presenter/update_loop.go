package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback so the
// next tick lands back on the Tk event thread. The zero value is usable
// (methods are nil-safe).
type Loop struct {
	Canvas   *CanvasPresenter
	Session  *SessionPresenter
	Schedule func()
}

func NewLoop(canvas *CanvasPresenter, sess *SessionPresenter, schedule func()) *Loop {
	return &Loop{Canvas: canvas, Session: sess, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Canvas != nil {
		l.Canvas.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}

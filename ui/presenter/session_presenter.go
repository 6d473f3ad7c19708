package presenter

import (
	"time"

	"github.com/soocke/mask-painter-go/ui/model"
)

// DrawingSource reports whether a lasso gesture is currently being traced.
type DrawingSource interface{ Active() bool }

// SessionView displays formatted stretch and total drawing durations.
type SessionView interface {
	SetSession(stretch, total time.Duration)
}

// SessionPresenter advances the session model from the gesture state and
// pushes the durations to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	src  DrawingSource
	view SessionView
}

func NewSessionPresenter(sess *model.SessionModel, src DrawingSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, src: src, view: view}
}

// Tick updates the presenter: advance the session model and push values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.src == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.src.Active(), now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t)
}

package model

import (
	"time"
)

// SessionModel tracks how long the user has been actively drawing in the
// current stretch and in total. It is decoupled from the UI; presenters poll
// Values() and update views. The zero value is ready to use.
type SessionModel struct {
	active       bool
	stretchStart time.Time
	lastStretch  time.Duration
	accumulated  time.Duration
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates the model using the current drawing state and timestamp.
// Call periodically from a presenter tick.
func (m *SessionModel) OnTick(drawing bool, now time.Time) {
	if m == nil {
		return
	}
	if drawing {
		if !m.active { // transition idle -> drawing
			m.active = true
			m.stretchStart = now
			m.lastStretch = 0
		}
		m.lastStretch = now.Sub(m.stretchStart)
	} else if m.active { // transition drawing -> idle
		m.lastStretch = now.Sub(m.stretchStart)
		m.accumulated += m.lastStretch
		m.active = false
	}
}

// Values returns the current stretch duration and the total drawing time.
// The total includes the ongoing stretch when active.
func (m *SessionModel) Values() (stretch, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	stretch = m.lastStretch
	total = m.accumulated
	if m.active {
		total += stretch
	}
	return
}

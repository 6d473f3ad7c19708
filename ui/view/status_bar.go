package view

import (
	"fmt"
	"time"

	"github.com/soocke/mask-painter-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows the painter state line plus stretch/total drawing times.
type StatusBar interface {
	SetStatus(text string)
	SetSession(stretch, total time.Duration)
}

type statusBar struct {
	stateLbl   *LabelWidget
	stretchLbl *LabelWidget
	totalLbl   *LabelWidget
}

// NewStatusBar creates the status labels in a single row.
func NewStatusBar(row int) StatusBar {
	s := &statusBar{
		stateLbl:   Label(Txt("Class -"), Style(theme.StyleStateLabel)),
		stretchLbl: Label(Width(14)),
		totalLbl:   Label(Width(14)),
	}
	Grid(s.stateLbl, Row(row), Column(0), Columnspan(4), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	Grid(s.stretchLbl, Row(row), Column(4), Sticky("w"), Padx("0.2m"))
	Grid(s.totalLbl, Row(row), Column(5), Sticky("w"), Padx("0.2m"))
	s.stretchLbl.Configure(Txt("Drawing: 00:00"))
	s.totalLbl.Configure(Txt("Total: 00:00"))
	return s
}

func (s *statusBar) SetStatus(text string) {
	if s == nil || s.stateLbl == nil {
		return
	}
	s.stateLbl.Configure(Txt(text))
}

func (s *statusBar) SetSession(stretch, total time.Duration) {
	if s == nil {
		return
	}
	if s.stretchLbl != nil {
		s.stretchLbl.Configure(Txt("Drawing: " + mmss(stretch)))
	}
	if s.totalLbl != nil {
		s.totalLbl.Configure(Txt("Total: " + mmss(total)))
	}
}

func mmss(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

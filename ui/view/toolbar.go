package view

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/soocke/mask-painter-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ToolbarCallbacks are invoked on user actions. A nil OnRegrab hides the
// regrab button (only the screen source offers it).
type ToolbarCallbacks struct {
	OnClassChanged func(classID int)
	OnEraseToggle  func() bool // returns the new erase state
	OnZoomIn       func()
	OnZoomOut      func()
	OnZoomReset    func()
	OnClearClass   func()
	OnClearAll     func()
	OnSaveMask     func()
	OnRegrab       func()
	OnExit         func()
}

// Toolbar exposes the small mutable surface presenters need.
type Toolbar interface {
	SetEraseState(on bool)
}

type toolbar struct {
	logger   *slog.Logger
	eraseBtn *ButtonWidget
}

// NewToolbar builds the class selector and action buttons at the given row.
// classLabels entries are shown in the selection dropdown, index i selecting
// class i+1.
func NewToolbar(row int, classLabels []string, cb ToolbarCallbacks, logger *slog.Logger) Toolbar {
	t := &toolbar{logger: logger}

	frame := Frame()
	Grid(frame, Row(row), Column(0), Columnspan(6), Sticky("we"), Padx("0.3m"), Pady("0.3m"))

	if len(classLabels) == 0 {
		classLabels = []string{"<none>"}
	}
	classSelect := TCombobox(Values(classLabels), Width(18), State("readonly"))
	Grid(classSelect, In(frame), Row(0), Column(0), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
	classSelect.Current(0)
	Bind(classSelect, "<<ComboboxSelected>>", Command(func() {
		idxStr := classSelect.Current(nil)
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 || idx >= len(classLabels) {
			if logger != nil {
				logger.Error("class selection parse error", "error", err, "index", idxStr)
			}
			return
		}
		if cb.OnClassChanged != nil {
			cb.OnClassChanged(idx + 1)
		}
	}))

	t.eraseBtn = Button(Txt("Erase: off"), Style(theme.StylePrimaryButton), Command(func() {
		if cb.OnEraseToggle != nil {
			t.SetEraseState(cb.OnEraseToggle())
		}
	}))
	col := 1
	place := func(w *ButtonWidget) {
		Grid(w, In(frame), Row(0), Column(col), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
		col++
	}
	place(t.eraseBtn)
	place(Button(Txt("Zoom +"), Command(cb.OnZoomIn)))
	place(Button(Txt("Zoom -"), Command(cb.OnZoomOut)))
	place(Button(Txt("1:1"), Command(cb.OnZoomReset)))
	place(Button(Txt("Clear Class"), Command(cb.OnClearClass)))
	place(Button(Txt("Clear All"), Style(theme.StyleDangerButton), Command(cb.OnClearAll)))
	place(Button(Txt("Save Mask"), Command(cb.OnSaveMask)))
	if cb.OnRegrab != nil {
		place(Button(Txt("Regrab Screen"), Command(cb.OnRegrab)))
	}
	place(Button(Txt("Exit"), Command(cb.OnExit)))

	return t
}

func (t *toolbar) SetEraseState(on bool) {
	if t == nil || t.eraseBtn == nil {
		return
	}
	t.eraseBtn.Configure(Txt(fmt.Sprintf("Erase: %s", onOff(on))))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

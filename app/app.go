package app

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/mask-painter-go/domain/mask"
	"github.com/soocke/mask-painter-go/domain/palette"
	"github.com/soocke/mask-painter-go/ui/model"
	"github.com/soocke/mask-painter-go/ui/presenter"
	"github.com/soocke/mask-painter-go/ui/theme"
	"github.com/soocke/mask-painter-go/ui/view"
)

// tick drives the redraw loop. 33ms keeps the lasso preview fluid without
// saturating the Tcl event queue; dirty checking makes idle ticks cheap.
const tick = 33 * time.Millisecond

type app struct {
	c       *AppContainer
	logger  *slog.Logger
	loop    *presenter.Loop
	afterID string
	picker  view.RegionPicker

	panLastX int
	panLastY int
}

// NewApp sets up the top-level window around an assembled container.
func NewApp(title string, c *AppContainer) *app {
	a := &app{c: c, logger: c.Logger}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+80+80", c.Config.WindowW, c.Config.WindowH))
	return a
}

// Start builds the UI, binds input and runs the Tk main loop until exit.
func (a *app) Start() {
	theme.InitStyles()

	cb := view.ToolbarCallbacks{
		OnClassChanged: a.selectClass,
		OnEraseToggle:  a.toggleErase,
		OnZoomIn:       func() { a.c.Viewport.ZoomIn() },
		OnZoomOut:      func() { a.c.Viewport.ZoomOut() },
		OnZoomReset:    func() { a.c.Viewport.Reset() },
		OnClearClass:   a.clearCurrentClass,
		OnClearAll:     a.clearAll,
		OnSaveMask:     a.saveMask,
		OnExit:         a.exitHandler,
	}
	if a.c.Options.Source == SourceScreen {
		cb.OnRegrab = a.regrab
		a.picker = view.NewRegionPicker(a.c.Config, a.c.ConfigPath, a.logger,
			func(image.Rectangle) { a.regrab() })
	}

	a.c.RootView.Build(a.c.ClassLabels(), cb, a.onConfigApplied)
	a.bindPointer()
	a.bindKeys()

	a.loop = presenter.NewLoop(a.c.Canvas, a.c.Sess, a.scheduleUpdate)
	a.scheduleUpdate()
	App.Wait()
}

// bindPointer routes canvas pointer events into the gesture tracker and the
// viewport pan. Display coordinates are mapped to image space at event time so
// bindings survive viewport replacement after a regrab.
func (a *app) bindPointer() {
	a.c.RootView.Canvas.BindLasso(
		func(x, y int) {
			ix, iy := a.c.Viewport.ToImage(x, y)
			a.c.Tracker.Press(ix, iy)
		},
		func(x, y int) {
			ix, iy := a.c.Viewport.ToImage(x, y)
			a.c.Tracker.Move(ix, iy)
		},
		func(x, y int) {
			ix, iy := a.c.Viewport.ToImage(x, y)
			a.c.Tracker.Release(ix, iy)
		},
	)
	a.c.RootView.Canvas.BindPan(
		func(x, y int) {
			a.panLastX, a.panLastY = x, y
		},
		func(x, y int) {
			a.c.Viewport.PanBy(a.panLastX-x, a.panLastY-y)
			a.panLastX, a.panLastY = x, y
		},
	)
}

// bindKeys adds keyboard shortcuts: digits pick a class, e toggles erasing,
// Escape drops the in-progress lasso, plus/minus/0 drive the zoom.
func (a *app) bindKeys() {
	classes := a.c.Paint.Classes()
	if classes > 9 {
		classes = 9
	}
	for i := 1; i <= classes; i++ {
		id := i
		Bind(App, fmt.Sprintf("<Key-%d>", i), Command(func() { a.selectClass(id) }))
	}
	Bind(App, "<Key-e>", Command(func() {
		on := a.toggleErase()
		a.c.RootView.SetEraseState(on)
	}))
	Bind(App, "<Escape>", Command(func() { a.c.Tracker.Cancel() }))
	Bind(App, "<Key-plus>", Command(func() { a.c.Viewport.ZoomIn() }))
	Bind(App, "<Key-minus>", Command(func() { a.c.Viewport.ZoomOut() }))
	Bind(App, "<Key-0>", Command(func() { a.c.Viewport.Reset() }))
}

func (a *app) selectClass(classID int) {
	if err := a.c.Paint.SetClass(classID); err != nil {
		a.logger.Warn("Class selection rejected", slog.Int("class", classID), slog.Any("error", err))
	}
}

func (a *app) toggleErase() bool {
	on := !a.c.Paint.Erasing()
	a.c.Paint.SetErasing(on)
	return on
}

func (a *app) clearCurrentClass() {
	classID := a.c.Paint.Class()
	if err := a.c.Mask.ClearClass(classID); err != nil {
		a.logger.Warn("Clear class failed", slog.Int("class", classID), slog.Any("error", err))
		return
	}
	a.logger.Info("Cleared class", slog.Int("class", classID))
}

func (a *app) clearAll() {
	a.c.Tracker.Cancel()
	a.c.Mask.ClearAll()
	a.logger.Info("Cleared mask")
}

// saveMask writes the current mask next to the working directory under a
// unique name so successive exports never overwrite each other.
func (a *app) saveMask() {
	path := mask.ExportName()
	if err := a.c.Mask.Save(path); err != nil {
		a.logger.Error("Mask save failed", slog.String("path", path), slog.Any("error", err))
		return
	}
	a.logger.Info("Saved mask", slog.String("path", path), slog.Int("assigned", a.c.Mask.Assigned()))
}

// regrab captures a fresh frame for the screen source. When the capture shape
// matches the current scene the mask survives; a shape change starts a blank
// mask since cell positions would no longer correspond.
func (a *app) regrab() {
	if a.picker != nil && a.picker.ActiveRect() == nil {
		a.picker.OpenOrFocus()
		return
	}
	img, err := grabScreen(a.c.Config)
	if err != nil {
		a.logger.Error("Regrab failed", slog.Any("error", err))
		return
	}
	a.c.Tracker.Cancel()
	a.c.Base = img
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w != a.c.Mask.Width() || h != a.c.Mask.Height() {
		m, err := mask.New(w, h, a.c.Config.Classes)
		if err != nil {
			a.logger.Error("Regrab mask rebuild failed", slog.Any("error", err))
			return
		}
		a.c.Mask = m
		a.c.Painter.SetMask(m)
		a.c.Viewport = model.NewViewport(w, h, a.c.Config.CanvasW, a.c.Config.CanvasH)
	}
	a.c.Canvas.SetScene(a.c.Base, a.c.Mask, a.c.Viewport)
	a.logger.Info("Regrabbed scene", slog.Int("width", w), slog.Int("height", h))
}

// onConfigApplied rebuilds the style-dependent pieces after the settings form
// saved a new config. Class count and canvas size stay fixed for the session.
func (a *app) onConfigApplied() {
	cfg := a.c.Config
	pal, err := palette.New(cfg.Classes, cfg.ClassColors, cfg.OverlayAlpha)
	if err != nil {
		a.logger.Warn("Palette rebuild failed, keeping previous", slog.Any("error", err))
		pal = a.c.Palette
	} else {
		a.c.Palette = pal
	}
	a.c.Tracker.SetMinStep(cfg.MinGestureStep)
	a.c.Canvas.UpdateStyle(pal, ParseLineColor(cfg.LassoColor), cfg.LassoWidth)
	a.logger.Info("Applied display settings",
		slog.Float64("overlayAlpha", cfg.OverlayAlpha),
		slog.String("lassoColor", cfg.LassoColor))
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	if a.picker != nil {
		a.picker.Clear()
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// TclAfter keeps every update on Tk's event thread.
	a.afterID = TclAfter(tick, func() { a.loop.Tick() })
}

package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/mask-painter-go/config"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal surface for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Canvas      CanvasView
	Toolbar     Toolbar
	Status      StatusBar
	ConfigPanel ConfigPanel
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	UpdateCanvas(img image.Image)
	SetStatus(text string)
	SetSession(stretch, total time.Duration)
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout: toolbar, canvas, status bar, then the display
// settings form. classLabels feed the class dropdown; handlers are invoked on
// user actions.
func (rv *RootView) Build(classLabels []string, cb ToolbarCallbacks, onConfigApplied func()) {
	if rv == nil {
		return
	}
	rv.Toolbar = NewToolbar(0, classLabels, cb, rv.logger)
	rv.Canvas = NewCanvasView(1, rv.cfg.CanvasW, rv.cfg.CanvasH)
	rv.Status = NewStatusBar(2)
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, onConfigApplied)
	rv.ConfigPanel.Build(3)
}

// UpdateCanvas proxies to the canvas view.
func (rv *RootView) UpdateCanvas(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.UpdateCanvas(img)
	}
}

// SetStatus updates the painter state line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStatus(text)
	}
}

// SetSession updates stretch and total drawing durations.
func (rv *RootView) SetSession(stretch, total time.Duration) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetSession(stretch, total)
	}
}

// SetEraseState proxies to the toolbar toggle label.
func (rv *RootView) SetEraseState(on bool) {
	if rv != nil && rv.Toolbar != nil {
		rv.Toolbar.SetEraseState(on)
	}
}

package app

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/soocke/mask-painter-go/config"
	"github.com/soocke/mask-painter-go/domain/gesture"
	"github.com/soocke/mask-painter-go/domain/mask"
	"github.com/soocke/mask-painter-go/domain/palette"
	"github.com/soocke/mask-painter-go/ui/model"
	"github.com/soocke/mask-painter-go/ui/presenter"
	"github.com/soocke/mask-painter-go/ui/view"
)

// Options carries the command-line choices into container assembly.
type Options struct {
	Source    string
	ImagePath string
	MaskPath  string
}

// AppContainer wires the scene, mask, models, presenters and root view
// together. Everything in here lives on the UI thread.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Options    Options

	Base     *image.RGBA
	Mask     *mask.Mask
	Palette  *palette.Palette
	Paint    *model.PaintModel
	Viewport *model.Viewport
	Session  *model.SessionModel
	Tracker  *gesture.Tracker

	RootView *view.RootView
	Painter  *presenter.PaintPresenter
	Canvas   *presenter.CanvasPresenter
	Sess     *presenter.SessionPresenter
}

// BuildContainer loads the scene, creates or pre-seeds the mask and assembles
// the presenter graph around them.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger, opts Options) (*AppContainer, error) {
	base, err := loadScene(cfg, opts, logger)
	if err != nil {
		return nil, err
	}
	w, h := base.Bounds().Dx(), base.Bounds().Dy()

	var m *mask.Mask
	if opts.MaskPath != "" {
		m, err = mask.Load(opts.MaskPath, w, h, cfg.Classes)
		if err != nil {
			return nil, fmt.Errorf("load mask %s: %w", opts.MaskPath, err)
		}
		logger.Info("Pre-seeded mask", slog.String("path", opts.MaskPath), slog.Int("assigned", m.Assigned()))
	} else {
		m, err = mask.New(w, h, cfg.Classes)
		if err != nil {
			return nil, fmt.Errorf("create mask: %w", err)
		}
	}

	pal, err := palette.New(cfg.Classes, cfg.ClassColors, cfg.OverlayAlpha)
	if err != nil {
		return nil, fmt.Errorf("build palette: %w", err)
	}
	paint, err := model.NewPaintModel(cfg.Classes)
	if err != nil {
		return nil, err
	}

	c := &AppContainer{
		Config:     cfg,
		ConfigPath: cfgPath,
		Logger:     logger,
		Options:    opts,
		Base:       base,
		Mask:       m,
		Palette:    pal,
		Paint:      paint,
		Viewport:   model.NewViewport(w, h, cfg.CanvasW, cfg.CanvasH),
		Session:    model.NewSessionModel(),
		RootView:   view.NewRootView(cfg, cfgPath, logger),
	}

	c.Painter = presenter.NewPaintPresenter(m, paint, logger)
	c.Tracker = gesture.NewTracker(cfg.MinGestureStep, logger, c.Painter.OnGesture)
	c.Canvas = presenter.NewCanvasPresenter(base, m, pal, c.Viewport, paint, c.Tracker,
		c.RootView, ParseLineColor(cfg.LassoColor), cfg.LassoWidth)
	c.Sess = presenter.NewSessionPresenter(c.Session, c.Tracker, c.RootView)
	return c, nil
}

// ClassLabels returns the combobox entries for the selectable classes, one per
// paintable class id.
func (c *AppContainer) ClassLabels() []string {
	labels := make([]string, c.Paint.Classes())
	for i := range labels {
		labels[i] = fmt.Sprintf("Class %d (%s)", i+1, c.Palette.Hex(i+1))
	}
	return labels
}

// ParseLineColor parses a hex color like "#112233". Unparseable input falls
// back to black so a bad config cannot take the lasso invisible.
func ParseLineColor(hex string) color.NRGBA {
	col, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

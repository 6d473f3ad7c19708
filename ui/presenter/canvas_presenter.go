package presenter

import (
	"fmt"
	"image"
	"image/color"

	"github.com/soocke/mask-painter-go/domain/mask"
	"github.com/soocke/mask-painter-go/domain/palette"
	"github.com/soocke/mask-painter-go/ui/model"
	"github.com/soocke/mask-painter-go/ui/render"
)

// TraceSource exposes the in-progress lasso for rendering.
type TraceSource interface {
	Active() bool
	Trace() []mask.Point
	Revision() uint64
}

// CanvasUI is the view surface the presenter pushes pixels and status to.
type CanvasUI interface {
	UpdateCanvas(img image.Image)
	SetStatus(text string)
}

// CanvasPresenter owns the redraw pipeline. Each tick it compares mask,
// trace, viewport and paint-state revisions against the last rendered ones
// and recomposites only when something changed. The base-plus-overlay
// composite is cached and rebuilt only on mask mutations; the lasso is drawn
// onto a copy per frame while a gesture is live.
type CanvasPresenter struct {
	base  *image.RGBA
	mask  *mask.Mask
	pal   *palette.Palette
	vp    *model.Viewport
	paint *model.PaintModel
	trace TraceSource
	view  CanvasUI

	lassoColor color.NRGBA
	lassoWidth float64

	composited   *image.RGBA
	rendered     bool
	lastMaskRev  uint64
	lastTraceRev uint64
	lastVpRev    uint64
	lastPaint    uint64
}

func NewCanvasPresenter(base *image.RGBA, m *mask.Mask, pal *palette.Palette, vp *model.Viewport,
	paint *model.PaintModel, trace TraceSource, view CanvasUI, lassoColor color.NRGBA, lassoWidth float64) *CanvasPresenter {
	return &CanvasPresenter{
		base: base, mask: m, pal: pal, vp: vp, paint: paint, trace: trace, view: view,
		lassoColor: lassoColor, lassoWidth: lassoWidth,
	}
}

// SetScene swaps in a new base image, mask and viewport, as after a regrab.
// The cached composite is dropped so the next tick redraws from scratch.
func (p *CanvasPresenter) SetScene(base *image.RGBA, m *mask.Mask, vp *model.Viewport) {
	if p == nil {
		return
	}
	p.base = base
	p.mask = m
	p.vp = vp
	p.composited = nil
	p.rendered = false
}

// UpdateStyle applies new overlay and lasso settings and forces a redraw.
func (p *CanvasPresenter) UpdateStyle(pal *palette.Palette, lassoColor color.NRGBA, lassoWidth float64) {
	if p == nil {
		return
	}
	p.pal = pal
	p.lassoColor = lassoColor
	p.lassoWidth = lassoWidth
	p.composited = nil
	p.rendered = false
}

// Tick renders and pushes the canvas if anything changed since the last tick.
func (p *CanvasPresenter) Tick() {
	if p == nil || p.view == nil || p.base == nil {
		return
	}
	maskRev := p.mask.Revision()
	traceRev := p.trace.Revision()
	vpRev := p.vp.Revision()
	paintRev := p.paint.Revision()
	if p.rendered && maskRev == p.lastMaskRev && traceRev == p.lastTraceRev &&
		vpRev == p.lastVpRev && paintRev == p.lastPaint {
		return
	}

	if p.composited == nil || maskRev != p.lastMaskRev {
		p.composited = render.Composite(p.base, p.mask, p.pal)
	}
	frame := p.composited
	if trace := p.trace.Trace(); len(trace) > 1 {
		frame = cloneRGBA(p.composited)
		render.DrawLasso(frame, trace, p.lassoColor, p.lassoWidth)
	}
	p.view.UpdateCanvas(render.RenderView(frame, p.vp))
	p.view.SetStatus(p.statusText())

	p.rendered = true
	p.lastMaskRev = maskRev
	p.lastTraceRev = traceRev
	p.lastVpRev = vpRev
	p.lastPaint = paintRev
}

func (p *CanvasPresenter) statusText() string {
	mode := "paint"
	if p.paint.Erasing() {
		mode = "erase"
	}
	total := p.mask.Width() * p.mask.Height()
	pct := 0.0
	if total > 0 {
		pct = 100 * float64(p.mask.Assigned()) / float64(total)
	}
	return fmt.Sprintf("Class %d/%d | %s | zoom %.2fx | %.1f%% labelled",
		p.paint.Class(), p.paint.Classes(), mode, p.vp.Zoom(), pct)
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	out := &image.RGBA{Pix: make([]uint8, len(src.Pix)), Stride: src.Stride, Rect: src.Rect}
	copy(out.Pix, src.Pix)
	return out
}

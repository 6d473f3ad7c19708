package presenter

import (
	"image"
	"log/slog"

	"github.com/soocke/mask-painter-go/domain/mask"
)

// MaskStore narrows what the presenter needs from the mask layer.
type MaskStore interface {
	Paint(pixels []image.Point, classID int) error
	Erase(pixels []image.Point) error
	Bounds() image.Rectangle
}

// PaintSnapshot supplies the class/erase pair for a committing gesture.
type PaintSnapshot interface {
	Snapshot() (classID int, erasing bool)
}

// PaintPresenter turns completed lasso polygons into mask mutations. The
// paint state is sampled at commit time, so mid-gesture class or erase
// changes apply to the next gesture only.
type PaintPresenter struct {
	mask   MaskStore
	state  PaintSnapshot
	logger *slog.Logger
}

func NewPaintPresenter(mask MaskStore, state PaintSnapshot, logger *slog.Logger) *PaintPresenter {
	return &PaintPresenter{mask: mask, state: state, logger: logger}
}

// SetMask points the presenter at a replacement mask store.
func (p *PaintPresenter) SetMask(mask MaskStore) {
	if p == nil {
		return
	}
	p.mask = mask
}

// OnGesture rasterizes the polygon and applies it. Gestures enclosing no
// pixel centers are no-ops; mask rejections leave the mask untouched and are
// logged rather than surfaced to the UI.
func (p *PaintPresenter) OnGesture(poly mask.Polygon) {
	if p == nil || p.mask == nil || p.state == nil {
		return
	}
	pixels := mask.RasterizePolygon(poly, p.mask.Bounds())
	if len(pixels) == 0 {
		if p.logger != nil {
			p.logger.Debug("gesture enclosed no pixels", "vertices", len(poly))
		}
		return
	}
	classID, erasing := p.state.Snapshot()
	var err error
	if erasing {
		err = p.mask.Erase(pixels)
	} else {
		err = p.mask.Paint(pixels, classID)
	}
	if err != nil {
		if p.logger != nil {
			p.logger.Error("gesture rejected", "error", err, "class", classID, "erase", erasing)
		}
		return
	}
	if p.logger != nil {
		p.logger.Debug("gesture applied", "pixels", len(pixels), "class", classID, "erase", erasing)
	}
}

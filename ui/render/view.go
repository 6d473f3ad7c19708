package render

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/soocke/mask-painter-go/ui/model"
)

// canvasBackdrop fills the area around an image smaller than the canvas.
var canvasBackdrop = color.NRGBA{R: 40, G: 44, B: 52, A: 255}

// RenderView produces the canvas-sized display image for the current
// viewport: the visible part of the composited image, scaled by the zoom
// factor and positioned so that viewport.ToImage stays the exact inverse of
// the drawing transform. Upscaling is nearest-neighbour so mask pixels stay
// crisp; downscaling uses a box filter.
func RenderView(composited *image.RGBA, vp *model.Viewport) image.Image {
	viewW, viewH := vp.ViewSize()
	out := imaging.New(viewW, viewH, canvasBackdrop)
	if composited == nil {
		return out
	}

	visible := vp.Visible().Intersect(composited.Bounds())
	if visible.Empty() {
		return out
	}
	zoom := vp.Zoom()
	targetW := int(math.Round(float64(visible.Dx()) * zoom))
	targetH := int(math.Round(float64(visible.Dy()) * zoom))
	if targetW < 1 || targetH < 1 {
		return out
	}

	filter := imaging.Box
	if zoom >= 1 {
		filter = imaging.NearestNeighbor
	}
	scaled := imaging.Resize(imaging.Crop(composited, visible), targetW, targetH, filter)

	panX, panY := vp.Pan()
	pos := image.Pt(
		int(math.Round((float64(visible.Min.X)-panX)*zoom)),
		int(math.Round((float64(visible.Min.Y)-panY)*zoom)),
	)
	return imaging.Paste(out, scaled, pos)
}

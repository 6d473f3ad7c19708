package model

import (
	"image"
	"math"
)

const (
	minZoom  = 0.25
	maxZoom  = 8.0
	zoomStep = 1.25
)

// Viewport maps between display (canvas) and image coordinates. Zoom and pan
// affect only this mapping; gestures are recorded in image coordinates, so
// the mask never sees display transforms.
type Viewport struct {
	imgW, imgH   int
	viewW, viewH int
	zoom         float64
	panX, panY   float64 // image coordinates of the display origin
	revision     uint64
}

// NewViewport creates a viewport over an imgW x imgH image shown on a
// viewW x viewH canvas, at 1:1 zoom.
func NewViewport(imgW, imgH, viewW, viewH int) *Viewport {
	v := &Viewport{imgW: imgW, imgH: imgH, viewW: viewW, viewH: viewH, zoom: 1}
	v.clampPan()
	return v
}

// Zoom returns the current zoom factor.
func (v *Viewport) Zoom() float64 { return v.zoom }

// Revision is bumped on every zoom or pan change.
func (v *Viewport) Revision() uint64 { return v.revision }

// ViewSize returns the canvas size in display pixels.
func (v *Viewport) ViewSize() (w, h int) { return v.viewW, v.viewH }

// Pan returns the image coordinates of the display origin. Either value may
// be negative when the zoomed image is smaller than the canvas (centered).
func (v *Viewport) Pan() (x, y float64) { return v.panX, v.panY }

// ZoomIn zooms around the canvas center.
func (v *Viewport) ZoomIn() { v.setZoom(v.zoom * zoomStep) }

// ZoomOut zooms around the canvas center.
func (v *Viewport) ZoomOut() { v.setZoom(v.zoom / zoomStep) }

// Reset restores 1:1 zoom at the image origin.
func (v *Viewport) Reset() {
	v.zoom = 1
	v.panX, v.panY = 0, 0
	v.clampPan()
	v.revision++
}

func (v *Viewport) setZoom(z float64) {
	z = math.Min(maxZoom, math.Max(minZoom, z))
	if z == v.zoom {
		return
	}
	// Keep the image point under the canvas center fixed.
	cx := v.panX + float64(v.viewW)/(2*v.zoom)
	cy := v.panY + float64(v.viewH)/(2*v.zoom)
	v.zoom = z
	v.panX = cx - float64(v.viewW)/(2*z)
	v.panY = cy - float64(v.viewH)/(2*z)
	v.clampPan()
	v.revision++
}

// PanBy shifts the view by a display-pixel delta.
func (v *Viewport) PanBy(dx, dy int) {
	v.panX += float64(dx) / v.zoom
	v.panY += float64(dy) / v.zoom
	v.clampPan()
	v.revision++
}

// ToImage converts display coordinates to image coordinates.
func (v *Viewport) ToImage(dx, dy int) (x, y float64) {
	return v.panX + float64(dx)/v.zoom, v.panY + float64(dy)/v.zoom
}

// Visible returns the image rectangle currently on screen, clipped to the
// image bounds and never empty.
func (v *Viewport) Visible() image.Rectangle {
	x0 := int(math.Floor(v.panX))
	y0 := int(math.Floor(v.panY))
	x1 := int(math.Ceil(v.panX + float64(v.viewW)/v.zoom))
	y1 := int(math.Ceil(v.panY + float64(v.viewH)/v.zoom))
	r := image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, v.imgW, v.imgH))
	if r.Empty() {
		r = image.Rect(0, 0, v.imgW, v.imgH)
	}
	return r
}

// clampPan keeps the visible window inside the image where possible, and
// centers the image on axes where it is smaller than the view.
func (v *Viewport) clampPan() {
	spanX := float64(v.viewW) / v.zoom
	spanY := float64(v.viewH) / v.zoom
	v.panX = clampOffset(v.panX, spanX, float64(v.imgW))
	v.panY = clampOffset(v.panY, spanY, float64(v.imgH))
}

func clampOffset(off, span, size float64) float64 {
	if span >= size {
		return (size - span) / 2
	}
	if off < 0 {
		return 0
	}
	if off > size-span {
		return size - span
	}
	return off
}

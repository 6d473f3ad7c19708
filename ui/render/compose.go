// Package render builds the canvas pixels: base image, class overlay, lasso
// trace, and the zoomed view shown in the Tk photo.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"

	"github.com/soocke/mask-painter-go/domain/mask"
	"github.com/soocke/mask-painter-go/domain/palette"
)

// ToRGBA returns img as *image.RGBA, copying only when needed.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Composite blends the class overlay over the base image. Class 0 cells leave
// the base pixel untouched; assigned cells are alpha-blended with the
// palette's overlay color. The base is never modified.
func Composite(base *image.RGBA, m *mask.Mask, pal *palette.Palette) *image.RGBA {
	b := base.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), base, b.Min, draw.Src)
	if m == nil || pal == nil {
		return out
	}
	w, h := m.Width(), m.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := m.At(x, y)
			if id == 0 {
				continue
			}
			blend(out, x, y, pal.Overlay(id))
		}
	}
	return out
}

// blend applies src-over with a straight-alpha color.
func blend(dst *image.RGBA, x, y int, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	i := dst.PixOffset(x, y)
	a := uint32(c.A)
	inv := 255 - a
	dst.Pix[i+0] = uint8((uint32(c.R)*a + uint32(dst.Pix[i+0])*inv) / 255)
	dst.Pix[i+1] = uint8((uint32(c.G)*a + uint32(dst.Pix[i+1])*inv) / 255)
	dst.Pix[i+2] = uint8((uint32(c.B)*a + uint32(dst.Pix[i+2])*inv) / 255)
	dst.Pix[i+3] = 0xff
}

// DrawLasso strokes the in-progress gesture path onto dst in image
// coordinates: a solid polyline along the trace and a dashed closing edge
// back to the start point.
func DrawLasso(dst *image.RGBA, trace []mask.Point, lineColor color.NRGBA, width float64) {
	if len(trace) < 2 || width <= 0 {
		return
	}
	ctx := gg.NewContextForRGBA(dst)
	ctx.SetColor(lineColor)
	ctx.SetLineWidth(width)
	ctx.MoveTo(trace[0].X, trace[0].Y)
	for _, p := range trace[1:] {
		ctx.LineTo(p.X, p.Y)
	}
	ctx.Stroke()
	if len(trace) > 2 {
		ctx.SetDash(3*width, 3*width)
		ctx.MoveTo(trace[len(trace)-1].X, trace[len(trace)-1].Y)
		ctx.LineTo(trace[0].X, trace[0].Y)
		ctx.Stroke()
	}
}

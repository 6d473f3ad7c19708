package view

import (
	"image"

	"github.com/soocke/mask-painter-go/ui/render"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CanvasView owns the label-backed drawing surface. The composited frame
// arrives as an image; pointer events leave as display coordinates.
type CanvasView interface {
	UpdateCanvas(img image.Image)
	BindLasso(onPress, onMove, onRelease func(x, y int))
	BindPan(onStart, onMove func(x, y int))
}

type canvasView struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo, disposed before replacement
}

// NewCanvasView creates the canvas label at the given grid row, sized w x h.
func NewCanvasView(row, w, h int) CanvasView {
	placeholder := image.NewRGBA(image.Rect(0, 0, w, h))
	photo := NewPhoto(Data(render.EncodePNG(placeholder)))
	lbl := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(lbl, Row(row), Column(0), Columnspan(6), Padx("0.4m"), Pady("0.4m"))
	return &canvasView{label: lbl, prevPhoto: photo}
}

func (v *canvasView) UpdateCanvas(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	pngBytes := render.EncodePNG(img)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.prevPhoto))
}

// BindLasso wires the primary-button drag stream that feeds the gesture
// tracker. Coordinates are display pixels relative to the canvas.
func (v *canvasView) BindLasso(onPress, onMove, onRelease func(x, y int)) {
	if v == nil || v.label == nil {
		return
	}
	Bind(v.label, "<ButtonPress-1>", Command(func(e *Event) { onPress(e.X, e.Y) }))
	Bind(v.label, "<B1-Motion>", Command(func(e *Event) { onMove(e.X, e.Y) }))
	Bind(v.label, "<ButtonRelease-1>", Command(func(e *Event) { onRelease(e.X, e.Y) }))
}

// BindPan wires the secondary-button drag used for panning the viewport.
func (v *canvasView) BindPan(onStart, onMove func(x, y int)) {
	if v == nil || v.label == nil {
		return
	}
	Bind(v.label, "<ButtonPress-3>", Command(func(e *Event) { onStart(e.X, e.Y) }))
	Bind(v.label, "<B3-Motion>", Command(func(e *Event) { onMove(e.X, e.Y) }))
}

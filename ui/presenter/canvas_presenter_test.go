package presenter

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/soocke/mask-painter-go/domain/mask"
	"github.com/soocke/mask-painter-go/domain/palette"
	"github.com/soocke/mask-painter-go/ui/model"
)

type mockTrace struct {
	active bool
	trace  []mask.Point
	rev    uint64
}

func (t *mockTrace) Active() bool        { return t.active }
func (t *mockTrace) Trace() []mask.Point { return t.trace }
func (t *mockTrace) Revision() uint64    { return t.rev }

type mockCanvas struct {
	updates  int
	statuses []string
}

func (v *mockCanvas) UpdateCanvas(img image.Image) { v.updates++ }
func (v *mockCanvas) SetStatus(s string)           { v.statuses = append(v.statuses, s) }

func newCanvasFixture(t *testing.T) (*CanvasPresenter, *mask.Mask, *model.PaintModel, *mockTrace, *mockCanvas) {
	t.Helper()
	base := image.NewRGBA(image.Rect(0, 0, 16, 16))
	m, err := mask.New(16, 16, 3)
	if err != nil {
		t.Fatal(err)
	}
	pal, err := palette.New(3, nil, palette.DefaultAlpha)
	if err != nil {
		t.Fatal(err)
	}
	paint, err := model.NewPaintModel(3)
	if err != nil {
		t.Fatal(err)
	}
	vp := model.NewViewport(16, 16, 32, 32)
	tr := &mockTrace{}
	view := &mockCanvas{}
	p := NewCanvasPresenter(base, m, pal, vp, paint, tr, view, color.NRGBA{A: 255}, 1)
	return p, m, paint, tr, view
}

func TestCanvasPresenter_RendersOnceWhenClean(t *testing.T) {
	p, _, _, _, view := newCanvasFixture(t)
	p.Tick()
	p.Tick()
	p.Tick()
	if view.updates != 1 {
		t.Fatalf("clean ticks re-rendered: %d updates", view.updates)
	}
}

func TestCanvasPresenter_RerendersOnMaskChange(t *testing.T) {
	p, m, _, _, view := newCanvasFixture(t)
	p.Tick()
	if err := m.Paint([]image.Point{{X: 1, Y: 1}}, 2); err != nil {
		t.Fatal(err)
	}
	p.Tick()
	if view.updates != 2 {
		t.Fatalf("mask change did not trigger redraw: %d updates", view.updates)
	}
}

func TestCanvasPresenter_RerendersOnTraceAndPaintState(t *testing.T) {
	p, _, paint, tr, view := newCanvasFixture(t)
	p.Tick()

	tr.trace = []mask.Point{{X: 1, Y: 1}, {X: 5, Y: 5}}
	tr.rev++
	p.Tick()
	if view.updates != 2 {
		t.Fatalf("trace change did not trigger redraw: %d", view.updates)
	}

	_ = paint.SetClass(2)
	p.Tick()
	if view.updates != 3 {
		t.Fatalf("paint state change did not trigger redraw: %d", view.updates)
	}
}

func TestCanvasPresenter_StatusText(t *testing.T) {
	p, _, paint, _, view := newCanvasFixture(t)
	_ = paint.SetClass(3)
	paint.SetErasing(true)
	p.Tick()
	if len(view.statuses) == 0 {
		t.Fatal("no status pushed")
	}
	s := view.statuses[len(view.statuses)-1]
	if !strings.Contains(s, "Class 3/3") || !strings.Contains(s, "erase") {
		t.Fatalf("status %q missing class/mode", s)
	}
}

package mask

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/google/uuid"
)

// Masks are persisted as 8-bit grayscale PNGs whose pixel value IS the class
// id. That keeps the format a plain array dump: any image tool can open it,
// and reloading is a shape/range validation away.

// Save writes the mask to path as a grayscale PNG.
func (m *Mask) Save(path string) error {
	img := &image.Gray{Pix: m.Grid(), Stride: m.w, Rect: m.Bounds()}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mask: save: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("mask: encode %s: %w", path, err)
	}
	return nil
}

// Load reads a previously saved mask PNG and validates it against the
// expected spatial shape and class count.
func Load(path string, w, h, nclasses int) (*Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mask: load: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("mask: decode %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() != w || b.Dy() != h {
		return nil, fmt.Errorf("mask: %s is %dx%d, image is %dx%d", path, b.Dx(), b.Dy(), w, h)
	}
	grid := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			grid[y*w+x] = color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
		}
	}
	return FromGrid(grid, w, h, nclasses)
}

// ExportName returns a fresh file name for an untitled mask export.
func ExportName() string {
	return fmt.Sprintf("mask-%s.png", uuid.NewString())
}

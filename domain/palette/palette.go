// Package palette maps class ids to overlay colors. Class 0 ("unassigned") is
// always fully transparent.
package palette

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultAlpha is the default overlay opacity.
const DefaultAlpha = 0.75

// defaults holds the first ten class colors, matching the tab10 cycle most
// labelling tools ship with.
var defaults = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Palette is an immutable class-id -> color table.
type Palette struct {
	colors []color.NRGBA // index 0 = class 1
	alpha  uint8
}

// New builds a palette for nclasses classes. hex, when non-empty, supplies
// explicit class colors ("#rrggbb", one per class) and must cover every
// class. An empty list falls back to the tab10 cycle, topped up with evenly
// spaced HSV hues for class counts beyond ten. alpha is the overlay opacity
// in [0, 1].
func New(nclasses int, hex []string, alpha float64) (*Palette, error) {
	if nclasses < 1 {
		return nil, fmt.Errorf("palette: class count %d must be positive", nclasses)
	}
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("palette: alpha %v outside [0, 1]", alpha)
	}
	if len(hex) > 0 && len(hex) < nclasses {
		return nil, fmt.Errorf("palette: %d colors given for %d classes", len(hex), nclasses)
	}

	colors := make([]color.NRGBA, nclasses)
	for i := 0; i < nclasses; i++ {
		var c colorful.Color
		switch {
		case len(hex) > 0:
			parsed, err := colorful.Hex(hex[i])
			if err != nil {
				return nil, fmt.Errorf("palette: class %d color %q: %w", i+1, hex[i], err)
			}
			c = parsed
		case i < len(defaults):
			c, _ = colorful.Hex(defaults[i])
		default:
			// Spread the remaining hues over the wheel, offset so they do not
			// collide with the tab10 anchors.
			n := nclasses - len(defaults)
			h := float64(i-len(defaults))*360.0/float64(n) + 15
			c = colorful.Hsv(h, 0.65, 0.95)
		}
		r, g, b := c.Clamped().RGB255()
		colors[i] = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}
	return &Palette{colors: colors, alpha: uint8(alpha*255 + 0.5)}, nil
}

// Classes returns the number of classes the palette covers.
func (p *Palette) Classes() int { return len(p.colors) }

// Color returns the opaque color of classID, or transparent for class 0 and
// anything out of range.
func (p *Palette) Color(classID int) color.NRGBA {
	if classID < 1 || classID > len(p.colors) {
		return color.NRGBA{}
	}
	return p.colors[classID-1]
}

// Overlay returns the class color carrying the configured overlay alpha.
// Class 0 stays fully transparent.
func (p *Palette) Overlay(classID int) color.NRGBA {
	c := p.Color(classID)
	if c.A == 0 {
		return c
	}
	c.A = p.alpha
	return c
}

// Hex returns the "#rrggbb" form of classID's color, for Tk styling.
func (p *Palette) Hex(classID int) string {
	c := p.Color(classID)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

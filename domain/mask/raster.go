package mask

import (
	"image"
	"math"
	"sort"
)

// Point is a 2D point in image coordinates.
type Point struct{ X, Y float64 }

// Polygon is the closed selection path produced by one lasso gesture: an
// ordered vertex list with an implicit closing edge from the last vertex back
// to the first. It is ephemeral; callers rasterize it and throw it away.
type Polygon []Point

// RasterizePolygon returns the pixels whose centers (x+0.5, y+0.5) lie inside
// the closed polygon, clipped to bounds, in row-major order. Membership uses
// the even-odd rule: a center is inside when a horizontal ray through it
// crosses an odd number of edges. Polygons with fewer than three distinct
// vertices, or enclosing no pixel centers, yield nil.
func RasterizePolygon(poly Polygon, bounds image.Rectangle) []image.Point {
	poly = dropRepeats(poly)
	if len(poly) < 3 || bounds.Empty() {
		return nil
	}

	minY, maxY := scanRange(poly, bounds)
	if minY > maxY {
		return nil
	}

	var out []image.Point
	xs := make([]float64, 0, 8)
	for y := minY; y <= maxY; y++ {
		cy := float64(y) + 0.5
		xs = xs[:0]
		for i := range poly {
			p1 := poly[i]
			p2 := poly[(i+1)%len(poly)]
			// Half-open test on Y so a vertex exactly on the scan line is
			// counted for exactly one of its two edges.
			if (p1.Y > cy) == (p2.Y > cy) {
				continue
			}
			t := (cy - p1.Y) / (p2.Y - p1.Y)
			xs = append(xs, p1.X+t*(p2.X-p1.X))
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			// First pixel whose center is >= xs[i], last whose center < xs[i+1].
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Ceil(xs[i+1]-0.5)) - 1
			if x0 < bounds.Min.X {
				x0 = bounds.Min.X
			}
			if x1 > bounds.Max.X-1 {
				x1 = bounds.Max.X - 1
			}
			for x := x0; x <= x1; x++ {
				out = append(out, image.Point{X: x, Y: y})
			}
		}
	}
	return out
}

// scanRange returns the inclusive pixel-row range the polygon can touch,
// clipped to bounds.
func scanRange(poly Polygon, bounds image.Rectangle) (minY, maxY int) {
	lo, hi := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		if p.Y < lo {
			lo = p.Y
		}
		if p.Y > hi {
			hi = p.Y
		}
	}
	minY = int(math.Floor(lo))
	maxY = int(math.Ceil(hi))
	if minY < bounds.Min.Y {
		minY = bounds.Min.Y
	}
	if maxY > bounds.Max.Y-1 {
		maxY = bounds.Max.Y - 1
	}
	return minY, maxY
}

// dropRepeats removes consecutive duplicate vertices, including a duplicate
// closing vertex, which would otherwise produce zero-length edges.
func dropRepeats(poly Polygon) Polygon {
	if len(poly) == 0 {
		return poly
	}
	out := make(Polygon, 0, len(poly))
	for _, p := range poly {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

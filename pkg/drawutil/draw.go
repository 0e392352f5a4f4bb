package drawutil

import (
	"image"

	"github.com/Eirenarch/TypedBezier/pkg/cellbuf"
)

// pointChar returns the line character for a point based on its local
// direction (looking at the next or previous point).
func pointChar(pts []image.Point, i int) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	} else if i > 0 {
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy)
}

// DrawLine draws a Bresenham line into buf with per-point line characters.
// Coordinates are buffer cells.
func DrawLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, style cellbuf.StyleKey) {
	pts := Bresenham(x0, y0, x1, y1)
	for i, p := range pts {
		buf.Set(p.X, p.Y, pointChar(pts, i), style)
	}
}

// DrawDashedLine draws a dashed Bresenham line (every 3rd point is
// skipped). The editor uses it for control polygon edges.
func DrawDashedLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, style cellbuf.StyleKey) {
	pts := Bresenham(x0, y0, x1, y1)
	for i, p := range pts {
		if i%3 != 2 {
			buf.Set(p.X, p.Y, pointChar(pts, i), style)
		}
	}
}

// DrawDotPath plots a polyline of n vertices in braille dot coordinates.
// at returns vertex i. Each edge is clipped to the buffer and rasterized
// with Bresenham; a single vertex plots one dot.
func DrawDotPath(buf *cellbuf.Buffer, n int, at func(i int) (x, y float64), style cellbuf.StyleKey) {
	dw, dh := buf.DotSize()
	bounds := image.Rect(0, 0, dw, dh)

	if n == 1 {
		x, y := at(0)
		if a, _, ok := ClipSegment(x, y, x, y, bounds); ok {
			buf.SetDot(a.X, a.Y, style)
		}
		return
	}

	px, py := at(0)
	for i := 1; i < n; i++ {
		x, y := at(i)
		if a, b, ok := ClipSegment(px, py, x, y, bounds); ok {
			for _, p := range Bresenham(a.X, a.Y, b.X, b.Y) {
				buf.SetDot(p.X, p.Y, style)
			}
		}
		px, py = x, y
	}
}

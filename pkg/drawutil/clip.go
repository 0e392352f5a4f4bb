package drawutil

import (
	"image"
	"math"
)

// ClipSegment clips the segment (x0,y0)-(x1,y1) to r using Liang-Barsky and
// returns the floored endpoints of the visible part. ok is false when the
// segment misses r entirely or any coordinate is NaN or infinite.
//
// Clipping before rasterizing keeps Bresenham bounded by the size of r no
// matter how far away the endpoints are.
func ClipSegment(x0, y0, x1, y1 float64, r image.Rectangle) (a, b image.Point, ok bool) {
	for _, v := range [4]float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return a, b, false
		}
	}

	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - float64(r.Min.X)},
		{dx, float64(r.Max.X) - x0},
		{-dy, y0 - float64(r.Min.Y)},
		{dy, float64(r.Max.Y) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		u := q / p
		if p < 0 {
			if u > t1 {
				return a, b, false
			}
			t0 = max(t0, u)
		} else {
			if u < t0 {
				return a, b, false
			}
			t1 = min(t1, u)
		}
	}

	a = image.Pt(int(math.Floor(x0+t0*dx)), int(math.Floor(y0+t0*dy)))
	b = image.Pt(int(math.Floor(x0+t1*dx)), int(math.Floor(y0+t1*dy)))
	return a, b, true
}

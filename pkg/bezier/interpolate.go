package bezier

// Interpolate evaluates the Bézier curve defined by points at parameter t
// using de Casteljau's algorithm: each pass replaces the sequence with the
// linear interpolants of its adjacent pairs until one point remains.
//
// The degree is len(points)-1. A single point is returned unchanged. points
// must not be empty; it is not modified.
func Interpolate(points []Point, t float64) Point {
	if len(points) == 1 {
		return points[0]
	}
	work := make([]Point, len(points))
	copy(work, points)
	return reduce(work, t)
}

// reduce runs de Casteljau in place over work and returns the final point.
// It panics on an empty slice.
func reduce(work []Point, t float64) Point {
	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = work[i].Lerp(work[i+1], t)
		}
	}
	return work[0]
}

package bezier

import "fmt"

// Point is an immutable 2D coordinate. Points compare by value with ==.
type Point struct {
	x, y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{x: x, y: y}
}

func (p Point) X() float64 { return p.x }
func (p Point) Y() float64 { return p.y }

// Splat returns the point's x and y coordinates.
func (p Point) Splat() (float64, float64) {
	return p.x, p.y
}

// Equal reports whether p and o have the same coordinates.
func (p Point) Equal(o Point) bool {
	return p == o
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}

// Lerp linearly interpolates between p (t = 0) and o (t = 1). The weights are
// applied per axis as p*(1-t) + o*t, so t = 1 yields o exactly.
func (p Point) Lerp(o Point, t float64) Point {
	s := 1.0 - t
	return Point{
		x: p.x*s + o.x*t,
		y: p.y*s + o.y*t,
	}
}

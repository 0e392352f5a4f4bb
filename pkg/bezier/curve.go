package bezier

import "fmt"

// DefaultHitRadius is the half-width and half-height of the box around a
// control point that counts as a hit for pointer selection.
const DefaultHitRadius = 4

// Curve is an ordered control polygon. Insertion order defines the polygon
// edges and the curve's parametrization.
type Curve struct {
	points []Point
}

// New returns a curve with a copy of the given control points. Later changes
// to the caller's slice do not affect the curve.
func New(points ...Point) *Curve {
	c := &Curve{points: make([]Point, len(points))}
	copy(c.points, points)
	return c
}

// Len returns the number of control points.
func (c *Curve) Len() int {
	return len(c.points)
}

// ControlPoints returns a snapshot of the control points in insertion order.
// The returned slice is never shared with the curve.
func (c *Curve) ControlPoints() []Point {
	out := make([]Point, len(c.points))
	copy(out, c.points)
	return out
}

// ControlPoint returns the control point at index.
func (c *Curve) ControlPoint(index int) (Point, error) {
	if err := c.checkIndex(index); err != nil {
		return Point{}, err
	}
	return c.points[index], nil
}

// AddControlPoint appends (x, y) and returns the new number of control points.
func (c *Curve) AddControlPoint(x, y float64) int {
	c.points = append(c.points, Pt(x, y))
	return len(c.points)
}

// MoveControlPoint replaces the control point at index with (x, y).
func (c *Curve) MoveControlPoint(index int, x, y float64) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.points[index] = Pt(x, y)
	return nil
}

// RemoveControlPoint deletes the control point at index. Later points shift
// down by one.
func (c *Curve) RemoveControlPoint(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.points = append(c.points[:index], c.points[index+1:]...)
	return nil
}

// SelectControlPoint returns the lowest index whose hit box contains (x, y).
// The hit box is the open square of half-size hitRadius centered on the
// control point. ok is false when no control point is hit.
func (c *Curve) SelectControlPoint(x, y, hitRadius float64) (index int, ok bool) {
	for i, p := range c.points {
		if x > p.x-hitRadius && x < p.x+hitRadius &&
			y > p.y-hitRadius && y < p.y+hitRadius {
			return i, true
		}
	}
	return -1, false
}

// CurvePoints samples the curve. The result starts with the first control
// point, continues with one de Casteljau sample for each t = step, 2*step, ...
// accumulated by repeated addition while t < 1, and ends with the last control
// point. A step that is not positive yields no interior samples. The loop also
// stops once adding step no longer changes t.
func (c *Curve) CurvePoints(step float64) ([]Point, error) {
	if len(c.points) == 0 {
		return nil, ErrEmptyCurve
	}
	first, last := c.points[0], c.points[len(c.points)-1]

	out := []Point{first}
	if step > 0 {
		work := make([]Point, len(c.points))
		for t := step; t < 1; t += step {
			copy(work, c.points)
			out = append(out, reduce(work, t))
			if t+step == t {
				break
			}
		}
	}
	return append(out, last), nil
}

func (c *Curve) checkIndex(index int) error {
	if index < 0 || index >= len(c.points) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(c.points))
	}
	return nil
}

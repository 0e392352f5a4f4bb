package bezier

import "errors"

var (
	ErrIndexOutOfRange = errors.New("control point index out of range")
	ErrEmptyCurve      = errors.New("curve has no control points")
)

package drawutil

import "github.com/Eirenarch/TypedBezier/pkg/cellbuf"

// DrawGrid draws the canvas backdrop: a pair of axes crossing at the buffer
// center and divisions-1 evenly spaced lines per axis. Division lines that
// coincide with an axis are left to the axis. divisions <= 0 draws nothing.
func DrawGrid(buf *cellbuf.Buffer, divisions int, lineStyle, axisStyle cellbuf.StyleKey) {
	if buf.W == 0 || buf.H == 0 || divisions <= 0 {
		return
	}
	cx, cy := buf.W/2, buf.H/2

	for i := 1; i < divisions; i++ {
		if x := i * buf.W / divisions; x != cx {
			for y := 0; y < buf.H; y++ {
				buf.Set(x, y, '┊', lineStyle)
			}
		}
	}
	for i := 1; i < divisions; i++ {
		if y := i * buf.H / divisions; y != cy {
			for x := 0; x < buf.W; x++ {
				buf.Set(x, y, '┈', lineStyle)
			}
		}
	}

	for x := 0; x < buf.W; x++ {
		buf.Set(x, cy, '─', axisStyle)
	}
	for y := 0; y < buf.H; y++ {
		buf.Set(cx, y, '│', axisStyle)
	}
	buf.Set(cx, cy, '┼', axisStyle)
}

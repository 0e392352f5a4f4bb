package editorui

import (
	"image"
	"math"

	"charm.land/lipgloss/v2"

	"github.com/Eirenarch/TypedBezier/internal/editor"
	"github.com/Eirenarch/TypedBezier/pkg/cellbuf"
	"github.com/Eirenarch/TypedBezier/pkg/drawutil"
	"github.com/Eirenarch/TypedBezier/pkg/tealayout"
)

// cellbuf style keys for the canvas layer.
const (
	styleBG cellbuf.StyleKey = iota
	styleGrid
	styleAxis
	stylePolygon
	styleCurve
	styleMarker
	styleMarkerActive
)

// bufStyles maps cellbuf StyleKeys to lipgloss styles for rendering.
var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleBG:           lipgloss.NewStyle().Background(colorBG),
	styleGrid:         lipgloss.NewStyle().Foreground(gridColor).Background(colorBG),
	styleAxis:         lipgloss.NewStyle().Foreground(axisColor).Background(colorBG),
	stylePolygon:      lipgloss.NewStyle().Foreground(polygonColor).Background(colorBG),
	styleCurve:        lipgloss.NewStyle().Foreground(curveColor).Background(colorBG),
	styleMarker:       lipgloss.NewStyle().Foreground(markerColor).Background(colorBG),
	styleMarkerActive: lipgloss.NewStyle().Foreground(markerActiveColor).Background(colorBG).Bold(true),
}

const markerRune = '●'

// canvasView is what the canvas draws: a window of w x h cells whose
// top-left corner is world cell (camX, camY).
type canvasView struct {
	w, h       int
	camX, camY int
	grid       int // divisions, 0 = no grid
}

// drawCanvas paints grid, control polygon, curve and control point markers
// into a fresh buffer. One world unit is one cell; the curve is plotted in
// braille dots.
func drawCanvas(s *editor.Session, v canvasView) *cellbuf.Buffer {
	buf := cellbuf.New(v.w, v.h, styleBG)
	drawutil.DrawGrid(buf, v.grid, styleGrid, styleAxis)

	ctrl := s.Curve().ControlPoints()
	cx, cy := float64(v.camX), float64(v.camY)
	cells := image.Rect(0, 0, v.w, v.h)

	// Control polygon
	for i := 1; i < len(ctrl); i++ {
		p, q := ctrl[i-1], ctrl[i]
		a, b, ok := drawutil.ClipSegment(p.X()-cx, p.Y()-cy, q.X()-cx, q.Y()-cy, cells)
		if ok {
			drawutil.DrawDashedLine(buf, a.X, a.Y, b.X, b.Y, stylePolygon)
		}
	}

	// Curve
	if pts := s.CurvePoints(); len(pts) > 0 {
		drawutil.DrawDotPath(buf, len(pts), func(i int) (float64, float64) {
			return (pts[i].X() - cx) * cellbuf.DotsX, (pts[i].Y() - cy) * cellbuf.DotsY
		}, styleCurve)
	}

	// Markers
	sel, hasSel := s.Selected()
	drag, dragging := s.Dragging()
	for i, p := range ctrl {
		x, y, ok := worldToCell(p.X()-cx, p.Y()-cy, v.w, v.h)
		if !ok {
			continue
		}
		style := styleMarker
		if (hasSel && i == sel) || (dragging && i == drag) {
			style = styleMarkerActive
		}
		buf.Set(x, y, markerRune, style)
	}

	return buf
}

// worldToCell floors a camera-relative position to a cell inside a w x h
// buffer. ok is false outside the buffer and for NaN.
func worldToCell(x, y float64, w, h int) (int, int, bool) {
	fx, fy := math.Floor(x), math.Floor(y)
	if !(fx >= 0 && fx < float64(w) && fy >= 0 && fy < float64(h)) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// buildCanvasLayer renders the canvas into a single layer at Z=0.
func buildCanvasLayer(m Model, viewport image.Rectangle) *lipgloss.Layer {
	w, h := viewport.Dx(), viewport.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(viewport.Min.X).Y(viewport.Min.Y).Z(tealayout.ZBackground)
	}

	grid := 0
	if m.ShowGrid {
		grid = m.GridDivisions
	}
	buf := drawCanvas(m.Session, canvasView{w: w, h: h, camX: m.CamX, camY: m.CamY, grid: grid})

	return lipgloss.NewLayer(buf.Render(bufStyles)).
		X(viewport.Min.X).Y(viewport.Min.Y).Z(tealayout.ZBackground).ID("curve-canvas")
}

// Snapshot draws the session's canvas once, for output outside the TUI.
// (camX, camY) is the world cell at the top-left corner.
func Snapshot(s *editor.Session, w, h, camX, camY, gridDivisions int) *cellbuf.Buffer {
	return drawCanvas(s, canvasView{w: w, h: h, camX: camX, camY: camY, grid: gridDivisions})
}

// CanvasStyles returns the styles for rendering a Snapshot buffer.
func CanvasStyles() map[cellbuf.StyleKey]lipgloss.Style {
	return bufStyles
}

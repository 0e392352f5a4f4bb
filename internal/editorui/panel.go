package editorui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Eirenarch/TypedBezier/internal/editor"
	"github.com/Eirenarch/TypedBezier/pkg/tealayout"
)

const panelWidth = 30

var panelBG = c("#1a2a20")

// Panel styles share the same background.
var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#00d4a0")).
			Background(panelBG)

	panelSelStyle = lipgloss.NewStyle().
			Foreground(markerActiveColor).
			Background(panelBG).
			Bold(true)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#1a4a3a")).
			Background(colorBG)

	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// padLine right-pads a styled line to width with the panel background.
func padLine(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += panelLineStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// section renders a titled panel block of exactly height lines.
func section(title string, body []string, width, height int) string {
	lines := make([]string, 0, height)
	lines = append(lines,
		panelTitleStyle.Render(title),
		panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))),
	)
	lines = append(lines, body...)

	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, l := range lines {
		lines[i] = padLine(l, width)
	}
	return strings.Join(lines, "\n")
}

// pointLines lists the control points, keeping the selected one in view
// when the list is longer than rows.
func pointLines(s *editor.Session, rows int) []string {
	pts := s.Curve().ControlPoints()
	if len(pts) == 0 {
		return []string{panelDimStyle.Render("  (none, double-click to add)")}
	}
	sel, hasSel := s.Selected()

	start := 0
	if hasSel && rows > 0 && sel >= rows {
		start = sel - rows + 1
	}
	end := min(start+max(rows, 0), len(pts))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		text := fmt.Sprintf("  %2d  %8.2f %8.2f", i, pts[i].X(), pts[i].Y())
		if hasSel && i == sel {
			lines = append(lines, panelSelStyle.Render("▸"+text[1:]))
			continue
		}
		lines = append(lines, panelTextStyle.Render(text))
	}
	return lines
}

func statLines(s *editor.Session) []string {
	n := s.Curve().Len()
	degree := "-"
	if n > 0 {
		degree = fmt.Sprint(n - 1)
	}
	return []string{
		panelTextStyle.Render(fmt.Sprintf("  points  %d", n)),
		panelTextStyle.Render("  degree  " + degree),
		panelTextStyle.Render(fmt.Sprintf("  step    %g", s.Step())),
		panelTextStyle.Render(fmt.Sprintf("  samples %d", len(s.CurvePoints()))),
	}
}

func outputLines(output []string, rows int) []string {
	if len(output) == 0 {
		return []string{panelDimStyle.Render("  (empty)")}
	}
	start := max(len(output)-rows, 0)
	lines := make([]string, 0, len(output)-start)
	for _, l := range output[start:] {
		lines = append(lines, panelTextStyle.Render("  "+l))
	}
	return lines
}

var helpLines = []string{
	"  dbl-click add  drag move",
	"  right-click delete",
	"  [a]dd [d]elete [e]dit",
	"  tab/shift+tab select",
	"  +/- step  [g]rid  [x]clear",
	"  arrows pan  [q]uit",
}

// buildPanelLayers stacks the side panel sections in the given area,
// cutting off whatever does not fit.
func buildPanelLayers(m Model, x, y, width, height int) []*lipgloss.Layer {
	const (
		statsH = 6
		outH   = 5
	)
	helpH := len(helpLines) + 2
	pointsH := max(height-statsH-outH-helpH, 3)

	help := make([]string, len(helpLines))
	for i, l := range helpLines {
		help[i] = panelTextStyle.Render(l)
	}

	sections := []struct {
		id, title string
		body      []string
		h         int
	}{
		{"panel-points", "POINTS", pointLines(m.Session, pointsH-2), pointsH},
		{"panel-stats", "CURVE", statLines(m.Session), statsH},
		{"panel-output", "OUTPUT", outputLines(m.Output, outH-2), outH},
		{"panel-help", "HELP", help, helpH},
	}

	var layers []*lipgloss.Layer
	row := y
	for _, sc := range sections {
		h := min(sc.h, y+height-row)
		if h <= 0 {
			break
		}
		layers = append(layers, lipgloss.NewLayer(section(sc.title, sc.body, width, h)).
			X(x).Y(row).Z(tealayout.ZChrome).ID(sc.id))
		row += h
	}
	return layers
}

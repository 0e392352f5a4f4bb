package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Z order shared by the chrome builders.
const (
	ZBackground = 0
	ZChrome     = 1
	ZModal      = 100
)

// ToolbarLayer renders content across the top row. Content that wraps is
// cut to one line.
func ToolbarLayer(content string, width int, style lipgloss.Style) *lipgloss.Layer {
	return lipgloss.NewLayer(style.Width(width).MaxHeight(1).Render(content)).
		X(0).Y(0).Z(ZChrome).ID("toolbar")
}

// FooterLayer renders content across row y, cut to one line.
func FooterLayer(content string, width, y int, style lipgloss.Style) *lipgloss.Layer {
	return lipgloss.NewLayer(style.Width(width).MaxHeight(1).Render(content)).
		X(0).Y(y).Z(ZChrome).ID("footer")
}

// VerticalSeparator draws a column of │ characters starting at (x, y).
func VerticalSeparator(x, y, height int, style lipgloss.Style) *lipgloss.Layer {
	col := strings.TrimSuffix(strings.Repeat("│\n", max(height, 0)), "\n")
	return lipgloss.NewLayer(style.Render(col)).
		X(x).Y(y).Z(ZChrome).ID("separator")
}

// ModalLayer renders content inside boxStyle and centers it on a
// termW x termH screen, clamped to the top-left corner when it does not fit.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	cx := max((termW-lipgloss.Width(rendered))/2, 0)
	cy := max((termH-lipgloss.Height(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(ZModal).ID("modal")
}

// FillLayer paints a region with style, typically a background color.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	var content string
	if w > 0 && h > 0 {
		row := strings.Repeat(" ", w)
		content = style.Render(strings.TrimSuffix(strings.Repeat(row+"\n", h), "\n"))
	}
	return lipgloss.NewLayer(content).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}

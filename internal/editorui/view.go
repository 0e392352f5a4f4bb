package editorui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Eirenarch/TypedBezier/pkg/tealayout"
)

var (
	tbStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("#0a1510")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	ftErrStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	panelFillStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// layout splits the screen: toolbar(1) + footer(1) + panel + canvas.
func (m Model) layout() tealayout.Layout {
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", panelWidth).
		Remaining("canvas").
		Build()
}

func (m Model) footerText() string {
	sel := "none"
	if i, ok := m.Session.Selected(); ok {
		if p, err := m.Session.Curve().ControlPoint(i); err == nil {
			sel = fmt.Sprintf("%d %v", i, p)
		}
	}
	wx, wy := m.pointerWorld()
	return fmt.Sprintf(" Pointer: (%g, %g)  Cam: (%d, %d)  Sel: %s  Step: %g",
		wx, wy, m.CamX, m.CamY, sel, m.Session.Step())
}

// View implements tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// render composes all layers into the screen string.
func (m Model) render() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	layout := m.layout()
	canvasRegion := layout.Get("canvas")
	panelRegion := layout.Get("panel")

	var layers []*lipgloss.Layer

	// Background
	layers = append(layers,
		tealayout.FillLayer(layout.Get("toolbar"), tbStyle, "toolbar-bg", tealayout.ZBackground),
		tealayout.FillLayer(layout.Get("footer"), ftStyle, "footer-bg", tealayout.ZBackground),
	)

	tbContent := " BÉZIER  │  dbl-click add · drag move · right-click delete  │  [q]uit"
	layers = append(layers, tealayout.ToolbarLayer(tbContent, m.Width, tbStyle))

	ftContent, style := m.footerText(), ftStyle
	if err := m.Session.LastError(); err != nil {
		ftContent, style = " Error: "+err.Error(), ftErrStyle
	}
	layers = append(layers, tealayout.FooterLayer(ftContent, m.Width, m.Height-1, style))

	layers = append(layers, buildCanvasLayer(m, canvasRegion.Rect))

	// Side panel
	pr := panelRegion.Rect
	if pw, ph := pr.Dx(), pr.Dy(); pw > 2 && ph > 0 {
		layers = append(layers,
			tealayout.FillLayer(panelRegion, panelFillStyle, "panel-bg", tealayout.ZBackground),
			tealayout.VerticalSeparator(pr.Min.X, pr.Min.Y, ph, panelSepStyle),
		)
		layers = append(layers, buildPanelLayers(m, pr.Min.X+1, pr.Min.Y, pw-1, ph)...)
	}

	if m.EditOpen {
		layers = append(layers, buildEditModalLayer(m, m.Width, m.Height))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)
	return canvas.Render()
}

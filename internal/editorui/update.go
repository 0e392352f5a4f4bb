package editorui

import (
	"image"

	tea "charm.land/bubbletea/v2"
)

const panStep = 3

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyPressMsg:
		if m.EditOpen {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if m.EditOpen {
			return m, nil
		}
		return handleMouse(m, msg, m.canvasRect())
	}

	return m, nil
}

// handleKeys processes keyboard input.
func (m Model) handleKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	s := m.Session

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Camera panning
	case "up":
		m.CamY -= panStep
	case "down":
		m.CamY += panStep
	case "left":
		m.CamX -= panStep
	case "right":
		m.CamX += panStep

	case "a":
		x, y := m.pointerWorld()
		s.AddAt(x, y)
	case "d", "delete":
		_ = s.DeleteSelected()
	case "e":
		return m.openEditModal()
	case "tab":
		s.SelectNext()
	case "shift+tab":
		s.SelectPrev()
	case "+", "=":
		s.StepCoarser()
	case "-":
		s.StepFiner()
	case "x":
		s.Clear()
	case "g":
		m.ShowGrid = !m.ShowGrid
	case "esc":
		s.Deselect()
	}

	return m, nil
}

// canvasRect computes the canvas region rectangle for coordinate transforms.
func (m Model) canvasRect() image.Rectangle {
	return m.layout().Get("canvas").Rect
}

// pointerWorld is the world position under the mouse, or the canvas center
// when the mouse is elsewhere.
func (m Model) pointerWorld() (float64, float64) {
	r := m.canvasRect()
	p := image.Pt(m.MouseX, m.MouseY)
	if !p.In(r) {
		p = image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
	}
	return m.screenToWorld(p, r)
}

func (m Model) screenToWorld(p image.Point, canvas image.Rectangle) (float64, float64) {
	return float64(p.X - canvas.Min.X + m.CamX), float64(p.Y - canvas.Min.Y + m.CamY)
}

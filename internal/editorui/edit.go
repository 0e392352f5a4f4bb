package editorui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cast"

	"github.com/Eirenarch/TypedBezier/pkg/tealayout"
)

// openEditModal opens the coordinate editor for the selected point.
func (m Model) openEditModal() (tea.Model, tea.Cmd) {
	sel, ok := m.Session.Selected()
	if !ok {
		return m, nil
	}
	p, err := m.Session.Curve().ControlPoint(sel)
	if err != nil {
		return m, nil
	}

	m.EditOpen = true
	m.EditIndex = sel
	m.EditFocus = 0
	m.EditErr = ""

	m.EditX = newCoordInput(p.X())
	m.EditY = newCoordInput(p.Y())

	cmd := m.EditX.Focus()
	return m, cmd
}

func newCoordInput(v float64) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 24
	in.SetValue(strconv.FormatFloat(v, 'g', -1, 64))
	return in
}

// handleEditKeys processes keys when the edit modal is open.
func (m Model) handleEditKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.EditOpen = false
		return m, nil

	case "enter":
		x, errX := cast.ToFloat64E(strings.TrimSpace(m.EditX.Value()))
		y, errY := cast.ToFloat64E(strings.TrimSpace(m.EditY.Value()))
		switch {
		case errX != nil:
			m.EditErr = fmt.Sprintf("x: %v", errX)
			return m, nil
		case errY != nil:
			m.EditErr = fmt.Sprintf("y: %v", errY)
			return m, nil
		}
		if err := m.Session.MoveSelected(x, y); err != nil {
			m.EditErr = err.Error()
			return m, nil
		}
		m.EditOpen = false
		return m, nil

	case "tab", "shift+tab":
		if m.EditFocus == 0 {
			m.EditFocus = 1
			m.EditX.Blur()
			cmd := m.EditY.Focus()
			return m, cmd
		}
		m.EditFocus = 0
		m.EditY.Blur()
		cmd := m.EditX.Focus()
		return m, cmd

	default:
		var cmd tea.Cmd
		if m.EditFocus == 0 {
			m.EditX, cmd = m.EditX.Update(msg)
		} else {
			m.EditY, cmd = m.EditY.Update(msg)
		}
		return m, cmd
	}
}

var (
	modalBG = c("#0a1510")

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(modalBG).
			Bold(true)

	modalLabelStyle = lipgloss.NewStyle().
			Foreground(c("#ddaa44")).
			Background(modalBG)

	modalHintStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(modalBG).
			Italic(true)

	modalErrStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Background(modalBG)

	modalBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c("#00d4a0")).
			Background(modalBG).
			Width(40).
			Padding(1, 2)
)

// buildEditModalLayer renders the edit modal centered on screen.
func buildEditModalLayer(m Model, screenW, screenH int) *lipgloss.Layer {
	focusX, focusY := "  ", "  "
	if m.EditFocus == 0 {
		focusX = "▸ "
	} else {
		focusY = "▸ "
	}

	lines := []string{
		modalTitleStyle.Render(fmt.Sprintf("  EDIT POINT %d", m.EditIndex)),
		"",
		modalLabelStyle.Render(focusX + "x:"),
		"  " + m.EditX.View(),
		modalLabelStyle.Render(focusY + "y:"),
		"  " + m.EditY.View(),
		"",
	}
	if m.EditErr != "" {
		lines = append(lines, modalErrStyle.Render("  "+m.EditErr))
	}
	lines = append(lines, modalHintStyle.Render("  [tab] switch  [enter] save  [esc] cancel"))

	return tealayout.ModalLayer(strings.Join(lines, "\n"), screenW, screenH, modalBoxStyle).ID("edit-modal")
}

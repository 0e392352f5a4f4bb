package editorui

import (
	"image"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Eirenarch/TypedBezier/internal/editor"
)

// handleMouse processes mouse events and returns updated model + command.
func handleMouse(m Model, msg tea.MouseMsg, canvasRect image.Rectangle) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	// A release anywhere ends the drag.
	if _, ok := msg.(tea.MouseReleaseMsg); ok {
		m.Session.PointerUp()
		return m, nil
	}

	p := image.Pt(mouse.X, mouse.Y)
	if !p.In(canvasRect) {
		return m, nil
	}
	worldX, worldY := m.screenToWorld(p, canvasRect)

	switch msg.(type) {
	case tea.MouseMotionMsg:
		m.Session.PointerMove(worldX, worldY)

	case tea.MouseClickMsg:
		switch mouse.Button {
		case tea.MouseLeft:
			m = handleLeftClick(m, p, worldX, worldY)
		case tea.MouseRight:
			m.Session.PointerDown(worldX, worldY, editor.ButtonSecondary)
		}
	}

	return m, nil
}

// handleLeftClick turns a second primary click on the same cell within the
// double-click interval into DoubleClick, otherwise into PointerDown.
func handleLeftClick(m Model, p image.Point, worldX, worldY float64) Model {
	now := m.now()
	double := !m.lastClick.IsZero() &&
		p.X == m.lastClickX && p.Y == m.lastClickY &&
		now.Sub(m.lastClick) <= m.DoubleClick

	if double {
		m.Session.DoubleClick(worldX, worldY)
		m.lastClick = time.Time{}
		return m
	}

	m.Session.PointerDown(worldX, worldY, editor.ButtonPrimary)
	m.lastClick = now
	m.lastClickX, m.lastClickY = p.X, p.Y
	return m
}

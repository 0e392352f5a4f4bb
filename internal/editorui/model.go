// Package editorui is the terminal front end of the curve editor: a
// Bubbletea v2 model that feeds mouse and keyboard input to an
// editor.Session and draws the curve with cellbuf and lipgloss layers.
package editorui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"

	"github.com/Eirenarch/TypedBezier/internal/editor"
)

// Options configure a Model.
type Options struct {
	GridDivisions int
	DoubleClick   time.Duration
	// Output is shown in the panel, typically startup script output.
	Output []string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the main application state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int
	CamX, CamY     int
	Session        *editor.Session

	ShowGrid      bool
	GridDivisions int
	DoubleClick   time.Duration
	Output        []string

	// Double-click state, in screen cells.
	lastClick  time.Time
	lastClickX int
	lastClickY int
	now        func() time.Time

	// Edit modal state
	EditOpen  bool
	EditIndex int
	EditX     textinput.Model
	EditY     textinput.Model
	EditFocus int // 0=x, 1=y
	EditErr   string
}

// NewModel creates a model editing the session's curve.
func NewModel(s *editor.Session, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return Model{
		Session:       s,
		ShowGrid:      opts.GridDivisions > 0,
		GridDivisions: opts.GridDivisions,
		DoubleClick:   opts.DoubleClick,
		Output:        opts.Output,
		now:           now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

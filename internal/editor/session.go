// Package editor holds the interactive editing state around one curve:
// selection, dragging and the sampling step. It knows nothing about the
// terminal; the UI feeds it world coordinates.
package editor

import (
	"errors"
	"fmt"

	"github.com/kpango/glg"

	"github.com/Eirenarch/TypedBezier/pkg/bezier"
)

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Step bounds for StepFiner and StepCoarser.
const (
	MinStep = 1.0 / 1024
	MaxStep = 1.0
)

var (
	ErrInvalidStep      = errors.New("step must be in [1/1024, 1]")
	ErrInvalidHitRadius = errors.New("hit radius must be positive")
	ErrNoSelection      = errors.New("no control point selected")
)

const none = -1

// Session owns a curve plus the transient interaction state.
type Session struct {
	curve     *bezier.Curve
	step      float64
	hitRadius float64

	selected int
	drag     int
	lastErr  error
}

// New creates a session editing curve. A nil curve starts empty.
func New(curve *bezier.Curve, step, hitRadius float64) (*Session, error) {
	if curve == nil {
		curve = bezier.New()
	}
	if !validStep(step) {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidStep, step)
	}
	if !(hitRadius > 0) {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidHitRadius, hitRadius)
	}
	return &Session{
		curve:     curve,
		step:      step,
		hitRadius: hitRadius,
		selected:  none,
		drag:      none,
	}, nil
}

func validStep(step float64) bool { return step >= MinStep && step <= MaxStep }

// Curve returns the edited curve.
func (s *Session) Curve() *bezier.Curve { return s.curve }

// Step is the sampling step.
func (s *Session) Step() float64 { return s.step }

// HitRadius is the hit box half-size used for pointer presses.
func (s *Session) HitRadius() float64 { return s.hitRadius }

// LastError is the error of the most recent model operation, nil if it
// succeeded.
func (s *Session) LastError() error { return s.lastErr }

// Selected returns the selected control point index.
func (s *Session) Selected() (int, bool) { return s.selected, s.selected != none }

// Dragging returns the index of the point being dragged.
func (s *Session) Dragging() (int, bool) { return s.drag, s.drag != none }

func (s *Session) record(err error) error {
	s.lastErr = err
	if err != nil {
		glg.Warnf("editor: %v", err)
	}
	return err
}

// ── Pointer ──

// PointerDown handles a button press at world position (x, y). The primary
// button selects the hit point and starts dragging it; the secondary button
// removes it.
func (s *Session) PointerDown(x, y float64, button Button) {
	i, hit := s.curve.SelectControlPoint(x, y, s.hitRadius)
	switch button {
	case ButtonPrimary:
		if !hit {
			s.selected, s.drag = none, none
			return
		}
		s.selected, s.drag = i, i
		glg.Debugf("editor: drag start %d at (%g, %g)", i, x, y)
	case ButtonSecondary:
		if hit {
			_ = s.remove(i)
		}
	}
}

// PointerMove moves the dragged point, if any, to (x, y).
func (s *Session) PointerMove(x, y float64) {
	if s.drag == none {
		return
	}
	_ = s.record(s.curve.MoveControlPoint(s.drag, x, y))
}

// PointerUp ends a drag.
func (s *Session) PointerUp() {
	if s.drag != none {
		glg.Debugf("editor: drag end %d", s.drag)
	}
	s.drag = none
}

// DoubleClick appends a control point at (x, y).
func (s *Session) DoubleClick(x, y float64) {
	s.AddAt(x, y)
}

// ── Keyboard editing ──

// AddAt appends a control point, selects it and returns its index.
func (s *Session) AddAt(x, y float64) int {
	i := s.curve.AddControlPoint(x, y) - 1
	s.selected = i
	s.lastErr = nil
	glg.Debugf("editor: add %d at (%g, %g)", i, x, y)
	return i
}

// DeleteSelected removes the selected control point.
func (s *Session) DeleteSelected() error {
	if s.selected == none {
		return s.record(ErrNoSelection)
	}
	return s.remove(s.selected)
}

// MoveSelected moves the selected control point to (x, y).
func (s *Session) MoveSelected(x, y float64) error {
	if s.selected == none {
		return s.record(ErrNoSelection)
	}
	return s.record(s.curve.MoveControlPoint(s.selected, x, y))
}

// SelectNext selects the following control point, wrapping around.
func (s *Session) SelectNext() {
	n := s.curve.Len()
	if n == 0 {
		return
	}
	s.selected = (s.selected + 1) % n
}

// SelectPrev selects the preceding control point, wrapping around.
func (s *Session) SelectPrev() {
	n := s.curve.Len()
	if n == 0 {
		return
	}
	if s.selected == none {
		s.selected = n - 1
		return
	}
	s.selected = (s.selected - 1 + n) % n
}

// Deselect clears the selection.
func (s *Session) Deselect() { s.selected = none }

// Clear removes every control point.
func (s *Session) Clear() {
	for n := s.curve.Len(); n > 0; n-- {
		_ = s.curve.RemoveControlPoint(n - 1)
	}
	s.selected, s.drag = none, none
	s.lastErr = nil
	glg.Debugf("editor: cleared")
}

func (s *Session) remove(i int) error {
	if err := s.curve.RemoveControlPoint(i); err != nil {
		return s.record(err)
	}
	s.selected = shiftAfterRemove(s.selected, i)
	s.drag = shiftAfterRemove(s.drag, i)
	s.lastErr = nil
	glg.Debugf("editor: remove %d", i)
	return nil
}

// shiftAfterRemove maps an index held before removing slot removed to the
// index it refers to afterwards.
func shiftAfterRemove(idx, removed int) int {
	switch {
	case idx == none:
		return none
	case idx == removed:
		return none
	case idx > removed:
		return idx - 1
	}
	return idx
}

// ── Sampling ──

// SetStep changes the sampling step.
func (s *Session) SetStep(step float64) error {
	if !validStep(step) {
		return s.record(fmt.Errorf("%w, got %v", ErrInvalidStep, step))
	}
	s.step = step
	return s.record(nil)
}

// StepFiner halves the step down to MinStep.
func (s *Session) StepFiner() {
	if half := s.step / 2; half >= MinStep {
		s.step = half
	}
}

// StepCoarser doubles the step up to MaxStep.
func (s *Session) StepCoarser() {
	s.step *= 2
	if s.step > MaxStep {
		s.step = MaxStep
	}
}

// CurvePoints samples the curve at the current step. It returns nil for an
// empty curve.
func (s *Session) CurvePoints() []bezier.Point {
	if s.curve.Len() == 0 {
		return nil
	}
	pts, err := s.curve.CurvePoints(s.step)
	if err != nil {
		_ = s.record(err)
		return nil
	}
	return pts
}

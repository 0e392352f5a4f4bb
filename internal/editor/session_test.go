package editor

import (
	"errors"
	"testing"

	"github.com/kpango/glg"

	"github.com/Eirenarch/TypedBezier/pkg/bezier"
)

func init() {
	glg.Get().SetMode(glg.NONE)
}

func newTestSession(t *testing.T, pts ...bezier.Point) *Session {
	t.Helper()
	s, err := New(bezier.New(pts...), 0.25, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func wantSelected(t *testing.T, s *Session, want int) {
	t.Helper()
	got, ok := s.Selected()
	if want < 0 {
		if ok {
			t.Errorf("selected = %d, want none", got)
		}
		return
	}
	if !ok || got != want {
		t.Errorf("selected = %d (ok=%v), want %d", got, ok, want)
	}
}

func wantPoint(t *testing.T, s *Session, i int, x, y float64) {
	t.Helper()
	p, err := s.Curve().ControlPoint(i)
	if err != nil {
		t.Fatalf("ControlPoint(%d): %v", i, err)
	}
	if p.X() != x || p.Y() != y {
		t.Errorf("point %d = %v, want (%g, %g)", i, p, x, y)
	}
}

// ── Construction ──

func TestNewValidates(t *testing.T) {
	if _, err := New(nil, 0, 2); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("step 0: err = %v, want ErrInvalidStep", err)
	}
	if _, err := New(nil, 1e-7, 2); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("step 1e-7: err = %v, want ErrInvalidStep", err)
	}
	if _, err := New(nil, MinStep, 2); err != nil {
		t.Errorf("step MinStep: %v", err)
	}
	if _, err := New(nil, 0.1, 0); !errors.Is(err, ErrInvalidHitRadius) {
		t.Errorf("radius 0: err = %v, want ErrInvalidHitRadius", err)
	}
	s, err := New(nil, 1, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Curve() == nil || s.Curve().Len() != 0 {
		t.Error("nil curve should start an empty curve")
	}
	wantSelected(t, s, -1)
	if _, ok := s.Dragging(); ok {
		t.Error("new session should not be dragging")
	}
}

// ── Pointer ──

func TestPrimaryPressSelectsAndDrags(t *testing.T) {
	s := newTestSession(t, bezier.Pt(0, 0), bezier.Pt(10, 10))

	s.PointerDown(10.5, 9.5, ButtonPrimary)
	wantSelected(t, s, 1)
	if i, ok := s.Dragging(); !ok || i != 1 {
		t.Fatalf("dragging = %d (ok=%v), want 1", i, ok)
	}

	s.PointerMove(20, 5)
	wantPoint(t, s, 1, 20, 5)

	s.PointerUp()
	if _, ok := s.Dragging(); ok {
		t.Error("drag should end on release")
	}
	s.PointerMove(30, 30)
	wantPoint(t, s, 1, 20, 5)
	wantSelected(t, s, 1)
}

func TestPrimaryPressMissDeselects(t *testing.T) {
	s := newTestSession(t, bezier.Pt(0, 0))
	s.PointerDown(0, 0, ButtonPrimary)
	wantSelected(t, s, 0)

	s.PointerDown(50, 50, ButtonPrimary)
	wantSelected(t, s, -1)
	if _, ok := s.Dragging(); ok {
		t.Error("miss should not drag")
	}
}

func TestSecondaryPressRemoves(t *testing.T) {
	s := newTestSession(t, bezier.Pt(0, 0), bezier.Pt(10, 0), bezier.Pt(20, 0))
	s.PointerDown(20, 0, ButtonPrimary)
	s.PointerUp()
	wantSelected(t, s, 2)

	s.PointerDown(10, 0, ButtonSecondary)
	if n := s.Curve().Len(); n != 2 {
		t.Fatalf("len = %d, want 2", n)
	}
	// The selection follows its point down one slot.
	wantSelected(t, s, 1)
	wantPoint(t, s, 1, 20, 0)

	s.PointerDown(20, 0, ButtonSecondary)
	wantSelected(t, s, -1)

	s.PointerDown(99, 99, ButtonSecondary)
	if n := s.Curve().Len(); n != 1 {
		t.Errorf("miss removed a point, len = %d", n)
	}
}

func TestDoubleClickAppends(t *testing.T) {
	s := newTestSession(t)
	s.DoubleClick(3, 4)
	s.DoubleClick(5, 6)
	if n := s.Curve().Len(); n != 2 {
		t.Fatalf("len = %d, want 2", n)
	}
	wantPoint(t, s, 1, 5, 6)
	wantSelected(t, s, 1)
}

func TestShiftAfterRemove(t *testing.T) {
	tests := []struct {
		idx, removed, want int
	}{
		{none, 0, none},
		{2, 2, none},
		{3, 1, 2},
		{0, 1, 0},
	}
	for _, tc := range tests {
		if got := shiftAfterRemove(tc.idx, tc.removed); got != tc.want {
			t.Errorf("shiftAfterRemove(%d, %d) = %d, want %d", tc.idx, tc.removed, got, tc.want)
		}
	}
}

// ── Keyboard editing ──

func TestDeleteAndMoveSelected(t *testing.T) {
	s := newTestSession(t, bezier.Pt(0, 0), bezier.Pt(1, 1))

	if err := s.DeleteSelected(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("DeleteSelected without selection: err = %v", err)
	}
	if !errors.Is(s.LastError(), ErrNoSelection) {
		t.Errorf("LastError = %v, want ErrNoSelection", s.LastError())
	}
	if err := s.MoveSelected(1, 1); !errors.Is(err, ErrNoSelection) {
		t.Errorf("MoveSelected without selection: err = %v", err)
	}

	s.SelectNext()
	if err := s.MoveSelected(7, 8); err != nil {
		t.Fatalf("MoveSelected: %v", err)
	}
	wantPoint(t, s, 0, 7, 8)
	if s.LastError() != nil {
		t.Errorf("LastError = %v after success", s.LastError())
	}

	if err := s.DeleteSelected(); err != nil {
		t.Fatalf("DeleteSelected: %v", err)
	}
	wantSelected(t, s, -1)
	wantPoint(t, s, 0, 1, 1)
}

func TestSelectCycling(t *testing.T) {
	s := newTestSession(t)
	s.SelectNext()
	s.SelectPrev()
	wantSelected(t, s, -1)

	s = newTestSession(t, bezier.Pt(0, 0), bezier.Pt(1, 0), bezier.Pt(2, 0))
	s.SelectPrev()
	wantSelected(t, s, 2)
	s.SelectNext()
	wantSelected(t, s, 0)
	s.SelectNext()
	wantSelected(t, s, 1)
	s.SelectPrev()
	s.SelectPrev()
	wantSelected(t, s, 2)
	s.Deselect()
	wantSelected(t, s, -1)
	s.SelectNext()
	wantSelected(t, s, 0)
}

func TestClear(t *testing.T) {
	s := newTestSession(t, bezier.Pt(0, 0), bezier.Pt(1, 0))
	s.PointerDown(0, 0, ButtonPrimary)
	s.Clear()
	if n := s.Curve().Len(); n != 0 {
		t.Errorf("len = %d after Clear", n)
	}
	wantSelected(t, s, -1)
	if _, ok := s.Dragging(); ok {
		t.Error("Clear should end the drag")
	}
	if pts := s.CurvePoints(); pts != nil {
		t.Errorf("CurvePoints on empty = %v, want nil", pts)
	}
}

// ── Sampling ──

func TestStepControls(t *testing.T) {
	s := newTestSession(t, bezier.Pt(0, 0), bezier.Pt(8, 0))

	if err := s.SetStep(1.5); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("SetStep(1.5): err = %v", err)
	}
	if s.Step() != 0.25 {
		t.Errorf("invalid SetStep changed step to %v", s.Step())
	}
	if err := s.SetStep(MinStep / 2); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("SetStep(MinStep/2): err = %v", err)
	}
	if s.Step() != 0.25 {
		t.Errorf("step below minimum changed step to %v", s.Step())
	}
	if err := s.SetStep(0.5); err != nil {
		t.Fatalf("SetStep(0.5): %v", err)
	}
	if got := len(s.CurvePoints()); got != 3 {
		t.Errorf("samples at 0.5 = %d, want 3", got)
	}

	s.StepCoarser()
	s.StepCoarser()
	if s.Step() != MaxStep {
		t.Errorf("step = %v, want clamp to %v", s.Step(), MaxStep)
	}

	for i := 0; i < 20; i++ {
		s.StepFiner()
	}
	if s.Step() != MinStep {
		t.Errorf("step = %v, want floor %v", s.Step(), MinStep)
	}
}

func TestCurvePointsEndpoints(t *testing.T) {
	s := newTestSession(t, bezier.Pt(0, 0), bezier.Pt(5, 10), bezier.Pt(10, 0))
	pts := s.CurvePoints()
	if len(pts) != 5 {
		t.Fatalf("len = %d, want 5", len(pts))
	}
	if !pts[0].Equal(bezier.Pt(0, 0)) || !pts[4].Equal(bezier.Pt(10, 0)) {
		t.Errorf("endpoints = %v, %v", pts[0], pts[4])
	}
	if !pts[2].Equal(bezier.Pt(5, 5)) {
		t.Errorf("midpoint = %v, want (5, 5)", pts[2])
	}
}

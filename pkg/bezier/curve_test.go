package bezier

import (
	"errors"
	"testing"
)

// ── Construction and snapshots ──

func TestNewEmpty(t *testing.T) {
	c := New()
	if c.Len() != 0 {
		t.Fatalf("expected empty curve, got %d points", c.Len())
	}
	if pts := c.ControlPoints(); pts == nil || len(pts) != 0 {
		t.Errorf("expected empty non-nil snapshot, got %#v", pts)
	}
}

func TestNewCopiesInput(t *testing.T) {
	src := []Point{Pt(0, 0), Pt(10, 10)}
	c := New(src...)
	src[0] = Pt(99, 99)
	diff(t, []Point{Pt(0, 0), Pt(10, 10)}, c.ControlPoints())
}

func TestControlPointsIsSnapshot(t *testing.T) {
	c := New(Pt(1, 1), Pt(2, 2))
	snap := c.ControlPoints()
	snap[0] = Pt(50, 50)
	_ = append(snap[:1], Pt(7, 7))
	diff(t, []Point{Pt(1, 1), Pt(2, 2)}, c.ControlPoints())
}

// ── Mutation ──

func TestAddControlPointReturnsLength(t *testing.T) {
	c := New()
	for i := 1; i <= 4; i++ {
		if n := c.AddControlPoint(float64(i), float64(-i)); n != i {
			t.Errorf("add #%d returned %d", i, n)
		}
	}
	diff(t, []Point{Pt(1, -1), Pt(2, -2), Pt(3, -3), Pt(4, -4)}, c.ControlPoints())
}

func TestLengthTracksAddsAndRemoves(t *testing.T) {
	c := New()
	adds, removes := 0, 0
	ops := []string{"a", "a", "r", "a", "a", "a", "r", "r", "a"}
	for _, op := range ops {
		switch op {
		case "a":
			c.AddControlPoint(1, 1)
			adds++
		case "r":
			if err := c.RemoveControlPoint(0); err != nil {
				t.Fatalf("remove: %v", err)
			}
			removes++
		}
		if c.Len() != adds-removes || len(c.ControlPoints()) != adds-removes {
			t.Fatalf("length %d, want %d", c.Len(), adds-removes)
		}
	}
}

func TestMoveControlPoint(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 1), Pt(2, 2))
	if err := c.MoveControlPoint(1, 5, 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff(t, []Point{Pt(0, 0), Pt(5, 6), Pt(2, 2)}, c.ControlPoints())
}

func TestRemoveControlPointShifts(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3))
	if err := c.RemoveControlPoint(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff(t, []Point{Pt(0, 0), Pt(2, 2), Pt(3, 3)}, c.ControlPoints())

	if err := c.RemoveControlPoint(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff(t, []Point{Pt(0, 0), Pt(2, 2)}, c.ControlPoints())
}

func TestIndexOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		op   func(c *Curve) error
	}{
		{"move past end", func(c *Curve) error { return c.MoveControlPoint(5, 0, 0) }},
		{"move at length", func(c *Curve) error { return c.MoveControlPoint(2, 0, 0) }},
		{"move negative", func(c *Curve) error { return c.MoveControlPoint(-1, 0, 0) }},
		{"remove negative", func(c *Curve) error { return c.RemoveControlPoint(-1) }},
		{"remove at length", func(c *Curve) error { return c.RemoveControlPoint(2) }},
		{"get past end", func(c *Curve) error { _, err := c.ControlPoint(9); return err }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(Pt(1, 2), Pt(3, 4))
			err := tc.op(c)
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
			}
			diff(t, []Point{Pt(1, 2), Pt(3, 4)}, c.ControlPoints())
		})
	}
}

func TestRemoveFromEmpty(t *testing.T) {
	if err := New().RemoveControlPoint(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

// ── Hit testing ──

func TestSelectControlPoint(t *testing.T) {
	c := New(Pt(10, 10), Pt(12, 12), Pt(50, 50))
	tests := []struct {
		x, y   float64
		r      float64
		want   int
		wantOK bool
	}{
		{10, 10, 4, 0, true},
		// overlaps 0 and 1: lowest index wins
		{13, 13, 4, 0, true},
		// outside 0's box (edge at 14), inside 1's
		{15, 15, 4, 1, true},
		// open box: x == p.x+r misses 0, y misses 1
		{14, 7, 4, -1, false},
		{53.9, 46.1, 4, 2, true},
		{30, 30, 4, -1, false},
		{11, 11, 0, -1, false},
		{50.5, 50.5, 1, 2, true},
		{51, 50, 1, -1, false},
	}
	for _, tc := range tests {
		got, ok := c.SelectControlPoint(tc.x, tc.y, tc.r)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("SelectControlPoint(%v, %v, %v) = %d, %v; want %d, %v",
				tc.x, tc.y, tc.r, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestSelectControlPointEmpty(t *testing.T) {
	if _, ok := New().SelectControlPoint(0, 0, DefaultHitRadius); ok {
		t.Error("empty curve should not report a hit")
	}
}

// ── Sampling ──

func TestCurvePointsEmpty(t *testing.T) {
	if _, err := New().CurvePoints(0.1); !errors.Is(err, ErrEmptyCurve) {
		t.Fatalf("expected ErrEmptyCurve, got %v", err)
	}
}

func TestCurvePointsLinear(t *testing.T) {
	c := New(Pt(0, 0), Pt(10, 0))
	got, err := c.CurvePoints(0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(5, 0), Pt(10, 0)}, got)
}

func TestCurvePointsQuarterSteps(t *testing.T) {
	c := New(Pt(0, 0), Pt(8, 0))
	got, err := c.CurvePoints(0.25)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(2, 0), Pt(4, 0), Pt(6, 0), Pt(8, 0)}, got)
}

func TestCurvePointsFloatDrift(t *testing.T) {
	// Ten additions of 0.1 land just below 1, so that sample is kept and the
	// end point follows it.
	c := New(Pt(0, 0), Pt(10, 0))
	got, err := c.CurvePoints(0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 12 {
		t.Fatalf("expected 12 points, got %d: %v", len(got), got)
	}
	diff(t, Pt(10, 0), got[10], approx(1e-9))
	diff(t, Pt(10, 0), got[11])
}

func TestCurvePointsEndpoints(t *testing.T) {
	c := New(Pt(3, 7), Pt(20, -4), Pt(41, 30), Pt(60, 2))
	for _, step := range []float64{0.01, 0.07, 0.1, 0.3, 0.5, 1} {
		got, err := c.CurvePoints(step)
		if err != nil {
			t.Fatal(err)
		}
		if got[0] != Pt(3, 7) || got[len(got)-1] != Pt(60, 2) {
			t.Errorf("step %v: endpoints %v .. %v", step, got[0], got[len(got)-1])
		}
	}
}

func TestCurvePointsSinglePoint(t *testing.T) {
	p := Pt(4, 4)
	got, err := New(p).CurvePoints(0.25)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{p, p, p, p, p}, got)
}

func TestCurvePointsDegenerateSteps(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 1), Pt(2, 0))
	want := []Point{Pt(0, 0), Pt(2, 0)}
	for _, step := range []float64{0, -0.5, 1, 2} {
		got, err := c.CurvePoints(step)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, got)
	}
}

func TestCurvePointsDoesNotMutate(t *testing.T) {
	c := New(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	if _, err := c.CurvePoints(0.05); err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}, c.ControlPoints())
}

func TestCurvePointsQuadraticMidpoint(t *testing.T) {
	c := New(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	got, err := c.CurvePoints(0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(7.5, 2.5), Pt(10, 10)}, got)
}

func BenchmarkCurvePointsCubic(b *testing.B) {
	c := New(Pt(0, 0), Pt(30, 80), Pt(70, -20), Pt(100, 50))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.CurvePoints(0.01)
	}
}

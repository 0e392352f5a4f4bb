package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares points with an absolute tolerance on each axis.
func approx(tol float64) cmp.Option {
	return cmp.Comparer(func(a, b Point) bool {
		return math.Abs(a.x-b.x) <= tol && math.Abs(a.y-b.y) <= tol
	})
}

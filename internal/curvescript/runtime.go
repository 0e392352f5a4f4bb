// Package curvescript runs JavaScript against a Bézier curve using Goja.
//
// Scripts see the functions addControlPoint, moveControlPoint,
// removeControlPoint, getControlPoints, generateCurvePoints,
// selectControlPointIndex and print. Model errors are thrown as JS
// exceptions and can be caught by the script.
package curvescript

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/dop251/goja"
	"github.com/kpango/glg"
	"github.com/spf13/cast"

	"github.com/Eirenarch/TypedBezier/internal/editor"
	"github.com/Eirenarch/TypedBezier/pkg/bezier"
)

// Runtime is a JS runtime bound to one curve. Not safe for concurrent use.
type Runtime struct {
	curve  *bezier.Curve
	Output []string
	vm     *goja.Runtime
}

// New creates a runtime editing curve.
func New(curve *bezier.Curve) *Runtime {
	r := &Runtime{
		curve: curve,
		vm:    goja.New(),
	}
	r.register()
	return r
}

func (r *Runtime) register() {
	r.vm.Set("print", r.print)
	r.vm.Set("addControlPoint", r.addControlPoint)
	r.vm.Set("moveControlPoint", r.moveControlPoint)
	r.vm.Set("removeControlPoint", r.removeControlPoint)
	r.vm.Set("getControlPoints", r.getControlPoints)
	r.vm.Set("generateCurvePoints", r.generateCurvePoints)
	r.vm.Set("selectControlPointIndex", r.selectControlPointIndex)
}

// Run executes src. An uncaught exception is returned as an error.
func (r *Runtime) Run(src string) error {
	return r.RunContext(context.Background(), "script", src)
}

// RunFile executes the script at path.
func (r *Runtime) RunFile(path string) error {
	return r.RunFileContext(context.Background(), path)
}

// RunFileContext executes the script at path, interrupting it when ctx is
// done.
func (r *Runtime) RunFileContext(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return r.RunContext(ctx, path, string(src))
}

// RunContext executes src, interrupting it when ctx is done.
func (r *Runtime) RunContext(ctx context.Context, name, src string) error {
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			r.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	glg.Debugf("curvescript: running %s", name)
	_, err := r.vm.RunScript(name, src)
	close(done)
	<-stopped
	r.vm.ClearInterrupt()
	if err != nil {
		return fmt.Errorf("curvescript %s: %w", name, err)
	}
	return nil
}

// ── Bindings ──

func (r *Runtime) print(call goja.FunctionCall) goja.Value {
	parts := make([]string, len(call.Arguments))
	for i, arg := range call.Arguments {
		parts[i] = arg.String()
	}
	line := strings.Join(parts, " ")
	r.Output = append(r.Output, line)
	glg.Infof("script: %s", line)
	return goja.Undefined()
}

func (r *Runtime) addControlPoint(call goja.FunctionCall) goja.Value {
	x := r.floatArg(call, 0, "x")
	y := r.floatArg(call, 1, "y")
	r.curve.AddControlPoint(x, y)
	return r.vm.ToValue(r.curve.Len())
}

func (r *Runtime) moveControlPoint(call goja.FunctionCall) goja.Value {
	i := r.intArg(call, 0, "index")
	x := r.floatArg(call, 1, "x")
	y := r.floatArg(call, 2, "y")
	r.check(r.curve.MoveControlPoint(i, x, y))
	return goja.Undefined()
}

func (r *Runtime) removeControlPoint(call goja.FunctionCall) goja.Value {
	r.check(r.curve.RemoveControlPoint(r.intArg(call, 0, "index")))
	return goja.Undefined()
}

func (r *Runtime) getControlPoints(goja.FunctionCall) goja.Value {
	return r.vm.ToValue(pointObjects(r.curve.ControlPoints()))
}

func (r *Runtime) generateCurvePoints(call goja.FunctionCall) goja.Value {
	step := r.floatArg(call, 0, "step")
	if step > 0 && step < editor.MinStep {
		r.throwRange("step %v is below the minimum %v", step, editor.MinStep)
	}
	pts, err := r.curve.CurvePoints(step)
	r.check(err)
	return r.vm.ToValue(pointObjects(pts))
}

func (r *Runtime) selectControlPointIndex(call goja.FunctionCall) goja.Value {
	x := r.floatArg(call, 0, "x")
	y := r.floatArg(call, 1, "y")
	radius := float64(bezier.DefaultHitRadius)
	if len(call.Arguments) > 2 && !goja.IsUndefined(call.Argument(2)) {
		radius = r.floatArg(call, 2, "radius")
	}
	i, ok := r.curve.SelectControlPoint(x, y, radius)
	if !ok {
		return goja.Null()
	}
	return r.vm.ToValue(i)
}

// ── Argument helpers ──

func (r *Runtime) floatArg(call goja.FunctionCall, i int, name string) float64 {
	v := call.Argument(i)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		panic(r.vm.NewTypeError("missing argument %s", name))
	}
	f, err := cast.ToFloat64E(v.Export())
	if err != nil {
		panic(r.vm.NewTypeError("argument %s: %v", name, err))
	}
	return f
}

// intArg reads an index argument. Fractional and non-finite values are
// rejected rather than truncated; the range itself is checked by the curve.
func (r *Runtime) intArg(call goja.FunctionCall, i int, name string) int {
	f := r.floatArg(call, i, name)
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		r.throwRange("invalid %s %v", name, f)
	}
	return int(f)
}

func (r *Runtime) throwRange(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	obj, err := r.vm.New(r.vm.Get("RangeError"), r.vm.ToValue(msg))
	if err != nil {
		panic(r.vm.NewTypeError(msg))
	}
	panic(obj)
}

func (r *Runtime) check(err error) {
	if err != nil {
		panic(r.vm.NewGoError(err))
	}
}

func pointObjects(pts []bezier.Point) []interface{} {
	out := make([]interface{}, len(pts))
	for i, p := range pts {
		out[i] = map[string]interface{}{"x": p.X(), "y": p.Y()}
	}
	return out
}

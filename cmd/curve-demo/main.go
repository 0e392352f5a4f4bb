// curve-demo renders a Bézier curve once to stdout, to check the curve
// sampling and the cellbuf + drawutil + lipgloss drawing without the TUI.
//
// Run: GOWORK=off go run ./cmd/curve-demo/ -points "2,2 20,30 60,0 70,20"
package main

import (
	"cmp"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/kpango/glg"
	"github.com/spf13/cast"

	"github.com/Eirenarch/TypedBezier/internal/config"
	"github.com/Eirenarch/TypedBezier/internal/curvescript"
	"github.com/Eirenarch/TypedBezier/internal/editor"
	"github.com/Eirenarch/TypedBezier/internal/editorui"
	"github.com/Eirenarch/TypedBezier/pkg/bezier"
)

type Flags struct {
	Points     string
	ConfigPath string
	ScriptPath string
	Step       float64
	Width      int
	Height     int
	Grid       int
	Plain      bool
	List       bool
}

var errBadPoint = errors.New(`point must look like "x,y"`)

// parsePoints reads whitespace separated "x,y" pairs.
func parsePoints(s string) ([]bezier.Point, error) {
	var pts []bezier.Point
	for _, field := range strings.Fields(s) {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errBadPoint, field)
		}
		x, err := cast.ToFloat64E(xs)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadPoint, field, err)
		}
		y, err := cast.ToFloat64E(ys)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadPoint, field, err)
		}
		pts = append(pts, bezier.Pt(x, y))
	}
	return pts, nil
}

// fitCamera returns the top-left world cell that puts the control points'
// bounding box one cell in from the corner.
func fitCamera(pts []bezier.Point) (int, int) {
	if len(pts) == 0 {
		return 0, 0
	}
	minX, minY := math.Inf(1), math.Inf(1)
	for _, p := range pts {
		minX = math.Min(minX, p.X())
		minY = math.Min(minY, p.Y())
	}
	return int(math.Floor(minX)) - 1, int(math.Floor(minY)) - 1
}

func main() {
	var f Flags
	flag.StringVar(&f.Points, "points", "", `control points, e.g. "0,0 10,20 30,0"`)
	flag.StringVar(&f.ConfigPath, "config", "", "YAML config file path")
	flag.StringVar(&f.ScriptPath, "script", "", "JavaScript run against the curve before rendering")
	flag.Float64Var(&f.Step, "step", 0, "sampling step in [1/1024, 1] (overrides config)")
	flag.IntVar(&f.Width, "w", 72, "canvas width in cells")
	flag.IntVar(&f.Height, "h", 24, "canvas height in cells")
	flag.IntVar(&f.Grid, "grid", 0, "grid divisions, 0 for none")
	flag.BoolVar(&f.Plain, "plain", false, "print without colors")
	flag.BoolVar(&f.List, "list", false, "print the sampled points instead of drawing")
	flag.Parse()

	cfg := config.Default()
	if f.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(f.ConfigPath); err != nil {
			glg.Fatalf("Cannot load config: %v", err)
		}
	}
	if f.Step != 0 {
		cfg.Step = f.Step
	}
	if err := cfg.Validate(); err != nil {
		glg.Fatalf("Invalid configuration: %v", err)
	}

	curve := cfg.Curve()
	if f.Points != "" {
		pts, err := parsePoints(f.Points)
		if err != nil {
			glg.Fatalf("Cannot parse -points: %v", err)
		}
		for _, p := range pts {
			curve.AddControlPoint(p.Splat())
		}
	}
	if script := cmp.Or(f.ScriptPath, cfg.Script); script != "" {
		if err := curvescript.New(curve).RunFile(script); err != nil {
			glg.Fatalf("Script failed: %v", err)
		}
	}
	if curve.Len() == 0 {
		glg.Fatal("No control points: use -points, -config or -script")
	}

	session, err := editor.New(curve, cfg.Step, cfg.HitRadius)
	if err != nil {
		glg.Fatalf("Cannot create session: %v", err)
	}

	if f.List {
		for i, p := range session.CurvePoints() {
			fmt.Printf("%4d  %g\t%g\n", i, p.X(), p.Y())
		}
		return
	}

	camX, camY := fitCamera(curve.ControlPoints())
	buf := editorui.Snapshot(session, f.Width, f.Height, camX, camY, f.Grid)
	if f.Plain {
		fmt.Println(buf.String())
	} else {
		fmt.Println(buf.Render(editorui.CanvasStyles()))
	}
	fmt.Fprintf(os.Stderr, "%d control points, %d samples at step %g\n",
		curve.Len(), len(session.CurvePoints()), session.Step())
}

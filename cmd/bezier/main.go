// bezier is an interactive terminal editor for Bézier curves.
//
// Run: GOWORK=off go run ./cmd/bezier/ [-config editor.yaml] [-script seed.js]
//
// -dump-config prints the effective configuration as YAML and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/kpango/glg"

	"github.com/Eirenarch/TypedBezier/internal/config"
	"github.com/Eirenarch/TypedBezier/internal/curvescript"
	"github.com/Eirenarch/TypedBezier/internal/editor"
	"github.com/Eirenarch/TypedBezier/internal/editorui"
)

const scriptTimeout = 5 * time.Second

type Flags struct {
	ConfigPath string
	ScriptPath string
	LogPath    string
	Step       float64
	DumpConfig bool
}

func main() {
	var f Flags
	flag.StringVar(&f.ConfigPath, "config", "", "YAML config file path")
	flag.StringVar(&f.ScriptPath, "script", "", "JavaScript run against the curve at startup (overrides config)")
	flag.StringVar(&f.LogPath, "log", "", "write logs to this file")
	flag.Float64Var(&f.Step, "step", 0, "sampling step in [1/1024, 1] (overrides config)")
	flag.BoolVar(&f.DumpConfig, "dump-config", false, "print the effective configuration as YAML and exit")
	flag.Parse()

	var logFile *os.File
	if f.LogPath != "" {
		logFile = glg.FileWriter(f.LogPath, 0o644)
		if logFile == nil {
			glg.Fatalf("Cannot open log file %s", f.LogPath)
		}
		defer logFile.Close()
		glg.Get().SetMode(glg.BOTH).AddWriter(logFile)
	}

	cfg, err := loadConfig(f)
	if err != nil {
		glg.Fatal(err)
	}
	if f.DumpConfig {
		if err := dumpConfig(os.Stdout, cfg); err != nil {
			glg.Fatal(err)
		}
		return
	}

	curve := cfg.Curve()
	var output []string
	if cfg.Script != "" {
		rt := curvescript.New(curve)
		ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
		err := rt.RunFileContext(ctx, cfg.Script)
		cancel()
		if err != nil {
			glg.Fatalf("Script failed: %v", err)
		}
		output = rt.Output
		glg.Infof("script %s left %d control points", cfg.Script, curve.Len())
	}

	session, err := editor.New(curve, cfg.Step, cfg.HitRadius)
	if err != nil {
		glg.Fatalf("Cannot start editor: %v", err)
	}

	// The TUI owns the terminal from here on.
	if logFile != nil {
		glg.Get().SetMode(glg.WRITER)
	} else {
		glg.Get().SetMode(glg.NONE)
	}

	m := editorui.NewModel(session, editorui.Options{
		GridDivisions: cfg.GridDivisions,
		DoubleClick:   cfg.DoubleClick,
		Output:        output,
	})
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, and applies the flag overrides.
func loadConfig(f Flags) (*config.Config, error) {
	cfg := config.Default()
	if f.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(f.ConfigPath); err != nil {
			return nil, fmt.Errorf("cannot load config: %w", err)
		}
	}
	if f.Step != 0 {
		cfg.Step = f.Step
	}
	if f.ScriptPath != "" {
		cfg.Script = f.ScriptPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func dumpConfig(w io.Writer, cfg *config.Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/example/paintit/internal/backend"
	"github.com/example/paintit/internal/backend/ebitenwin"
	"github.com/example/paintit/internal/backend/shinywin"
	"github.com/example/paintit/internal/config"
	"github.com/example/paintit/internal/frame"
	"github.com/example/paintit/internal/tools"
)

type runCmd struct {
	*root
	fs      *flag.FlagSet
	backend string
	tool    string
	fps     int
	verbose bool
}

func parseRunCmd(args []string, r *root) (*runCmd, error) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	c := &runCmd{root: r.subcommand("run"), fs: fs}
	c.root.fs = fs
	cfg := r.config
	start := ""
	if cfg.Tools.HasStart {
		start = cfg.Tools.StartTool.String()
	}
	fs.StringVar(&c.backend, "backend", cfg.Backend, "window backend (shiny or ebiten)")
	fs.StringVar(&c.tool, "tool", start, "tool selected at start up")
	fs.IntVar(&c.fps, "fps", cfg.FPS, "frames per second")
	fs.BoolVar(&c.verbose, "v", false, "log tool activity to stderr")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: c, msg: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}
	switch c.backend {
	case config.BackendShiny, config.BackendEbiten:
	default:
		return nil, &UsageError{of: c, msg: fmt.Sprintf("unknown backend %q", c.backend)}
	}
	if c.fps <= 0 {
		return nil, &UsageError{of: c, msg: fmt.Sprintf("fps must be positive, got %d", c.fps)}
	}
	return c, nil
}

// options builds the session options from the flags and the configuration.
func (c *runCmd) options() (backend.Options, error) {
	opts := backend.Options{Theme: c.activeTheme, FPS: c.fps}
	if c.tool != "" {
		k, err := tools.ParseKind(c.tool)
		if err != nil {
			return opts, fmt.Errorf("-tool: %w", err)
		}
		opts.StartTool, opts.HasStart = k, true
	}
	return opts, nil
}

func (c *runCmd) Run() error {
	opts, err := c.options()
	if err != nil {
		return err
	}
	if c.verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		tools.SetLogger(l)
	}
	var run func(frame.Config, backend.Options) error
	switch c.backend {
	case config.BackendEbiten:
		run = ebitenwin.Run
	default:
		run = shinywin.Run
	}
	if err := run(c.config.Frame(), opts); err != nil {
		return fmt.Errorf("%s backend: %w", c.backend, err)
	}
	return nil
}

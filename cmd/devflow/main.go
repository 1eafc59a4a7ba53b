// Package main implements the devflow CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/amonks/devflow/internal/app"
	"github.com/amonks/devflow/internal/config"
	"github.com/amonks/devflow/internal/logging"
	"github.com/amonks/devflow/internal/ui"
	"github.com/amonks/devflow/pomodoro"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "devflow",
	Short:        "DevFlow - a developer dashboard for tasks, focus and growth",
	SilenceUsage: true,
}

var (
	rootNow      string
	rootLogLevel string
)

// defaultWidth is used when stdout is not a terminal.
const defaultWidth = 80

func init() {
	rootCmd.PersistentFlags().StringVar(&rootNow, "now", "", "Evaluate dates as of this time (YYYY-MM-DD or RFC 3339)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// session is everything a command needs to run against the dashboard.
type session struct {
	app   *app.App
	cfg   *config.Config
	now   time.Time
	out   io.Writer
	color bool
	width int
	close func()
}

type openOptions struct {
	// fileLogOnly keeps log output off the terminal.
	fileLogOnly bool
	// bell receives Pomodoro completion notices.
	bell io.Writer
	// configure adjusts the loaded configuration before the app is built.
	configure func(*config.Config)
	pomodoro  []pomodoro.Option
}

// openSession loads configuration, builds the logger and the app.
func openSession(cmd *cobra.Command, opts openOptions) (*session, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}
	if opts.configure != nil {
		opts.configure(cfg)
	}

	level := cfg.Log.Level
	if rootLogLevel != "" {
		level = rootLogLevel
	}
	var (
		log      *zap.Logger
		closeLog func() error
	)
	if opts.fileLogOnly {
		log, closeLog, err = logging.FileOnly(level, cfg.Log.File)
	} else {
		log, closeLog, err = logging.New(logging.Options{Level: level, File: cfg.Log.File, Console: cmd.ErrOrStderr()})
	}
	if err != nil {
		return nil, err
	}

	clock := time.Now
	if rootNow != "" {
		fixed, err := parseNow(rootNow)
		if err != nil {
			_ = closeLog()
			return nil, err
		}
		clock = func() time.Time { return fixed }
	}

	a, err := app.New(app.Options{
		Config: cfg,
		Logger: log,
		Clock:  clock,
		Bell:   opts.bell,

		PomodoroOptions: opts.pomodoro,
	})
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	out := cmd.OutOrStdout()
	return &session{
		app:   a,
		cfg:   cfg,
		now:   clock(),
		out:   out,
		color: ui.ColorEnabled(out),
		width: outputWidth(out),
		close: func() {
			a.Close()
			_ = closeLog()
		},
	}, nil
}

func parseNow(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			if layout == "2006-01-02" {
				t = t.Add(12 * time.Hour)
			}
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --now %q: use YYYY-MM-DD or RFC 3339", value)
}

func outputWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

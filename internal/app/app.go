// Package app wires the dashboard together: the store, the Pomodoro driver,
// the suggestion clients and the logger. Its methods are the user-level
// operations shared by the CLI and the terminal UI; each one dispatches the
// store actions that make up a single user gesture.
package app

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amonks/devflow/internal/config"
	"github.com/amonks/devflow/pomodoro"
	"github.com/amonks/devflow/store"
	"github.com/amonks/devflow/suggest"
)

var (
	// ErrTaskNotFound is returned when an operation names an unknown task.
	ErrTaskNotFound = errors.New("task not found")

	// ErrSkillNotFound is returned when an operation names an unknown skill.
	ErrSkillNotFound = errors.New("skill not found")

	// ErrAchievementNotFound is returned when an operation names an unknown
	// achievement.
	ErrAchievementNotFound = errors.New("achievement not found")
)

// App is the running dashboard.
type App struct {
	Store    *store.Store
	Pomodoro *pomodoro.Driver
	Learning *suggest.LearningClient
	Planner  *suggest.PlannerClient

	log   *zap.Logger
	now   func() time.Time
	newID func() string
}

// Options configures New.
type Options struct {
	// Config supplies endpoints, timeouts and notification settings. Nil
	// means defaults.
	Config *config.Config

	// Logger receives diagnostics. Nil means a no-op logger.
	Logger *zap.Logger

	// Clock overrides time.Now.
	Clock func() time.Time

	// Initial is the starting state. Nil means the seed state.
	Initial *store.State

	// Bell receives Pomodoro completion notifications when enabled. Nil
	// disables the bell.
	Bell io.Writer

	// HTTPClient is used by both suggestion clients.
	HTTPClient *http.Client

	// PomodoroOptions are passed to the driver after the defaults.
	PomodoroOptions []pomodoro.Option

	// NewID generates ids for created records. Nil means random UUIDs.
	NewID func() string
}

// New builds an App from opts.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	initial := store.Seed()
	if opts.Initial != nil {
		initial = *opts.Initial
	}
	switch cfg.UI.Theme {
	case string(store.ThemeLight), string(store.ThemeDark):
		initial.Theme = store.Theme(cfg.UI.Theme)
	}

	timeout, err := cfg.Suggest.TimeoutDuration(suggest.DefaultTimeout)
	if err != nil {
		return nil, err
	}
	clientOpts := []suggest.Option{
		suggest.WithTimeout(timeout),
		suggest.WithHeaders(cfg.Suggest.Headers),
		suggest.WithLogger(log.Named("suggest")),
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, suggest.WithHTTPClient(opts.HTTPClient))
	}

	s := store.New(initial, store.WithClock(now), store.WithLogger(log.Named("store")))

	driverOpts := []pomodoro.Option{pomodoro.WithLogger(log.Named("pomodoro"))}
	if opts.Bell != nil && cfg.Pomodoro.NotifyEnabled() {
		driverOpts = append(driverOpts, pomodoro.WithNotifier(pomodoro.NewBellNotifier(opts.Bell)))
	}
	driverOpts = append(driverOpts, opts.PomodoroOptions...)

	return &App{
		Store:    s,
		Pomodoro: pomodoro.NewDriver(s, driverOpts...),
		Learning: suggest.NewLearningClient(cfg.Suggest.LearningURL, clientOpts...),
		Planner:  suggest.NewPlannerClient(cfg.Suggest.PlannerURL, clientOpts...),
		log:      log,
		now:      now,
		newID:    newID,
	}, nil
}

// Snapshot returns the current state.
func (a *App) Snapshot() store.State {
	return a.Store.Snapshot()
}

// Now returns the app clock reading.
func (a *App) Now() time.Time {
	return a.now()
}

// Close stops the Pomodoro loop if one is running.
func (a *App) Close() {
	if a.Pomodoro.Running() {
		a.Pomodoro.Stop()
	}
}

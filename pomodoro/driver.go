// Package pomodoro drives the store's focus timer with a cancelable run
// loop.
package pomodoro

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/amonks/devflow/store"
)

// DefaultInterval is the wall-clock length of one tick.
const DefaultInterval = time.Second

// Dispatcher is the part of the store the driver needs.
type Dispatcher interface {
	Dispatch(a store.Action) store.State
	DispatchFunc(decide func(store.State) store.Action) (store.State, bool)
}

// Driver ticks the Pomodoro countdown once per interval while a session is
// active and records completion when it reaches zero.
type Driver struct {
	store     Dispatcher
	interval  time.Duration
	newTicker TickerFunc
	notifier  Notifier
	log       *zap.Logger

	mu  sync.Mutex
	run *loop
}

type loop struct {
	ctx    context.Context
	ticker Ticker
	quit   chan struct{}
	done   chan struct{}
}

// Option configures a Driver.
type Option func(*Driver)

// WithInterval sets the tick interval.
func WithInterval(d time.Duration) Option {
	return func(dr *Driver) {
		if d > 0 {
			dr.interval = d
		}
	}
}

// WithTicker replaces the ticker factory.
func WithTicker(fn TickerFunc) Option {
	return func(dr *Driver) {
		if fn != nil {
			dr.newTicker = fn
		}
	}
}

// WithNotifier sets the completion notifier.
func WithNotifier(n Notifier) Option {
	return func(dr *Driver) {
		if n != nil {
			dr.notifier = n
		}
	}
}

// WithLogger sets the driver logger.
func WithLogger(log *zap.Logger) Option {
	return func(dr *Driver) {
		if log != nil {
			dr.log = log
		}
	}
}

// NewDriver creates a driver for s. No loop runs until Start.
func NewDriver(s Dispatcher, opts ...Option) *Driver {
	d := &Driver{
		store:     s,
		interval:  DefaultInterval,
		newTicker: NewRealTicker,
		notifier:  NopNotifier{},
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start begins a fresh session bound to ctx. If a loop for the same ctx is
// already running its ticker is reset so the first tick of the new session
// comes a full interval later. A loop started under a different ctx is
// replaced.
func (d *Driver) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.store.Dispatch(store.StartPomodoro{})

	if d.run != nil && d.run.ctx == ctx {
		d.run.ticker.Reset(d.interval)
		return
	}
	if old := d.run; old != nil {
		// The old loop sees it is no longer current and exits on its own.
		close(old.quit)
	}

	l := &loop{
		ctx:    ctx,
		ticker: d.newTicker(d.interval),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	d.run = l
	d.log.Debug("pomodoro loop started", zap.Duration("interval", d.interval))
	go d.loop(l)
}

// Stop abandons the current session and waits for the loop to exit. No tick
// is applied after Stop returns.
func (d *Driver) Stop() {
	d.mu.Lock()
	l := d.run
	d.run = nil
	d.store.Dispatch(store.StopPomodoro{})
	d.mu.Unlock()

	if l == nil {
		return
	}
	close(l.quit)
	<-l.done
}

// Running reports whether a run loop exists.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.run != nil
}

func (d *Driver) loop(l *loop) {
	defer close(l.done)
	defer l.ticker.Stop()

	for {
		select {
		case <-l.ctx.Done():
			d.detach(l)
			return
		case <-l.quit:
			return
		case <-l.ticker.C():
			if !d.step(l) {
				return
			}
		}
	}
}

// step applies one tick boundary. It reports whether the loop should keep
// running.
func (d *Driver) step(l *loop) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.run != l {
		return false
	}

	st, _ := d.store.DispatchFunc(func(st store.State) store.Action {
		if st.Pomodoro.Active && st.Pomodoro.TimeRemaining > 0 {
			return store.TickPomodoro{}
		}
		return nil
	})

	if !st.Pomodoro.Active {
		d.run = nil
		d.log.Debug("pomodoro loop halted by external stop")
		return false
	}
	if st.Pomodoro.TimeRemaining > 0 {
		return true
	}

	st, completed := d.store.DispatchFunc(func(st store.State) store.Action {
		if st.Pomodoro.Active && st.Pomodoro.TimeRemaining == 0 {
			return store.CompletePomodoroSession{}
		}
		return nil
	})
	d.run = nil
	if completed {
		d.log.Info("pomodoro session complete", zap.Int("sessions", st.Pomodoro.SessionsCompleted))
		if err := d.notifier.SessionComplete(st.Pomodoro.SessionsCompleted); err != nil {
			d.log.Warn("pomodoro notification failed", zap.Error(err))
		}
	}
	return false
}

// detach abandons the session of a loop whose context ended.
func (d *Driver) detach(l *loop) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.run != l {
		return
	}
	d.run = nil
	d.store.Dispatch(store.StopPomodoro{})
	d.log.Debug("pomodoro loop canceled")
}

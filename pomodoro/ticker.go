package pomodoro

import "time"

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
	Reset(d time.Duration)
}

// TickerFunc creates a Ticker with the given interval.
type TickerFunc func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

// NewRealTicker wraps time.NewTicker.
func NewRealTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

func (r *realTicker) C() <-chan time.Time    { return r.t.C }
func (r *realTicker) Stop()                  { r.t.Stop() }
func (r *realTicker) Reset(d time.Duration) { r.t.Reset(d) }

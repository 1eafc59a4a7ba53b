package store

import (
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Store is the single writer of the dashboard state. Dispatches are
// serialized; subscribers see every resulting state in dispatch order.
type Store struct {
	mu    sync.Mutex
	state State
	now   func() time.Time
	log   *zap.Logger

	subMu  sync.Mutex
	subs   map[int]func(State)
	nextID int

	// notifyMu orders subscriber callbacks so they observe dispatches in
	// the order they were applied.
	notifyMu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp unlock times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger that records every dispatch at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a store holding initial.
func New(initial State, opts ...Option) *Store {
	s := &Store{
		state: initial,
		now:   time.Now,
		log:   zap.NewNop(),
		subs:  make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Now returns the store's clock reading.
func (s *Store) Now() time.Time {
	return s.now()
}

// Dispatch applies a and returns the new state.
func (s *Store) Dispatch(a Action) State {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	next := ApplyAt(s.state, a, s.now())
	s.state = next
	s.mu.Unlock()

	s.log.Debug("dispatch", zap.Stringer("action", a))
	s.notify(next)
	return next
}

// DispatchFunc atomically reads the current state, asks decide for an
// action, and applies it. When decide returns nil nothing is applied and
// the second result is false.
func (s *Store) DispatchFunc(decide func(State) Action) (State, bool) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	a := decide(s.state)
	if a == nil {
		st := s.state
		s.mu.Unlock()
		return st, false
	}
	next := ApplyAt(s.state, a, s.now())
	s.state = next
	s.mu.Unlock()

	s.log.Debug("dispatch", zap.Stringer("action", a))
	s.notify(next)
	return next, true
}

// Subscribe registers fn to receive every state produced by a dispatch.
// The returned function removes the subscription. Subscribers must not
// dispatch synchronously.
func (s *Store) Subscribe(fn func(State)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

// SubscribeLatest returns a channel that always holds the most recent state
// not yet received. Older undelivered states are dropped, so the subscriber
// never blocks a dispatch.
func (s *Store) SubscribeLatest() (<-chan State, func()) {
	ch := make(chan State, 1)
	unsubscribe := s.Subscribe(func(st State) {
		for {
			select {
			case ch <- st:
				return
			default:
			}
			select {
			case <-ch:
			default:
			}
		}
	})
	return ch, unsubscribe
}

func (s *Store) notify(st State) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	fns := make([]func(State), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

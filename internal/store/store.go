package store

import (
	"sync"
)

const defaultSubscriberCapacity = 64

// Logger records container diagnostics. It matches logging.Logger's signature.
type Logger interface {
	Printf(format string, args ...any)
}

// Observer sees every action together with the state it produced. Observers
// run inside the dispatch critical section and must not dispatch.
type Observer[S any] func(action Action, next S)

// Change is delivered to subscribers after each dispatch.
type Change[S any] struct {
	Action Action
	State  S
}

// Option customizes Store construction.
type Option[S any] func(*Store[S])

// WithLogger injects a logger for dropped-change diagnostics.
func WithLogger[S any](logger Logger) Option[S] {
	return func(s *Store[S]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver registers an observer called after every reduction.
func WithObserver[S any](obs Observer[S]) Option[S] {
	return func(s *Store[S]) {
		if obs != nil {
			s.observers = append(s.observers, obs)
		}
	}
}

// WithSubscriberCapacity overrides the buffered channel size per subscriber.
func WithSubscriberCapacity[S any](capacity int) Option[S] {
	return func(s *Store[S]) {
		if capacity > 0 {
			s.channelSize = capacity
		}
	}
}

// Store is the state container. Dispatch is serialised: no two reducer
// invocations ever interleave.
type Store[S any] struct {
	mu          sync.Mutex
	state       S
	reduce      Reducer[S]
	observers   []Observer[S]
	subscribers map[*subscriber[S]]struct{}
	channelSize int
	logger      Logger
}

// New creates a store whose state starts at reduce(nil, Action{}).
func New[S any](reduce Reducer[S], opts ...Option[S]) *Store[S] {
	s := &Store[S]{
		reduce:      reduce,
		subscribers: map[*subscriber[S]]struct{}{},
		channelSize: defaultSubscriberCapacity,
		logger:      nopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.state = reduce(nil, Action{})
	return s
}

// Dispatch applies action to the current state.
func (s *Store[S]) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.reduce(&s.state, action)
	s.state = next
	for _, obs := range s.observers {
		obs(action, next)
	}
	change := Change[S]{Action: action, State: next}
	for sub := range s.subscribers {
		sub.deliver(change)
	}
}

// State returns the current root state.
func (s *Store[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscription is an active change feed.
type Subscription[S any] struct {
	Changes <-chan Change[S]
	cancel  func()
}

// Close terminates the subscription and closes its channel.
func (s Subscription[S]) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Subscribe registers a change feed. When the subscriber falls more than the
// channel capacity behind, the oldest pending change is discarded so the
// newest state is always the last one received.
func (s *Store[S]) Subscribe() Subscription[S] {
	sub := &subscriber[S]{ch: make(chan Change[S], s.channelSize), logger: s.logger}
	s.mu.Lock()
	s.subscribers[sub] = struct{}{}
	s.mu.Unlock()
	var once sync.Once
	return Subscription[S]{
		Changes: sub.ch,
		cancel: func() {
			once.Do(func() {
				s.mu.Lock()
				delete(s.subscribers, sub)
				s.mu.Unlock()
				close(sub.ch)
			})
		},
	}
}

type subscriber[S any] struct {
	ch     chan Change[S]
	logger Logger
}

// deliver runs under the store mutex, so it is the only sender on ch and the
// channel cannot be closed underneath it.
func (sub *subscriber[S]) deliver(change Change[S]) {
	select {
	case sub.ch <- change:
		return
	default:
	}
	select {
	case old := <-sub.ch:
		sub.logger.Printf("store: subscriber full, dropped %s", old.Action.Type)
	default:
	}
	select {
	case sub.ch <- change:
	default:
		sub.logger.Printf("store: subscriber full, dropped %s", change.Action.Type)
	}
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

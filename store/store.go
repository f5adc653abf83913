// Package store implements a unidirectional state container. A Store owns a
// single authoritative state value; callers describe intended changes as
// actions and submit them through Dispatch, a pure Reducer computes the next
// state, and every subscriber is notified with the replacement. Reads happen
// only through GetState snapshots, subscriptions, and Selector projections.
//
// Stores are explicit values passed to their consumers; there is no ambient
// process-wide instance.
//
//	st, err := store.New("counter", counter.Reduce, counter.Initial())
//	unsub := st.Subscribe(func(s counter.State) { fmt.Println(s.Count) })
//	st.Dispatch(ctx, counter.Increment)
//	unsub()
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/statekit/flow/journal"
	"github.com/statekit/flow/observability"
)

// Reducer computes the next state from the current state and an action.
// Reducers must be pure: no side effects, no mutation of the input state,
// and deterministic output. An unrecognized action must yield the input
// state unchanged rather than an error.
type Reducer[S, A any] func(S, A) S

// Unsubscribe removes the subscriber it was returned for. Calling it more
// than once is a no-op.
type Unsubscribe func()

type settings struct {
	observer observability.Observer
	journal  journal.Journal
	now      func() time.Time
}

// Option configures a Store at construction.
type Option func(*settings)

// WithObserver sets the observability observer receiving store events.
// Defaults to NoOpObserver.
func WithObserver(o observability.Observer) Option {
	return func(c *settings) { c.observer = o }
}

// WithJournal wires an append-only journal recording every transition under
// the store's name. Journal failures never fail a dispatch; they surface as
// error-level observer events.
func WithJournal(j journal.Journal) Option {
	return func(c *settings) { c.journal = j }
}

// WithClock overrides the store's time source for tests.
func WithClock(now func() time.Time) Option {
	return func(c *settings) { c.now = now }
}

type subscriber[S any] struct {
	id string
	fn func(S)
}

// Store holds the current state and mediates all reads and writes for one
// feature. Dispatches are serialized by an internal mutex so that hosts
// calling Dispatch from multiple goroutines still observe a single linear
// history of states, with one notification per transition.
type Store[S, A any] struct {
	name     string
	reducer  Reducer[S, A]
	observer observability.Observer
	journal  journal.Journal
	now      func() time.Time

	// dispatchMu serializes the reduce, swap, journal, notify sequence.
	dispatchMu sync.Mutex

	// stateMu guards state and subscribers for snapshot reads.
	stateMu     sync.RWMutex
	state       S
	subscribers []subscriber[S]
}

// New creates a Store with an explicit initial state. The name identifies
// the store in observer events and as its journal stream.
func New[S, A any](name string, reducer Reducer[S, A], initial S, opts ...Option) (*Store[S, A], error) {
	if name == "" {
		return nil, ErrNoName
	}
	if reducer == nil {
		return nil, ErrNilReducer
	}

	cfg := settings{
		observer: observability.NoOpObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.observer == nil {
		cfg.observer = observability.NoOpObserver{}
	}

	return &Store[S, A]{
		name:     name,
		reducer:  reducer,
		observer: cfg.observer,
		journal:  cfg.journal,
		now:      cfg.now,
		state:    initial,
	}, nil
}

// Name returns the store's feature name.
func (s *Store[S, A]) Name() string {
	return s.name
}

// GetState returns the current state snapshot without blocking on dispatches
// in other goroutines.
func (s *Store[S, A]) GetState() S {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// Dispatch submits an action. It synchronously invokes the reducer with the
// current state, replaces the held state with the result, journals the
// transition when a journal is wired, and notifies every current subscriber
// with the new state. Unrecognized actions fall through the reducer's
// identity case and still produce a notification.
func (s *Store[S, A]) Dispatch(ctx context.Context, action A) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.stateMu.Lock()
	next := s.reducer(s.state, action)
	s.state = next
	listeners := make([]subscriber[S], len(s.subscribers))
	copy(listeners, s.subscribers)
	s.stateMu.Unlock()

	s.observer.OnEvent(ctx, observability.Event{
		Type:      EventDispatch,
		Level:     observability.LevelVerbose,
		Timestamp: s.now(),
		Source:    "store.Dispatch",
		Data: map[string]any{
			"store":       s.name,
			"action":      fmt.Sprint(action),
			"subscribers": len(listeners),
		},
	})

	s.append(ctx, action, next)

	for _, sub := range listeners {
		sub.fn(next)
	}
}

// Subscribe registers fn and immediately invokes it with the current state
// (replay-latest), then once per subsequent transition. The returned
// Unsubscribe permanently removes the subscriber and is safe to call more
// than once. Subscribing or unsubscribing from within a notification is
// allowed; a dispatch already delivering may still reach a subscriber
// removed mid-flight.
func (s *Store[S, A]) Subscribe(fn func(S)) Unsubscribe {
	id := uuid.Must(uuid.NewV7()).String()

	s.stateMu.Lock()
	s.subscribers = append(s.subscribers, subscriber[S]{id: id, fn: fn})
	current := s.state
	count := len(s.subscribers)
	s.stateMu.Unlock()

	s.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventSubscribe,
		Level:     observability.LevelVerbose,
		Timestamp: s.now(),
		Source:    "store.Subscribe",
		Data: map[string]any{
			"store":       s.name,
			"subscriber":  id,
			"subscribers": count,
		},
	})

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Store[S, A]) unsubscribe(id string) {
	s.stateMu.Lock()
	for i, sub := range s.subscribers {
		if sub.id == id {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			break
		}
	}
	count := len(s.subscribers)
	s.stateMu.Unlock()

	s.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventUnsubscribe,
		Level:     observability.LevelVerbose,
		Timestamp: s.now(),
		Source:    "store.Unsubscribe",
		Data: map[string]any{
			"store":       s.name,
			"subscriber":  id,
			"subscribers": count,
		},
	})
}

// append journals one transition. Failures are absorbed: dispatch has no
// effect beyond state replacement and notification, so journal errors only
// surface through the observer.
func (s *Store[S, A]) append(ctx context.Context, action A, state S) {
	if s.journal == nil {
		return
	}

	actionJSON, err := json.Marshal(action)
	if err != nil {
		s.journalError(ctx, fmt.Errorf("marshal action: %w", err))
		return
	}
	stateJSON, err := json.Marshal(state)
	if err != nil {
		s.journalError(ctx, fmt.Errorf("marshal state: %w", err))
		return
	}

	_, err = s.journal.Append(ctx, journal.Record{
		Stream: s.name,
		Action: actionJSON,
		State:  stateJSON,
	})
	if err != nil {
		s.journalError(ctx, err)
	}
}

func (s *Store[S, A]) journalError(ctx context.Context, err error) {
	s.observer.OnEvent(ctx, observability.Event{
		Type:      EventJournalError,
		Level:     observability.LevelError,
		Timestamp: s.now(),
		Source:    "store.Dispatch",
		Data: map[string]any{
			"store": s.name,
			"error": err.Error(),
		},
	})
}

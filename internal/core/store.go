package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/comalice/layoutfocus/internal/primitives"
)

// DispatchFunc hands an action to the next stage of the pipeline.
type DispatchFunc func(action primitives.Action) error

// API is the view of the store handed to middleware.
type API interface {
	State() *State
	Dispatch(action primitives.Action) error
}

// Middleware wraps the dispatch pipeline. It is invoked once, when the store is
// built, and returns a wrapper around the next stage.
type Middleware func(api API) func(next DispatchFunc) DispatchFunc

// Transition describes one change of the layout focus slice.
type Transition struct {
	ID        string                `json:"id" yaml:"id"`
	Action    primitives.Action     `json:"action" yaml:"action"`
	From      primitives.FocusState `json:"from" yaml:"from"`
	To        primitives.FocusState `json:"to" yaml:"to"`
	Timestamp time.Time             `json:"timestamp" yaml:"timestamp"`
}

func (t Transition) String() string {
	return fmt.Sprintf("%s: %s -> %s", t.Action, t.From.Current, t.To.Current)
}

// Publisher receives every transition after the state was replaced.
type Publisher interface {
	Publish(ctx context.Context, t Transition) error
	Close() error
}

// Listener is notified synchronously after each state change.
type Listener func(t Transition)

// ErrDispatchDuringSetup is returned when middleware dispatches while the
// pipeline is still being built.
var ErrDispatchDuringSetup = errors.New("dispatch while constructing middleware")

// Option applies configuration to Store via functional options pattern.
type Option func(*Store)

type subscription struct {
	id uint64
	fn Listener
}

// Store is the canonical focus store.
//
// Dispatch is not safe for concurrent use: the store has a single writer. Feed
// actions produced on other goroutines through Run.
type Store struct {
	state      *State
	dispatch   DispatchFunc
	middleware []Middleware
	publishers []Publisher
	listeners  []subscription
	nextID     uint64
	logger     *slog.Logger
	now        func() time.Time
}

// NewStore creates a store with the initial tree and builds the middleware
// pipeline. Middleware runs in the order given, outermost first.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state:  NewState(),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	api := storeAPI{s}
	dispatch := DispatchFunc(s.reduce)
	for i := len(s.middleware) - 1; i >= 0; i-- {
		dispatch = s.middleware[i](api)(dispatch)
	}
	s.dispatch = dispatch
	return s
}

// State returns the current tree. The returned value must not be mutated.
func (s *Store) State() *State {
	return s.state
}

// Dispatch sends action through the middleware pipeline and the reducer.
func (s *Store) Dispatch(action primitives.Action) error {
	if s.dispatch == nil {
		return ErrDispatchDuringSetup
	}
	return s.dispatch(action)
}

// Subscribe registers l. Listeners run in registration order. The returned
// function removes the listener and is safe to call more than once.
func (s *Store) Subscribe(l Listener) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: l})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Close closes every configured publisher.
func (s *Store) Close() error {
	var errs []error
	for _, p := range s.publishers {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// reduce is the innermost stage of the pipeline.
func (s *Store) reduce(action primitives.Action) error {
	prev := s.state
	next := Reduce(prev, action)
	if next == prev {
		return nil
	}
	s.state = next

	t := Transition{
		ID:        uuid.NewString(),
		Action:    action,
		From:      *layoutFocus(prev),
		To:        *layoutFocus(next),
		Timestamp: s.now(),
	}
	s.logger.Debug("layout focus changed",
		slog.String("action", string(action.Type)),
		slog.String("from", t.From.Current.String()),
		slog.String("to", t.To.Current.String()),
		slog.String("next", t.To.Next.String()))

	for _, sub := range append([]subscription(nil), s.listeners...) {
		sub.fn(t)
	}
	for _, p := range s.publishers {
		if err := p.Publish(context.Background(), t); err != nil {
			s.logger.Warn("publish transition failed", slog.String("transition", t.ID), slog.Any("err", err))
		}
	}
	return nil
}

type storeAPI struct {
	s *Store
}

func (a storeAPI) State() *State {
	return a.s.State()
}

func (a storeAPI) Dispatch(action primitives.Action) error {
	return a.s.Dispatch(action)
}

// Options for configuring Store instances.
package core

import (
	"log/slog"
	"time"
)

// WithMiddleware appends middleware to the dispatch pipeline.
func WithMiddleware(mw ...Middleware) Option {
	return func(s *Store) {
		s.middleware = append(s.middleware, mw...)
	}
}

// WithPublisher adds a Publisher notified after every transition.
func WithPublisher(p Publisher) Option {
	return func(s *Store) {
		s.publishers = append(s.publishers, p)
	}
}

// WithLogger configures the Store with a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithInitialState seeds the store. A nil state keeps the default tree.
func WithInitialState(state *State) Option {
	return func(s *Store) {
		if state != nil {
			s.state = state
		}
	}
}

// WithClock overrides the transition timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

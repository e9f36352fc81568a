package core

import (
	"context"
	"errors"
	"log/slog"

	"github.com/comalice/layoutfocus/internal/primitives"
)

// ActionSource feeds actions into Run.
type ActionSource interface {
	Actions() <-chan primitives.Action
}

// ErrSourceFull is returned by ChannelSource.Send when the buffer is full.
var ErrSourceFull = errors.New("action source full (backpressure)")

// ChannelSource is an ActionSource backed by a Go channel. It lets any
// goroutine request focus changes while a single goroutine owns the store.
type ChannelSource struct {
	ch chan primitives.Action
}

// NewChannelSource creates a ChannelSource with the given buffer size.
func NewChannelSource(size int) *ChannelSource {
	return &ChannelSource{ch: make(chan primitives.Action, size)}
}

// Actions returns the receive-only channel for actions.
func (c *ChannelSource) Actions() <-chan primitives.Action {
	return c.ch
}

// Send enqueues action without blocking.
func (c *ChannelSource) Send(action primitives.Action) error {
	select {
	case c.ch <- action:
		return nil
	default:
		return ErrSourceFull
	}
}

// Close closes the channel; Run returns once the buffer is drained.
func (c *ChannelSource) Close() {
	close(c.ch)
}

// Run dispatches actions from src on the calling goroutine until ctx is done
// or src is closed. Dispatch errors are logged and do not stop the loop.
func (s *Store) Run(ctx context.Context, src ActionSource) error {
	actions := src.Actions()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case action, ok := <-actions:
			if !ok {
				return nil
			}
			if err := s.Dispatch(action); err != nil {
				s.logger.Warn("dispatch from source failed",
					slog.String("action", action.String()),
					slog.Any("err", err))
			}
		}
	}
}

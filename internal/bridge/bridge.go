// Package bridge keeps the legacy focus store and the canonical store in step
// while both are in use.
//
// Actions dispatched to the canonical store are replayed on the legacy store
// before they reach the reducer, and legacy changes made by call sites that
// bypass the canonical store are dispatched back as SET actions.
package bridge

import (
	"log/slog"
	"sync"

	"github.com/comalice/layoutfocus/internal/core"
	"github.com/comalice/layoutfocus/internal/legacy"
	"github.com/comalice/layoutfocus/internal/primitives"
)

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger configures the bridge with a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.logger = l
		}
	}
}

// Bridge connects one legacy store to the canonical store it is installed on.
type Bridge struct {
	legacy *legacy.FocusStore
	logger *slog.Logger

	mu     sync.Mutex
	detach func()
}

// New creates a bridge for l.
func New(l *legacy.FocusStore, opts ...Option) *Bridge {
	b := &Bridge{legacy: l, logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Legacy returns the bridged legacy store.
func (b *Bridge) Legacy() *legacy.FocusStore {
	return b.legacy
}

// Middleware installs the bridge on a store. Building it again for another
// store moves the legacy listener there; only one is ever attached.
func (b *Bridge) Middleware(api core.API) func(next core.DispatchFunc) core.DispatchFunc {
	b.mu.Lock()
	if b.detach != nil {
		b.detach()
	}
	b.detach = b.legacy.Subscribe(func() { b.syncFromLegacy(api) })
	b.mu.Unlock()

	return func(next core.DispatchFunc) core.DispatchFunc {
		return func(action primitives.Action) error {
			if err := b.mirror(action); err != nil {
				return err
			}
			return next(action)
		}
	}
}

// Detach removes the legacy listener. It is safe to call more than once.
func (b *Bridge) Detach() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.detach != nil {
		b.detach()
		b.detach = nil
	}
}

func (b *Bridge) mirror(action primitives.Action) error {
	switch action.Type {
	case primitives.LayoutFocusSet:
		return b.legacy.Set(action.Area)
	case primitives.LayoutNextFocusSet:
		return b.legacy.SetNext(action.Area)
	case primitives.LayoutNextFocusActivate:
		b.legacy.Next()
	}
	return nil
}

func (b *Bridge) syncFromLegacy(api core.API) {
	current := b.legacy.Current()
	if current == core.CurrentLayoutFocus(api.State()) {
		return
	}
	if err := api.Dispatch(primitives.SetLayoutFocus(current)); err != nil {
		b.logger.Warn("sync legacy layout focus",
			slog.String("area", string(current)),
			slog.Any("err", err))
	}
}

// NewStore builds a canonical store with a new bridge to l as its outermost
// middleware. opts may add further middleware, which runs inside the bridge.
func NewStore(l *legacy.FocusStore, opts ...core.Option) (*core.Store, *Bridge) {
	b := New(l)
	opts = append([]core.Option{core.WithMiddleware(b.Middleware)}, opts...)
	return core.NewStore(opts...), b
}

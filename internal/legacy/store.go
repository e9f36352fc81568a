// Package legacy provides the mutable layout focus store used by call sites
// that have not moved to the canonical store yet.
//
// The store keeps the current, previous and queued focus areas and notifies
// listeners synchronously whenever the current area changes. Listeners run on
// the goroutine that caused the change, in registration order, after the
// store's lock is released, so they may read the store freely.
package legacy

import (
	"log/slog"
	"sync"

	"github.com/comalice/layoutfocus/internal/primitives"
)

// ChangeEvent is the only event name the store emits.
const ChangeEvent = "change"

// Listener is called after the current area changed.
type Listener func()

// ListenerID identifies a listener registered with On.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn Listener
}

// Option configures a FocusStore.
type Option func(*FocusStore)

// WithMode selects strict (development) or lenient (production) validation.
func WithMode(m primitives.Mode) Option {
	return func(s *FocusStore) {
		s.mode = m
	}
}

// WithLogger configures the store with a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *FocusStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// FocusStore stores the current and previous layout focus for centralized
// access from anywhere in the app.
type FocusStore struct {
	mu        sync.RWMutex
	current   primitives.Area
	previous  primitives.Area
	next      primitives.Area
	listeners []listener
	lastID    ListenerID

	mode   primitives.Mode
	logger *slog.Logger
}

// New creates an empty store.
func New(opts ...Option) *FocusStore {
	s := &FocusStore{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	defaultOnce  sync.Once
	defaultStore *FocusStore
)

// Default returns the process-wide store shared by legacy call sites.
func Default() *FocusStore {
	defaultOnce.Do(func() {
		defaultStore = New()
	})
	return defaultStore
}

// Mode reports the validation mode.
func (s *FocusStore) Mode() primitives.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode switches the validation mode, typically once at startup.
func (s *FocusStore) SetMode(m primitives.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

// IsValid reports whether area is a known focus area. In development mode an
// unknown area also yields an *primitives.InvalidAreaError.
func (s *FocusStore) IsValid(area primitives.Area) (bool, error) {
	ok, err := s.Mode().Check(area)
	if !ok && err == nil {
		s.logger.Warn("ignoring invalid layout focus area", slog.String("area", string(area)))
	}
	return ok, err
}

// Current returns the current area, or content when focus was never set.
func (s *FocusStore) Current() primitives.Area {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Or(primitives.DefaultArea)
}

// Previous returns the previous area, None before the second transition.
func (s *FocusStore) Previous() primitives.Area {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.previous
}

// Pending returns the queued area, None when nothing is queued.
func (s *FocusStore) Pending() primitives.Area {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.next
}

// Snapshot returns the raw triple without defaulting.
func (s *FocusStore) Snapshot() primitives.FocusState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return primitives.FocusState{Current: s.current, Previous: s.previous, Next: s.next}
}

// Set moves focus to area and notifies listeners. Invalid areas and the
// current area are ignored; only the former can produce an error.
func (s *FocusStore) Set(area primitives.Area) error {
	ok, err := s.IsValid(area)
	if !ok {
		return err
	}

	s.mu.Lock()
	if area == s.current {
		s.mu.Unlock()
		return nil
	}
	s.previous = s.current
	s.current = area
	s.mu.Unlock()

	s.emit()
	return nil
}

// SetNext queues area for the next call to Next. It never notifies.
func (s *FocusStore) SetNext(area primitives.Area) error {
	ok, err := s.IsValid(area)
	if !ok {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = area
	return nil
}

// Next resolves the queued area. With nothing queued focus returns to content,
// but only once focus has moved before, so first load is left alone.
func (s *FocusStore) Next() {
	s.mu.Lock()
	area := s.next
	if area.IsNone() && !s.previous.IsNone() {
		area = primitives.DefaultArea
	}
	if area.IsNone() {
		s.mu.Unlock()
		return
	}
	s.next = primitives.None
	s.mu.Unlock()

	// area came from a validated slot or the default, so Set cannot fail.
	_ = s.Set(area)
}

// Subscribe registers l for change notifications and returns a function that
// removes it.
func (s *FocusStore) Subscribe(l Listener) (cancel func()) {
	id := s.On(ChangeEvent, l)
	return func() { s.Off(ChangeEvent, id) }
}

// On registers l for event. Only ChangeEvent is emitted; other names register
// nothing and return 0.
func (s *FocusStore) On(event string, l Listener) ListenerID {
	if event != ChangeEvent || l == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	s.listeners = append(s.listeners, listener{id: s.lastID, fn: l})
	return s.lastID
}

// Off removes the listener registered under id and reports whether it existed.
func (s *FocusStore) Off(event string, id ListenerID) bool {
	if event != ChangeEvent {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of registered listeners.
func (s *FocusStore) ListenerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

func (s *FocusStore) emit() {
	s.mu.RLock()
	snapshot := make([]listener, len(s.listeners))
	copy(snapshot, s.listeners)
	s.mu.RUnlock()

	for _, l := range snapshot {
		l.fn()
	}
}

// Package extensibility holds pluggable action sources for core.Store.Run.
package extensibility

import (
	"sync"
	"time"

	"github.com/comalice/layoutfocus/internal/primitives"
)

// NextFunc yields the next action to emit, or false when there are no more.
type NextFunc func() (primitives.Action, bool)

// Sequence yields actions in order, once each.
func Sequence(actions ...primitives.Action) NextFunc {
	i := 0
	return func() (primitives.Action, bool) {
		if i >= len(actions) {
			return primitives.Action{}, false
		}
		a := actions[i]
		i++
		return a, true
	}
}

// Loop yields actions in order, starting over after the last one. An empty
// list yields nothing.
func Loop(actions ...primitives.Action) NextFunc {
	i := 0
	return func() (primitives.Action, bool) {
		if len(actions) == 0 {
			return primitives.Action{}, false
		}
		a := actions[i%len(actions)]
		i++
		return a, true
	}
}

// TickerSource emits one action per tick using time.Ticker.
// The channel is closed when next runs dry or Stop is called.
type TickerSource struct {
	ch       chan primitives.Action
	next     NextFunc
	ticker   *time.Ticker
	stop     chan struct{}
	stopOnce sync.Once
}

// NewTickerSource creates a TickerSource that emits an action every d.
func NewTickerSource(d time.Duration, next NextFunc) *TickerSource {
	t := &TickerSource{
		ch:     make(chan primitives.Action, 10),
		next:   next,
		ticker: time.NewTicker(d),
		stop:   make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *TickerSource) run() {
	defer close(t.ch)
	defer t.ticker.Stop()
	for {
		select {
		case <-t.ticker.C:
			action, ok := t.next()
			if !ok {
				return
			}
			select {
			case t.ch <- action:
			default:
				// drop if full
			}
		case <-t.stop:
			return
		}
	}
}

// Actions returns the action channel.
func (t *TickerSource) Actions() <-chan primitives.Action {
	return t.ch
}

// Stop stops the ticker and closes the channel. It is safe to call more than
// once.
func (t *TickerSource) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
}

// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"math/rand/v2"

	"github.com/comalice/layoutfocus/internal/bridge"
	"github.com/comalice/layoutfocus/internal/core"
	"github.com/comalice/layoutfocus/internal/legacy"
	"github.com/comalice/layoutfocus/internal/primitives"
)

// GenActions returns n pseudo-random focus actions. The same seed always
// yields the same sequence. Roughly one in ten names an unknown area.
func GenActions(n int, seed uint64) []primitives.Action {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	areas := append(primitives.Areas(), "header")
	out := make([]primitives.Action, n)
	for i := range out {
		var area primitives.Area
		if r.IntN(10) == 0 {
			area = areas[len(areas)-1]
		} else {
			area = areas[r.IntN(len(areas)-1)]
		}
		switch r.IntN(3) {
		case 0:
			out[i] = primitives.SetLayoutFocus(area)
		case 1:
			out[i] = primitives.SetNextLayoutFocus(area)
		default:
			out[i] = primitives.ActivateNextLayoutFocus()
		}
	}
	return out
}

// CycleActions returns SET actions that visit every area in turn, so each one
// changes state.
func CycleActions(n int) []primitives.Action {
	areas := primitives.Areas()
	out := make([]primitives.Action, n)
	for i := range out {
		out[i] = primitives.SetLayoutFocus(areas[i%len(areas)])
	}
	return out
}

// NewBridged builds a production-mode legacy store and a canonical store
// bridged to it.
func NewBridged(opts ...core.Option) (*core.Store, *legacy.FocusStore, *bridge.Bridge) {
	l := legacy.New(legacy.WithMode(primitives.ModeProduction))
	store, b := bridge.NewStore(l, opts...)
	return store, l, b
}

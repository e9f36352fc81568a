// Package benchmarks provides performance benchmarks for focus transitions.
package benchmarks

import (
	"testing"

	"github.com/comalice/layoutfocus/internal/core"
	"github.com/comalice/layoutfocus/internal/legacy"
	"github.com/comalice/layoutfocus/internal/primitives"
)

func BenchmarkReduceLayoutFocus(b *testing.B) {
	actions := GenActions(1024, 1)
	state := &primitives.FocusState{}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		state = core.ReduceLayoutFocus(state, actions[i%len(actions)])
	}
}

func BenchmarkReduceNoOp(b *testing.B) {
	state := &primitives.FocusState{Current: primitives.Content}
	action := primitives.SetLayoutFocus(primitives.Content)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if core.ReduceLayoutFocus(state, action) != state {
			b.Fatal("no-op allocated a new state")
		}
	}
}

func BenchmarkStoreDispatch(b *testing.B) {
	store := core.NewStore()
	actions := CycleActions(len(primitives.Areas()))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := store.Dispatch(actions[i%len(actions)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBridgedDispatch(b *testing.B) {
	store, _, br := NewBridged()
	defer br.Detach()
	actions := CycleActions(len(primitives.Areas()))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := store.Dispatch(actions[i%len(actions)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBridgedLegacySet(b *testing.B) {
	_, l, br := NewBridged()
	defer br.Detach()
	areas := primitives.Areas()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := l.Set(areas[i%len(areas)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLegacySet(b *testing.B) {
	l := legacy.New()
	l.Subscribe(func() {})
	areas := primitives.Areas()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := l.Set(areas[i%len(areas)]); err != nil {
			b.Fatal(err)
		}
	}
}

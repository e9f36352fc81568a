package core

import "github.com/comalice/layoutfocus/internal/primitives"

// ReduceLayoutFocus applies action to state and returns the resulting state.
// A nil state is treated as the initial state. No-op actions return state
// itself, never an equal copy.
func ReduceLayoutFocus(state *primitives.FocusState, action primitives.Action) *primitives.FocusState {
	if state == nil {
		state = &primitives.FocusState{}
	}

	switch action.Type {
	case primitives.LayoutFocusSet:
		if action.Area == state.Current || !action.Area.Known() {
			return state
		}
		return &primitives.FocusState{
			Current:  action.Area,
			Previous: state.Current,
			Next:     state.Next,
		}

	case primitives.LayoutNextFocusSet:
		if action.Area == state.Next || !action.Area.Known() {
			return state
		}
		next := *state
		next.Next = action.Area
		return &next

	case primitives.LayoutNextFocusActivate:
		// Nothing queued and focus never moved: there is nothing to fall back
		// from, so leave the initial focus alone.
		if state.Next.IsNone() && state.Previous.IsNone() {
			return state
		}
		target := state.Next.Or(primitives.DefaultArea)
		if target == state.Current {
			// The legacy store clears its queue and then no-ops the set; keep
			// Previous intact the same way.
			if state.Next.IsNone() {
				return state
			}
			return &primitives.FocusState{Current: state.Current, Previous: state.Previous}
		}
		return &primitives.FocusState{Current: target, Previous: state.Current}
	}

	return state
}

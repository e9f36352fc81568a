package core

import "github.com/comalice/layoutfocus/internal/primitives"

func layoutFocus(state *State) *primitives.FocusState {
	if state == nil || state.UI == nil || state.UI.LayoutFocus == nil {
		return &primitives.FocusState{}
	}
	return state.UI.LayoutFocus
}

// CurrentLayoutFocus returns the current layout focus area. Unlike the legacy
// getter it does not default: None means focus was never set.
func CurrentLayoutFocus(state *State) primitives.Area {
	return layoutFocus(state).Current
}

// PreviousLayoutFocus returns the previous layout focus area.
func PreviousLayoutFocus(state *State) primitives.Area {
	return layoutFocus(state).Previous
}

// NextLayoutFocus returns the queued layout focus area.
func NextLayoutFocus(state *State) primitives.Area {
	return layoutFocus(state).Next
}

// LayoutFocus returns a copy of the whole layout focus slice.
func LayoutFocus(state *State) primitives.FocusState {
	return *layoutFocus(state)
}

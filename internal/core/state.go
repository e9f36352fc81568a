package core

import "github.com/comalice/layoutfocus/internal/primitives"

// State is the root of the canonical state tree.
type State struct {
	UI *UIState `json:"ui" yaml:"ui"`
}

// UIState groups UI-only slices of the tree.
type UIState struct {
	LayoutFocus *primitives.FocusState `json:"layoutFocus" yaml:"layoutFocus"`
}

// NewState returns a fully populated initial tree.
func NewState() *State {
	return &State{UI: &UIState{LayoutFocus: &primitives.FocusState{}}}
}

// Reduce is the root reducer. It rebuilds only the branches whose children
// changed and returns state itself when nothing did.
func Reduce(state *State, action primitives.Action) *State {
	if state == nil {
		state = NewState()
	}
	ui := reduceUI(state.UI, action)
	if ui == state.UI {
		return state
	}
	return &State{UI: ui}
}

func reduceUI(ui *UIState, action primitives.Action) *UIState {
	if ui == nil {
		ui = &UIState{LayoutFocus: &primitives.FocusState{}}
	}
	focus := ReduceLayoutFocus(ui.LayoutFocus, action)
	if focus == ui.LayoutFocus {
		return ui
	}
	return &UIState{LayoutFocus: focus}
}

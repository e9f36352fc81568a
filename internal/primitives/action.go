// Action provides the immutable dispatch primitive for focus transitions.
//
// Actions are value types. Once created, an Action should not be mutated; use
// the constructors below rather than struct literals so the Type/Area pairing
// stays consistent.
package primitives

// ActionType identifies a dispatched focus action.
type ActionType string

const (
	LayoutFocusSet          ActionType = "LAYOUT_FOCUS_SET"
	LayoutNextFocusSet      ActionType = "LAYOUT_NEXT_FOCUS_SET"
	LayoutNextFocusActivate ActionType = "LAYOUT_NEXT_FOCUS_ACTIVATE"
)

// Action is a dispatched transition request. Area is ignored for
// LayoutNextFocusActivate.
type Action struct {
	Type ActionType `json:"type" yaml:"type"`
	Area Area       `json:"area,omitempty" yaml:"area,omitempty"`
}

// SetLayoutFocus requests a direct focus change.
func SetLayoutFocus(a Area) Action {
	return Action{Type: LayoutFocusSet, Area: a}
}

// SetNextLayoutFocus queues a focus change for the next activation.
func SetNextLayoutFocus(a Area) Action {
	return Action{Type: LayoutNextFocusSet, Area: a}
}

// ActivateNextLayoutFocus resolves the queued focus change.
func ActivateNextLayoutFocus() Action {
	return Action{Type: LayoutNextFocusActivate}
}

func (a Action) String() string {
	if a.Type == LayoutNextFocusActivate {
		return string(a.Type)
	}
	return string(a.Type) + "(" + a.Area.String() + ")"
}

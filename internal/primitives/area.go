package primitives

// Area names a structural region of the UI that can hold focus.
type Area string

const (
	// None is the unset area. It never validates.
	None    Area = ""
	Content Area = "content"
	Sidebar Area = "sidebar"
	Sites   Area = "sites"
	Preview Area = "preview"
)

// DefaultArea is what the legacy getter reports before focus was ever set, and
// what ACTIVATE falls back to when nothing is queued.
const DefaultArea = Content

var areas = [...]Area{Content, Sidebar, Sites, Preview}

// Areas returns the valid focus areas in display order.
func Areas() []Area {
	out := make([]Area, len(areas))
	copy(out, areas[:])
	return out
}

// Known reports whether a is one of the valid focus areas.
func (a Area) Known() bool {
	for _, v := range areas {
		if v == a {
			return true
		}
	}
	return false
}

// IsNone reports whether a is the unset area.
func (a Area) IsNone() bool {
	return a == None
}

// Or returns a, or fallback when a is unset.
func (a Area) Or(fallback Area) Area {
	if a == None {
		return fallback
	}
	return a
}

func (a Area) String() string {
	if a == None {
		return "<none>"
	}
	return string(a)
}

// FocusState is the focus triple. A nil *FocusState reads as the initial
// state, with every slot unset.
type FocusState struct {
	Current  Area `json:"current" yaml:"current"`
	Previous Area `json:"previous" yaml:"previous"`
	Next     Area `json:"next" yaml:"next"`
}

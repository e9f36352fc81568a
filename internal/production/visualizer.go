package production

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/comalice/layoutfocus/internal/core"
	"github.com/comalice/layoutfocus/internal/primitives"
)

// Visualizer renders the focus machine for inspection.
type Visualizer struct{}

// ExportDOT generates Graphviz DOT source for the four focus areas. The
// current area is filled, the previous one grey and the queued one dashed.
// Edges leave the current area: one per possible SET and, when activation
// would move focus, one for ACTIVATE.
func (v *Visualizer) ExportDOT(state primitives.FocusState) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph LayoutFocus {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	if state.Current.IsNone() {
		buf.WriteString("  \"start\" [shape=point];\n")
	}
	for _, area := range primitives.Areas() {
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", area, area, nodeStyle(area, state))
	}

	from := string(state.Current)
	if state.Current.IsNone() {
		from = "start"
	}
	for _, area := range primitives.Areas() {
		if area == state.Current {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", from, area, "SET")
	}

	if target, ok := activationTarget(state); ok {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q style=bold color=blue];\n", from, target, "ACTIVATE")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the state tree to JSON.
func (v *Visualizer) ExportJSON(state *core.State) ([]byte, error) {
	return json.MarshalIndent(state, "", "  ")
}

func nodeStyle(area primitives.Area, state primitives.FocusState) string {
	switch {
	case area == state.Current && area == state.Next:
		return ` style="rounded,filled,dashed" fillcolor=lightgreen`
	case area == state.Current:
		return ` style="rounded,filled" fillcolor=lightgreen`
	case area == state.Next:
		return ` style="rounded,dashed"`
	case area == state.Previous:
		return ` style="rounded,filled" fillcolor=lightgrey`
	}
	return ""
}

// activationTarget reports where ACTIVATE would move focus, if anywhere.
func activationTarget(state primitives.FocusState) (primitives.Area, bool) {
	next := core.ReduceLayoutFocus(&state, primitives.ActivateNextLayoutFocus())
	if next.Current == state.Current {
		return primitives.None, false
	}
	return next.Current, true
}

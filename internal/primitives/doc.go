// Package primitives provides the foundational value types for layout focus
// coordination: focus areas, the focus state triple, dispatched actions and the
// validation mode.
//
// Core invariants:
// - The set of valid areas is closed (content, sidebar, sites, preview)
// - FocusState values are never mutated once published by a reducer
// - Actions are immutable values
//
// Nothing in this package logs or performs IO.
package primitives

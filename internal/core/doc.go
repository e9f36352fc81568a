// Package core provides the canonical, reducer-driven focus store.
//
// This includes the pure reducer, the root state tree, selectors, the dispatch
// pipeline with middleware, transition publication and the action run loop.
//
// Reducers never mutate their input. When an action changes nothing the reducer
// returns the exact pointer it was given, at every level of the tree, so
// consumers may skip work with a pointer comparison.
package core

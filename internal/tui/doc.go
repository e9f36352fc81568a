// Package tui is a terminal playground for the layout focus stores: four panes
// whose borders follow the canonical focus while keys drive both the canonical
// and the legacy store.
package tui

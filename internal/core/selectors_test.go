package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comalice/layoutfocus/internal/primitives"
)

func TestSelectors(t *testing.T) {
	state := &State{UI: &UIState{LayoutFocus: focus(primitives.Sites, primitives.Content, primitives.Preview)}}

	assert.Equal(t, primitives.Sites, CurrentLayoutFocus(state))
	assert.Equal(t, primitives.Content, PreviousLayoutFocus(state))
	assert.Equal(t, primitives.Preview, NextLayoutFocus(state))
}

func TestSelectors_DoNotDefault(t *testing.T) {
	state := NewState()

	assert.Equal(t, primitives.None, CurrentLayoutFocus(state))
	assert.Equal(t, primitives.None, PreviousLayoutFocus(state))
	assert.Equal(t, primitives.None, NextLayoutFocus(state))
}

func TestSelectors_NilSafe(t *testing.T) {
	assert.Equal(t, primitives.None, CurrentLayoutFocus(nil))
	assert.Equal(t, primitives.None, NextLayoutFocus(&State{}))
	assert.Equal(t, primitives.None, PreviousLayoutFocus(&State{UI: &UIState{}}))
}

func TestLayoutFocus(t *testing.T) {
	state := &State{UI: &UIState{LayoutFocus: focus(primitives.Sites, primitives.Content, primitives.Preview)}}

	got := LayoutFocus(state)
	assert.Equal(t, *focus(primitives.Sites, primitives.Content, primitives.Preview), got)
	assert.Equal(t, primitives.FocusState{}, LayoutFocus(nil))
}

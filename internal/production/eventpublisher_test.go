// Tests for ChannelPublisher delivery and Store integration.
package production

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/layoutfocus/internal/core"
	"github.com/comalice/layoutfocus/internal/primitives"
)

func TestChannelPublisher_Delivery(t *testing.T) {
	ch := make(chan core.Transition, 10)
	p := NewChannelPublisher(ch)

	tr := core.Transition{
		ID:     "t-1",
		Action: primitives.SetLayoutFocus(primitives.Sites),
		To:     primitives.FocusState{Current: primitives.Sites},
	}
	require.NoError(t, p.Publish(context.Background(), tr))

	select {
	case got := <-ch:
		assert.Equal(t, tr, got)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("no transition delivered")
	}
}

func TestChannelPublisher_BackpressureDrop(t *testing.T) {
	ch := make(chan core.Transition, 1)
	p := NewChannelPublisher(ch)
	ch <- core.Transition{}

	require.NoError(t, p.Publish(context.Background(), core.Transition{ID: "dropped"}))
	assert.Equal(t, uint64(1), p.Dropped())
}

func TestChannelPublisher_Close(t *testing.T) {
	ch := make(chan core.Transition, 1)
	p := NewChannelPublisher(ch)

	require.NoError(t, p.Close())
	_, open := <-ch
	assert.False(t, open)
}

func TestChannelPublisher_Integration_Store(t *testing.T) {
	ch := make(chan core.Transition, 10)
	store := core.NewStore(core.WithPublisher(NewChannelPublisher(ch)))

	require.NoError(t, store.Dispatch(primitives.SetLayoutFocus(primitives.Sidebar)))
	require.NoError(t, store.Dispatch(primitives.SetLayoutFocus(primitives.Sidebar)))
	require.NoError(t, store.Dispatch(primitives.SetNextLayoutFocus(primitives.Preview)))
	require.NoError(t, store.Close())

	var got []core.Transition
	for tr := range ch {
		got = append(got, tr)
	}
	require.Len(t, got, 2, "no-op dispatches are not published")
	assert.Equal(t, primitives.Sidebar, got[0].To.Current)
	assert.Equal(t, primitives.Preview, got[1].To.Next)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/layoutfocus/internal/primitives"
)

func TestChannelSource_Backpressure(t *testing.T) {
	src := NewChannelSource(1)
	require.NoError(t, src.Send(primitives.SetLayoutFocus(primitives.Sites)))
	assert.ErrorIs(t, src.Send(primitives.SetLayoutFocus(primitives.Preview)), ErrSourceFull)
}

func TestStore_RunDrainsUntilClosed(t *testing.T) {
	s := NewStore()
	src := NewChannelSource(4)
	require.NoError(t, src.Send(primitives.SetLayoutFocus(primitives.Sites)))
	require.NoError(t, src.Send(primitives.SetNextLayoutFocus(primitives.Preview)))
	require.NoError(t, src.Send(primitives.ActivateNextLayoutFocus()))
	src.Close()

	require.NoError(t, s.Run(context.Background(), src))
	assert.Equal(t, primitives.Preview, CurrentLayoutFocus(s.State()))
	assert.Equal(t, primitives.Sites, PreviousLayoutFocus(s.State()))
}

func TestStore_RunStopsOnCancel(t *testing.T) {
	s := NewStore()
	src := NewChannelSource(1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, src) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

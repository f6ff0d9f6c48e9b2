package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := New[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := b.Subscribe(ctx)
	second := b.Subscribe(ctx)
	require.Equal(t, 2, b.Subscribers())

	b.Publish("hello")

	require.Equal(t, "hello", <-first)
	require.Equal(t, "hello", <-second)
}

func TestSubscribeAfterClose(t *testing.T) {
	b := New[int]()
	b.Close()

	ch := b.Subscribe(context.Background())
	_, open := <-ch
	require.False(t, open, "subscription on a closed broker is immediately closed")

	// Publishing after close is a no-op, not a panic.
	b.Publish(1)
	b.Close()
}

func TestCancelRemovesSubscriber(t *testing.T) {
	b := New[int]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	require.Equal(t, 1, b.Subscribers())

	cancel()
	require.Eventually(t, func() bool {
		return b.Subscribers() == 0
	}, time.Second, 5*time.Millisecond)

	_, open := <-ch
	require.False(t, open)
}

func TestPublishDropsWhenFull(t *testing.T) {
	b := NewBuffered[int](1)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := b.Subscribe(ctx)

	// Second publish overflows the buffer and is dropped rather than
	// blocking the publisher.
	b.Publish(1)
	b.Publish(2)

	require.Equal(t, 1, <-ch)
	select {
	case v := <-ch:
		t.Fatalf("expected the overflow value to be dropped, got %d", v)
	default:
	}
}

func TestCloseClosesSubscribers(t *testing.T) {
	b := New[int]()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)
	b.Close()

	_, open := <-ch
	require.False(t, open)
}

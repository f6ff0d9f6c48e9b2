// Package pubsub implements a small generic broker used to fan document
// change events out to collaborators: render pipelines, persistence, undo
// tracking. Publishing never blocks the editing path; a subscriber that
// falls behind drops events rather than stalling a splice.
package pubsub

import (
	"context"
	"sync"
)

const defaultBuffer = 16

// Broker fans values published by one side out to every subscriber.
type Broker[T any] struct {
	mu     sync.RWMutex
	subs   map[chan T]struct{}
	closed bool
	buffer int
}

// New creates a broker with the default subscriber buffer.
func New[T any]() *Broker[T] {
	return NewBuffered[T](defaultBuffer)
}

// NewBuffered creates a broker whose subscriber channels hold up to size
// undelivered values.
func NewBuffered[T any](size int) *Broker[T] {
	return &Broker[T]{subs: make(map[chan T]struct{}), buffer: size}
}

// Subscribe registers a new subscriber. The returned channel is closed and
// the subscription removed when ctx is cancelled or the broker closes.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan T {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan T)
		close(ch)
		return ch
	}

	sub := make(chan T, b.buffer)
	b.subs[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.closed {
			return
		}
		delete(b.subs, sub)
		close(sub)
	}()

	return sub
}

// Publish delivers v to every subscriber without blocking: a full channel
// drops the value.
func (b *Broker[T]) Publish(v T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for sub := range b.subs {
		select {
		case sub <- v:
		default:
		}
	}
}

// Close shuts the broker down and closes all subscriber channels.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		close(sub)
	}
	b.subs = nil
}

// Subscribers returns the number of active subscribers.
func (b *Broker[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

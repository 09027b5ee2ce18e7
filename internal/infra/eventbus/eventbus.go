// Package eventbus is an in-memory publish/subscribe bus. The tool layer
// publishes one event per invocation and the server consumes them for
// logging; events are fire-and-forget and never persisted.
//
// Design:
//   - Buffered Go channel per topic (buffer=100).
//   - Publish is non-blocking: the event is dropped if a subscriber's
//     buffer is full.
//   - Subscribe returns a read-only channel; the caller owns the
//     consumption loop.
package eventbus

import "sync"

// Event is a single published message.
type Event struct {
	Topic   string
	Payload any
}

// EventBus is the interface for publishing and subscribing to topics.
type EventBus interface {
	Publish(topic string, payload any)
	Subscribe(topic string) <-chan Event
}

const bufferSize = 100

// Bus is the in-memory implementation of EventBus.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan Event
}

// New returns a new in-memory Bus.
func New() *Bus {
	return &Bus{subscribers: make(map[string][]chan Event)}
}

// Subscribe registers a new subscriber for topic and returns a read-only
// channel. The caller must consume it to keep receiving future events.
func (b *Bus) Subscribe(topic string) <-chan Event {
	ch := make(chan Event, bufferSize)
	b.mu.Lock()
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	b.mu.Unlock()
	return ch
}

// Publish sends an Event to every subscriber of topic without blocking;
// subscribers with a full buffer miss the event.
func (b *Bus) Publish(topic string, payload any) {
	evt := Event{Topic: topic, Payload: payload}
	b.mu.RLock()
	subs := b.subscribers[topic]
	b.mu.RUnlock()
	for _, ch := range subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

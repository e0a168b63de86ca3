package ecs

import "github.com/jakecoffman/cp"

// EventKind identifies gameplay events consumed by the audio system.
type EventKind string

const (
	EventHit       EventKind = "hit"
	EventDestroyed EventKind = "destroyed"
	EventPickup    EventKind = "pickup"
	EventDrop      EventKind = "drop"
)

// EventKinds lists every event kind.
var EventKinds = []EventKind{EventHit, EventDestroyed, EventPickup, EventDrop}

// Event is emitted by systems during a tick.
type Event struct {
	Kind   EventKind
	Entity Entity
	Pos    cp.Vector
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

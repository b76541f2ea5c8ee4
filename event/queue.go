package event

import (
	"github.com/lixenwraith/borof-pani/parameter"
)

// EventQueue is a fixed ring buffer of game events
// Single-owner: the simulation pushes, the loop drains, both on one goroutine
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest when full
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&parameter.EventBufferMask])
	}
	eq.head = eq.tail
	return result
}

// Drain forwards all pending events to the sinks in FIFO order
func (eq *EventQueue) Drain(sinks ...Sink) int {
	events := eq.Consume()
	for _, ev := range events {
		for _, s := range sinks {
			if s != nil {
				s.Emit(ev)
			}
		}
	}
	return len(events)
}

package event

import (
	"testing"

	"github.com/lixenwraith/borof-pani/parameter"
)

// TestQueueFIFO verifies events come out in push order and the queue empties
func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventFallOut, Player: 0})
	q.Push(GameEvent{Type: EventRoundReset, Player: -1})

	if q.Len() != 2 {
		t.Fatalf("Expected 2 pending events, got %d", q.Len())
	}
	got := q.Consume()
	if len(got) != 2 || got[0].Type != EventFallOut || got[1].Type != EventRoundReset {
		t.Errorf("Unexpected order: %+v", got)
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

// TestQueueOverflowDropsOldest verifies the ring keeps the newest events
func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventBounce, Frame: int64(i)})
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(got))
	}
	if got[0].Frame != 10 || got[len(got)-1].Frame != int64(total-1) {
		t.Errorf("Expected frames 10..%d, got %d..%d", total-1, got[0].Frame, got[len(got)-1].Frame)
	}
}

// TestDrainFansOut verifies every sink sees every event
func TestDrainFansOut(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventCapture})
	q.Push(GameEvent{Type: EventMatchEnd})

	var a, b []EventType
	n := q.Drain(
		SinkFunc(func(ev GameEvent) { a = append(a, ev.Type) }),
		nil,
		SinkFunc(func(ev GameEvent) { b = append(b, ev.Type) }),
	)

	if n != 2 || len(a) != 2 || len(b) != 2 {
		t.Errorf("Expected both sinks to receive 2 events, got n=%d a=%v b=%v", n, a, b)
	}
}

// TestEventTypeString verifies names used in logs
func TestEventTypeString(t *testing.T) {
	if EventPickupConsumed.String() != "pickup-consumed" {
		t.Errorf("Unexpected name: %s", EventPickupConsumed)
	}
	if EventType(-1).String() != "unknown" {
		t.Error("Expected unknown for out-of-range type")
	}
}

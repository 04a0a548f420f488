package game

import "testing"

func TestEventQueueDrainOrder(t *testing.T) {
	q := NewEventQueue()
	q.Push(Event{Kind: EventLaserFired})
	q.Push(Event{Kind: EventInvaderKilled, Score: 30})
	q.Push(Event{Kind: EventLaserDestroyed})

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	events := q.Drain()
	want := []EventKind{EventLaserFired, EventInvaderKilled, EventLaserDestroyed}
	if len(events) != len(want) {
		t.Fatalf("Drain() returned %d events, want %d", len(events), len(want))
	}
	for i, e := range events {
		if e.Kind != want[i] {
			t.Errorf("event %d = %v, want %v", i, e.Kind, want[i])
		}
	}
	if events[1].Score != 30 {
		t.Errorf("score = %d, want 30", events[1].Score)
	}

	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d, want 0", q.Len())
	}
	if q.Drain() != nil {
		t.Error("Drain() on empty queue should return nil")
	}
}

// TestEventQueueDrainIsolation 取出的事件不受之后 Push 的影响
func TestEventQueueDrainIsolation(t *testing.T) {
	q := NewEventQueue()
	q.Push(Event{Kind: EventBunkerEroded})
	events := q.Drain()

	q.Push(Event{Kind: EventPlayerKilled})

	if events[0].Kind != EventBunkerEroded {
		t.Errorf("drained event overwritten: %v", events[0].Kind)
	}
}

func TestEventQueueClear(t *testing.T) {
	q := NewEventQueue()
	q.Push(Event{Kind: EventFormationCleared})
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", q.Len())
	}
}

func TestEventKindString(t *testing.T) {
	if got := EventBunkerOverrun.String(); got != "BunkerOverrun" {
		t.Errorf("String() = %q, want BunkerOverrun", got)
	}
	if got := EventKind(99).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
}

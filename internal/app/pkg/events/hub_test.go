package events

import (
	"testing"
	"time"
)

func TestPublishReachesSubscribers(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	h.Publish(Event{Action: ActionCreated, RequestID: "r1"})

	select {
	case e := <-ch:
		if e.Action != ActionCreated || e.RequestID != "r1" {
			t.Fatalf("wrong event: %+v", e)
		}
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	cancel()

	// Publishing after cancel must not panic or deliver.
	h.Publish(Event{Action: ActionDeleted, RequestID: "r2"})

	if _, ok := <-ch; ok {
		t.Fatal("received on cancelled subscription")
	}

	// Double cancel is safe.
	cancel()
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		// Never read; the buffer fills and the rest must be dropped.
		for i := 0; i < 100; i++ {
			h.Publish(Event{Action: ActionUpdated, RequestID: "r3"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestMultipleSubscribers(t *testing.T) {
	h := NewHub()
	ch1, cancel1 := h.Subscribe()
	ch2, cancel2 := h.Subscribe()
	defer cancel1()
	defer cancel2()

	h.Publish(Event{Action: ActionAssigned, RequestID: "r4"})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case e := <-ch:
			if e.RequestID != "r4" {
				t.Fatalf("wrong event: %+v", e)
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber missed the event")
		}
	}
}

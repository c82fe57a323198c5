package events

import "sync"

// Actions carried on the stream.
const (
	ActionCreated   = "created"
	ActionAssigned  = "assigned"
	ActionCompleted = "completed"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
)

type Event struct {
	Action    string `json:"action"`
	RequestID string `json:"request_id"`
}

// Hub is a small in-process broadcast channel. Mutations publish into it
// and the SSE endpoint fans events out to connected clients. Clients that
// cannot keep up lose events instead of blocking the writer; they can
// always re-fetch the lists.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe returns a receive channel and a cancel func. Cancel must be
// called on teardown or the subscriber leaks.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers e to every subscriber without blocking.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

package hub

import "log/slog"

// Subscriber is a single connected page that receives rendered HTML
// fragments from the Hub over its Send channel.
type Subscriber struct {
	// Send is a buffered channel of outbound fragments. The Hub writes to
	// it; the connection's write pump drains it.
	Send chan []byte
}

// Hub is a concurrent broadcast bus for rendered HTML fragments. It keeps
// the set of open dashboard connections and pushes refresh fragments to all
// of them when server-side events invalidate what a page is showing.
type Hub struct {
	subscribers map[*Subscriber]bool

	// Broadcast accepts a fragment to deliver to every subscriber.
	Broadcast chan []byte

	Register   chan *Subscriber
	Unregister chan *Subscriber
}

// NewHub creates and returns a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		Broadcast:   make(chan []byte),
		Register:    make(chan *Subscriber),
		Unregister:  make(chan *Subscriber),
		subscribers: make(map[*Subscriber]bool),
	}
}

// Run starts the Hub's processing loop. It must run in its own goroutine;
// all subscriber bookkeeping is serialized through it, so no locks are
// needed anywhere else.
func (h *Hub) Run() {
	for {
		select {
		case subscriber := <-h.Register:
			h.subscribers[subscriber] = true
			slog.Debug("Dashboard connected", "total_subscribers", len(h.subscribers))

		case subscriber := <-h.Unregister:
			if _, ok := h.subscribers[subscriber]; ok {
				delete(h.subscribers, subscriber)
				close(subscriber.Send)
				slog.Debug("Dashboard disconnected", "total_subscribers", len(h.subscribers))
			}

		case fragment := <-h.Broadcast:
			for subscriber := range h.subscribers {
				// Non-blocking send: a stalled connection is dropped rather
				// than holding up the broadcast to everyone else.
				select {
				case subscriber.Send <- fragment:
				default:
					delete(h.subscribers, subscriber)
					close(subscriber.Send)
				}
			}
		}
	}
}

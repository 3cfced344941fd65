package pubsub

import "context"

// Message is the envelope passed between components on the in-process bus.
type Message struct {
	// Topic identifies the channel, e.g. "bank.linked".
	Topic string
	// UserID identifies the user whose action produced the message.
	UserID string
	// Payload is the JSON-encoded event body.
	Payload []byte
	// Metadata carries arbitrary key-value context.
	Metadata map[string]string
}

// Handler processes a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages from the bus.
type Subscriber interface {
	// Subscribe starts listening on the topic, processing each message with
	// the handler. It returns once the subscription is active; delivery
	// happens on a background goroutine until the context is canceled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

package bus

import (
	"context"
	"strings"
)

// Message is the unit published to and consumed from a topic.
// Messages with the same key are delivered in publish order.
type Message struct {
	Topic   string
	Key     string
	Value   []byte
	Headers map[string]string
}

// Handler processes one message, the message is acknowledged only when it returns nil
type Handler func(ctx context.Context, msg Message) error

//go:generate moq -out bus_mocks.go . Publisher Subscriber

// Publisher ...
type Publisher interface {
	// Publish returns nil only after the broker acknowledged the message
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber ...
type Subscriber interface {
	// Subscribe blocks until ctx is done or handler fails, a failed message is delivered again later
	Subscribe(ctx context.Context, handler Handler) error
	Close() error
}

// Header names
const (
	HeaderEventID       = "event_id"
	HeaderEventType     = "event_type"
	HeaderAggregateType = "aggregate_type"
	HeaderVersion       = "version"
)

// TopicFor returns the topic of an aggregate type, for example finance.account.events
func TopicFor(prefix string, aggregateType string) string {
	return prefix + "." + strings.ToLower(aggregateType) + ".events"
}

package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Publish sends one typed event to its topic.
type Publish[T any] func(event *T) error

// PublisherGroup owns the broker connection the typed publishers share,
// and closes it on shutdown.
type PublisherGroup struct {
	publisher message.Publisher
}

func NewPublisherGroup(publisher message.Publisher) *PublisherGroup {
	return &PublisherGroup{publisher: publisher}
}

// Typed binds one event type to one topic on the group's connection.
// Events go out as JSON under a fresh message UUID. Delivery failures
// surface to the caller, who decides whether losing the event is fatal.
func Typed[T any](group *PublisherGroup, topic string) Publish[T] {
	return func(event *T) error {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("encoding %s event: %w", topic, err)
		}

		return group.publisher.Publish(topic, message.NewMessage(watermill.NewUUID(), payload))
	}
}

// Shutdown closes the shared broker connection.
func (g *PublisherGroup) Shutdown() error {
	return g.publisher.Close()
}

package messaging_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dengnews/shortlink/internal/messaging"
)

type capturingPublisher struct {
	topics   []string
	messages []*message.Message
	err      error
	closed   bool
}

func (p *capturingPublisher) Publish(topic string, messages ...*message.Message) error {
	if p.err != nil {
		return p.err
	}

	for range messages {
		p.topics = append(p.topics, topic)
	}

	p.messages = append(p.messages, messages...)

	return nil
}

func (p *capturingPublisher) Close() error {
	p.closed = true

	return nil
}

type clickEvent struct {
	Code   string `json:"code"`
	Locale string `json:"locale"`
}

func TestTyped(t *testing.T) {
	t.Run("sends the event as JSON on its topic", func(t *testing.T) {
		broker := &capturingPublisher{}
		group := messaging.NewPublisherGroup(broker)

		publish := messaging.Typed[clickEvent](group, "link.resolved")
		require.NoError(t, publish(&clickEvent{Code: "x7Kd2a", Locale: "ku"}))

		require.Len(t, broker.messages, 1)
		assert.Equal(t, []string{"link.resolved"}, broker.topics)
		assert.NotEmpty(t, broker.messages[0].UUID)

		var got clickEvent
		require.NoError(t, json.Unmarshal(broker.messages[0].Payload, &got))
		assert.Equal(t, "x7Kd2a", got.Code)
		assert.Equal(t, "ku", got.Locale)
	})

	t.Run("each event gets its own message UUID", func(t *testing.T) {
		broker := &capturingPublisher{}
		group := messaging.NewPublisherGroup(broker)

		publish := messaging.Typed[clickEvent](group, "link.resolved")
		require.NoError(t, publish(&clickEvent{Code: "x7Kd2a"}))
		require.NoError(t, publish(&clickEvent{Code: "p0Qr5t"}))

		require.Len(t, broker.messages, 2)
		assert.NotEqual(t, broker.messages[0].UUID, broker.messages[1].UUID)
	})

	t.Run("surfaces broker failures to the caller", func(t *testing.T) {
		broker := &capturingPublisher{err: errors.New("stream full")}
		group := messaging.NewPublisherGroup(broker)

		publish := messaging.Typed[clickEvent](group, "link.created")
		assert.ErrorContains(t, publish(&clickEvent{Code: "x7Kd2a"}), "stream full")
	})

	t.Run("reports events it cannot encode", func(t *testing.T) {
		broker := &capturingPublisher{}
		group := messaging.NewPublisherGroup(broker)

		publish := messaging.Typed[chan int](group, "link.created")
		bad := make(chan int)

		err := publish(&bad)
		assert.ErrorContains(t, err, "encoding link.created event")
		assert.Empty(t, broker.messages)
	})
}

func TestPublisherGroupShutdown(t *testing.T) {
	broker := &capturingPublisher{}
	group := messaging.NewPublisherGroup(broker)

	require.NoError(t, group.Shutdown())
	assert.True(t, broker.closed)
}

// Package wmbridge adapts a Watermill publisher/subscriber pair to the
// eventflow backend contract. Broker-backed backends (kafka, nats,
// rabbitmq, aws) build their Watermill pieces and hand them to New.
package wmbridge

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"

	"github.com/relaymq/eventflow/backend"
	"github.com/relaymq/eventflow/event"
	"github.com/relaymq/eventflow/internal/ids"
	"github.com/relaymq/eventflow/internal/jsoncodec"
)

// MetadataKey is the message metadata entry carrying the publish routing key.
const MetadataKey = "eventflow_key"

// Bridge exposes a Watermill publisher/subscriber pair as a Backend.
// Payloads are JSON-encoded and stamped with a ULID message UUID; Consume
// subscribes to the configured events topic.
type Bridge struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	topic      string
	logger     *zap.Logger
}

// New creates a bridge consuming from topic. The routing key passed to
// Publish travels in message metadata; subscription granularity is the
// topic, matching the original transports where the topic and the publish
// key are the same value.
func New(pub message.Publisher, sub message.Subscriber, topic string, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{publisher: pub, subscriber: sub, topic: topic, logger: logger}
}

// Publish encodes the payload and hands it to the Watermill publisher under
// the given key as the topic.
func (b *Bridge) Publish(ctx context.Context, key string, payload event.Event) error {
	data, err := jsoncodec.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	msg := message.NewMessage(ids.NewULID(), data)
	msg.Metadata.Set(MetadataKey, key)
	msg.SetContext(ctx)

	if err := b.publisher.Publish(key, msg); err != nil {
		return fmt.Errorf("publish to %q: %w", key, err)
	}
	return nil
}

// Consume subscribes to the bridge topic and yields decoded payloads. The
// group hint is ignored here: partitioned brokers take their consumer group
// at subscriber construction time.
func (b *Bridge) Consume(ctx context.Context, group string) (<-chan backend.Delivery, error) {
	messages, err := b.subscriber.Subscribe(ctx, b.topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe to %q: %w", b.topic, err)
	}

	out := make(chan backend.Delivery)

	go func() {
		defer close(out)
		for msg := range messages {
			var payload event.Event
			if err := jsoncodec.Unmarshal(msg.Payload, &payload); err != nil {
				// A malformed payload is a per-message problem, not a
				// stream failure: drop it and keep consuming.
				b.logger.Error("dropping undecodable payload",
					zap.String("message_uuid", msg.UUID),
					zap.Error(err))
				msg.Ack()
				continue
			}
			msg.Ack()

			select {
			case out <- backend.Delivery{Event: payload}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// Close shuts down the underlying publisher and subscriber.
func (b *Bridge) Close() error {
	var firstErr error
	if err := b.publisher.Close(); err != nil {
		firstErr = err
	}
	if err := b.subscriber.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

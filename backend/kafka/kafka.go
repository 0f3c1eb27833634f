// Package kafka provides a Kafka queue backend for eventflow.
package kafka

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"

	"github.com/relaymq/eventflow/backend"
	"github.com/relaymq/eventflow/backend/wmbridge"
	"github.com/relaymq/eventflow/logging"
)

// BackendName is the name used to register this backend.
const BackendName = "kafka"

// Capabilities describes the Kafka backend.
var Capabilities = backend.Capabilities{
	Name:           BackendName,
	Durable:        true,
	Ordered:        true,
	ConsumerGroups: true,
	CrossProcess:   true,
}

// PublisherFactory allows overriding the publisher creation for testing.
var PublisherFactory = func(cfg kafka.PublisherConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
	return kafka.NewPublisher(cfg, logger)
}

// SubscriberFactory allows overriding the subscriber creation for testing.
var SubscriberFactory = func(cfg kafka.SubscriberConfig, logger watermill.LoggerAdapter) (message.Subscriber, error) {
	return kafka.NewSubscriber(cfg, logger)
}

func init() {
	backend.RegisterWithCapabilities(BackendName, Build, Capabilities)
}

// Build creates a Kafka backend. The configured consumer group is fixed at
// subscriber construction; the group hint passed to Consume is unused.
func Build(ctx context.Context, cfg backend.Config, logger *zap.Logger) (backend.Backend, error) {
	wmLogger := logging.NewWatermillAdapter(logger)

	publisher, err := PublisherFactory(
		kafka.PublisherConfig{
			Brokers:   cfg.GetKafkaBrokers(),
			Marshaler: kafka.DefaultMarshaler{},
		},
		wmLogger,
	)
	if err != nil {
		return nil, err
	}

	subscriber, err := SubscriberFactory(
		kafka.SubscriberConfig{
			Brokers:       cfg.GetKafkaBrokers(),
			Unmarshaler:   kafka.DefaultMarshaler{},
			ConsumerGroup: cfg.GetConsumerGroup(),
		},
		wmLogger,
	)
	if err != nil {
		return nil, err
	}

	return wmbridge.New(publisher, subscriber, cfg.GetEventsTopic(), logger), nil
}

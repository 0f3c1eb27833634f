// Package rabbitmq provides a RabbitMQ/AMQP queue backend for eventflow.
package rabbitmq

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/v3/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"

	"github.com/relaymq/eventflow/backend"
	"github.com/relaymq/eventflow/backend/wmbridge"
	"github.com/relaymq/eventflow/logging"
)

// BackendName is the name used to register this backend.
const BackendName = "rabbitmq"

// Capabilities describes the RabbitMQ backend.
var Capabilities = backend.Capabilities{
	Name:         BackendName,
	Durable:      true,
	Ordered:      true,
	CrossProcess: true,
}

// ConnectionFactory allows overriding the connection creation for testing.
var ConnectionFactory = func(cfg amqp.ConnectionConfig, logger watermill.LoggerAdapter) (*amqp.ConnectionWrapper, error) {
	return amqp.NewConnection(cfg, logger)
}

// PublisherFactory allows overriding the publisher creation for testing.
var PublisherFactory = func(cfg amqp.Config, logger watermill.LoggerAdapter, conn *amqp.ConnectionWrapper) (message.Publisher, error) {
	return amqp.NewPublisherWithConnection(cfg, logger, conn)
}

// SubscriberFactory allows overriding the subscriber creation for testing.
var SubscriberFactory = func(cfg amqp.Config, logger watermill.LoggerAdapter, conn *amqp.ConnectionWrapper) (message.Subscriber, error) {
	return amqp.NewSubscriberWithConnection(cfg, logger, conn)
}

func init() {
	backend.RegisterWithCapabilities(BackendName, Build, Capabilities)
}

// Build creates a RabbitMQ backend using a durable pub/sub topology.
func Build(ctx context.Context, cfg backend.Config, logger *zap.Logger) (backend.Backend, error) {
	wmLogger := logging.NewWatermillAdapter(logger)
	url := cfg.GetAMQPURL()

	amqpConfig := amqp.NewDurablePubSubConfig(url, amqp.GenerateQueueNameTopicName)

	conn, err := ConnectionFactory(amqp.ConnectionConfig{
		AmqpURI:   url,
		Reconnect: amqp.DefaultReconnectConfig(),
	}, wmLogger)
	if err != nil {
		return nil, err
	}

	publisher, err := PublisherFactory(amqpConfig, wmLogger, conn)
	if err != nil {
		return nil, err
	}

	subscriber, err := SubscriberFactory(amqpConfig, wmLogger, conn)
	if err != nil {
		return nil, err
	}

	return wmbridge.New(publisher, subscriber, cfg.GetEventsTopic(), logger), nil
}

// Package nats provides a NATS Core queue backend for eventflow.
package nats

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"

	"github.com/relaymq/eventflow/backend"
	"github.com/relaymq/eventflow/backend/wmbridge"
	"github.com/relaymq/eventflow/logging"
)

// BackendName is the name used to register this backend.
const BackendName = "nats"

// Capabilities describes the NATS Core backend. Core NATS is fire-and-forget:
// no durability, no consumer groups.
var Capabilities = backend.Capabilities{
	Name:         BackendName,
	Ordered:      true,
	CrossProcess: true,
}

// PublisherFactory allows overriding the publisher creation for testing.
var PublisherFactory = func(cfg nats.PublisherConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
	return nats.NewPublisher(cfg, logger)
}

// SubscriberFactory allows overriding the subscriber creation for testing.
var SubscriberFactory = func(cfg nats.SubscriberConfig, logger watermill.LoggerAdapter) (message.Subscriber, error) {
	return nats.NewSubscriber(cfg, logger)
}

func init() {
	backend.RegisterWithCapabilities(BackendName, Build, Capabilities)
}

// Build creates a NATS backend.
func Build(ctx context.Context, cfg backend.Config, logger *zap.Logger) (backend.Backend, error) {
	wmLogger := logging.NewWatermillAdapter(logger)
	url := cfg.GetNATSURL()
	marshaler := &nats.NATSMarshaler{}

	publisher, err := PublisherFactory(
		nats.PublisherConfig{
			URL:       url,
			Marshaler: marshaler,
		},
		wmLogger,
	)
	if err != nil {
		return nil, err
	}

	subscriber, err := SubscriberFactory(
		nats.SubscriberConfig{
			URL:         url,
			Unmarshaler: marshaler,
		},
		wmLogger,
	)
	if err != nil {
		return nil, err
	}

	return wmbridge.New(publisher, subscriber, cfg.GetEventsTopic(), logger), nil
}

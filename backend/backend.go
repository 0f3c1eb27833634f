// Package backend defines the pluggable queue transport abstraction for
// eventflow. Each backend implementation (memory, redis, kafka, etc.) lives
// in its own sub-package and registers itself with the backend registry.
package backend

import (
	"context"

	"go.uber.org/zap"

	"github.com/relaymq/eventflow/event"
)

// Delivery is one item yielded by Consume. A non-nil Err signals a failure
// of the stream itself (not of an individual payload); the backend closes
// the channel after emitting it. A closed channel without a preceding Err
// delivery means clean exhaustion or cancellation.
type Delivery struct {
	Event event.Event
	Err   error
}

// Backend is the publish/consume transport contract.
//
// Publish makes the payload visible to subsequent Consume calls under the
// given routing key. Consume returns a stream of payloads that stays open
// until ctx is cancelled or the backend is exhausted; each call returns an
// independent, restartable stream. The group argument is a consumer-group
// hint for partitioned backends and may be ignored.
type Backend interface {
	Publish(ctx context.Context, key string, payload event.Event) error
	Consume(ctx context.Context, group string) (<-chan Delivery, error)
}

// Builder is the function signature for creating a backend from config.
// Each backend package provides a Builder that can be registered.
type Builder func(ctx context.Context, cfg Config, logger *zap.Logger) (Backend, error)

// Config provides the configuration values needed by backends. The interface
// lets backend packages read only the keys they care about without depending
// on the full config package.
type Config interface {
	// GetQueueBackend returns the backend name to construct.
	GetQueueBackend() string

	// GetEventsTopic returns the topic/routing key events are published
	// under and that broker-backed backends subscribe to.
	GetEventsTopic() string

	// GetConsumerGroup returns the default consumer group hint.
	GetConsumerGroup() string

	// Redis
	GetRedisURL() string

	// Kafka
	GetKafkaBrokers() []string

	// NATS
	GetNATSURL() string

	// RabbitMQ
	GetAMQPURL() string

	// AWS
	GetAWSRegion() string
	GetAWSAccountID() string
	GetAWSAccessKeyID() string
	GetAWSSecretAccessKey() string
	GetAWSEndpoint() string
}

// Capabilities describes the delivery guarantees a backend offers so callers
// can introspect what they are running on.
type Capabilities struct {
	// Name is the registered backend name.
	Name string

	// Durable indicates payloads survive a process restart.
	Durable bool

	// Ordered indicates payloads are yielded in publish order.
	Ordered bool

	// ConsumerGroups indicates the group hint partitions consumption.
	ConsumerGroups bool

	// CrossProcess indicates producers and consumers may live in
	// different processes.
	CrossProcess bool
}

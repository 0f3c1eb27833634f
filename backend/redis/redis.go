// Package redis provides a Redis list queue backend for eventflow. Payloads
// are RPUSHed to the routing key and consumed with blocking pops, giving a
// durable-enough FIFO for deployments that outgrow the memory backend
// without running a full broker.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/relaymq/eventflow/backend"
	"github.com/relaymq/eventflow/event"
	"github.com/relaymq/eventflow/internal/jsoncodec"
)

// BackendName is the name used to register this backend.
const BackendName = "redis"

// Capabilities describes the Redis backend. Lists are FIFO per key; the
// group hint is ignored (no partitioning, each payload goes to one popper).
var Capabilities = backend.Capabilities{
	Name:         BackendName,
	Durable:      true,
	Ordered:      true,
	CrossProcess: true,
}

// popTimeout bounds each blocking pop so consume loops notice context
// cancellation promptly.
const popTimeout = time.Second

// ClientFactory allows overriding client creation for testing.
var ClientFactory = func(opts *redis.Options) redis.UniversalClient {
	return redis.NewClient(opts)
}

func init() {
	backend.RegisterWithCapabilities(BackendName, Build, Capabilities)
}

// Build creates a Redis backend from the configured URL. Consumption drains
// the configured events topic.
func Build(ctx context.Context, cfg backend.Config, logger *zap.Logger) (backend.Backend, error) {
	opts, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := ClientFactory(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return New(client, cfg.GetEventsTopic(), logger), nil
}

// Backend is a queue backend over a Redis list per routing key.
type Backend struct {
	client redis.UniversalClient
	topic  string
	logger *zap.Logger
}

// New creates a Redis backend consuming from topic.
func New(client redis.UniversalClient, topic string, logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{client: client, topic: topic, logger: logger}
}

// Publish RPUSHes the encoded payload onto the key's list.
func (b *Backend) Publish(ctx context.Context, key string, payload event.Event) error {
	data, err := jsoncodec.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if err := b.client.RPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("rpush to %q: %w", key, err)
	}
	return nil
}

// Consume blocking-pops payloads from the configured topic list. The group
// hint is ignored. Transport failures surface as a Delivery with Err set,
// then the stream closes; cancellation closes the stream cleanly.
func (b *Backend) Consume(ctx context.Context, group string) (<-chan backend.Delivery, error) {
	out := make(chan backend.Delivery)

	go func() {
		defer close(out)
		for {
			res, err := b.client.BLPop(ctx, popTimeout, b.topic).Result()
			switch {
			case err == nil:
			case errors.Is(err, redis.Nil):
				continue
			case ctx.Err() != nil:
				return
			default:
				out <- backend.Delivery{Err: fmt.Errorf("blpop from %q: %w", b.topic, err)}
				return
			}

			// BLPop returns [key, value].
			var payload event.Event
			if err := jsoncodec.Unmarshal([]byte(res[1]), &payload); err != nil {
				b.logger.Error("dropping undecodable payload",
					zap.String("key", res[0]),
					zap.Error(err))
				continue
			}

			select {
			case out <- backend.Delivery{Event: payload}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// Close releases the underlying client.
func (b *Backend) Close() error {
	return b.client.Close()
}

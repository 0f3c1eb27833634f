// Package memory provides the volatile in-process reference backend. It is
// intended for tests and light single-instance deployments: payloads are
// lost on restart and are only visible inside one process.
package memory

import (
	"context"

	"go.uber.org/zap"

	"github.com/relaymq/eventflow/backend"
	"github.com/relaymq/eventflow/event"
)

// BackendName is the name used to register this backend.
const BackendName = "memory"

// Capabilities describes the memory backend: strictly ordered, volatile,
// single-process, no consumer groups.
var Capabilities = backend.Capabilities{
	Name:    BackendName,
	Ordered: true,
}

// Default is the process-wide queue used by the registered builder. Sharing
// one queue across every env-constructed instance is intentional: producers
// and consumers wired independently still interoperate, matching a real
// broker's behaviour. Construct a private Queue and pass it to New when
// isolation is wanted (typically in tests).
var Default = NewQueue()

func init() {
	backend.RegisterWithCapabilities(BackendName, Build, Capabilities)
}

// Build creates a memory backend on the process-wide Default queue.
func Build(ctx context.Context, cfg backend.Config, logger *zap.Logger) (backend.Backend, error) {
	logger.Warn("memory backend is for development and testing only; " +
		"payloads are lost on restart and stay within this process")
	return New(Default), nil
}

// Backend is a queue backend over an explicitly shared Queue.
type Backend struct {
	queue *Queue
}

// New creates a memory backend draining the given queue. Instances built on
// the same Queue see the same payload stream.
func New(q *Queue) *Backend {
	if q == nil {
		q = Default
	}
	return &Backend{queue: q}
}

// Publish appends the payload to the queue under the given routing key.
func (b *Backend) Publish(ctx context.Context, key string, payload event.Event) error {
	return b.queue.Put(key, payload)
}

// Consume yields payloads in strict publish order across all keys. The
// group hint is ignored: the memory backend has no partitioning. The
// returned channel closes cleanly when ctx is cancelled.
func (b *Backend) Consume(ctx context.Context, group string) (<-chan backend.Delivery, error) {
	out := make(chan backend.Delivery)

	go func() {
		defer close(out)
		for {
			_, payload, err := b.queue.Get(ctx)
			if err != nil {
				// Cancellation is the normal way out of the stream.
				return
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

// Package eventflow is an asynchronous ingestion and dispatch core for
// Slack Events API payloads. An HTTP ingress (or any producer) publishes
// events to a pluggable queue backend; consumers drain the queue and hand
// each event to one of two dispatch styles: a Mux that resolves exactly one
// callback through a subtype-over-type precedence rule, or a Registry that
// fans out to every matching callback including wildcards.
//
// # Backends
//
// Eventflow supports 6 queue backends out of the box:
//   - memory: In-process FIFO for development and testing
//   - redis: Redis lists with blocking pops
//   - kafka: High-throughput streaming with consumer groups
//   - rabbitmq: AMQP-based durable queues
//   - nats: Core NATS fire-and-forget messaging
//   - aws: AWS SNS/SQS with LocalStack support
//
// Backends register themselves on import; blank-import backend/backends to
// get all of them, or import individual backend packages to keep the
// dependency surface small. The QUEUE_BACKEND environment variable selects
// one at runtime.
//
// # Dispatch
//
// Both dispatchers treat callback failures as per-event problems: errors
// and panics are logged and never stop consumption. The Consumer wrapping
// them is restartable, refuses double starts, and stops between events on
// Shutdown.
//
// A minimal setup fills Config from the environment, builds a backend,
// registers callbacks, and runs a Consumer; see the examples directory and
// cmd/eventflow for complete wirings.
package eventflow

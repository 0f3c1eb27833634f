// Package consumer drains a queue backend and feeds each payload to a
// handler, with idempotent start, cooperative shutdown, and per-payload
// failure isolation.
package consumer

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/relaymq/eventflow/backend"
	"github.com/relaymq/eventflow/event"
)

// Handler processes one payload. The Consumer calls it once per delivery,
// in delivery order.
type Handler func(ctx context.Context, ev event.Event) error

// State is the consumer lifecycle state.
type State int32

const (
	// StateIdle means no consumption loop is active. Idle is both the
	// initial and the terminal state; an idle Consumer can be restarted.
	StateIdle State = iota
	// StateRunning means the loop is draining the backend.
	StateRunning
	// StateStopping means Shutdown was called and the loop is winding
	// down; no new payload begins processing.
	StateStopping
)

// Consumer is the queue-drain lifecycle wrapper around a Backend. At most
// one subscription is active per Consumer: Run while running is a no-op.
type Consumer struct {
	backend backend.Backend
	group   string
	logger  *zap.Logger
	metrics *Metrics

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Consumer.
type Option func(*Consumer)

// WithGroup sets the consumer-group hint passed to the backend.
func WithGroup(group string) Option {
	return func(c *Consumer) { c.group = group }
}

// WithLogger sets the consumer logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Consumer) { c.logger = logger }
}

// WithMetrics attaches Prometheus instrumentation to the loop.
func WithMetrics(m *Metrics) Option {
	return func(c *Consumer) { c.metrics = m }
}

// New creates a Consumer draining b.
func New(b backend.Backend, opts ...Option) *Consumer {
	c := &Consumer{
		backend: b,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State reports the current lifecycle state.
func (c *Consumer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Run subscribes to the backend and blocks, invoking handler for each
// payload in delivery order, until the stream ends, ctx is cancelled, or
// Shutdown is called. A second Run while one is active returns nil
// immediately, guaranteeing a single active subscription.
//
// Handler failures (errors and panics) are logged with the event's routing
// fields and never stop the loop. A subscription failure is returned to the
// caller; a failure of an established stream is logged as unexpected and
// ends this run. In every case the Consumer returns to idle and may be
// started again.
func (c *Consumer) Run(ctx context.Context, handler Handler) error {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.state = StateRunning
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	defer func() {
		cancel()
		c.mu.Lock()
		c.state = StateIdle
		c.cancel = nil
		c.done = nil
		c.mu.Unlock()
		close(done)
		c.logger.Info("consumer stopped")
	}()

	deliveries, err := c.backend.Consume(runCtx, c.group)
	if err != nil {
		return fmt.Errorf("subscribe to backend: %w", err)
	}

	c.logger.Info("consumer started", zap.String("group", c.group))
	if c.metrics != nil {
		c.metrics.running.Inc()
		defer c.metrics.running.Dec()
	}

	for {
		select {
		case <-runCtx.Done():
			// Cancellation is a clean exit, not a failure.
			return nil
		case d, ok := <-deliveries:
			if !ok {
				c.logger.Info("backend stream ended")
				return nil
			}
			if d.Err != nil {
				// The stream itself broke; this run is over but the
				// Consumer stays reusable.
				c.logger.Error("unexpected backend stream failure", zap.Error(d.Err))
				return nil
			}

			c.process(runCtx, handler, d.Event)

			if c.stopping() {
				return nil
			}
		}
	}
}

// process invokes the handler for one payload, isolating failures so a bad
// event never terminates the loop.
func (c *Consumer) process(ctx context.Context, handler Handler, ev event.Event) {
	stop := c.metrics.observe()
	err := invoke(ctx, handler, ev)
	stop(err)

	if err != nil {
		c.logger.Error("error processing event",
			zap.String("type", ev.Type()),
			zap.String("subtype", ev.Subtype()),
			zap.Error(err))
	}
}

func invoke(ctx context.Context, handler Handler, ev event.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return handler(ctx, ev)
}

func (c *Consumer) stopping() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateStopping
}

// Shutdown signals the loop to stop and blocks until it has terminated or
// ctx expires. No new payload begins processing after Shutdown returns,
// though an in-flight handler call is allowed to finish. Shutdown on an
// idle Consumer returns nil immediately; concurrent Shutdown calls are
// safe.
func (c *Consumer) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateIdle {
		c.mu.Unlock()
		return nil
	}
	c.state = StateStopping
	cancel := c.cancel
	done := c.done
	c.mu.Unlock()

	c.logger.Info("shutting down consumer")
	if cancel != nil {
		cancel()
	}

	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for consumer to stop: %w", ctx.Err())
	}
}

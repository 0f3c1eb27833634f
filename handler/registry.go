package handler

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/relaymq/eventflow/event"
)

// Registry fans an event out to every matching callback. Keys are the
// wildcard "*", a bare type, or a dot-separated "type.subtype" compound;
// each key holds an ordered list and multiple callbacks per key run in
// registration order. Unrecognised keys register without validation so
// forward-compatible event types work before this library learns about
// them.
//
// Independent Registry instances share no state. Registration is guarded by
// a read/write lock for hosts that register while dispatch is in flight;
// under the usual register-then-run wiring the lock is uncontended.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]Callback
	logger   *zap.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used to report callback failures.
func WithRegistryLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) { r.logger = logger }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		handlers: make(map[string][]Callback),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register appends fn to the ordered callback list for key. The key is used
// verbatim: pass event.Wildcard, a type, or a "type.subtype" compound.
func (r *Registry) Register(key string, fn Callback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[key] = append(r.handlers[key], fn)
}

// On registers fn under the canonical key for a snake_case name: an exact
// vocabulary match is used as-is, otherwise underscores become dots and the
// result is retried against the vocabulary ("message_channels" →
// "message.channels"), otherwise the raw name registers as a custom key.
// On never rejects a name.
func (r *Registry) On(name string, fn Callback) {
	r.Register(event.Resolve(name), fn)
}

// All registers fn for every event regardless of type.
func (r *Registry) All(fn Callback) {
	r.Register(event.Wildcard, fn)
}

// HandleEvent invokes every callback matching the event. Candidate keys are
// consulted in a fixed order (wildcard, bare type, then "type.subtype" when
// a subtype is present) and each key's callbacks run in registration
// order. A failing callback (error or panic) is logged with the implicated
// key and does not stop the remaining callbacks.
func (r *Registry) HandleEvent(ctx context.Context, ev event.Event) error {
	typ := ev.Type()

	keys := []string{event.Wildcard, typ}
	if subtype := ev.Subtype(); subtype != "" {
		keys = append(keys, event.Key(typ, subtype))
	}

	r.mu.RLock()
	var callbacks []Callback
	var callbackKeys []string
	for _, key := range keys {
		for _, fn := range r.handlers[key] {
			callbacks = append(callbacks, fn)
			callbackKeys = append(callbackKeys, key)
		}
	}
	r.mu.RUnlock()

	for i, fn := range callbacks {
		if err := safeInvoke(ctx, fn, ev); err != nil {
			r.logger.Error("event callback failed",
				zap.String("key", callbackKeys[i]),
				zap.String("type", typ),
				zap.Error(err))
		}
	}
	return nil
}

// Handlers returns a snapshot of the registration table. The callback
// slices are copies; mutating them does not affect the registry.
func (r *Registry) Handlers() map[string][]Callback {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]Callback, len(r.handlers))
	for key, fns := range r.handlers {
		out[key] = append([]Callback(nil), fns...)
	}
	return out
}

// Clear removes every registration. Primarily useful in tests.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = make(map[string][]Callback)
}

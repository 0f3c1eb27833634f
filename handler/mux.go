package handler

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/relaymq/eventflow/event"
)

// MuxKey joins an event type and subtype into the double-underscore compound
// key the Mux dispatch table uses. The convention deliberately differs from
// the dot-separated registry keys so the two registration surfaces cannot be
// confused.
func MuxKey(typ, subtype string) string {
	if subtype == "" {
		return typ
	}
	return typ + "__" + subtype
}

// Mux routes each event to exactly one callback through an explicit dispatch
// table. Resolution order for an event with type t and subtype s:
//
//  1. the callback registered for MuxKey(t, s), when s is present
//  2. the callback registered for t
//  3. the unknown-event callback
//
// A subtype-specific entry always wins over a type-only entry. Callbacks for
// events nobody registered are no-ops. The table is assembled by Handle
// calls at construction time and read during dispatch; register everything
// before the consumer starts.
type Mux struct {
	table   map[string]Callback
	unknown Callback
	logger  *zap.Logger
}

// MuxOption configures a Mux.
type MuxOption func(*Mux)

// WithMuxLogger sets the logger used to report callback failures.
func WithMuxLogger(logger *zap.Logger) MuxOption {
	return func(m *Mux) { m.logger = logger }
}

// NewMux creates an empty dispatch table.
func NewMux(opts ...MuxOption) *Mux {
	m := &Mux{
		table:  make(map[string]Callback),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle sets the callback for a bare type key or a MuxKey compound key,
// replacing any previous registration for that key.
func (m *Mux) Handle(key string, fn Callback) {
	m.table[key] = fn
}

// HandleUnknown sets the fallback callback invoked when neither the
// compound nor the bare type key matches.
func (m *Mux) HandleUnknown(fn Callback) {
	m.unknown = fn
}

// HandleEvent resolves and invokes exactly one callback for the event.
// Callback failures (errors and panics) are logged with the event's routing
// fields and never propagated.
func (m *Mux) HandleEvent(ctx context.Context, ev event.Event) error {
	fn := m.resolve(ev)
	if fn == nil {
		return nil
	}
	if err := safeInvoke(ctx, fn, ev); err != nil {
		m.logger.Error("event callback failed",
			zap.String("type", ev.Type()),
			zap.String("subtype", ev.Subtype()),
			zap.Error(err))
	}
	return nil
}

func (m *Mux) resolve(ev event.Event) Callback {
	typ := ev.Type()

	if subtype := ev.Subtype(); subtype != "" {
		if fn, ok := m.table[MuxKey(typ, subtype)]; ok {
			return fn
		}
	}
	if fn, ok := m.table[typ]; ok {
		return fn
	}
	return m.unknown
}

// safeInvoke runs a callback, converting panics into errors so one bad
// callback cannot take down the consumption loop.
func safeInvoke(ctx context.Context, fn Callback, ev event.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("callback panic: %v", r)
		}
	}()
	return fn(ctx, ev)
}

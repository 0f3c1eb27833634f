// Package handler contains the two dispatch styles that route an event to
// its callbacks: Mux resolves exactly one callback per event through a
// precedence rule, Registry fans out to every matching callback including
// wildcards. Both satisfy EventHandler, the single entry point a Consumer
// invokes.
package handler

import (
	"context"

	"github.com/relaymq/eventflow/event"
)

// EventHandler handles one event. Dispatchers catch and log callback
// failures internally, so HandleEvent only returns errors a caller should
// react to; both dispatch styles in this package always return nil.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev event.Event) error
}

// Callback is a single registered event callback.
type Callback func(ctx context.Context, ev event.Event) error

// Func adapts a plain function to the EventHandler interface.
type Func func(ctx context.Context, ev event.Event) error

// HandleEvent calls f(ctx, ev).
func (f Func) HandleEvent(ctx context.Context, ev event.Event) error {
	return f(ctx, ev)
}

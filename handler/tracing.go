package handler

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/relaymq/eventflow/event"
)

const tracerName = "github.com/relaymq/eventflow/handler"

// TracedHandler wraps an EventHandler so every dispatched event runs inside
// an OpenTelemetry span carrying the event's routing fields.
type TracedHandler struct {
	next   EventHandler
	tracer trace.Tracer
}

// NewTracedHandler wraps next with tracing. A nil provider falls back to the
// global tracer provider.
func NewTracedHandler(next EventHandler, provider trace.TracerProvider) *TracedHandler {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &TracedHandler{
		next:   next,
		tracer: provider.Tracer(tracerName),
	}
}

// HandleEvent implements EventHandler.
func (t *TracedHandler) HandleEvent(ctx context.Context, ev event.Event) error {
	ctx, span := t.tracer.Start(ctx, "handler.handle_event")
	defer span.End()

	span.SetAttributes(
		attribute.String("eventflow.event_type", ev.Type()),
		attribute.String("eventflow.event_subtype", ev.Subtype()),
	)

	err := t.next.HandleEvent(ctx, ev)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	return err
}

// Package webhook is the HTTP ingress for Slack Events API deliveries. It
// verifies request signatures, answers URL verification challenges, and
// publishes accepted events to the queue backend for asynchronous
// processing by consumers. The ingress itself carries no dispatch logic.
package webhook

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/relaymq/eventflow/backend"
	"github.com/relaymq/eventflow/event"
	"github.com/relaymq/eventflow/internal/jsoncodec"
)

// maxBodyBytes caps webhook request bodies; Slack events are small.
const maxBodyBytes = 1 << 20

// healthProbeKey is the routing key used by the health endpoint's publish
// probe. Broker-backed consumers subscribe to the events topic and never
// see it; the memory backend delivers it and dispatch falls through to the
// unknown/no-op path.
const healthProbeKey = "_health_check"

// Server handles Slack webhook deliveries.
type Server struct {
	backend  backend.Backend
	topic    string
	verifier *SignatureVerifier
	logger   *zap.Logger
	router   chi.Router
}

// New creates a webhook server publishing accepted events to b under topic.
// A nil verifier disables signature checks (local development only).
func New(b backend.Backend, topic string, verifier *SignatureVerifier, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		backend:  b,
		topic:    topic,
		verifier: verifier,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/slack/events", s.handleEvents)
	r.Get("/health", s.handleHealth)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if s.verifier != nil {
		err := s.verifier.Verify(r.Header.Get(HeaderTimestamp), r.Header.Get(HeaderSignature), body)
		if err != nil {
			s.logger.Warn("rejecting unverified webhook delivery", zap.Error(err))
			http.Error(w, "invalid signature", http.StatusUnauthorized)
			return
		}
	}

	var envelope map[string]any
	if err := jsoncodec.Unmarshal(body, &envelope); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	// URL verification challenges answer inline and never reach the queue.
	if challenge, ok := envelope["challenge"].(string); ok {
		s.logger.Info("handling url verification challenge")
		s.writeJSON(w, http.StatusOK, map[string]any{"challenge": challenge})
		return
	}

	payload := eventPayload(envelope)
	s.logger.Info("received event",
		zap.String("type", payload.Type()),
		zap.String("subtype", payload.Subtype()))

	if err := s.backend.Publish(r.Context(), s.topic, payload); err != nil {
		// Slack retries on non-2xx; surface the failure so the delivery
		// comes back once the backend recovers.
		s.logger.Error("failed to publish event", zap.Error(err))
		http.Error(w, "failed to enqueue event", http.StatusServiceUnavailable)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// eventPayload extracts the routable event from a delivery envelope.
// Event callbacks unwrap to the inner event, annotated with the envelope's
// identifiers; anything else publishes as-is.
func eventPayload(envelope map[string]any) event.Event {
	if envelope["type"] != "event_callback" {
		return event.Event(envelope)
	}
	inner, ok := envelope["event"].(map[string]any)
	if !ok {
		return event.Event(envelope)
	}
	payload := event.Event(inner)
	for _, key := range []string{"team_id", "event_id", "event_time"} {
		if v, ok := envelope[key]; ok {
			payload[key] = v
		}
	}
	return payload
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	report := map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	probe := event.Event{"type": healthProbeKey, "ts": time.Now().UnixNano()}
	if err := s.backend.Publish(r.Context(), healthProbeKey, probe); err != nil {
		status = http.StatusServiceUnavailable
		report["status"] = "degraded"
		report["queue"] = err.Error()
	}

	s.writeJSON(w, status, report)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := jsoncodec.Encode(w, v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

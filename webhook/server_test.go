package webhook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/relaymq/eventflow/backend"
	"github.com/relaymq/eventflow/event"
	"github.com/relaymq/eventflow/internal/jsoncodec"
)

// capturingBackend records what gets published.
type capturingBackend struct {
	mu        sync.Mutex
	published []publishCall
	err       error
}

type publishCall struct {
	key     string
	payload event.Event
}

func (b *capturingBackend) Publish(ctx context.Context, key string, payload event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.published = append(b.published, publishCall{key: key, payload: payload})
	return nil
}

func (b *capturingBackend) Consume(ctx context.Context, group string) (<-chan backend.Delivery, error) {
	ch := make(chan backend.Delivery)
	close(ch)
	return ch, nil
}

func (b *capturingBackend) calls() []publishCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]publishCall(nil), b.published...)
}

func postEvents(t *testing.T, s *Server, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/slack/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, jsoncodec.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestServer_URLVerificationChallenge(t *testing.T) {
	b := &capturingBackend{}
	s := New(b, "slack_events", nil, zap.NewNop())

	body := []byte(`{"type":"url_verification","challenge":"3eZbrw1aBm2rZgRNFdxV2595E9CY3gmdALWMmHkvFXO7tYXAYM8P"}`)
	w := postEvents(t, s, body, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "3eZbrw1aBm2rZgRNFdxV2595E9CY3gmdALWMmHkvFXO7tYXAYM8P", resp["challenge"])

	// Challenges never reach the queue.
	assert.Empty(t, b.calls())
}

func TestServer_PublishesEvent(t *testing.T) {
	b := &capturingBackend{}
	s := New(b, "slack_events", nil, zap.NewNop())

	w := postEvents(t, s, []byte(`{"type":"app_mention","user":"U123"}`), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["ok"])

	calls := b.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "slack_events", calls[0].key)
	assert.Equal(t, "app_mention", calls[0].payload.Type())
	assert.Equal(t, "U123", calls[0].payload["user"])
}

func TestServer_UnwrapsEventCallback(t *testing.T) {
	b := &capturingBackend{}
	s := New(b, "slack_events", nil, zap.NewNop())

	body := []byte(`{
		"type": "event_callback",
		"team_id": "T123",
		"event_id": "Ev123",
		"event_time": 1755000000,
		"event": {"type": "reaction_added", "user": "U1", "reaction": "thumbsup"}
	}`)
	w := postEvents(t, s, body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	calls := b.calls()
	require.Len(t, calls, 1)
	payload := calls[0].payload
	assert.Equal(t, "reaction_added", payload.Type())
	assert.Equal(t, "thumbsup", payload["reaction"])
	// Envelope identifiers travel with the inner event.
	assert.Equal(t, "T123", payload["team_id"])
	assert.Equal(t, "Ev123", payload["event_id"])
}

func TestServer_EventCallbackWithoutInnerEvent(t *testing.T) {
	b := &capturingBackend{}
	s := New(b, "slack_events", nil, zap.NewNop())

	w := postEvents(t, s, []byte(`{"type":"event_callback","team_id":"T123"}`), nil)
	require.Equal(t, http.StatusOK, w.Code)

	calls := b.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "event_callback", calls[0].payload.Type())
}

func TestServer_InvalidJSON(t *testing.T) {
	s := New(&capturingBackend{}, "slack_events", nil, zap.NewNop())
	w := postEvents(t, s, []byte(`{not json`), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_PublishFailureReturns503(t *testing.T) {
	b := &capturingBackend{err: errors.New("queue unavailable")}
	s := New(b, "slack_events", nil, zap.NewNop())

	// Slack retries on non-2xx, so enqueue failures must not return 200.
	w := postEvents(t, s, []byte(`{"type":"app_mention"}`), nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestServer_RejectsBadSignature(t *testing.T) {
	b := &capturingBackend{}
	s := New(b, "slack_events", NewSignatureVerifier("secret"), zap.NewNop())

	w := postEvents(t, s, []byte(`{"type":"app_mention"}`), map[string]string{
		HeaderTimestamp: fmt.Sprintf("%d", time.Now().Unix()),
		HeaderSignature: "v0=deadbeef",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, b.calls())
}

func TestServer_AcceptsValidSignature(t *testing.T) {
	b := &capturingBackend{}
	s := New(b, "slack_events", NewSignatureVerifier("secret"), zap.NewNop())

	body := []byte(`{"type":"app_mention"}`)
	ts := fmt.Sprintf("%d", time.Now().Unix())

	w := postEvents(t, s, body, map[string]string{
		HeaderTimestamp: ts,
		HeaderSignature: sign("secret", ts, body),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, b.calls(), 1)
}

func TestServer_MissingSignatureHeaders(t *testing.T) {
	s := New(&capturingBackend{}, "slack_events", NewSignatureVerifier("secret"), zap.NewNop())
	w := postEvents(t, s, []byte(`{"type":"app_mention"}`), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_Health(t *testing.T) {
	b := &capturingBackend{}
	s := New(b, "slack_events", nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])

	// The probe publishes under its own key, not the events topic.
	calls := b.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, healthProbeKey, calls[0].key)
}

func TestServer_HealthDegraded(t *testing.T) {
	b := &capturingBackend{err: errors.New("queue unavailable")}
	s := New(b, "slack_events", nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "degraded", decodeBody(t, w)["status"])
}

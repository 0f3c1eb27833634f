package nats

import (
	"context"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/relaymq/eventflow/backend"
)

type mockConfig struct {
	url string
}

func (m *mockConfig) GetQueueBackend() string       { return BackendName }
func (m *mockConfig) GetEventsTopic() string        { return "slack_events" }
func (m *mockConfig) GetConsumerGroup() string      { return "" }
func (m *mockConfig) GetRedisURL() string           { return "" }
func (m *mockConfig) GetKafkaBrokers() []string     { return nil }
func (m *mockConfig) GetNATSURL() string            { return m.url }
func (m *mockConfig) GetAMQPURL() string            { return "" }
func (m *mockConfig) GetAWSRegion() string          { return "" }
func (m *mockConfig) GetAWSAccountID() string       { return "" }
func (m *mockConfig) GetAWSAccessKeyID() string     { return "" }
func (m *mockConfig) GetAWSSecretAccessKey() string { return "" }
func (m *mockConfig) GetAWSEndpoint() string        { return "" }

type mockPublisher struct{}

func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error { return nil }
func (m *mockPublisher) Close() error                                             { return nil }

type mockSubscriber struct{}

func (m *mockSubscriber) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	ch := make(chan *message.Message)
	close(ch)
	return ch, nil
}
func (m *mockSubscriber) Close() error { return nil }

func TestRegistered(t *testing.T) {
	assert.True(t, backend.DefaultRegistry.Has(BackendName))

	caps := backend.DefaultRegistry.GetCapabilities(BackendName)
	assert.Equal(t, "nats", caps.Name)
	assert.False(t, caps.Durable)
	assert.True(t, caps.Ordered)
	assert.True(t, caps.CrossProcess)
}

func TestBuild(t *testing.T) {
	t.Run("creates backend with mocked factories", func(t *testing.T) {
		originalPubFactory := PublisherFactory
		originalSubFactory := SubscriberFactory
		defer func() {
			PublisherFactory = originalPubFactory
			SubscriberFactory = originalSubFactory
		}()

		PublisherFactory = func(cfg nats.PublisherConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
			assert.Equal(t, "nats://localhost:4222", cfg.URL)
			return &mockPublisher{}, nil
		}
		SubscriberFactory = func(cfg nats.SubscriberConfig, logger watermill.LoggerAdapter) (message.Subscriber, error) {
			assert.Equal(t, "nats://localhost:4222", cfg.URL)
			return &mockSubscriber{}, nil
		}

		b, err := Build(context.Background(), &mockConfig{url: "nats://localhost:4222"}, zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, b)
	})

	t.Run("returns error when publisher factory fails", func(t *testing.T) {
		originalPubFactory := PublisherFactory
		defer func() { PublisherFactory = originalPubFactory }()

		PublisherFactory = func(cfg nats.PublisherConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
			return nil, errors.New("connection refused")
		}

		_, err := Build(context.Background(), &mockConfig{url: "nats://localhost:4222"}, zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

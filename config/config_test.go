package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.QueueBackend)
	assert.Equal(t, DefaultEventsTopic, cfg.EventsTopic)
	assert.Equal(t, "", cfg.ConsumerGroup)
	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("QUEUE_BACKEND", "kafka")
	t.Setenv("SLACK_EVENTS_TOPIC", "incoming")
	t.Setenv("CONSUMER_GROUP", "workers")
	t.Setenv("SLACK_SIGNING_SECRET", "s3cr3t")
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("DEBUG", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "kafka", cfg.QueueBackend)
	assert.Equal(t, "incoming", cfg.EventsTopic)
	assert.Equal(t, "workers", cfg.ConsumerGroup)
	assert.Equal(t, "s3cr3t", cfg.SigningSecret)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
}

func TestConfig_BackendGetters(t *testing.T) {
	cfg := &Config{
		QueueBackend:       "aws",
		EventsTopic:        "events",
		ConsumerGroup:      "g1",
		RedisURL:           "redis://r:6379",
		KafkaBrokers:       []string{"k:9092"},
		NATSURL:            "nats://n:4222",
		AMQPURL:            "amqp://a:5672",
		AWSRegion:          "eu-central-1",
		AWSAccountID:       "123456789012",
		AWSAccessKeyID:     "AKIA",
		AWSSecretAccessKey: "shh",
		AWSEndpoint:        "http://localhost:4566",
	}

	assert.Equal(t, "aws", cfg.GetQueueBackend())
	assert.Equal(t, "events", cfg.GetEventsTopic())
	assert.Equal(t, "g1", cfg.GetConsumerGroup())
	assert.Equal(t, "redis://r:6379", cfg.GetRedisURL())
	assert.Equal(t, []string{"k:9092"}, cfg.GetKafkaBrokers())
	assert.Equal(t, "nats://n:4222", cfg.GetNATSURL())
	assert.Equal(t, "amqp://a:5672", cfg.GetAMQPURL())
	assert.Equal(t, "eu-central-1", cfg.GetAWSRegion())
	assert.Equal(t, "123456789012", cfg.GetAWSAccountID())
	assert.Equal(t, "AKIA", cfg.GetAWSAccessKeyID())
	assert.Equal(t, "shh", cfg.GetAWSSecretAccessKey())
	assert.Equal(t, "http://localhost:4566", cfg.GetAWSEndpoint())
}

func TestConfig_StringRedactsSecrets(t *testing.T) {
	cfg := Config{
		QueueBackend:       "memory",
		SigningSecret:      "super-secret",
		AWSSecretAccessKey: "also-secret",
	}

	s := cfg.String()
	assert.NotContains(t, s, "super-secret")
	assert.NotContains(t, s, "also-secret")
	assert.Contains(t, s, "REDACTED")
}

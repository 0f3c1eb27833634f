// Package config loads process configuration from the environment and
// exposes it through the backend.Config interface.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultEventsTopic is the queue key events publish under when
// SLACK_EVENTS_TOPIC is unset.
const DefaultEventsTopic = "slack_events"

// Config groups every setting the server and backends read. Each backend
// only uses the keys relevant to it.
type Config struct {
	// QueueBackend selects the queue transport by registered name
	// ("memory", "redis", "kafka", "nats", "rabbitmq", "aws").
	QueueBackend string `env:"QUEUE_BACKEND" envDefault:"memory"`

	// EventsTopic is the routing key webhook deliveries publish under and
	// broker-backed backends consume from.
	EventsTopic string `env:"SLACK_EVENTS_TOPIC" envDefault:"slack_events"`

	// ConsumerGroup is the consumer-group hint for partitioned backends.
	ConsumerGroup string `env:"CONSUMER_GROUP"`

	// SigningSecret verifies incoming webhook signatures. Required for the
	// ingress server, unused by library-only embedding.
	SigningSecret string `env:"SLACK_SIGNING_SECRET"`

	// HTTPAddr is the webhook listen address.
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":3000"`

	// MetricsAddr is the Prometheus exposition address. Empty disables the
	// metrics endpoint.
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`

	// Debug switches logging to development encoding.
	Debug bool `env:"DEBUG"`

	// Redis configuration.
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`

	// Kafka configuration.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`

	// NATS configuration.
	NATSURL string `env:"NATS_URL"`

	// RabbitMQ configuration.
	AMQPURL string `env:"AMQP_URL"`

	// AWS (SNS/SQS) configuration. AWSEndpoint optionally points at a
	// custom endpoint such as LocalStack.
	AWSRegion          string `env:"AWS_REGION"`
	AWSAccountID       string `env:"AWS_ACCOUNT_ID"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	AWSEndpoint        string `env:"AWS_ENDPOINT"`
}

// FromEnv parses the environment into a Config.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Getter methods implementing the backend.Config interface.
func (c *Config) GetQueueBackend() string       { return c.QueueBackend }
func (c *Config) GetEventsTopic() string        { return c.EventsTopic }
func (c *Config) GetConsumerGroup() string      { return c.ConsumerGroup }
func (c *Config) GetRedisURL() string           { return c.RedisURL }
func (c *Config) GetKafkaBrokers() []string     { return c.KafkaBrokers }
func (c *Config) GetNATSURL() string            { return c.NATSURL }
func (c *Config) GetAMQPURL() string            { return c.AMQPURL }
func (c *Config) GetAWSRegion() string          { return c.AWSRegion }
func (c *Config) GetAWSAccountID() string       { return c.AWSAccountID }
func (c *Config) GetAWSAccessKeyID() string     { return c.AWSAccessKeyID }
func (c *Config) GetAWSSecretAccessKey() string { return c.AWSSecretAccessKey }
func (c *Config) GetAWSEndpoint() string        { return c.AWSEndpoint }

// String renders the config with secrets redacted so it can be logged at
// startup.
func (c Config) String() string {
	clone := c
	if clone.SigningSecret != "" {
		clone.SigningSecret = "***REDACTED***"
	}
	if clone.AWSSecretAccessKey != "" {
		clone.AWSSecretAccessKey = "***REDACTED***"
	}
	return fmt.Sprintf("%+v", struct {
		QueueBackend  string
		EventsTopic   string
		ConsumerGroup string
		HTTPAddr      string
		MetricsAddr   string
		SigningSecret string
	}{
		QueueBackend:  clone.QueueBackend,
		EventsTopic:   clone.EventsTopic,
		ConsumerGroup: clone.ConsumerGroup,
		HTTPAddr:      clone.HTTPAddr,
		MetricsAddr:   clone.MetricsAddr,
		SigningSecret: clone.SigningSecret,
	})
}

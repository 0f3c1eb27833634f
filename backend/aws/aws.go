// Package aws provides an AWS SNS/SQS queue backend for eventflow. Events
// publish to an SNS topic; consumption goes through an SQS queue subscribed
// to that topic. A custom endpoint supports LocalStack in development.
package aws

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-aws/sns"
	"github.com/ThreeDotsLabs/watermill-aws/sqs"
	"github.com/ThreeDotsLabs/watermill/message"
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	amazonsns "github.com/aws/aws-sdk-go-v2/service/sns"
	amazonsqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	smithyendpoints "github.com/aws/smithy-go/endpoints"
	"go.uber.org/zap"

	"github.com/relaymq/eventflow/backend"
	"github.com/relaymq/eventflow/backend/wmbridge"
	"github.com/relaymq/eventflow/logging"
)

// BackendName is the name used to register this backend.
const BackendName = "aws"

// Capabilities describes the SNS/SQS backend. SQS standard queues do not
// guarantee ordering.
var Capabilities = backend.Capabilities{
	Name:         BackendName,
	Durable:      true,
	CrossProcess: true,
}

// ConfigLoader allows overriding the AWS config loader for testing.
var ConfigLoader = awsconfig.LoadDefaultConfig

// PublisherFactory allows overriding the publisher creation for testing.
var PublisherFactory = func(cfg sns.PublisherConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
	return sns.NewPublisher(cfg, logger)
}

// SubscriberFactory allows overriding the subscriber creation for testing.
var SubscriberFactory = func(cfg sns.SubscriberConfig, sqsCfg sqs.SubscriberConfig, logger watermill.LoggerAdapter) (message.Subscriber, error) {
	return sns.NewSubscriber(cfg, sqsCfg, logger)
}

func init() {
	backend.RegisterWithCapabilities(BackendName, Build, Capabilities)
}

// Build creates an SNS/SQS backend.
func Build(ctx context.Context, cfg backend.Config, logger *zap.Logger) (backend.Backend, error) {
	wmLogger := logging.NewWatermillAdapter(logger)

	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	topicResolver, err := sns.NewGenerateArnTopicResolver(cfg.GetAWSAccountID(), awsCfg.Region)
	if err != nil {
		return nil, fmt.Errorf("create topic resolver: %w", err)
	}

	snsOpts, sqsOpts, err := endpointOverrides(cfg)
	if err != nil {
		return nil, err
	}

	publisher, err := PublisherFactory(sns.PublisherConfig{
		AWSConfig:     awsCfg,
		TopicResolver: topicResolver,
		OptFns:        snsOpts,
	}, wmLogger)
	if err != nil {
		return nil, err
	}

	subscriber, err := SubscriberFactory(
		sns.SubscriberConfig{
			AWSConfig:            awsCfg,
			TopicResolver:        topicResolver,
			OptFns:               snsOpts,
			GenerateSqsQueueName: queueNameFromTopic,
		},
		sqs.SubscriberConfig{
			AWSConfig: awsCfg,
			OptFns:    sqsOpts,
		},
		wmLogger,
	)
	if err != nil {
		return nil, err
	}

	return wmbridge.New(publisher, subscriber, cfg.GetEventsTopic(), logger), nil
}

func loadAWSConfig(ctx context.Context, cfg backend.Config) (awssdk.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryer(func() awssdk.Retryer { return retry.NewStandard() }),
	}
	if region := cfg.GetAWSRegion(); region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	if key, secret := cfg.GetAWSAccessKeyID(), cfg.GetAWSSecretAccessKey(); key != "" && secret != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, "")))
	}
	return ConfigLoader(ctx, opts...)
}

func queueNameFromTopic(ctx context.Context, snsTopic sns.TopicArn) (string, error) {
	topic, err := sns.ExtractTopicNameFromTopicArn(snsTopic)
	if err != nil {
		return "", err
	}
	return string(topic), nil
}

func endpointOverrides(cfg backend.Config) ([]func(*amazonsns.Options), []func(*amazonsqs.Options), error) {
	endpoint := cfg.GetAWSEndpoint()
	if endpoint == "" {
		return nil, nil, nil
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("parse aws endpoint: %w", err)
	}

	snsOpts := []func(*amazonsns.Options){
		amazonsns.WithEndpointResolverV2(sns.OverrideEndpointResolver{
			Endpoint: smithyendpoints.Endpoint{URI: *parsed},
		}),
	}
	sqsOpts := []func(*amazonsqs.Options){
		amazonsqs.WithEndpointResolverV2(sqs.OverrideEndpointResolver{
			Endpoint: smithyendpoints.Endpoint{URI: *parsed},
		}),
	}
	return snsOpts, sqsOpts, nil
}

package config

import (
	"github.com/m-mizutani/simplecounter/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Environment variable names read by LoadAWS, and the fallbacks used when they are unset.
const (
	EnvAWSRegion          = "AWS_DEFAULT_REGION"
	EnvLocalstackEndpoint = "LOCALSTACK_ENDPOINT"
	EnvCounterQueueURL    = "COUNTER_QUEUE_URL"

	DefaultAWSRegion          = "us-east-1"
	DefaultLocalstackEndpoint = "http://localhost:4566"
	DefaultCounterQueueURL    = "http://localhost:4566/000000000000/counter-queue"
)

// AWS holds AWS connectivity configuration
type AWS struct {
	Region   string
	Endpoint string
	QueueURL string
}

// LoadAWS resolves AWS configuration from the environment. It is called once
// at startup; flags may override the result afterwards.
func LoadAWS(lookup LookupFunc) AWS {
	return AWS{
		Region:   Resolve(lookup, EnvAWSRegion, DefaultAWSRegion),
		Endpoint: Resolve(lookup, EnvLocalstackEndpoint, DefaultLocalstackEndpoint),
		QueueURL: Resolve(lookup, EnvCounterQueueURL, DefaultCounterQueueURL),
	}
}

// Flags returns CLI flags for AWS configuration. Current field values become
// the flag defaults, so call LoadAWS first.
func (c *AWS) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "aws-region",
			Usage:       "AWS region (env: " + EnvAWSRegion + ")",
			Value:       c.Region,
			Destination: &c.Region,
		},
		&cli.StringFlag{
			Name:        "localstack-endpoint",
			Usage:       "LocalStack endpoint used in development (env: " + EnvLocalstackEndpoint + ")",
			Value:       c.Endpoint,
			Destination: &c.Endpoint,
		},
		&cli.StringFlag{
			Name:        "counter-queue-url",
			Usage:       "SQS queue URL for counter updates (env: " + EnvCounterQueueURL + ")",
			Value:       c.QueueURL,
			Destination: &c.QueueURL,
		},
	}
}

// Model returns a copy of the configuration for injection into infra clients
func (c *AWS) Model() model.AWSConfig {
	return model.AWSConfig{
		Region:   c.Region,
		Endpoint: c.Endpoint,
		QueueURL: c.QueueURL,
	}
}

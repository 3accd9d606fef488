package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/simplecounter/pkg/domain/model"
	"github.com/m-mizutani/simplecounter/pkg/domain/types"
)

// LocalStack accepts any credentials; these are its documented placeholders
const (
	emulatorAccessKeyID     = "test"
	emulatorSecretAccessKey = "test"
)

// Clients bundles the AWS configuration and service clients built at startup
type Clients struct {
	Config aws.Config
	SQS    *sqs.Client
	S3     *s3.Client

	// Emulated is true when clients point at LocalStack
	Emulated bool
}

// LoadOptions returns SDK load options for the given environment. Outside
// development it returns nothing and the SDK default chain applies as is.
func LoadOptions(env types.Env, cfg model.AWSConfig) []func(*awsconfig.LoadOptions) error {
	if !env.IsDevelopment() {
		return nil
	}

	return []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(emulatorAccessKeyID, emulatorSecretAccessKey, ""),
		),
		awsconfig.WithBaseEndpoint(cfg.Endpoint),
	}
}

// SQSOptions disables MD5 verification of received messages in development
func SQSOptions(env types.Env) []func(*sqs.Options) {
	if !env.IsDevelopment() {
		return nil
	}

	return []func(*sqs.Options){
		func(o *sqs.Options) {
			o.DisableMessageChecksumValidation = true
		},
	}
}

// S3Options forces path-style addressing and relaxes response checksum
// validation in development. Required for LocalStack.
func S3Options(env types.Env) []func(*s3.Options) {
	if !env.IsDevelopment() {
		return nil
	}

	return []func(*s3.Options){
		func(o *s3.Options) {
			o.UsePathStyle = true
			o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
		},
	}
}

// NewClients builds AWS clients once at startup
func NewClients(ctx context.Context, env types.Env, cfg model.AWSConfig) (*Clients, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, LoadOptions(env, cfg)...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load AWS config",
			goerr.V("env", env),
			goerr.V("region", cfg.Region),
		)
	}

	return &Clients{
		Config:   awsCfg,
		SQS:      sqs.NewFromConfig(awsCfg, SQSOptions(env)...),
		S3:       s3.NewFromConfig(awsCfg, S3Options(env)...),
		Emulated: env.IsDevelopment(),
	}, nil
}

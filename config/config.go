package config

import (
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/AvinashKumarSP/copy-service/logging"
)

// RowCountConfig bundles everything the row count binary needs: the AWS
// config, the environment settings, and a logger that always carries the
// bucket and prefix being aggregated.
type RowCountConfig struct {
	AWSConfig aws.Config
	Env       *RowCountEnv
	Logger    *slog.Logger
	s3Client  *s3.Client
}

func NewRowCountConfig(awsConfig aws.Config, env *RowCountEnv) *RowCountConfig {
	logger := logging.Default.With(slog.Group("rowCount",
		slog.String("bucket", env.Bucket),
		slog.String("prefix", env.Prefix)))
	return &RowCountConfig{
		AWSConfig: awsConfig,
		Env:       env,
		Logger:    logger,
	}
}

func (c *RowCountConfig) S3Client() *s3.Client {
	if c.s3Client == nil {
		c.s3Client = s3.NewFromConfig(c.AWSConfig)
	}
	return c.s3Client
}

// SetS3Client is for use in tests that would like to override the real client
func (c *RowCountConfig) SetS3Client(client *s3.Client) {
	c.s3Client = client
}

// SecondFieldConfig bundles everything the second field binary needs.
type SecondFieldConfig struct {
	AWSConfig aws.Config
	Env       *SecondFieldEnv
	Logger    *slog.Logger
	s3Client  *s3.Client
}

func NewSecondFieldConfig(awsConfig aws.Config, env *SecondFieldEnv) *SecondFieldConfig {
	logger := logging.Default.With(slog.Group("secondField",
		slog.String("bucket", env.Bucket),
		slog.String("key", env.Key)))
	return &SecondFieldConfig{
		AWSConfig: awsConfig,
		Env:       env,
		Logger:    logger,
	}
}

func (c *SecondFieldConfig) S3Client() *s3.Client {
	if c.s3Client == nil {
		c.s3Client = s3.NewFromConfig(c.AWSConfig)
	}
	return c.s3Client
}

// SetS3Client is for use in tests that would like to override the real client
func (c *SecondFieldConfig) SetS3Client(client *s3.Client) {
	c.s3Client = client
}

package awsconfig

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// Factory supplies a lazily loaded aws.Config resolved through the SDK's
// default credential chain. Tests can call Set to substitute a config that
// points at fake endpoints.
type Factory struct {
	awsConfig *aws.Config
}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Get(ctx context.Context) (*aws.Config, error) {
	if f.awsConfig == nil {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("error loading default AWS config: %w", err)
		}
		f.awsConfig = &cfg
	}
	return f.awsConfig, nil
}

func (f *Factory) Set(awsConfig *aws.Config) {
	f.awsConfig = awsConfig
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/AvinashKumarSP/copy-service/awsconfig"
	"github.com/AvinashKumarSP/copy-service/config"
	"github.com/AvinashKumarSP/copy-service/logging"
	"github.com/AvinashKumarSP/copy-service/secondfield"
)

var awsConfigFactory = awsconfig.NewFactory()

func main() {
	ctx := context.Background()
	secondFieldConfig, err := initConfig(ctx)
	if err != nil {
		logging.Default.Error("error initializing config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := secondFieldConfig.Logger
	extractor := secondfield.NewExtractor(secondFieldConfig.S3Client(), logger)
	value, found, err := extractor.SecondField(ctx, secondFieldConfig.Env.Bucket, secondFieldConfig.Env.Key)
	switch {
	case err != nil:
		// read failures and short lines are both reported as absent; the
		// distinction lives in the logs
		logger.Error("error extracting second field", slog.Any("error", err))
		fmt.Println("Second string: absent")
	case !found:
		fmt.Println("Second string: absent")
	default:
		fmt.Printf("Second string: %s\n", value)
	}
}

func initConfig(ctx context.Context) (*config.SecondFieldConfig, error) {
	awsConfig, err := awsConfigFactory.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting AWS config: %w", err)
	}
	configEnv, err := config.LookupSecondFieldEnv()
	if err != nil {
		return nil, fmt.Errorf("error getting config environment variables: %w", err)
	}
	return config.NewSecondFieldConfig(*awsConfig, configEnv), nil
}

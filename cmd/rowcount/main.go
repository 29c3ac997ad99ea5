package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/AvinashKumarSP/copy-service/awsconfig"
	"github.com/AvinashKumarSP/copy-service/config"
	"github.com/AvinashKumarSP/copy-service/logging"
	"github.com/AvinashKumarSP/copy-service/rowcount"
	"github.com/AvinashKumarSP/copy-service/summary"
)

var awsConfigFactory = awsconfig.NewFactory()

func main() {
	ctx := context.Background()
	rowCountConfig, err := initConfig(ctx)
	if err != nil {
		logging.Default.Error("error initializing config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := rowCountConfig.Logger
	aggregator := rowcount.NewAggregator(rowCountConfig.S3Client(), logger)
	total, err := aggregator.TotalRows(ctx, rowCountConfig.Env.Bucket, rowCountConfig.Env.Prefix)
	if err != nil {
		logger.Error("error aggregating row counts", slog.Any("error", err))
		os.Exit(1)
	}

	writer := summary.NewWriter(rowCountConfig.S3Client(), logger)
	if err := writer.Write(ctx, rowCountConfig.Env.Bucket, rowCountConfig.Env.SummaryPrefix, total); err != nil {
		logger.Error("error writing row count summary", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("daily row count complete", slog.Int64("totalRows", total))
}

func initConfig(ctx context.Context) (*config.RowCountConfig, error) {
	awsConfig, err := awsConfigFactory.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting AWS config: %w", err)
	}
	configEnv, err := config.LookupRowCountEnv()
	if err != nil {
		return nil, fmt.Errorf("error getting config environment variables: %w", err)
	}
	return config.NewRowCountConfig(*awsConfig, configEnv), nil
}

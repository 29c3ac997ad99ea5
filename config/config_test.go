package config_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvinashKumarSP/copy-service/config"
)

func TestRowCountConfigS3Client(t *testing.T) {
	rowCountConfig := config.NewRowCountConfig(aws.Config{Region: "us-east-1"}, &config.RowCountEnv{
		Bucket:        "data-bucket",
		Prefix:        "daily/",
		SummaryPrefix: "reports",
	})
	client := rowCountConfig.S3Client()
	require.NotNil(t, client)
	// the client is cached across calls
	assert.Same(t, client, rowCountConfig.S3Client())
}

func TestSecondFieldConfigS3Client(t *testing.T) {
	secondFieldConfig := config.NewSecondFieldConfig(aws.Config{Region: "us-east-1"}, &config.SecondFieldEnv{
		Bucket: "test-bucket",
		Key:    "file.csv",
	})
	require.NotNil(t, secondFieldConfig.Logger)
	assert.Same(t, secondFieldConfig.S3Client(), secondFieldConfig.S3Client())
}

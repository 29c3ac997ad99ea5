package summary

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvinashKumarSP/copy-service/logging"
	"github.com/AvinashKumarSP/copy-service/test"
)

func TestKey(t *testing.T) {
	date := time.Date(2024, time.March, 9, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "reports/20240309_row_count.txt", Key("reports", date))
	assert.Equal(t, "reports/20240309_row_count.txt", Key("reports/", date))
}

func TestWriterWrite(t *testing.T) {
	test.SetLogLevel(t, slog.LevelError)
	fixture := test.NewS3ServerFixture(t)
	defer fixture.Teardown()
	var putCalls []test.PutCall
	fixture.PutTarget("data-bucket", &putCalls)

	writer := NewWriter(newTestClient(t, fixture), logging.Default)
	writer.now = func() time.Time {
		return time.Date(2024, time.March, 9, 15, 4, 5, 0, time.UTC)
	}
	err := writer.Write(context.Background(), "data-bucket", "reports", 42)
	require.NoError(t, err)

	require.Len(t, putCalls, 1)
	assert.Equal(t, "reports/20240309_row_count.txt", putCalls[0].Key)
	assert.Equal(t, "20240309, 42", putCalls[0].Body)
}

func TestWriterWrite_BackendError(t *testing.T) {
	test.SetLogLevel(t, slog.LevelError)
	fixture := test.NewS3ServerFixture(t)
	defer fixture.Teardown()
	fixture.FailBucket("data-bucket", http.StatusForbidden, "AccessDenied")

	writer := NewWriter(newTestClient(t, fixture), logging.Default)
	err := writer.Write(context.Background(), "data-bucket", "reports", 42)
	require.Error(t, err)
	assert.ErrorContains(t, err, "error uploading row count summary")
}

func newTestClient(t *testing.T, fixture *test.S3ServerFixture) *s3.Client {
	endpoints := test.NewAWSEndpoints(t).WithS3(fixture.Server.URL)
	awsConfig := endpoints.Config(context.Background(), false)
	return s3.NewFromConfig(awsConfig)
}

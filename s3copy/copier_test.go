package s3copy_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvinashKumarSP/copy-service/logging"
	"github.com/AvinashKumarSP/copy-service/s3copy"
	"github.com/AvinashKumarSP/copy-service/test"
)

func TestWildcardCopier(t *testing.T) {
	test.SetLogLevel(t, slog.LevelError)
	fixture := test.NewS3ServerFixture(t)
	defer fixture.Teardown()
	var copyCalls []test.CopyCall
	fixture.CopyTarget("dest-bucket", &copyCalls)

	copier := s3copy.NewWildcardCopier(newTestClient(t, fixture), logging.Default)
	err := copier.CopyPrefix(context.Background(), s3copy.Spec{
		SourceBucket: "source-bucket",
		SourcePrefix: "source-folder",
		DestBucket:   "dest-bucket",
		DestPrefix:   "dest-folder",
	})
	require.NoError(t, err)

	require.Len(t, copyCalls, 1)
	assert.Equal(t, "dest-folder/", copyCalls[0].Key)
	assert.Equal(t, "source-bucket/source-folder/*", copyCalls[0].CopySource)
}

func TestWildcardCopier_BackendError(t *testing.T) {
	test.SetLogLevel(t, slog.LevelError)
	fixture := test.NewS3ServerFixture(t)
	defer fixture.Teardown()
	fixture.FailBucket("dest-bucket", http.StatusForbidden, "AccessDenied")

	copier := s3copy.NewWildcardCopier(newTestClient(t, fixture), logging.Default)
	err := copier.CopyPrefix(context.Background(), s3copy.Spec{
		SourceBucket: "source-bucket",
		SourcePrefix: "source-folder",
		DestBucket:   "dest-bucket",
		DestPrefix:   "dest-folder",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "AccessDenied")
}

func TestPrefixCopier(t *testing.T) {
	test.SetLogLevel(t, slog.LevelError)
	fixture := test.NewS3ServerFixture(t)
	defer fixture.Teardown()
	fixture.ObjectList("source-bucket", "source-folder/",
		test.ListEntry{Key: "source-folder/a.txt", Size: 10},
		test.ListEntry{Key: "source-folder/nested/b.txt", Size: 20},
	)
	var copyCalls []test.CopyCall
	fixture.CopyTarget("dest-bucket", &copyCalls)

	copier := s3copy.NewPrefixCopier(newTestClient(t, fixture), logging.Default)
	err := copier.CopyPrefix(context.Background(), s3copy.Spec{
		SourceBucket: "source-bucket",
		SourcePrefix: "source-folder",
		DestBucket:   "dest-bucket",
		DestPrefix:   "dest-folder///",
	})
	require.NoError(t, err)

	require.Len(t, copyCalls, 2)
	assert.Equal(t, "dest-folder/a.txt", copyCalls[0].Key)
	assert.Equal(t, "source-bucket/source-folder/a.txt", copyCalls[0].CopySource)
	assert.Equal(t, "dest-folder/nested/b.txt", copyCalls[1].Key)
	assert.Equal(t, "source-bucket/source-folder/nested/b.txt", copyCalls[1].CopySource)
}

func TestPrefixCopier_ListError(t *testing.T) {
	test.SetLogLevel(t, slog.LevelError)
	fixture := test.NewS3ServerFixture(t)
	defer fixture.Teardown()
	fixture.FailBucket("source-bucket", http.StatusForbidden, "AccessDenied")

	copier := s3copy.NewPrefixCopier(newTestClient(t, fixture), logging.Default)
	err := copier.CopyPrefix(context.Background(), s3copy.Spec{
		SourceBucket: "source-bucket",
		SourcePrefix: "source-folder",
		DestBucket:   "dest-bucket",
		DestPrefix:   "dest-folder",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "error listing objects")
}

func newTestClient(t *testing.T, fixture *test.S3ServerFixture) *s3.Client {
	endpoints := test.NewAWSEndpoints(t).WithS3(fixture.Server.URL)
	awsConfig := endpoints.Config(context.Background(), false)
	return s3.NewFromConfig(awsConfig)
}

package rowcount

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/parquet-go/parquet-go"
)

const parquetSuffix = ".parquet"

// Aggregator sums the declared row counts of every parquet file under an S3
// prefix. Only footer metadata is read; file contents are never downloaded.
type Aggregator struct {
	s3     *s3.Client
	logger *slog.Logger
}

func NewAggregator(client *s3.Client, logger *slog.Logger) *Aggregator {
	return &Aggregator{s3: client, logger: logger}
}

// TotalRows returns the sum of row counts over all objects under the prefix
// whose keys end in ".parquet". No matching objects is a normal outcome and
// yields 0. A metadata read failure on any single file fails the whole
// aggregation.
func (a *Aggregator) TotalRows(ctx context.Context, bucket, prefix string) (int64, error) {
	var total int64
	files := 0
	listInput := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}
	var continuationToken *string
	for hasNextPage := true; hasNextPage; hasNextPage = continuationToken != nil {
		listInput.ContinuationToken = continuationToken
		listOut, err := a.s3.ListObjectsV2(ctx, listInput)
		if err != nil {
			return 0, fmt.Errorf("error listing objects from bucket %s under prefix %s: %w", bucket, prefix, err)
		}
		for _, object := range listOut.Contents {
			key := aws.ToString(object.Key)
			if !strings.HasSuffix(key, parquetSuffix) {
				continue
			}
			rows, err := a.fileRowCount(ctx, bucket, key, aws.ToInt64(object.Size))
			if err != nil {
				return 0, err
			}
			a.logger.Info("read row count", slog.String("key", key), slog.Int64("rows", rows))
			total += rows
			files++
		}
		continuationToken = nil
		if aws.ToBool(listOut.IsTruncated) {
			continuationToken = listOut.NextContinuationToken
		}
	}
	a.logger.Info("row count aggregation complete",
		slog.Int("files", files),
		slog.Int64("totalRows", total))
	return total, nil
}

func (a *Aggregator) fileRowCount(ctx context.Context, bucket, key string, size int64) (int64, error) {
	reader := &objectReaderAt{ctx: ctx, s3: a.s3, bucket: bucket, key: key}
	// Row counts live in the footer; page indexes and bloom filters would
	// trigger extra ranged reads for nothing.
	file, err := parquet.OpenFile(reader, size,
		parquet.SkipPageIndex(true),
		parquet.SkipBloomFilters(true))
	if err != nil {
		return 0, fmt.Errorf("error reading parquet metadata of %s/%s: %w", bucket, key, err)
	}
	return file.NumRows(), nil
}

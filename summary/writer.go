package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const dateLayout = "20060102"

// Writer uploads a dated, single-line row count summary object. Each run
// creates a new object named by date; a second run on the same day simply
// overwrites it.
type Writer struct {
	s3     *s3.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewWriter(client *s3.Client, logger *slog.Logger) *Writer {
	return &Writer{s3: client, logger: logger, now: time.Now}
}

// Key returns the summary object key for the given prefix and date.
func Key(prefix string, date time.Time) string {
	return fmt.Sprintf("%s/%s_row_count.txt", strings.TrimRight(prefix, "/"), date.Format(dateLayout))
}

// Write uploads the line "<YYYYMMDD>, <rowCount>" (no trailing newline) to
// {prefix}/{YYYYMMDD}_row_count.txt in the given bucket.
func (w *Writer) Write(ctx context.Context, bucket, prefix string, rowCount int64) error {
	date := w.now().Format(dateLayout)
	key := Key(prefix, w.now())
	line := fmt.Sprintf("%s, %d", date, rowCount)
	_, err := w.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   strings.NewReader(line),
	})
	if err != nil {
		w.logger.Error("error uploading row count summary",
			slog.String("key", key),
			slog.Any("error", err))
		return fmt.Errorf("error uploading row count summary to %s/%s: %w", bucket, key, err)
	}
	w.logger.Info("row count summary written",
		slog.String("key", key),
		slog.Int64("rowCount", rowCount))
	return nil
}

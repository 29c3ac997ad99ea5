package secondfield

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Extractor reads a single object and pulls the second comma-separated field
// from its first line.
type Extractor struct {
	s3     *s3.Client
	logger *slog.Logger
}

func NewExtractor(client *s3.Client, logger *slog.Logger) *Extractor {
	return &Extractor{s3: client, logger: logger}
}

// SecondField downloads the object and returns the second comma-separated
// field of its first line, trimmed of surrounding whitespace. A first line
// with fewer than two fields is a normal outcome, reported as found == false
// with a nil error. Download and read failures are returned as errors.
func (e *Extractor) SecondField(ctx context.Context, bucket, key string) (value string, found bool, err error) {
	out, err := e.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		e.logger.Error("error reading file from S3", slog.Any("error", err))
		return "", false, fmt.Errorf("error reading object %s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()
	content, err := io.ReadAll(out.Body)
	if err != nil {
		e.logger.Error("error reading file from S3", slog.Any("error", err))
		return "", false, fmt.Errorf("error reading body of object %s/%s: %w", bucket, key, err)
	}

	line := strings.TrimSpace(string(content))
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		e.logger.Info("no second comma-separated field in first line", slog.String("key", key))
		return "", false, nil
	}
	return strings.TrimSpace(fields[1]), true, nil
}

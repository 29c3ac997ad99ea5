package s3copy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Copier copies every object under a source prefix to a destination prefix.
type Copier interface {
	CopyPrefix(ctx context.Context, spec Spec) error
}

// Mode selects a Copier implementation.
type Mode string

const (
	// ModeWildcard issues a single CopyObject call with a wildcard-suffixed
	// source key.
	ModeWildcard Mode = "wildcard"
	// ModeList enumerates the source prefix and copies object by object.
	ModeList Mode = "list"
)

// NewCopier returns the Copier for the given mode, defaulting to the
// wildcard copier for any unrecognized mode.
func NewCopier(mode Mode, client *s3.Client, logger *slog.Logger) Copier {
	if mode == ModeList {
		return NewPrefixCopier(client, logger)
	}
	return NewWildcardCopier(client, logger)
}

// WildcardCopier copies a prefix with one CopyObject call whose source key
// ends in "/*". This relies entirely on the backend honoring wildcard copy
// sources, which plain S3 does not guarantee; PrefixCopier is the
// enumerate-and-copy alternative.
type WildcardCopier struct {
	s3     *s3.Client
	logger *slog.Logger
}

func NewWildcardCopier(client *s3.Client, logger *slog.Logger) *WildcardCopier {
	return &WildcardCopier{s3: client, logger: logger}
}

func (c *WildcardCopier) CopyPrefix(ctx context.Context, spec Spec) error {
	destPrefix := spec.NormalizedDestPrefix()
	params := s3.CopyObjectInput{
		Bucket:     aws.String(spec.DestBucket),
		Key:        aws.String(destPrefix),
		CopySource: aws.String(escapeCopySource(spec.WildcardSource())),
	}
	if _, err := c.s3.CopyObject(ctx, &params); err != nil {
		c.logger.Error("error during S3 copy operation", slog.Any("error", err))
		return err
	}
	c.logger.Info("copy operation successful",
		slog.String("source", spec.WildcardSource()),
		slog.String("destination", fmt.Sprintf("%s/%s", spec.DestBucket, destPrefix)))
	return nil
}

// PrefixCopier lists every object under the source prefix and issues one
// CopyObject call per object, remapping keys onto the destination prefix.
// The first failure aborts the copy; objects already copied are left in
// place.
type PrefixCopier struct {
	s3     *s3.Client
	logger *slog.Logger
}

func NewPrefixCopier(client *s3.Client, logger *slog.Logger) *PrefixCopier {
	return &PrefixCopier{s3: client, logger: logger}
}

func (c *PrefixCopier) CopyPrefix(ctx context.Context, spec Spec) error {
	destPrefix := spec.NormalizedDestPrefix()
	sourcePrefix := strings.TrimRight(spec.SourcePrefix, "/") + "/"
	listInput := &s3.ListObjectsV2Input{
		Bucket: aws.String(spec.SourceBucket),
		Prefix: aws.String(sourcePrefix),
	}
	copied := 0
	var continuationToken *string
	for hasNextPage := true; hasNextPage; hasNextPage = continuationToken != nil {
		listInput.ContinuationToken = continuationToken
		listOut, err := c.s3.ListObjectsV2(ctx, listInput)
		if err != nil {
			c.logger.Error("error during S3 copy operation", slog.Any("error", err))
			return fmt.Errorf("error listing objects from bucket %s under prefix %s: %w",
				spec.SourceBucket, sourcePrefix, err)
		}
		for _, object := range listOut.Contents {
			sourceKey := aws.ToString(object.Key)
			destKey := destPrefix + strings.TrimPrefix(sourceKey, sourcePrefix)
			params := s3.CopyObjectInput{
				Bucket:     aws.String(spec.DestBucket),
				Key:        aws.String(destKey),
				CopySource: aws.String(escapeCopySource(spec.SourceBucket + "/" + sourceKey)),
			}
			if _, err := c.s3.CopyObject(ctx, &params); err != nil {
				c.logger.Error("error during S3 copy operation",
					slog.String("key", sourceKey),
					slog.Any("error", err))
				return fmt.Errorf("error copying object %s: %w", sourceKey, err)
			}
			copied++
		}
		continuationToken = nil
		if aws.ToBool(listOut.IsTruncated) {
			continuationToken = listOut.NextContinuationToken
		}
	}
	c.logger.Info("copy operation successful",
		slog.Int("objects", copied),
		slog.String("source", fmt.Sprintf("%s/%s", spec.SourceBucket, sourcePrefix)),
		slog.String("destination", fmt.Sprintf("%s/%s", spec.DestBucket, destPrefix)))
	return nil
}

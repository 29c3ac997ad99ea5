package rowcount

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectReaderAt adapts ranged GetObject calls to io.ReaderAt so that parquet
// footers can be read without downloading whole objects. Each ReadAt issues
// one GetObject with a byte range.
type objectReaderAt struct {
	ctx    context.Context
	s3     *s3.Client
	bucket string
	key    string
}

func (r *objectReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	objRange := fmt.Sprintf("bytes=%d-%d", off, off+int64(len(p))-1)
	out, err := r.s3.GetObject(r.ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
		Range:  aws.String(objRange),
	})
	if err != nil {
		return 0, fmt.Errorf("error reading %s of %s/%s: %w", objRange, r.bucket, r.key, err)
	}
	defer out.Body.Close()
	n, err := io.ReadFull(out.Body, p)
	if err == io.ErrUnexpectedEOF {
		return n, io.EOF
	}
	return n, err
}

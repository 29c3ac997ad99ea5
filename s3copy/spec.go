package s3copy

import (
	"fmt"
	"strings"

	"github.com/aws/smithy-go/encoding/httpbinding"
)

// Spec describes a prefix-to-prefix copy between two S3 locations.
type Spec struct {
	SourceBucket string
	SourcePrefix string
	DestBucket   string
	DestPrefix   string
}

// NormalizedDestPrefix strips any trailing separators from the destination
// prefix and appends exactly one. The result is stable under repeated
// normalization.
func (s Spec) NormalizedDestPrefix() string {
	return strings.TrimRight(s.DestPrefix, "/") + "/"
}

// WildcardSource returns the CopySource value for the single-call copy: the
// source bucket and prefix with a "/*" suffix.
func (s Spec) WildcardSource() string {
	return fmt.Sprintf("%s/%s/*", s.SourceBucket, s.SourcePrefix)
}

// escapeCopySource escapes a copy source for the x-amz-copy-source header.
// httpbinding.EscapePath matches what S3 expects here; the net/url escape
// functions produce 404s for some file names.
func escapeCopySource(copySource string) string {
	return httpbinding.EscapePath(copySource, false)
}

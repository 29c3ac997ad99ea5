package models

// CopyRequest is the JSON body of a copy-s3-data request. All four fields
// are required; binding failures are rejected before any S3 call is made.
// The source and dest keys are treated as prefixes by the copier.
type CopyRequest struct {
	SourceBucket string `json:"source_bucket" binding:"required"`
	SourceKey    string `json:"source_key" binding:"required"`
	DestBucket   string `json:"dest_bucket" binding:"required"`
	DestKey      string `json:"dest_key" binding:"required"`
}

package test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"

	"github.com/stretchr/testify/require"
)

// S3ServerFixture is an httptest server that speaks just enough of the S3
// REST protocol (path-style) for the copy, list, get and put calls this
// module makes. Handlers are registered per bucket; any request that no
// handler covers fails the test.
type S3ServerFixture struct {
	TestingT require.TestingT
	Server   *httptest.Server
	Mux      *http.ServeMux
}

func NewS3ServerFixture(t require.TestingT) *S3ServerFixture {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	mux.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		require.FailNowf(t, "unhandled S3 request; if this is an expected request, add a handler to this fixture",
			"method: %s, path: %s, query params: %s", request.Method, request.URL.Path, request.URL.Query())
	})
	return &S3ServerFixture{
		TestingT: t,
		Server:   server,
		Mux:      mux,
	}
}

func (f *S3ServerFixture) Teardown() {
	f.Server.Close()
}

// CopyCall records one CopyObject request seen by the fixture.
type CopyCall struct {
	// Key is the destination key of the copy.
	Key string
	// CopySource is the decoded x-amz-copy-source header.
	CopySource string
}

// CopyTarget accepts CopyObject requests for any key in the given bucket and
// appends a CopyCall per request to calls.
func (f *S3ServerFixture) CopyTarget(bucket string, calls *[]CopyCall) {
	f.Mux.HandleFunc("/"+bucket+"/", func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(f.TestingT, http.MethodPut, request.Method)
		copySource, err := url.PathUnescape(request.Header.Get("x-amz-copy-source"))
		require.NoError(f.TestingT, err)
		*calls = append(*calls, CopyCall{
			Key:        strings.TrimPrefix(request.URL.Path, "/"+bucket+"/"),
			CopySource: copySource,
		})
		writer.Header().Set("Content-Type", "application/xml")
		_, err = fmt.Fprint(writer,
			`<CopyObjectResult><ETag>"d41d8cd98f00b204e9800998ecf8427e"</ETag><LastModified>2024-01-01T00:00:00Z</LastModified></CopyObjectResult>`)
		require.NoError(f.TestingT, err)
	})
}

// PutCall records one PutObject request seen by the fixture.
type PutCall struct {
	Key  string
	Body string
}

// PutTarget accepts PutObject requests for any key in the given bucket and
// appends a PutCall per request to calls.
func (f *S3ServerFixture) PutTarget(bucket string, calls *[]PutCall) {
	f.Mux.HandleFunc("/"+bucket+"/", func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(f.TestingT, http.MethodPut, request.Method)
		body, err := io.ReadAll(request.Body)
		require.NoError(f.TestingT, err)
		*calls = append(*calls, PutCall{
			Key:  strings.TrimPrefix(request.URL.Path, "/"+bucket+"/"),
			Body: string(body),
		})
	})
}

// FailBucket answers every request to the bucket with the given S3 error.
// Use a non-retryable code like AccessDenied to keep tests fast.
func (f *S3ServerFixture) FailBucket(bucket string, statusCode int, code string) {
	handler := func(writer http.ResponseWriter, request *http.Request) {
		writeS3Error(writer, statusCode, code)
	}
	f.Mux.HandleFunc("/"+bucket, handler)
	f.Mux.HandleFunc("/"+bucket+"/", handler)
}

// Object serves GET requests for one object, honoring byte ranges the way S3
// does.
func (f *S3ServerFixture) Object(bucket, key string, content []byte) {
	f.Mux.HandleFunc("/"+bucket+"/"+key, func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(f.TestingT, http.MethodGet, request.Method)
		rangeHeader := request.Header.Get("Range")
		if rangeHeader == "" {
			writer.Header().Set("Content-Length", strconv.Itoa(len(content)))
			_, err := writer.Write(content)
			require.NoError(f.TestingT, err)
			return
		}
		start, end := parseByteRange(f.TestingT, rangeHeader, int64(len(content)))
		part := content[start : end+1]
		writer.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, len(content)))
		writer.Header().Set("Content-Length", strconv.Itoa(len(part)))
		writer.WriteHeader(http.StatusPartialContent)
		_, err := writer.Write(part)
		require.NoError(f.TestingT, err)
	})
}

// ObjectError answers GET requests for one object with the given S3 error.
func (f *S3ServerFixture) ObjectError(bucket, key string, statusCode int, code string) {
	f.Mux.HandleFunc("/"+bucket+"/"+key, func(writer http.ResponseWriter, request *http.Request) {
		writeS3Error(writer, statusCode, code)
	})
}

// ListEntry is one object in a canned ListObjectsV2 response.
type ListEntry struct {
	Key  string
	Size int64
}

// ObjectList serves ListObjectsV2 for the bucket with a single page of
// entries, asserting that the request carries the expected prefix.
func (f *S3ServerFixture) ObjectList(bucket, expectedPrefix string, entries ...ListEntry) {
	handler := func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(f.TestingT, http.MethodGet, request.Method)
		require.Equal(f.TestingT, "2", request.URL.Query().Get("list-type"))
		require.Equal(f.TestingT, expectedPrefix, request.URL.Query().Get("prefix"))
		var contents strings.Builder
		for _, entry := range entries {
			fmt.Fprintf(&contents,
				`<Contents><Key>%s</Key><LastModified>2024-01-01T00:00:00.000Z</LastModified><ETag>&quot;0&quot;</ETag><Size>%d</Size><StorageClass>STANDARD</StorageClass></Contents>`,
				entry.Key, entry.Size)
		}
		writer.Header().Set("Content-Type", "application/xml")
		_, err := fmt.Fprintf(writer,
			`<?xml version="1.0" encoding="UTF-8"?><ListBucketResult><Name>%s</Name><Prefix>%s</Prefix><KeyCount>%d</KeyCount><MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated>%s</ListBucketResult>`,
			bucket, expectedPrefix, len(entries), contents.String())
		require.NoError(f.TestingT, err)
	}
	// The SDK serializes path-style ListObjectsV2 with a trailing slash, but
	// cover both forms.
	f.Mux.HandleFunc("/"+bucket, handler)
	f.Mux.HandleFunc("/"+bucket+"/", handler)
}

func writeS3Error(writer http.ResponseWriter, statusCode int, code string) {
	writer.Header().Set("Content-Type", "application/xml")
	writer.WriteHeader(statusCode)
	fmt.Fprintf(writer,
		`<?xml version="1.0" encoding="UTF-8"?><Error><Code>%s</Code><Message>%s</Message><RequestId>test-request</RequestId></Error>`,
		code, code)
}

func parseByteRange(t require.TestingT, rangeHeader string, size int64) (int64, int64) {
	spec, found := strings.CutPrefix(rangeHeader, "bytes=")
	require.True(t, found, "unexpected Range header format: %s", rangeHeader)
	startStr, endStr, found := strings.Cut(spec, "-")
	require.True(t, found, "unexpected Range header format: %s", rangeHeader)
	start, err := strconv.ParseInt(startStr, 10, 64)
	require.NoError(t, err)
	end, err := strconv.ParseInt(endStr, 10, 64)
	require.NoError(t, err)
	if end > size-1 {
		end = size - 1
	}
	require.LessOrEqual(t, start, end, "unsatisfiable Range header: %s", rangeHeader)
	return start, end
}

package config

import (
	"fmt"
	"os"
)

// Environment variable keys for the standalone binaries and the server.
const (
	RowCountBucketKey    = "ROW_COUNT_BUCKET"
	RowCountPrefixKey    = "ROW_COUNT_PREFIX"
	SummaryPrefixKey     = "SUMMARY_PREFIX"
	SecondFieldBucketKey = "SECOND_FIELD_BUCKET"
	SecondFieldObjectKey = "SECOND_FIELD_KEY"
	CopyModeKey          = "COPY_MODE"
)

// NonEmptyFromEnvVar looks up value of env var with the given key and returns an error if the value is not set or
// is empty. Otherwise, returns the value.
func NonEmptyFromEnvVar(key string) (string, error) {
	if value, set := os.LookupEnv(key); !set {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	} else if len(value) == 0 {
		return "", fmt.Errorf("empty value set for environment variable %s", key)
	} else {
		return value, nil
	}
}

// RowCountEnv holds the environment-driven settings of the row count binary.
type RowCountEnv struct {
	Bucket        string
	Prefix        string
	SummaryPrefix string
}

func LookupRowCountEnv() (*RowCountEnv, error) {
	bucket, err := NonEmptyFromEnvVar(RowCountBucketKey)
	if err != nil {
		return nil, err
	}
	prefix, err := NonEmptyFromEnvVar(RowCountPrefixKey)
	if err != nil {
		return nil, err
	}
	summaryPrefix, err := NonEmptyFromEnvVar(SummaryPrefixKey)
	if err != nil {
		return nil, err
	}
	return &RowCountEnv{
		Bucket:        bucket,
		Prefix:        prefix,
		SummaryPrefix: summaryPrefix,
	}, nil
}

// SecondFieldEnv holds the environment-driven settings of the second field binary.
type SecondFieldEnv struct {
	Bucket string
	Key    string
}

func LookupSecondFieldEnv() (*SecondFieldEnv, error) {
	bucket, err := NonEmptyFromEnvVar(SecondFieldBucketKey)
	if err != nil {
		return nil, err
	}
	key, err := NonEmptyFromEnvVar(SecondFieldObjectKey)
	if err != nil {
		return nil, err
	}
	return &SecondFieldEnv{Bucket: bucket, Key: key}, nil
}

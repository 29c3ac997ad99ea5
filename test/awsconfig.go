package test

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awslogging "github.com/aws/smithy-go/logging"
	"github.com/stretchr/testify/assert"
)

// AWSEndpoints maps AWS service IDs to test endpoints, usually httptest
// servers standing in for the real services.
type AWSEndpoints struct {
	testingT            assert.TestingT
	serviceIDToEndpoint map[string]aws.Endpoint
}

func NewAWSEndpoints(t assert.TestingT) *AWSEndpoints {
	return &AWSEndpoints{
		testingT:            t,
		serviceIDToEndpoint: map[string]aws.Endpoint{},
	}
}

// WithS3 routes S3 calls to the given URL. HostnameImmutable forces
// path-style addressing so that bucket names end up in request paths rather
// than in DNS.
func (e *AWSEndpoints) WithS3(url string) *AWSEndpoints {
	e.serviceIDToEndpoint[s3.ServiceID] = aws.Endpoint{URL: url, HostnameImmutable: true}
	return e
}

// Config returns an aws.Config with static test credentials that resolves
// only the endpoints registered on e. Calls to any other service fail.
func (e *AWSEndpoints) Config(ctx context.Context, logRequests bool) aws.Config {
	optFns := []func(options *config.LoadOptions) error{
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test-key", "test-secret", "")),
		config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			if endpoint, ok := e.serviceIDToEndpoint[service]; ok {
				return endpoint, nil
			}
			return aws.Endpoint{}, fmt.Errorf("no test endpoint has been set for AWS serviceID: %s", service)
		})),
	}
	if logRequests {
		awsLogger := awslogging.NewStandardLogger(log.Writer())
		optFns = append(optFns, config.WithLogger(awsLogger), config.WithClientLogMode(aws.LogRequestWithBody))
	}
	awsConfig, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		assert.FailNow(e.testingT, "error creating AWS config", err)
	}
	return awsConfig
}

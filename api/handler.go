package api

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AvinashKumarSP/copy-service/awsconfig"
	"github.com/AvinashKumarSP/copy-service/config"
	"github.com/AvinashKumarSP/copy-service/logging"
	"github.com/AvinashKumarSP/copy-service/models"
	"github.com/AvinashKumarSP/copy-service/s3copy"
)

const (
	// AcceptedMessage is returned with status 202. The copy is awaited
	// synchronously before responding; there is no queued background job
	// behind the "initiated" wording.
	AcceptedMessage = "Copy operation initiated successfully."
	// InternalErrorDetail is the fixed client-facing message for any backend
	// failure. Error detail stays in the server-side logs.
	InternalErrorDetail = "An unexpected error occurred. Please try again later."
)

// AWSConfigFactory supplies the AWS config used to build the per-request S3
// client. Tests override it with a config pointing at fake endpoints.
var AWSConfigFactory = awsconfig.NewFactory()

// NewRouter returns a gin engine with the copy route registered.
func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.POST("/copy-s3-data/", InitiateCopy)
	return router
}

// InitiateCopy handles POST /copy-s3-data/.
func InitiateCopy(c *gin.Context) {
	var request models.CopyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	requestID := uuid.NewString()
	logger := logging.Default.With(slog.String("requestID", requestID),
		slog.Group("copy",
			slog.String("sourceBucket", request.SourceBucket),
			slog.String("sourceKey", request.SourceKey),
			slog.String("destBucket", request.DestBucket),
			slog.String("destKey", request.DestKey)))
	logger.Info("handling copy request")

	ctx := c.Request.Context()
	awsConfig, err := AWSConfigFactory.Get(ctx)
	if err != nil {
		logger.Error("error getting AWS config", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": InternalErrorDetail})
		return
	}

	copier := s3copy.NewCopier(copyMode(), s3.NewFromConfig(*awsConfig), logger)
	spec := s3copy.Spec{
		SourceBucket: request.SourceBucket,
		SourcePrefix: request.SourceKey,
		DestBucket:   request.DestBucket,
		DestPrefix:   request.DestKey,
	}
	if err := copier.CopyPrefix(ctx, spec); err != nil {
		logger.Error("error occurred while initiating S3 copy operation", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": InternalErrorDetail})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": AcceptedMessage})
}

func copyMode() s3copy.Mode {
	if os.Getenv(config.CopyModeKey) == string(s3copy.ModeList) {
		return s3copy.ModeList
	}
	return s3copy.ModeWildcard
}

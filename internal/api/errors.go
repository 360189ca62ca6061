package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/alcyxob/fitness-ai/internal/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	msgInternal = "Internal Server Error"

	// used when a retryable error carries no hint of its own
	defaultRetryAfter = 30 * time.Second
)

// respondWithError hands err to ErrorHandler and stops the chain.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler writes the last error attached to the context as
// {"message": ...} with the status of its kind.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var derr *domain.Error
		if !errors.As(err, &derr) {
			log.WithField("requestId", c.GetString(ContextRequestIDKey)).Errorf("unhandled error: %s", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternal})
			return
		}

		status := statusForKind(derr.Kind)
		if status >= http.StatusInternalServerError {
			log.WithFields(log.Fields{
				"requestId": c.GetString(ContextRequestIDKey),
				"kind":      derr.Kind.String(),
			}).Errorf("%s %s: %s", c.Request.Method, c.Request.URL.Path, err)
		}
		if derr.Retryable {
			c.Header("Retry-After", retryAfterSeconds(derr.RetryAfter))
		}
		c.JSON(status, gin.H{"message": derr.Message})
	}
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	case domain.KindGeneration, domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func retryAfterSeconds(d time.Duration) string {
	if d <= 0 {
		d = defaultRetryAfter
	}
	return strconv.Itoa(int(math.Ceil(d.Seconds())))
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/alcyxob/fitness-ai/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidBody   = "Request body must be a JSON object"
	msgMalformedBody = "Request body is not valid JSON"
	msgWrongTypeFmt  = "%s has the wrong type"
)

// bindJSON decodes the body into dst. An empty body leaves dst zeroed so the
// service reports the missing fields.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	respondWithError(c, domain.Validation(bodyErrorMessage(err)))
	return false
}

func bodyErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		// an empty Field means the top-level value itself was not an object
		if typeErr.Field == "" {
			return msgInvalidBody
		}
		return fmt.Sprintf(msgWrongTypeFmt, typeErr.Field)
	}
	return msgMalformedBody
}

// pathID parses a numeric path parameter. Anything else cannot name a stored
// row, so the caller answers with its not-found message.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Package httperror maps service errors to HTTP responses.
package httperror

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shortlink-be/internal/models"
	"shortlink-be/internal/service"
)

const internalMessage = "Internal server error"

var clientErrors = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrMissingBody, http.StatusBadRequest, "Body is required"},
	{service.ErrMalformedBody, http.StatusBadRequest, "Body is not valid JSON"},
	{service.ErrMissingField, http.StatusBadRequest, "URL is required"},
	{service.ErrInvalidURL, http.StatusBadRequest, "URL is not valid"},
	{service.ErrInvalidPath, http.StatusBadRequest, "Path is not valid"},
	{service.ErrNotFound, http.StatusNotFound, "Path not found"},
}

// Status returns the HTTP status and public message for err. Anything not
// recognised as a client error is a 500 with a generic message.
func Status(err error) (int, string) {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			return ce.status, ce.message
		}
	}
	return http.StatusInternalServerError, internalMessage
}

// Abort writes the JSON error response for err and stops the handler chain.
// Server errors are logged with the request route.
func Abort(c *gin.Context, logger *slog.Logger, err error) {
	status, message := Status(err)
	if status >= http.StatusInternalServerError {
		attrs := []any{"method", c.Request.Method, "route", c.FullPath(), "error", err}
		var storageErr *service.StorageError
		if errors.As(err, &storageErr) {
			attrs = append(attrs, "op", storageErr.Op)
		}
		logger.Error("request failed", attrs...)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: message})
}

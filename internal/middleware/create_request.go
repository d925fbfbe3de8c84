package middleware

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"shortlink-be/internal/httperror"
	"shortlink-be/internal/models"
	"shortlink-be/internal/service"
)

const createURLRequestKey = "create_url_request"

// BindCreateURLRequest reads the POST / body. It returns ErrMissingBody for
// an empty or null body, ErrMalformedBody for invalid JSON and
// ErrMissingField when the url field is absent.
func BindCreateURLRequest(c *gin.Context) (models.CreateURLRequest, error) {
	var req models.CreateURLRequest

	raw, err := c.GetRawData()
	if err != nil {
		return req, fmt.Errorf("%w: %v", service.ErrMissingBody, err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return req, service.ErrMissingBody
	}

	if err := binding.JSON.BindBody(raw, &req); err != nil {
		return req, fmt.Errorf("%w: %v", service.ErrMalformedBody, err)
	}
	if req.URL == nil {
		return req, service.ErrMissingField
	}
	return req, nil
}

// RequireCreateURLRequest rejects requests whose body fails
// BindCreateURLRequest and stores the parsed request for the handler.
func RequireCreateURLRequest(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := BindCreateURLRequest(c)
		if err != nil {
			httperror.Abort(c, logger, err)
			return
		}
		c.Set(createURLRequestKey, req)
		c.Next()
	}
}

// CreateURLRequestFrom returns the request stored by RequireCreateURLRequest.
func CreateURLRequestFrom(c *gin.Context) (models.CreateURLRequest, bool) {
	v, ok := c.Get(createURLRequestKey)
	if !ok {
		return models.CreateURLRequest{}, false
	}
	req, ok := v.(models.CreateURLRequest)
	return req, ok
}

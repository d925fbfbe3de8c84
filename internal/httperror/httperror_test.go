package httperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink-be/internal/models"
	"shortlink-be/internal/service"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{err: service.ErrMissingBody, status: http.StatusBadRequest, message: "Body is required"},
		{err: service.ErrMalformedBody, status: http.StatusBadRequest, message: "Body is not valid JSON"},
		{err: service.ErrMissingField, status: http.StatusBadRequest, message: "URL is required"},
		{err: fmt.Errorf("%w: missing host", service.ErrInvalidURL), status: http.StatusBadRequest, message: "URL is not valid"},
		{err: service.ErrInvalidPath, status: http.StatusBadRequest, message: "Path is not valid"},
		{err: service.ErrNotFound, status: http.StatusNotFound, message: "Path not found"},
		{err: service.ErrPathExhausted, status: http.StatusInternalServerError, message: internalMessage},
		{err: &service.StorageError{Op: "find path", Err: errors.New("down")}, status: http.StatusInternalServerError, message: internalMessage},
		{err: errors.New("boom"), status: http.StatusInternalServerError, message: internalMessage},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, message := Status(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/abcdefg", nil)

	Abort(c, slog.New(slog.NewTextHandler(io.Discard, nil)), &service.StorageError{Op: "find path", Err: errors.New("down")})

	require.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, internalMessage, body.Error)
}

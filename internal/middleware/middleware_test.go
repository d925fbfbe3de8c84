package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink-be/internal/models"
	"shortlink-be/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(body string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindCreateURLRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{name: "valid", body: `{"url":"https://example.com"}`, want: "https://example.com"},
		{name: "extra fields ignored", body: `{"url":"https://example.com","path":"abcdefg"}`, want: "https://example.com"},
		{name: "empty string url is present", body: `{"url":""}`, want: ""},
		{name: "no body", body: "", wantErr: service.ErrMissingBody},
		{name: "whitespace body", body: "  \n", wantErr: service.ErrMissingBody},
		{name: "null body", body: "null", wantErr: service.ErrMissingBody},
		{name: "empty object", body: `{}`, wantErr: service.ErrMissingField},
		{name: "null url", body: `{"url":null}`, wantErr: service.ErrMissingField},
		{name: "malformed", body: `{"url":`, wantErr: service.ErrMalformedBody},
		{name: "non-string url", body: `{"url":42}`, wantErr: service.ErrMalformedBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BindCreateURLRequest(newContext(tt.body))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, req.URL)
			assert.Equal(t, tt.want, *req.URL)
		})
	}
}

func TestRequireCreateURLRequest(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.POST("/", RequireCreateURLRequest(logger), func(c *gin.Context) {
		req, ok := CreateURLRequestFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"got": *req.URL})
	})

	t.Run("passes parsed request on", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"url":"https://example.com"}`)))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"got":"https://example.com"}`, w.Body.String())
	})

	t.Run("rejects missing field", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`)))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "URL is required", body.Error)
	})

	t.Run("rejects missing body", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Body is required", body.Error)
	})
}

func TestCreateURLRequestFrom_Missing(t *testing.T) {
	_, ok := CreateURLRequestFrom(newContext(""))
	assert.False(t, ok)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/missing", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Prateek11234/hrms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	var seen string
	r := gin.New()
	r.Use(ContextLogger(zap.New(core)))
	r.GET("/health", func(c *gin.Context) {
		seen = contextutil.GetRequestID(c.Request.Context())
		contextutil.GetLogger(c.Request.Context(), nil).Info("inside handler")
		c.Status(http.StatusOK)
	})

	t.Run("reuses client request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(RequestIDHeader, "REQ-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "REQ-42", seen)
		assert.Equal(t, "REQ-42", w.Header().Get(RequestIDHeader))

		entries := logs.TakeAll()
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, "REQ-42", e.ContextMap()["request_id"])
		}
		assert.Equal(t, "http request", entries[1].Message)
		assert.EqualValues(t, http.StatusOK, entries[1].ContextMap()["status"])
	})

	t.Run("generates one when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})
}

package v1

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareRouter(logs *bytes.Buffer) *gin.Engine {
	logger := logrus.New()
	logger.SetOutput(logs)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), AccessLog(logger))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusBadGateway) })
	return router
}

func TestRequestID_KeepsClientHeader(t *testing.T) {
	var logs bytes.Buffer
	router := newMiddlewareRouter(&logs)

	w := makeRequest(router, http.MethodGet, "/ping", nil, map[string]string{RequestIDHeader: "req-42"})

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	assert.Contains(t, logs.String(), `"request_id":"req-42"`)
}

func TestRequestID_Generated(t *testing.T) {
	var logs bytes.Buffer
	router := newMiddlewareRouter(&logs)

	w := makeRequest(router, http.MethodGet, "/ping", nil)

	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestAccessLog_LevelByStatus(t *testing.T) {
	var logs bytes.Buffer
	router := newMiddlewareRouter(&logs)

	makeRequest(router, http.MethodGet, "/fail", nil)

	assert.Contains(t, logs.String(), `"level":"error"`)
	assert.Contains(t, logs.String(), `"status":502`)
}

func TestRateLimiter_PerKey(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2)

	assert.True(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"))
}

func TestRateLimiter_Unlimited(t *testing.T) {
	limiter := NewRateLimiter(0, 0)

	for i := 0; i < 100; i++ {
		require.True(t, limiter.Allow("a"))
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	limiter.Allow("fresh")
	limiter.Allow("stale")
	limiter.limiters["stale"].lastSeen.Store(time.Now().Add(-time.Hour).UnixNano())

	removed := limiter.Cleanup(10 * time.Minute)

	assert.Equal(t, 1, removed)
	assert.Contains(t, limiter.limiters, "fresh")
	assert.NotContains(t, limiter.limiters, "stale")
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(limiter *LoginRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	return router
}

func TestLoginRateLimiter_BlocksAfterBurst(t *testing.T) {
	router := newRateLimitedRouter(NewLoginRateLimiter(5, 15*time.Minute))

	do := func(ip string) int {
		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":12345"
		router.ServeHTTP(resp, req)

		return resp.Code
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, do("10.0.0.1"), "attempt %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))

	// Another client is unaffected.
	assert.Equal(t, http.StatusOK, do("10.0.0.2"))
}

func TestLoginRateLimiter_EvictsIdleVisitors(t *testing.T) {
	limiter := NewLoginRateLimiter(5, 15*time.Minute)

	assert.True(t, limiter.allow("10.0.0.1"))
	limiter.mu.Lock()
	limiter.visitors["10.0.0.1"].lastSeen = time.Now().Add(-31 * time.Minute)
	limiter.mu.Unlock()

	assert.True(t, limiter.allow("10.0.0.2"))

	limiter.mu.Lock()
	_, stillThere := limiter.visitors["10.0.0.1"]
	limiter.mu.Unlock()
	assert.False(t, stillThere)
}

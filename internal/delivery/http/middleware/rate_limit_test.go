package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLimiterStoreBurstExhaustion(t *testing.T) {
	s := newLimiterStore(RateLimitConfig{Limit: 3, Window: time.Minute})

	for i := 0; i < 3; i++ {
		assert.True(t, s.allow("10.0.0.1"), "request %d within burst", i+1)
	}
	assert.False(t, s.allow("10.0.0.1"))

	// Another IP has its own bucket
	assert.True(t, s.allow("10.0.0.2"))
}

func TestRateLimitFallbackReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/login", RateLimit(RateLimitConfig{Limit: 2, Window: time.Minute, KeyPrefix: "rl:test:"}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for per-IP rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for the Redis counter
	KeyPrefix string
}

// AuthRateLimitConfig returns a strict config for authentication endpoints
func AuthRateLimitConfig(limit, windowSeconds int) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    time.Duration(windowSeconds) * time.Second,
		KeyPrefix: "rl:auth:",
	}
}

// Atomic increment with TTL set on first hit
// KEYS[1] = counter key, ARGV[1] = TTL in seconds
const rateLimitScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// RateLimit limits requests per client IP. Counters live in Redis when it
// is configured; otherwise a per-process token bucket store is used, which
// is good enough for a single instance.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	fallback := newLimiterStore(cfg)
	script := goredis.NewScript(rateLimitScript)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		client := redis.Client()
		if client != nil {
			count, err := script.Run(c.Request.Context(), client,
				[]string{cfg.KeyPrefix + ip},
				int(cfg.Window.Seconds()),
			).Int()
			if err != nil {
				// Fail open: a Redis outage must not take the API down
				logger.Log.Warn("rate limit check failed, allowing request", "error", err)
				c.Next()
				return
			}
			if count > cfg.Limit {
				tooManyRequests(c)
				return
			}
			c.Next()
			return
		}

		if !fallback.allow(ip) {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

func tooManyRequests(c *gin.Context) {
	response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
	c.Abort()
}

// limiterStore is the in-memory fallback: one token bucket per client IP,
// refilling at Limit requests per Window.
type limiterStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterStore(cfg RateLimitConfig) *limiterStore {
	s := &limiterStore{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(float64(cfg.Limit) / cfg.Window.Seconds()),
		burst:    cfg.Limit,
	}
	go s.cleanup()
	return s
}

func (s *limiterStore) allow(ip string) bool {
	s.mu.Lock()
	v, exists := s.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(s.rps, s.burst)}
		s.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	s.mu.Unlock()

	return v.limiter.Allow()
}

func (s *limiterStore) cleanup() {
	for {
		time.Sleep(10 * time.Minute)
		s.mu.Lock()
		for ip, v := range s.visitors {
			if time.Since(v.lastSeen) > 10*time.Minute {
				delete(s.visitors, ip)
			}
		}
		s.mu.Unlock()
	}
}

package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/courtside/trainings-api/internal/api/handler/v1/response"
)

// LoginRateLimiter allows attempts tokens per client IP every window,
// matching the 5-attempts-per-15-minutes login policy. Buckets for quiet
// IPs are dropped after two idle windows.
type LoginRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	limit rate.Limit
	burst int
	ttl   time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLoginRateLimiter(attempts int, window time.Duration) *LoginRateLimiter {
	return &LoginRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(attempts)),
		burst:    attempts,
		ttl:      2 * window,
	}
}

func (l *LoginRateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.allow(ctx.ClientIP()) {
			response.RenderErr(ctx, response.ErrTooManyRequests("too many login attempts, try again later"))

			return
		}

		ctx.Next()
	}
}

func (l *LoginRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	for ip, vis := range l.visitors {
		if now.Sub(vis.lastSeen) > l.ttl {
			delete(l.visitors, ip)
		}
	}

	return v.limiter.Allow()
}

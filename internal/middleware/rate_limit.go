package middleware

import (
	"sync"
	"time"

	"github.com/Prateek11234/hrms/internal/shared/apperror"
	"github.com/Prateek11234/hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// minLimiterIdle is the shortest time a client's bucket is kept after its
// last request.
const minLimiterIdle = 3 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type IPRateLimiter struct {
	ips map[string]*ipLimiter
	mu  *sync.Mutex
	r   rate.Limit // tokens per second
	b   int        // burst

	idle      time.Duration // 0 keeps buckets forever
	lastSweep time.Time
	now       func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:  make(map[string]*ipLimiter),
		mu:   &sync.Mutex{},
		r:    r,
		b:    b,
		idle: limiterIdle(r, b),
		now:  time.Now,
	}
}

// limiterIdle is how long a bucket may sit unused before it is dropped. A
// bucket idle for b/r seconds is full again, so a fresh one behaves the same.
func limiterIdle(r rate.Limit, b int) time.Duration {
	if r <= 0 {
		return 0
	}
	if r == rate.Inf {
		return minLimiterIdle
	}
	refill := time.Duration(float64(b) / float64(r) * float64(time.Second))
	if refill < minLimiterIdle {
		return minLimiterIdle
	}
	return refill
}

func (i *IPRateLimiter) GetLimiter(key string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	i.sweep(now)

	entry, exists := i.ips[key]
	if !exists {
		entry = &ipLimiter{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

// sweep drops idle buckets, at most once per idle period. Callers hold mu.
func (i *IPRateLimiter) sweep(now time.Time) {
	if i.idle == 0 || now.Sub(i.lastSweep) < i.idle {
		return
	}
	i.lastSweep = now
	for key, entry := range i.ips {
		if now.Sub(entry.lastSeen) >= i.idle {
			delete(i.ips, key)
		}
	}
}

// RateLimitByIP allows r requests per second per client IP with bursts of b.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			e := apperror.ErrTooManyRequests
			response.Abort(c, e.HTTPStatus, e.Code, e.Message)
			return
		}
		c.Next()
	}
}

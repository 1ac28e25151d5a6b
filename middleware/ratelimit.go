package middleware

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"pawfect_grooming/config"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	lim  *rate.Limiter
	seen atomic.Int64
}

type rateLimiter struct {
	limiters  sync.Map
	cfg       config.RateLimitConfig
	lastSweep atomic.Int64
	now       func() time.Time
}

func newRateLimiter(cfg config.RateLimitConfig) *rateLimiter {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 10 * time.Minute
	}
	l := &rateLimiter{cfg: cfg, now: time.Now}
	l.lastSweep.Store(l.now().UnixNano())
	return l
}

func (l *rateLimiter) getLimiter(key string) *rate.Limiter {
	now := l.now().UnixNano()
	l.sweep(now)

	if v, ok := l.limiters.Load(key); ok {
		if e, ok := v.(*limiterEntry); ok {
			e.seen.Store(now)
			return e.lim
		}
	}

	burst := l.cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	e := &limiterEntry{lim: rate.NewLimiter(rate.Limit(l.cfg.RPS), burst)}
	e.seen.Store(now)
	actual, loaded := l.limiters.LoadOrStore(key, e)
	if loaded {
		if actualEntry, ok := actual.(*limiterEntry); ok {
			actualEntry.seen.Store(now)
			return actualEntry.lim
		}
	}
	return e.lim
}

// sweep drops limiters idle for longer than IdleTTL, at most once per IdleTTL.
func (l *rateLimiter) sweep(now int64) {
	ttl := int64(l.cfg.IdleTTL)
	last := l.lastSweep.Load()
	if now-last < ttl || !l.lastSweep.CompareAndSwap(last, now) {
		return
	}
	l.limiters.Range(func(key, v any) bool {
		if e, ok := v.(*limiterEntry); ok && now-e.seen.Load() >= ttl {
			l.limiters.Delete(key)
		}
		return true
	})
}

func (l *rateLimiter) size() int {
	n := 0
	l.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// RateLimit throttles requests per client IP.
func RateLimit(cfg config.RateLimitConfig) fiber.Handler {
	l := newRateLimiter(cfg)
	return func(c *fiber.Ctx) error {
		if !l.getLimiter(c.IP()).Allow() {
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests, "Too many requests", errors.New("rate limit exceeded"))
		}
		return c.Next()
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pawfect_grooming/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	app := fiber.New()
	app.Get("/", RateLimit(config.RateLimitConfig{RPS: 0.001, Burst: 2}), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		statuses = append(statuses, resp.StatusCode)
	}

	assert.Equal(t, []int{fiber.StatusNoContent, fiber.StatusNoContent, fiber.StatusTooManyRequests}, statuses)
}

func TestRateLimitEvictsIdleClients(t *testing.T) {
	clock := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	l := newRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 1, IdleTTL: time.Minute})
	l.now = func() time.Time { return clock }
	l.lastSweep.Store(clock.UnixNano())

	first := l.getLimiter("10.0.0.1")
	l.getLimiter("10.0.0.2")
	assert.Equal(t, 2, l.size())
	assert.Same(t, first, l.getLimiter("10.0.0.1"))

	clock = clock.Add(30 * time.Second)
	l.getLimiter("10.0.0.1")

	clock = clock.Add(45 * time.Second)
	l.getLimiter("10.0.0.3")
	assert.Equal(t, 2, l.size(), "10.0.0.2 was idle for over a minute")

	_, ok := l.limiters.Load("10.0.0.2")
	assert.False(t, ok)
	assert.Same(t, first, l.getLimiter("10.0.0.1"))
}

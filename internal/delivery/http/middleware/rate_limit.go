package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimitMiddleware limits requests per client IP. Defaults to 10 per minute.
type RateLimitMiddleware struct {
	instance *limiter.Limiter
}

func NewRateLimitMiddleware(limit int64, period time.Duration) *RateLimitMiddleware {
	if limit <= 0 {
		limit = 10
	}
	if period <= 0 {
		period = time.Minute
	}

	rate := limiter.Rate{Period: period, Limit: limit}
	return &RateLimitMiddleware{instance: limiter.New(memory.NewStore(), rate)}
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		lctx, err := m.instance.Get(c.Context(), c.IP())
		if err != nil {
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}

		c.Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

		if lctx.Reached {
			return NewAppError(fiber.StatusTooManyRequests, "Too many requests, try again later", nil, nil)
		}
		return c.Next()
	}
}

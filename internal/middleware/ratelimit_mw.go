package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"portfolio_api/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RateLimit counts every request against the client's address and answers
// 429 with message once the limiter refuses it. Limiter failures let the
// request through.
func RateLimit(limiter ratelimit.Limiter, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		res, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warn().
				Err(err).
				Str("request_id", c.GetString(RequestIDKey)).
				Str("ip", key).
				Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		retryAfter := res.RetryAfter(time.Now())
		resetSeconds := strconv.Itoa(int(math.Ceil(retryAfter.Seconds())))

		c.Header("RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Header("RateLimit-Reset", resetSeconds)

		if !res.Allowed {
			log.Warn().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("ip", key).
				Str("path", c.Request.URL.Path).
				Msg("Rate limit exceeded")
			_ = c.Error(ratelimit.ErrRateLimited)
			c.Header("Retry-After", resetSeconds)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": message})
			return
		}

		c.Next()
	}
}

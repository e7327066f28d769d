package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salahezzat120/task-manager-pro/config"
)

// RateLimit caps requests per client IP with a fixed window counter in
// Redis. Without a configured Redis client, and on Redis errors, the
// middleware lets requests through so that auth never depends on Redis
// availability.
func RateLimit(limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := config.RedisClient
		if client == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			config.Logger.Warnw("rate limit check failed", "error", err, "key", key)
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}

		if count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}

package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GameRateLimit limits game actions per player (not per IP) using
// Redis. Requires the JWT middleware to have set player_id.
func GameRateLimit(maxActions int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil {
			// Redis not configured, fail-open
			c.Next()
			return
		}

		playerIDVal, exists := c.Get("player_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		playerID, ok := playerIDVal.(string)
		if !ok || playerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid player"})
			return
		}

		key := "game_rl:" + playerID + ":" + strconv.FormatInt(int64(window.Seconds()), 10)
		ctx := context.Background()

		val, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.Header("X-GameRateLimit-Error", "redis-error")
			c.Next()
			return
		}

		if val == 1 {
			redisClient.Expire(ctx, key, window)
		}

		remaining := int64(maxActions) - val
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-GameRateLimit-Limit", strconv.Itoa(maxActions))
		c.Header("X-GameRateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if val > int64(maxActions) {
			RLBlocked.WithLabelValues("game:" + c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "game rate limit exceeded",
				"retry_after": int(window.Seconds()),
			})
			return
		}

		RLRequests.WithLabelValues("game:" + c.FullPath()).Inc()
		c.Next()
	}
}

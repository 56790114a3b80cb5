package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
	"github.com/redis/go-redis/v9"
)

// RateLimiter allows maxRequests per window for each client IP, method and
// route, counting in Redis so every replica shares the budget.
func RateLimiter(client *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
		resetKey := key + ":resetAt"

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Redis error"))
			c.Abort()
			return
		}

		// First request opens the window and pins its reset time
		if count == 1 {
			resetAt := time.Now().Add(window)
			pipe := client.TxPipeline()
			pipe.Expire(ctx, key, window)
			pipe.Set(ctx, resetKey, resetAt.Unix(), window)
			if _, err := pipe.Exec(ctx); err != nil {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Redis error"))
				c.Abort()
				return
			}
		}

		resetAtUnix, _ := client.Get(ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      max(maxRequests-int(count), 0),
			ResetAt:        resetAt,
			ResetInSeconds: max(int(time.Until(resetAt).Seconds()), 0),
		}
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

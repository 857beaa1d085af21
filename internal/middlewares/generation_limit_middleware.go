package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"crayon-server/configs"
	"crayon-server/internal/repositories"
)

const (
	// Maximum number of generation requests allowed per user per day
	maxDailyGenerations = 200

	// Redis key prefix for generation usage counters
	generationUsageKeyPrefix = "generation_usage:"
)

// GenerationLimitMiddleware caps per-user generation requests per day.
// The counter lives in Redis and expires at midnight. Redis failures
// fail open so a cache outage never blocks the chat.
func GenerationLimitMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := GetUserIDFromContext(c)
		if err != nil {
			// Unauthenticated requests are not tracked.
			configs.Logger.Warn("Generation usage not tracked: user not authenticated", zap.Error(err))
			return next(c)
		}

		redisKey := generationUsageKeyPrefix + userID

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		count, err := repositories.DBS.Redis.Get(ctx, redisKey).Int()
		if err != nil && err.Error() != "redis: nil" {
			configs.Logger.Error("Failed to get generation usage count from Redis", zap.Error(err))
			count = 0
		}

		if count >= maxDailyGenerations {
			configs.Logger.Warn("User exceeded generation limit",
				zap.String("userID", userID),
				zap.Int("count", count))
			return c.JSON(http.StatusTooManyRequests, echo.Map{
				"error": "Daily generation limit exceeded. Please try again tomorrow.",
			})
		}

		if err := next(c); err != nil {
			return err
		}

		_, redisErr := repositories.DBS.Redis.Incr(ctx, redisKey).Result()
		if redisErr != nil {
			configs.Logger.Error("Failed to increment generation usage count in Redis", zap.Error(redisErr))
		}

		// First increment of the day gets an expiry at midnight.
		if count == 0 && redisErr == nil {
			now := time.Now()
			midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
			repositories.DBS.Redis.Expire(ctx, redisKey, midnight.Sub(now))
		}

		return nil
	}
}

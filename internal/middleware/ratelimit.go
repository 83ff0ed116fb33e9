package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "rl:transact:"

// TransactRateLimit caps postings per wallet per minute using a Redis counter
// keyed by the walletId route param. The window opens on the first posting.
// A nil cache or a non-positive limit disables it; cache errors fail open.
func TransactRateLimit(cache *redis.Client, maxPerMin int, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cache == nil || maxPerMin <= 0 {
			return c.Next()
		}
		walletID := c.Params("walletId")
		if walletID == "" {
			return c.Next()
		}

		key := rateLimitPrefix + walletID

		cnt, err := cache.Incr(c.UserContext(), key).Result()
		if err != nil {
			if logger != nil {
				logger.Warn("rate limit lookup failed", slog.String("wallet_id", walletID), slog.Any("error", err))
			}
			return c.Next()
		}
		if cnt == 1 {
			if err := cache.Expire(c.UserContext(), key, time.Minute).Err(); err != nil {
				// A counter without a TTL would block the wallet for good.
				cache.Del(c.UserContext(), key)
				if logger != nil {
					logger.Warn("rate limit window not armed", slog.String("wallet_id", walletID), slog.Any("error", err))
				}
				return c.Next()
			}
		}
		if cnt > int64(maxPerMin) {
			c.Set(fiber.HeaderRetryAfter, "60")
			return fiber.NewError(http.StatusTooManyRequests, "too many transactions for this wallet, try again later")
		}
		return c.Next()
	}
}

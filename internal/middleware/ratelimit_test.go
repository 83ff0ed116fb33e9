package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/congo-pay/walletpro/internal/logging"
)

func setupRateLimitedApp(t *testing.T, cache *redis.Client, limit int) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Post("/transact/:walletId", TransactRateLimit(cache, limit, logging.Discard()), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func post(t *testing.T, app *fiber.App, path string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader("{}"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestTransactRateLimitPerWallet(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	app := setupRateLimitedApp(t, cache, 2)

	for i := 0; i < 2; i++ {
		if status := post(t, app, "/transact/w-1"); status != fiber.StatusOK {
			t.Fatalf("request %d: expected 200 got %d", i, status)
		}
	}
	if status := post(t, app, "/transact/w-1"); status != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429 got %d", status)
	}
	// Other wallets keep their own budget.
	if status := post(t, app, "/transact/w-2"); status != fiber.StatusOK {
		t.Fatalf("expected 200 for another wallet got %d", status)
	}
}

func TestTransactRateLimitDisabledWithoutCache(t *testing.T) {
	app := setupRateLimitedApp(t, nil, 1)
	for i := 0; i < 3; i++ {
		if status := post(t, app, "/transact/w-1"); status != fiber.StatusOK {
			t.Fatalf("request %d: expected 200 got %d", i, status)
		}
	}
}

func TestTransactRateLimitFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer cache.Close()
	app := setupRateLimitedApp(t, cache, 1)

	mr.Close()
	if status := post(t, app, "/transact/w-1"); status != fiber.StatusOK {
		t.Fatalf("expected fail-open 200 got %d", status)
	}
}

// failingExpireHook lets every command through except EXPIRE.
type failingExpireHook struct{}

func (failingExpireHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (failingExpireHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if strings.EqualFold(cmd.Name(), "expire") {
			err := errors.New("expire unavailable")
			cmd.SetErr(err)
			return err
		}
		return next(ctx, cmd)
	}
}

func (failingExpireHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestTransactRateLimitDropsCounterWhenExpireFails(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()
	cache.AddHook(failingExpireHook{})

	app := setupRateLimitedApp(t, cache, 1)

	for i := 0; i < 3; i++ {
		if status := post(t, app, "/transact/w-1"); status != fiber.StatusOK {
			t.Fatalf("request %d: expected 200 got %d", i, status)
		}
	}
	if mr.Exists(rateLimitPrefix + "w-1") {
		t.Fatal("expected counter without TTL to be removed")
	}
}

package routes

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/congo-pay/walletpro/internal/config"
	"github.com/congo-pay/walletpro/internal/ledger"
	"github.com/congo-pay/walletpro/internal/middleware"
	"github.com/congo-pay/walletpro/internal/notification"
	"github.com/congo-pay/walletpro/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client // optional
	Logger *slog.Logger
	Ledger ledger.Ledger // optional, defaults to a fresh in-memory ledger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	if isDev(d.Cfg.Env) {
		// Plain text access log: [HH:MM:SS] 200 -  145ms METHOD /path
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
			TimeFormat: "15:04:05",
			TimeZone:   "Local",
		}))
	}
	app.Use(middleware.Audit(d.Logger))
	app.Use(cors.New(cors.Config{AllowOrigins: d.Cfg.CORSAllowOrigins}))

	// Health
	RegisterHealthRoutes(app, d)

	// Services and handlers
	ledgerBackend := d.Ledger
	if ledgerBackend == nil {
		ledgerBackend = ledger.NewInMemory()
	}
	notifier := notification.NewLoggerNotifier(d.Logger)
	walletSvc := wallet.NewService(ledgerBackend, notifier, wallet.WithNegativeOpeningBalance(d.Cfg.AllowNegativeOpening))
	walletHandler := wallet.NewHandler(walletSvc, d.Logger)

	rateLimiter := middleware.TransactRateLimit(d.Cache, d.Cfg.TransactRatePerMin, d.Logger)
	RegisterWalletRoutes(app, walletHandler, rateLimiter)
	RegisterDocsRoutes(app)

	// Must come last: the UI fallback matches every remaining GET.
	RegisterStaticRoutes(app, d.Cfg.StaticDir, d.Logger)

	return nil
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

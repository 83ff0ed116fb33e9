package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/walletpro/internal/wallet"
)

// RegisterWalletRoutes wires wallet-related endpoints.
func RegisterWalletRoutes(r fiber.Router, h *wallet.Handler, rateLimiter fiber.Handler) {
	r.Post("/setup", h.Setup)
	if rateLimiter != nil {
		r.Post("/transact/:walletId", rateLimiter, h.Transact)
	} else {
		r.Post("/transact/:walletId", h.Transact)
	}
	r.Get("/transactions", h.Transactions)
	r.Get("/wallet/:id", h.Get)
}

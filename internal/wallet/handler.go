package wallet

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/walletpro/internal/ledger"
)

// Handler exposes wallet HTTP endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Setup opens a wallet with a starting balance.
func (h *Handler) Setup(c *fiber.Ctx) error {
	var req setupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	w, err := h.service.Setup(c.UserContext(), SetupInput{Name: req.Name, Balance: req.Balance})
	if err != nil {
		return mapError(err)
	}
	if h.logger != nil {
		h.logger.Info("wallet.setup completed",
			slog.String("wallet_id", w.ID),
			slog.String("balance", w.Balance.String()),
		)
	}
	return c.Status(http.StatusOK).JSON(toWalletResponse(w))
}

// Transact applies a signed amount to the wallet in the path.
func (h *Handler) Transact(c *fiber.Ctx) error {
	walletID := c.Params("walletId")
	if walletID == "" {
		return fiber.NewError(http.StatusBadRequest, "wallet id is required")
	}
	var req transactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Amount == nil {
		return mapError(ErrInvalidAmount)
	}

	tx, err := h.service.Transact(c.UserContext(), TransactInput{
		WalletID:    walletID,
		Amount:      *req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(transactResponse{
		Balance:       tx.ResultingBalance.InexactFloat64(),
		TransactionID: tx.ID,
	})
}

// Transactions lists a wallet's history, newest first.
func (h *Handler) Transactions(c *fiber.Ctx) error {
	txs, err := h.service.Transactions(c.UserContext(),
		c.Query("walletId"),
		c.QueryInt("skip", 0),
		c.QueryInt("limit", DefaultPageSize),
	)
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(toTransactionResponses(txs))
}

// Get returns a wallet by id.
func (h *Handler) Get(c *fiber.Ctx) error {
	w, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(toWalletResponse(w))
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrWalletNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidBalance):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}

package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/congo-pay/walletpro/internal/ledger"
	"github.com/congo-pay/walletpro/internal/notification"
)

const (
	// DefaultPageSize is used when the caller does not ask for a page size.
	DefaultPageSize = 10
	// MaxPageSize caps a single history page.
	MaxPageSize = 100

	// Decimal exponents accepted on input. Anything outside forces the ledger
	// to rescale balances by arbitrary powers of ten.
	minExponent = -18
	maxExponent = 18
)

var (
	// ErrInvalidAmount indicates a missing, zero or malformed transaction amount.
	ErrInvalidAmount = errors.New("amount must be a non-zero number")
	// ErrInvalidBalance indicates a rejected opening balance.
	ErrInvalidBalance = errors.New("opening balance must be a non-negative number")

	errOutOfRange = errors.New("out of supported range")
)

func checkExponent(d decimal.Decimal) error {
	if exp := d.Exponent(); exp < minExponent || exp > maxExponent {
		return errOutOfRange
	}
	return nil
}

// Service exposes wallet operations backed by the ledger.
type Service struct {
	ledger               ledger.Ledger
	notifier             notification.Notifier
	allowNegativeOpening bool
}

// Option customises a Service.
type Option func(*Service)

// WithNegativeOpeningBalance accepts negative opening balances on setup.
func WithNegativeOpeningBalance(allow bool) Option {
	return func(s *Service) { s.allowNegativeOpening = allow }
}

// NewService builds a wallet service instance. The notifier may be nil.
func NewService(ledger ledger.Ledger, notifier notification.Notifier, opts ...Option) *Service {
	s := &Service{ledger: ledger, notifier: notifier}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetupInput captures data required to open a wallet.
type SetupInput struct {
	Name    string
	Balance decimal.Decimal
}

// Setup opens a wallet with its starting balance.
func (s *Service) Setup(ctx context.Context, input SetupInput) (ledger.Wallet, error) {
	if err := checkExponent(input.Balance); err != nil {
		return ledger.Wallet{}, fmt.Errorf("%w: %w", ErrInvalidBalance, err)
	}
	if input.Balance.IsNegative() && !s.allowNegativeOpening {
		return ledger.Wallet{}, ErrInvalidBalance
	}
	w, err := s.ledger.CreateWallet(ctx, strings.TrimSpace(input.Name), input.Balance)
	if err != nil {
		return ledger.Wallet{}, fmt.Errorf("create wallet: %w", err)
	}
	return w, nil
}

// Get retrieves a wallet.
func (s *Service) Get(ctx context.Context, id string) (ledger.Wallet, error) {
	return s.ledger.GetWallet(ctx, id)
}

// TransactInput captures a signed balance change. A positive amount credits
// the wallet, a negative amount debits it.
type TransactInput struct {
	WalletID    string
	Amount      decimal.Decimal
	Description string
}

// Transact applies a signed amount to the wallet.
func (s *Service) Transact(ctx context.Context, input TransactInput) (ledger.Transaction, error) {
	if err := checkExponent(input.Amount); err != nil {
		return ledger.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if input.Amount.IsZero() {
		return ledger.Transaction{}, ErrInvalidAmount
	}

	tx, err := s.ledger.ApplyTransaction(ctx, input.WalletID, input.Amount, strings.TrimSpace(input.Description))
	if err != nil {
		return ledger.Transaction{}, err
	}

	if s.notifier != nil {
		kind, verb := notification.KindWalletCredit, "credited"
		if tx.Type == ledger.TypeDebit {
			kind, verb = notification.KindWalletDebit, "debited"
		}
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        kind,
			Destination: tx.WalletID,
			Body:        fmt.Sprintf("%s %s (%s), balance %s", verb, tx.Amount, tx.Description, tx.ResultingBalance),
		})
	}

	return tx, nil
}

// Transactions returns one page of a wallet's history, newest first. An
// unknown wallet yields an empty page.
func (s *Service) Transactions(ctx context.Context, walletID string, skip, limit int) ([]ledger.Transaction, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return s.ledger.ListTransactions(ctx, walletID, skip, limit)
}

package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientFunds occurs when a posting would drive the wallet balance
	// below zero. State is left untouched.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWalletNotFound indicates the wallet identifier is unknown to the ledger.
	ErrWalletNotFound = errors.New("wallet not found")
)

// BalancePlaces is the number of fractional digits kept on every balance.
const BalancePlaces = 4

const (
	defaultCreditDescription = "Deposit"
	defaultDebitDescription  = "Withdrawal"
)

// TransactionType classifies a posting by the sign of its signed amount.
type TransactionType string

const (
	TypeCredit TransactionType = "CREDIT"
	TypeDebit  TransactionType = "DEBIT"
)

// Wallet is a named account holding a non-negative balance.
type Wallet struct {
	ID        string
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// Transaction is an immutable record of one balance change.
type Transaction struct {
	ID               string
	WalletID         string
	Amount           decimal.Decimal // absolute value
	Type             TransactionType
	ResultingBalance decimal.Decimal
	Description      string
	CreatedAt        time.Time
}

// Ledger defines the contract implemented by ledger backends.
type Ledger interface {
	CreateWallet(ctx context.Context, name string, initialBalance decimal.Decimal) (Wallet, error)
	GetWallet(ctx context.Context, id string) (Wallet, error)
	ApplyTransaction(ctx context.Context, walletID string, amount decimal.Decimal, description string) (Transaction, error)
	ListTransactions(ctx context.Context, walletID string, skip, limit int) ([]Transaction, error)
}

// Round applies the ledger's fixed decimal precision.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(BalancePlaces)
}

// typeFor derives the transaction type from a signed amount. Zero is a credit.
func typeFor(amount decimal.Decimal) TransactionType {
	if amount.IsNegative() {
		return TypeDebit
	}
	return TypeCredit
}

func defaultDescription(t TransactionType) string {
	if t == TypeDebit {
		return defaultDebitDescription
	}
	return defaultCreditDescription
}

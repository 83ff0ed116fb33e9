package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// SeedWallet is a test helper that creates a wallet with the given opening
// balance, expressed as a decimal string, and panics on bad input.
func SeedWallet(l Ledger, name, balance string) Wallet {
	w, err := l.CreateWallet(context.Background(), name, decimal.RequireFromString(balance))
	if err != nil {
		panic(err)
	}
	return w
}

package wallet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/congo-pay/walletpro/internal/ledger"
)

// setupRequest accepts the balance as a JSON number or a numeric string.
type setupRequest struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

type transactRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
}

type transactResponse struct {
	Balance       float64 `json:"balance"`
	TransactionID string  `json:"transactionId"`
}

// WalletResponse is the wire form of a wallet.
type WalletResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

// TransactionResponse is the wire form of a transaction.
type TransactionResponse struct {
	ID               string    `json:"id"`
	WalletID         string    `json:"walletId"`
	Amount           float64   `json:"amount"`
	Type             string    `json:"type"`
	ResultingBalance float64   `json:"resultingBalance"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toWalletResponse(w ledger.Wallet) WalletResponse {
	return WalletResponse{
		ID:        w.ID,
		Name:      w.Name,
		Balance:   w.Balance.InexactFloat64(),
		CreatedAt: w.CreatedAt,
	}
}

func toTransactionResponses(txs []ledger.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionResponse{
			ID:               tx.ID,
			WalletID:         tx.WalletID,
			Amount:           tx.Amount.InexactFloat64(),
			Type:             string(tx.Type),
			ResultingBalance: tx.ResultingBalance.InexactFloat64(),
			Description:      tx.Description,
			CreatedAt:        tx.CreatedAt,
		})
	}
	return out
}

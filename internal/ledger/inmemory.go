package ledger

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type walletState struct {
	mu      sync.Mutex
	wallet  Wallet
	history []Transaction // oldest first
}

type inMemoryLedger struct {
	mu      sync.RWMutex
	wallets map[string]*walletState
	now     func() time.Time
}

// NewInMemory creates a concurrency-safe in-memory ledger. Nothing survives
// process exit.
func NewInMemory() Ledger {
	return &inMemoryLedger{
		wallets: make(map[string]*walletState),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (l *inMemoryLedger) CreateWallet(_ context.Context, name string, initialBalance decimal.Decimal) (Wallet, error) {
	w := Wallet{
		ID:        uuid.NewString(),
		Name:      name,
		Balance:   Round(initialBalance),
		CreatedAt: l.now(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.wallets[w.ID] = &walletState{wallet: w, history: []Transaction{}}
	return w, nil
}

func (l *inMemoryLedger) GetWallet(_ context.Context, id string) (Wallet, error) {
	state, ok := l.lookup(id)
	if !ok {
		return Wallet{}, ErrWalletNotFound
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.wallet, nil
}

func (l *inMemoryLedger) ApplyTransaction(_ context.Context, walletID string, amount decimal.Decimal, description string) (Transaction, error) {
	state, ok := l.lookup(walletID)
	if !ok {
		return Transaction{}, ErrWalletNotFound
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	newBalance := Round(state.wallet.Balance.Add(amount))
	if newBalance.IsNegative() {
		return Transaction{}, ErrInsufficientFunds
	}

	txType := typeFor(amount)
	if strings.TrimSpace(description) == "" {
		description = defaultDescription(txType)
	}

	tx := Transaction{
		ID:               uuid.NewString(),
		WalletID:         walletID,
		Amount:           amount.Abs(),
		Type:             txType,
		ResultingBalance: newBalance,
		Description:      description,
		CreatedAt:        l.now(),
	}

	state.wallet.Balance = newBalance
	state.history = append(state.history, tx)
	return tx, nil
}

func (l *inMemoryLedger) ListTransactions(_ context.Context, walletID string, skip, limit int) ([]Transaction, error) {
	state, ok := l.lookup(walletID)
	if !ok || limit <= 0 {
		return []Transaction{}, nil
	}
	if skip < 0 {
		skip = 0
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	total := len(state.history)
	if skip >= total {
		return []Transaction{}, nil
	}
	end := total
	if limit < total-skip {
		end = skip + limit
	}

	page := make([]Transaction, 0, end-skip)
	for i := skip; i < end; i++ {
		page = append(page, state.history[total-1-i])
	}
	return page, nil
}

func (l *inMemoryLedger) lookup(id string) (*walletState, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	state, ok := l.wallets[id]
	return state, ok
}

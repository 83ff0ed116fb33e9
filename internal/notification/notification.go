package notification

import (
	"context"
	"log/slog"
)

const (
	// KindWalletCredit is emitted after funds are added to a wallet.
	KindWalletCredit = "wallet_credit"
	// KindWalletDebit is emitted after funds leave a wallet.
	KindWalletDebit = "wallet_debit"
)

// Message describes a notification payload.
type Message struct {
	Kind        string
	Destination string
	Body        string
}

// Notifier delivers notifications to downstream systems.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier writes notifications to the structured logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(ctx context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.InfoContext(ctx, "notification",
		slog.String("kind", message.Kind),
		slog.String("wallet_id", message.Destination),
		slog.String("body", message.Body),
	)
	return nil
}

package services

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"bank-simulator/internal/models"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogAccountOpened(account models.Account) {
	al.logger.Info("account opened",
		slog.String("event_type", "account_opened"),
		slog.String("account_number", account.Number()),
		slog.String("account_type", account.Type()),
		slog.String("balance", account.Balance().StringFixed(2)),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogDeposit(number string, amount, balanceAfter decimal.Decimal) {
	al.logger.Info("deposit completed",
		slog.String("event_type", "deposit_completed"),
		slog.String("account_number", number),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("balance_after", balanceAfter.StringFixed(2)),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogWithdrawal(number string, amount, balanceAfter decimal.Decimal) {
	al.logger.Info("withdrawal completed",
		slog.String("event_type", "withdrawal_completed"),
		slog.String("account_number", number),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("balance_after", balanceAfter.StringFixed(2)),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogInsufficientFunds(number string, amount decimal.Decimal) {
	al.logger.Warn("withdrawal not satisfied",
		slog.String("event_type", "withdrawal_insufficient_funds"),
		slog.String("account_number", number),
		slog.String("amount", amount.StringFixed(2)),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogOperationRejected(operation, number string, err error) {
	al.logger.Warn("operation rejected",
		slog.String("event_type", "operation_rejected"),
		slog.String("operation", operation),
		slog.String("account_number", number),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogPeriodicUpdateRun(accountsUpdated int) {
	al.logger.Info("periodic update run",
		slog.String("event_type", "periodic_update_run"),
		slog.Int("accounts_updated", accountsUpdated),
		slog.Time("timestamp", time.Now()),
	)
}

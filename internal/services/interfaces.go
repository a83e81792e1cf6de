package services

import (
	"github.com/shopspring/decimal"

	"bank-simulator/internal/dto"
	"bank-simulator/internal/models"
)

// BankServiceInterface defines the account registry and its operations.
// Accounts are kept in insertion order; lookup is a linear first-match scan
// and duplicate account numbers are not rejected.
type BankServiceInterface interface {
	OpenChecking(req dto.OpenAccountRequest) (models.Account, error)
	OpenSavings(req dto.OpenAccountRequest) (models.Account, error)
	AddAccount(account models.Account)
	FindAccount(number string) (models.Account, bool)
	Deposit(number string, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(number string, amount decimal.Decimal) (bool, error)
	ProcessPeriodicUpdates()
	Accounts() []models.Account
	History(number string) ([]models.LedgerEntry, error)
}

// AuditLoggerInterface defines the contract for audit logging of registry operations
type AuditLoggerInterface interface {
	LogAccountOpened(account models.Account)
	LogDeposit(number string, amount, balanceAfter decimal.Decimal)
	LogWithdrawal(number string, amount, balanceAfter decimal.Decimal)
	LogInsufficientFunds(number string, amount decimal.Decimal)
	LogOperationRejected(operation, number string, err error)
	LogPeriodicUpdateRun(accountsUpdated int)
}

// MetricsRecorderInterface defines the contract for recording operation metrics
type MetricsRecorderInterface interface {
	RecordAccountOpened(accountType string)
	RecordDeposit(status string)
	RecordWithdrawal(status string)
	RecordPeriodicUpdateRun(accountsUpdated int)
	SetRegisteredAccounts(count int)
}

// SampleAccountGeneratorInterface defines the contract for generating demo accounts
type SampleAccountGeneratorInterface interface {
	Generate(count int) []models.Account
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	LedgerTypeDeposit    = "deposit"
	LedgerTypeWithdrawal = "withdrawal"
	LedgerTypeFee        = "fee"
	LedgerTypeInterest   = "interest"
)

// LedgerEntry records one balance-changing operation on an account.
// Rejected and failed operations are never recorded.
type LedgerEntry struct {
	ID           uuid.UUID       `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewLedgerEntry creates a ledger entry stamped with a fresh ID and the current time
func NewLedgerEntry(entryType string, amount, balanceAfter decimal.Decimal) LedgerEntry {
	return LedgerEntry{
		ID:           uuid.New(),
		Type:         entryType,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		CreatedAt:    time.Now(),
	}
}

// IsValidLedgerType checks if the ledger entry type is valid
func IsValidLedgerType(entryType string) bool {
	switch entryType {
	case LedgerTypeDeposit, LedgerTypeWithdrawal, LedgerTypeFee, LedgerTypeInterest:
		return true
	default:
		return false
	}
}

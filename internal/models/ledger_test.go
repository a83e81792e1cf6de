package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedgerEntry(t *testing.T) {
	entry := NewLedgerEntry(LedgerTypeDeposit, decimal.NewFromFloat(200.00), decimal.NewFromFloat(700.00))

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, LedgerTypeDeposit, entry.Type)
	assert.True(t, entry.Amount.Equal(decimal.NewFromFloat(200.00)))
	assert.True(t, entry.BalanceAfter.Equal(decimal.NewFromFloat(700.00)))
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestIsValidLedgerType(t *testing.T) {
	assert.True(t, IsValidLedgerType(LedgerTypeDeposit))
	assert.True(t, IsValidLedgerType(LedgerTypeWithdrawal))
	assert.True(t, IsValidLedgerType(LedgerTypeFee))
	assert.True(t, IsValidLedgerType(LedgerTypeInterest))
	assert.False(t, IsValidLedgerType("transfer"))
	assert.False(t, IsValidLedgerType(""))
}

func TestAccountHistory_RecordsOperationsInOrder(t *testing.T) {
	account, err := NewCheckingAccount("CH001", "John Doe", decimal.NewFromFloat(500.00), DefaultCheckingTerms)
	require.NoError(t, err)

	require.NoError(t, account.Deposit(decimal.NewFromFloat(200.00)))
	withdrawn, err := account.Withdraw(decimal.NewFromFloat(50.00))
	require.NoError(t, err)
	require.True(t, withdrawn)
	account.ApplyPeriodicAdjustment()

	history := account.History()
	require.Len(t, history, 3)

	assert.Equal(t, LedgerTypeDeposit, history[0].Type)
	assert.True(t, history[0].BalanceAfter.Equal(decimal.NewFromFloat(700.00)))

	assert.Equal(t, LedgerTypeWithdrawal, history[1].Type)
	assert.True(t, history[1].BalanceAfter.Equal(decimal.NewFromFloat(650.00)))

	assert.Equal(t, LedgerTypeFee, history[2].Type)
	assert.True(t, history[2].BalanceAfter.Equal(decimal.NewFromFloat(640.00)))
}

func TestAccountHistory_ReturnsCopy(t *testing.T) {
	account, err := NewCheckingAccount("CH001", "John Doe", decimal.NewFromFloat(500.00), DefaultCheckingTerms)
	require.NoError(t, err)
	require.NoError(t, account.Deposit(decimal.NewFromFloat(10.00)))

	history := account.History()
	history[0].Type = "tampered"

	assert.Equal(t, LedgerTypeDeposit, account.History()[0].Type)
}

func TestIsValidAccountType(t *testing.T) {
	assert.True(t, IsValidAccountType(AccountTypeChecking))
	assert.True(t, IsValidAccountType(AccountTypeSavings))
	assert.False(t, IsValidAccountType("money_market"))
	assert.False(t, IsValidAccountType(""))
}

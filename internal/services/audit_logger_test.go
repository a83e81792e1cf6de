package services

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-simulator/internal/models"
)

func TestAuditLogger_Events(t *testing.T) {
	var buf bytes.Buffer
	audit := NewAuditLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	account, err := models.NewCheckingAccount("CH001", "John Doe", decimal.NewFromFloat(500.00), models.DefaultCheckingTerms)
	require.NoError(t, err)

	audit.LogAccountOpened(account)
	audit.LogDeposit("CH001", decimal.NewFromFloat(200.00), decimal.NewFromFloat(700.00))
	audit.LogWithdrawal("CH001", decimal.NewFromFloat(50.00), decimal.NewFromFloat(650.00))
	audit.LogInsufficientFunds("CH001", decimal.NewFromFloat(9999.00))
	audit.LogOperationRejected("deposit", "CH001", models.ErrNonPositiveDeposit)
	audit.LogPeriodicUpdateRun(2)

	out := buf.String()
	assert.Contains(t, out, `"event_type":"account_opened"`)
	assert.Contains(t, out, `"event_type":"deposit_completed"`)
	assert.Contains(t, out, `"event_type":"withdrawal_completed"`)
	assert.Contains(t, out, `"event_type":"withdrawal_insufficient_funds"`)
	assert.Contains(t, out, `"event_type":"operation_rejected"`)
	assert.Contains(t, out, `"event_type":"periodic_update_run"`)
	assert.Contains(t, out, `"account_number":"CH001"`)
	assert.Contains(t, out, `"balance_after":"700.00"`)
	assert.Contains(t, out, `"accounts_updated":2`)
}

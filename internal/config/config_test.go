package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"bank-simulator/internal/models"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.True(t, cfg.Checking.MonthlyFee.Equal(decimal.NewFromInt(10)))
	assert.True(t, cfg.Checking.OverdraftLimit.Equal(decimal.NewFromInt(100)))
	assert.True(t, cfg.Savings.InterestRate.Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, cfg.Savings.MinimumOpeningBalance.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 0, cfg.Demo.SeedAccounts)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BANK_CHECKING_MONTHLY_FEE", "12.50")
	t.Setenv("BANK_CHECKING_OVERDRAFT_LIMIT", "250")
	t.Setenv("BANK_SAVINGS_INTEREST_RATE", "0.03")
	t.Setenv("BANK_SAVINGS_MINIMUM_BALANCE", "500")
	t.Setenv("BANK_DEMO_SEED_ACCOUNTS", "4")

	cfg := Load()

	assert.True(t, cfg.Checking.MonthlyFee.Equal(decimal.NewFromFloat(12.50)))
	assert.True(t, cfg.Checking.OverdraftLimit.Equal(decimal.NewFromInt(250)))
	assert.True(t, cfg.Savings.InterestRate.Equal(decimal.NewFromFloat(0.03)))
	assert.True(t, cfg.Savings.MinimumOpeningBalance.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 4, cfg.Demo.SeedAccounts)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("BANK_CHECKING_MONTHLY_FEE", "not-a-number")
	t.Setenv("BANK_DEMO_SEED_ACCOUNTS", "lots")

	cfg := Load()

	assert.True(t, cfg.Checking.MonthlyFee.Equal(models.DefaultCheckingTerms.MonthlyFee))
	assert.Equal(t, 0, cfg.Demo.SeedAccounts)
}

func TestTermsConversion(t *testing.T) {
	cfg := Load()

	checking := cfg.CheckingTerms()
	assert.True(t, checking.MonthlyFee.Equal(cfg.Checking.MonthlyFee))
	assert.True(t, checking.OverdraftLimit.Equal(cfg.Checking.OverdraftLimit))

	savings := cfg.SavingsTerms()
	assert.True(t, savings.InterestRate.Equal(cfg.Savings.InterestRate))
	assert.True(t, savings.MinimumOpeningBalance.Equal(cfg.Savings.MinimumOpeningBalance))
}

package config

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"bank-simulator/internal/models"
)

type Config struct {
	Checking CheckingConfig
	Savings  SavingsConfig
	Demo     DemoConfig
}

type CheckingConfig struct {
	MonthlyFee     decimal.Decimal
	OverdraftLimit decimal.Decimal
}

type SavingsConfig struct {
	InterestRate          decimal.Decimal
	MinimumOpeningBalance decimal.Decimal
}

type DemoConfig struct {
	// SeedAccounts is the number of randomly generated accounts added to the
	// demo registry on top of the fixed sample accounts.
	SeedAccounts int
}

func Load() *Config {
	return &Config{
		Checking: CheckingConfig{
			MonthlyFee:     getDecimalEnv("BANK_CHECKING_MONTHLY_FEE", models.DefaultCheckingTerms.MonthlyFee),
			OverdraftLimit: getDecimalEnv("BANK_CHECKING_OVERDRAFT_LIMIT", models.DefaultCheckingTerms.OverdraftLimit),
		},
		Savings: SavingsConfig{
			InterestRate:          getDecimalEnv("BANK_SAVINGS_INTEREST_RATE", models.DefaultSavingsTerms.InterestRate),
			MinimumOpeningBalance: getDecimalEnv("BANK_SAVINGS_MINIMUM_BALANCE", models.DefaultSavingsTerms.MinimumOpeningBalance),
		},
		Demo: DemoConfig{
			SeedAccounts: getIntEnv("BANK_DEMO_SEED_ACCOUNTS", 0),
		},
	}
}

// CheckingTerms converts the checking configuration into model terms
func (c *Config) CheckingTerms() models.CheckingTerms {
	return models.CheckingTerms{
		MonthlyFee:     c.Checking.MonthlyFee,
		OverdraftLimit: c.Checking.OverdraftLimit,
	}
}

// SavingsTerms converts the savings configuration into model terms
func (c *Config) SavingsTerms() models.SavingsTerms {
	return models.SavingsTerms{
		InterestRate:          c.Savings.InterestRate,
		MinimumOpeningBalance: c.Savings.MinimumOpeningBalance,
	}
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"bank-simulator/internal/config"
	"bank-simulator/internal/dto"
	"bank-simulator/internal/services"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	audit := services.NewAuditLogger(logger)
	metrics := services.NewPrometheusMetrics()
	bank := services.NewBankService(cfg.CheckingTerms(), cfg.SavingsTerms(), audit, metrics)
	generator := services.NewSampleAccountGenerator(cfg.CheckingTerms(), cfg.SavingsTerms())

	if err := run(bank, generator, cfg.Demo.SeedAccounts, os.Stdout); err != nil {
		logger.Error("banking error", "error", err)
		os.Exit(1)
	}
}

// run executes the demonstration sequence against a fresh registry
func run(bank services.BankServiceInterface, generator services.SampleAccountGeneratorInterface, seedAccounts int, out io.Writer) error {
	if _, err := bank.OpenChecking(dto.OpenAccountRequest{
		AccountNumber:  "CH001",
		HolderName:     "John Doe",
		OpeningBalance: decimal.NewFromInt(500),
	}); err != nil {
		return err
	}

	if _, err := bank.OpenSavings(dto.OpenAccountRequest{
		AccountNumber:  "SV001",
		HolderName:     "Jane Smith",
		OpeningBalance: decimal.NewFromInt(1000),
	}); err != nil {
		return err
	}

	for _, account := range generator.Generate(seedAccounts) {
		bank.AddAccount(account)
	}

	if john, ok := bank.FindAccount("CH001"); ok {
		fmt.Fprintf(out, "Initial John's Account Balance: $%s\n", john.Balance().StringFixed(2))

		if _, err := bank.Deposit("CH001", decimal.NewFromInt(200)); err != nil {
			return err
		}
		if _, err := bank.Withdraw("CH001", decimal.NewFromInt(50)); err != nil {
			return err
		}

		fmt.Fprintf(out, "Updated John's Account Balance: $%s\n", john.Balance().StringFixed(2))
	}

	bank.ProcessPeriodicUpdates()

	fmt.Fprintln(out, "\nAccounts after monthly updates:")
	return services.NewStatementWriter(out).WriteAll(bank.Accounts())
}

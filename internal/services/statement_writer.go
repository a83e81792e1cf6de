package services

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"bank-simulator/internal/models"
)

// accountDelimiter separates accounts in a rendered statement
const accountDelimiter = "------------------------"

var accountTypeLabels = map[string]string{
	models.AccountTypeChecking: "Checking",
	models.AccountTypeSavings:  "Savings",
}

// StatementWriter renders account descriptions as a human-readable report.
// The output is not intended for machine parsing.
type StatementWriter struct {
	w io.Writer
}

func NewStatementWriter(w io.Writer) *StatementWriter {
	return &StatementWriter{w: w}
}

// WriteAccount renders a single account description
func (sw *StatementWriter) WriteAccount(info models.AccountInfo) error {
	if _, err := fmt.Fprintf(sw.w, "Account Number: %s\n", info.Number); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(sw.w, "Account Holder: %s\n", info.Holder); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(sw.w, "Balance: $%s\n", info.Balance.StringFixed(2)); err != nil {
		return err
	}

	label, ok := accountTypeLabels[info.Type]
	if !ok {
		label = info.Type
	}
	if _, err := fmt.Fprintf(sw.w, "Account Type: %s\n", label); err != nil {
		return err
	}

	if info.MonthlyFee != nil {
		if _, err := fmt.Fprintf(sw.w, "Monthly Fee: $%s\n", info.MonthlyFee.StringFixed(2)); err != nil {
			return err
		}
	}
	if info.InterestRate != nil {
		percent := info.InterestRate.Mul(decimal.NewFromInt(100))
		if _, err := fmt.Fprintf(sw.w, "Interest Rate: %s%%\n", percent.String()); err != nil {
			return err
		}
	}

	return nil
}

// WriteAll renders every account in registry order, each followed by a
// delimiter line.
func (sw *StatementWriter) WriteAll(accounts []models.Account) error {
	for _, account := range accounts {
		if err := sw.WriteAccount(account.Describe()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(sw.w, accountDelimiter); err != nil {
			return err
		}
	}
	return nil
}

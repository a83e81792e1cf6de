package models

import (
	"github.com/shopspring/decimal"
)

// CheckingTerms are the per-variant constants for checking accounts.
type CheckingTerms struct {
	MonthlyFee     decimal.Decimal
	OverdraftLimit decimal.Decimal
}

// DefaultCheckingTerms carries the standard checking terms: a 10.00 monthly
// fee and a 100.00 overdraft limit.
var DefaultCheckingTerms = CheckingTerms{
	MonthlyFee:     decimal.NewFromInt(10),
	OverdraftLimit: decimal.NewFromInt(100),
}

// CheckingAccount is an account whose balance may go negative down to
// -OverdraftLimit and which pays a flat monthly fee.
type CheckingAccount struct {
	baseAccount
	terms CheckingTerms
}

// NewCheckingAccount opens a checking account. The opening balance may be
// zero but not negative.
func NewCheckingAccount(number, holder string, opening decimal.Decimal, terms CheckingTerms) (*CheckingAccount, error) {
	base, err := newBaseAccount(number, holder, opening)
	if err != nil {
		return nil, err
	}
	return &CheckingAccount{baseAccount: base, terms: terms}, nil
}

func (a *CheckingAccount) Type() string {
	return AccountTypeChecking
}

// Withdraw allows the balance to go negative down to -OverdraftLimit.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) (bool, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false, ErrNonPositiveWithdrawal
	}

	if amount.GreaterThan(a.balance.Add(a.terms.OverdraftLimit)) {
		return false, nil
	}

	a.balance = a.balance.Sub(amount)
	a.record(LedgerTypeWithdrawal, amount)
	return true, nil
}

// ApplyPeriodicAdjustment charges the monthly fee. The fee is skipped
// entirely when the balance cannot cover it: no partial deduction, and the
// fee never drives the balance negative.
func (a *CheckingAccount) ApplyPeriodicAdjustment() {
	if a.balance.LessThan(a.terms.MonthlyFee) {
		return
	}

	a.balance = a.balance.Sub(a.terms.MonthlyFee)
	a.record(LedgerTypeFee, a.terms.MonthlyFee)
}

func (a *CheckingAccount) Describe() AccountInfo {
	info := a.describe(AccountTypeChecking)
	fee := a.terms.MonthlyFee
	limit := a.terms.OverdraftLimit
	info.MonthlyFee = &fee
	info.OverdraftLimit = &limit
	return info
}

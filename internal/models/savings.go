package models

import (
	"github.com/shopspring/decimal"

	apperrors "bank-simulator/internal/errors"
)

var ErrBelowMinimumOpening = apperrors.NewInvalidArgument(apperrors.AccountBelowMinimumOpening)

// SavingsTerms are the per-variant constants for savings accounts.
type SavingsTerms struct {
	InterestRate          decimal.Decimal
	MinimumOpeningBalance decimal.Decimal
}

// DefaultSavingsTerms carries the standard savings terms: 5% simple interest
// per period and a 100.00 minimum opening balance.
var DefaultSavingsTerms = SavingsTerms{
	InterestRate:          decimal.NewFromFloat(0.05),
	MinimumOpeningBalance: decimal.NewFromInt(100),
}

// SavingsAccount is an account that earns simple interest each period.
// The minimum balance is enforced only when the account is opened; ordinary
// withdrawals may drive the balance below it afterwards.
type SavingsAccount struct {
	baseAccount
	terms SavingsTerms
}

// NewSavingsAccount opens a savings account. The opening balance must meet
// the minimum opening balance in the terms.
func NewSavingsAccount(number, holder string, opening decimal.Decimal, terms SavingsTerms) (*SavingsAccount, error) {
	base, err := newBaseAccount(number, holder, opening)
	if err != nil {
		return nil, err
	}

	if opening.LessThan(terms.MinimumOpeningBalance) {
		return nil, ErrBelowMinimumOpening
	}

	return &SavingsAccount{baseAccount: base, terms: terms}, nil
}

func (a *SavingsAccount) Type() string {
	return AccountTypeSavings
}

// ApplyPeriodicAdjustment credits simple interest: balance * rate, once.
func (a *SavingsAccount) ApplyPeriodicAdjustment() {
	interest := a.balance.Mul(a.terms.InterestRate)
	a.balance = a.balance.Add(interest)
	a.record(LedgerTypeInterest, interest)
}

func (a *SavingsAccount) Describe() AccountInfo {
	info := a.describe(AccountTypeSavings)
	rate := a.terms.InterestRate
	info.InterestRate = &rate
	return info
}

package models

import (
	"github.com/shopspring/decimal"

	apperrors "bank-simulator/internal/errors"
)

const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
)

var (
	ErrNegativeOpeningBalance = apperrors.NewInvalidArgument(apperrors.AccountNegativeOpening)
	ErrNonPositiveDeposit     = apperrors.NewInvalidArgument(apperrors.ValidationNonPositiveAmount,
		apperrors.WithMessage("deposit amount must be positive"))
	ErrNonPositiveWithdrawal = apperrors.NewInvalidArgument(apperrors.ValidationNonPositiveAmount,
		apperrors.WithMessage("withdrawal amount must be positive"))
)

// Account is the capability set shared by every account variant.
// Withdraw reports insufficient funds as (false, nil): a valid request that
// cannot currently be satisfied is ordinary control flow, not an error.
type Account interface {
	Number() string
	Holder() string
	Balance() decimal.Decimal
	Type() string
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) (bool, error)
	ApplyPeriodicAdjustment()
	Describe() AccountInfo
	History() []LedgerEntry
}

// AccountInfo is the snapshot returned by Describe.
// Variant-specific fields are nil when they do not apply.
type AccountInfo struct {
	Number         string           `json:"account_number"`
	Holder         string           `json:"account_holder"`
	Balance        decimal.Decimal  `json:"balance"`
	Type           string           `json:"account_type"`
	MonthlyFee     *decimal.Decimal `json:"monthly_fee,omitempty"`
	OverdraftLimit *decimal.Decimal `json:"overdraft_limit,omitempty"`
	InterestRate   *decimal.Decimal `json:"interest_rate,omitempty"`
}

// baseAccount holds the state and default behavior shared by all variants.
type baseAccount struct {
	number  string
	holder  string
	balance decimal.Decimal
	ledger  []LedgerEntry
}

func newBaseAccount(number, holder string, opening decimal.Decimal) (baseAccount, error) {
	if opening.IsNegative() {
		return baseAccount{}, ErrNegativeOpeningBalance
	}
	return baseAccount{number: number, holder: holder, balance: opening}, nil
}

func (a *baseAccount) Number() string {
	return a.number
}

func (a *baseAccount) Holder() string {
	return a.holder
}

func (a *baseAccount) Balance() decimal.Decimal {
	return a.balance
}

// Deposit credits the account. There is no upper bound on deposits.
func (a *baseAccount) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveDeposit
	}

	a.balance = a.balance.Add(amount)
	a.record(LedgerTypeDeposit, amount)
	return nil
}

// Withdraw applies the default rule: the balance may not go negative.
// CheckingAccount shadows this with its overdraft rule.
func (a *baseAccount) Withdraw(amount decimal.Decimal) (bool, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false, ErrNonPositiveWithdrawal
	}

	if amount.GreaterThan(a.balance) {
		return false, nil
	}

	a.balance = a.balance.Sub(amount)
	a.record(LedgerTypeWithdrawal, amount)
	return true, nil
}

// History returns a copy of the account's ledger in append order.
func (a *baseAccount) History() []LedgerEntry {
	out := make([]LedgerEntry, len(a.ledger))
	copy(out, a.ledger)
	return out
}

func (a *baseAccount) record(entryType string, amount decimal.Decimal) {
	a.ledger = append(a.ledger, NewLedgerEntry(entryType, amount, a.balance))
}

func (a *baseAccount) describe(accountType string) AccountInfo {
	return AccountInfo{
		Number:  a.number,
		Holder:  a.holder,
		Balance: a.balance,
		Type:    accountType,
	}
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings:
		return true
	default:
		return false
	}
}

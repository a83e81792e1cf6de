package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"bank-simulator/internal/dto"
	apperrors "bank-simulator/internal/errors"
	"bank-simulator/internal/models"
	"bank-simulator/internal/validation"
)

// operation outcome labels used for metrics
const (
	StatusCompleted         = "completed"
	StatusRejected          = "rejected"
	StatusInsufficientFunds = "insufficient_funds"
)

type bankService struct {
	checkingTerms models.CheckingTerms
	savingsTerms  models.SavingsTerms

	// accounts preserves insertion order. Account numbers are not required
	// to be unique; FindAccount returns the first match.
	accounts []models.Account

	validator *validation.Validator
	audit     AuditLoggerInterface
	metrics   MetricsRecorderInterface
}

// NewBankService creates an empty registry with the given account terms
func NewBankService(
	checkingTerms models.CheckingTerms,
	savingsTerms models.SavingsTerms,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) BankServiceInterface {
	return &bankService{
		checkingTerms: checkingTerms,
		savingsTerms:  savingsTerms,
		validator:     validation.GetValidator(),
		audit:         audit,
		metrics:       metrics,
	}
}

// OpenChecking validates the request, constructs a checking account under the
// registry's terms and registers it.
func (s *bankService) OpenChecking(req dto.OpenAccountRequest) (models.Account, error) {
	req.AccountType = models.AccountTypeChecking
	if err := s.validateOpenRequest(req); err != nil {
		s.audit.LogOperationRejected("open_checking", req.AccountNumber, err)
		return nil, err
	}

	account, err := models.NewCheckingAccount(req.AccountNumber, req.HolderName, req.OpeningBalance, s.checkingTerms)
	if err != nil {
		s.audit.LogOperationRejected("open_checking", req.AccountNumber, err)
		return nil, err
	}

	s.AddAccount(account)
	return account, nil
}

// OpenSavings validates the request, constructs a savings account under the
// registry's terms and registers it.
func (s *bankService) OpenSavings(req dto.OpenAccountRequest) (models.Account, error) {
	req.AccountType = models.AccountTypeSavings
	if err := s.validateOpenRequest(req); err != nil {
		s.audit.LogOperationRejected("open_savings", req.AccountNumber, err)
		return nil, err
	}

	account, err := models.NewSavingsAccount(req.AccountNumber, req.HolderName, req.OpeningBalance, s.savingsTerms)
	if err != nil {
		s.audit.LogOperationRejected("open_savings", req.AccountNumber, err)
		return nil, err
	}

	s.AddAccount(account)
	return account, nil
}

// AddAccount appends a constructed account to the registry. Duplicate
// account numbers are accepted; lookups resolve to the earliest insertion.
func (s *bankService) AddAccount(account models.Account) {
	s.accounts = append(s.accounts, account)
	s.audit.LogAccountOpened(account)
	s.metrics.RecordAccountOpened(account.Type())
	s.metrics.SetRegisteredAccounts(len(s.accounts))
}

// FindAccount scans the registry in insertion order and returns the first
// account with the given number. The returned account is live: mutations
// through it are visible on subsequent lookups.
func (s *bankService) FindAccount(number string) (models.Account, bool) {
	for _, account := range s.accounts {
		if account.Number() == number {
			return account, true
		}
	}
	return nil, false
}

// Deposit credits the named account and returns the new balance
func (s *bankService) Deposit(number string, amount decimal.Decimal) (decimal.Decimal, error) {
	account, ok := s.FindAccount(number)
	if !ok {
		return decimal.Zero, apperrors.NewNotFound(apperrors.AccountNotFound)
	}

	if err := account.Deposit(amount); err != nil {
		s.audit.LogOperationRejected("deposit", number, err)
		s.metrics.RecordDeposit(StatusRejected)
		return decimal.Zero, err
	}

	s.audit.LogDeposit(number, amount, account.Balance())
	s.metrics.RecordDeposit(StatusCompleted)
	return account.Balance(), nil
}

// Withdraw debits the named account under its variant's withdrawal rule.
// An unsatisfiable but valid request returns (false, nil).
func (s *bankService) Withdraw(number string, amount decimal.Decimal) (bool, error) {
	account, ok := s.FindAccount(number)
	if !ok {
		return false, apperrors.NewNotFound(apperrors.AccountNotFound)
	}

	withdrawn, err := account.Withdraw(amount)
	if err != nil {
		s.audit.LogOperationRejected("withdrawal", number, err)
		s.metrics.RecordWithdrawal(StatusRejected)
		return false, err
	}

	if !withdrawn {
		s.audit.LogInsufficientFunds(number, amount)
		s.metrics.RecordWithdrawal(StatusInsufficientFunds)
		return false, nil
	}

	s.audit.LogWithdrawal(number, amount, account.Balance())
	s.metrics.RecordWithdrawal(StatusCompleted)
	return true, nil
}

// ProcessPeriodicUpdates applies each account's periodic adjustment exactly
// once, in insertion order. Adjustments cannot fail, so there is no partial
// failure path.
func (s *bankService) ProcessPeriodicUpdates() {
	for _, account := range s.accounts {
		account.ApplyPeriodicAdjustment()
	}

	s.audit.LogPeriodicUpdateRun(len(s.accounts))
	s.metrics.RecordPeriodicUpdateRun(len(s.accounts))
}

// Accounts returns the registered accounts in insertion order
func (s *bankService) Accounts() []models.Account {
	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// History returns the ledger of the first account matching number
func (s *bankService) History(number string) ([]models.LedgerEntry, error) {
	account, ok := s.FindAccount(number)
	if !ok {
		return nil, apperrors.NewNotFound(apperrors.AccountNotFound)
	}
	return account.History(), nil
}

func (s *bankService) validateOpenRequest(req dto.OpenAccountRequest) error {
	fieldErrors, err := s.validator.ValidateStruct(req)
	if err != nil {
		return err
	}
	if len(fieldErrors) == 0 {
		return nil
	}

	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, field+" "+message)
	}
	sort.Strings(details)

	return apperrors.NewInvalidArgument(apperrors.ValidationGeneral, apperrors.WithDetails(details...))
}

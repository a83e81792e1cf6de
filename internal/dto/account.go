package dto

import (
	"github.com/shopspring/decimal"
)

// OpenAccountRequest represents the parameters for opening a new account
type OpenAccountRequest struct {
	AccountType    string          `json:"account_type" validate:"required,account_type"`
	AccountNumber  string          `json:"account_number" validate:"required,account_number"`
	HolderName     string          `json:"holder_name" validate:"required,holder_name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

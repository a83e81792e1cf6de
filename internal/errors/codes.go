package errors

// ErrorCode represents a standardized error code used throughout the simulator
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral           ErrorCode = "VALIDATION_001"
	ValidationRequiredField     ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat     ErrorCode = "VALIDATION_003"
	ValidationNonPositiveAmount ErrorCode = "VALIDATION_004"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound            ErrorCode = "ACCOUNT_001"
	AccountNegativeOpening     ErrorCode = "ACCOUNT_002"
	AccountBelowMinimumOpening ErrorCode = "ACCOUNT_003"
	AccountInvalidType         ErrorCode = "ACCOUNT_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:           "Validation failed",
	ValidationRequiredField:     "Required field is missing",
	ValidationInvalidFormat:     "Invalid field format",
	ValidationNonPositiveAmount: "Amount must be positive",

	// Account errors
	AccountNotFound:            "Account not found",
	AccountNegativeOpening:     "Initial balance cannot be negative",
	AccountBelowMinimumOpening: "Initial balance is below the minimum opening balance",
	AccountInvalidType:         "Invalid account type",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

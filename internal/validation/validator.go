package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("holder_name", validateHolderName)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateStruct validates a struct against its validate tags and returns
// field-level error messages keyed by the json field name
func (v *Validator) ValidateStruct(s interface{}) (map[string]string, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}

	fieldErrors := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = messageForTag(fe)
	}
	return fieldErrors, nil
}

// messageForTag builds a human-readable message for a failed validation tag
func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "account_number":
		return "must be 2 uppercase letters followed by 3 or more digits"
	case "account_type":
		return "must be one of: checking, savings"
	case "holder_name":
		return "must be 1-100 printable characters"
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}

// Custom validation functions

// validateAccountNumber validates that an account number follows the expected format
// Format: 2 uppercase letters (variant prefix) followed by 3 or more digits, e.g. CH001
func validateAccountNumber(fl validator.FieldLevel) bool {
	accountNumber := fl.Field().String()
	if accountNumber == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[A-Z]{2}\d{3,}$`, accountNumber)
	return matched
}

// validateAccountType validates that account type is one of the allowed types
func validateAccountType(fl validator.FieldLevel) bool {
	accountType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		"checking": true,
		"savings":  true,
	}
	return validTypes[accountType]
}

// validateHolderName validates that a holder name is non-blank and of sensible length
func validateHolderName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	return len(name) >= 1 && len(name) <= 100
}

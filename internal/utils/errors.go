package utils

import "errors"

// Common application errors used across services.
var (
	ErrValidation         = errors.New("VALIDATION_ERROR")
	ErrNotFound           = errors.New("NOT_FOUND")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrAccountInactive    = errors.New("ACCOUNT_INACTIVE")
	ErrForbidden          = errors.New("FORBIDDEN")
	ErrDuplicateUsername  = errors.New("DUPLICATE_USERNAME")
	ErrDuplicateEmail     = errors.New("DUPLICATE_EMAIL")
	ErrDuplicateCode      = errors.New("DUPLICATE_CODE")
	ErrSettingsConflict   = errors.New("SETTINGS_CONFLICT")
	ErrStatusLocked       = errors.New("STATUS_LOCKED")
	ErrInvalidTransition  = errors.New("INVALID_TRANSITION")
)

// FieldError is a single field-level validation violation. Intake endpoints
// return the full list, not just the first failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors carries every violation found in a request body.
type ValidationErrors []FieldError

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ErrValidation.Error()
	}
	return v[0].Field + ": " + v[0].Message
}

// Unwrap lets errors.Is(err, ErrValidation) match a violation list.
func (v ValidationErrors) Unwrap() error {
	return ErrValidation
}

// Add appends a violation and returns the extended list.
func (v ValidationErrors) Add(field, message string) ValidationErrors {
	return append(v, FieldError{Field: field, Message: message})
}

package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeValidationFailed  = "VALIDATION_FAILED"
	ErrCodeSessionNotFound   = "SESSION_NOT_FOUND"
	ErrCodeItemNotFound      = "ITEM_NOT_FOUND"
	ErrCodeRecipeNotFound    = "RECIPE_NOT_FOUND"
	ErrCodeListItemNotFound  = "LIST_ITEM_NOT_FOUND"
	ErrCodeExternalService   = "EXTERNAL_SERVICE_ERROR"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_MEDIA"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports a match on Code, so errors.Is(err, ErrValidation) holds for
// every validation error regardless of its message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(message string) *DomainError {
	return &DomainError{Code: ErrCodeValidationFailed, Message: message}
}

// NewExternalServiceError wraps a failure of an external collaborator.
func NewExternalServiceError(message string, err error) *DomainError {
	return &DomainError{Code: ErrCodeExternalService, Message: message, Err: err}
}

// Common domain errors
var (
	ErrValidation       = NewDomainError(ErrCodeValidationFailed, "")
	ErrExternalService  = NewDomainError(ErrCodeExternalService, "")
	ErrSessionNotFound  = NewDomainError(ErrCodeSessionNotFound, "Session not found")
	ErrItemNotFound     = NewDomainError(ErrCodeItemNotFound, "Inventory item not found")
	ErrRecipeNotFound   = NewDomainError(ErrCodeRecipeNotFound, "Recipe not found in catalog")
	ErrListItemNotFound = NewDomainError(ErrCodeListItemNotFound, "List entry not found")
	ErrUnsupportedImage = NewDomainError(ErrCodeUnsupportedFormat, "Receipt image must be a JPEG or PNG")
)

// ErrorCode returns the domain code carried by err, or ErrCodeInternalError.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrCodeInternalError
}

package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code, so that a
// specific occurrence still matches its sentinel through errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes of the production and inventory core
const (
	CodeNotFound             = "NOT_FOUND"
	CodeAlreadyExists        = "ALREADY_EXISTS"
	CodeValidation           = "VALIDATION_ERROR"
	CodeInvalidState         = "INVALID_STATE"
	CodeInsufficientStock    = "INSUFFICIENT_STOCK"
	CodeAlreadyCompleted     = "ALREADY_COMPLETED"
	CodeOrderTerminal        = "ORDER_TERMINAL"
	CodeOptimisticLockFailed = "OPTIMISTIC_LOCK_FAILED"
)

// Common domain errors
var (
	ErrNotFound                  = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists             = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrValidation                = NewDomainError(CodeValidation, "Invalid input provided")
	ErrInvalidState              = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
	ErrInsufficientStock         = NewDomainError(CodeInsufficientStock, "Insufficient stock available")
	ErrAlreadyCompleted          = NewDomainError(CodeAlreadyCompleted, "Line is already completed")
	ErrCompletionOnTerminalOrder = NewDomainError(CodeOrderTerminal, "Order is completed and accepts no further completions")
	ErrOptimisticLock            = NewDomainError(CodeOptimisticLockFailed, "Resource was modified by another transaction")
)

// NewValidationError creates a VALIDATION_ERROR with a formatted message
func NewValidationError(format string, args ...any) *DomainError {
	return NewDomainError(CodeValidation, fmt.Sprintf(format, args...))
}

// NewNotFoundError creates a NOT_FOUND error naming the missing resource
func NewNotFoundError(resource string, id fmt.Stringer) *DomainError {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s %s not found", resource, id))
}

package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrDependencyExists indicates that a resource cannot be deleted because other
// records still reference it.
var ErrDependencyExists = errors.New("resource is referenced by existing records")

// ErrInsufficientStock indicates that a sale requested more units than are on hand.
// The concrete InsufficientStockError carries product and quantity details.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrInternal indicates an unexpected storage or infrastructure fault. Unlike the
// errors above, resubmitting the same request may succeed.
var ErrInternal = errors.New("internal error")

// InsufficientStockError identifies which product could not satisfy a sale and by
// how much. It unwraps to ErrInsufficientStock so callers can match either way.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int64
	Requested   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q (%s): available %d, requested %d",
		e.ProductName, e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// AppError wraps an underlying error with a status code and a message suitable
// for clients. Repositories use it for faults outside the sentinel taxonomy.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInternal
}

// NewAppError creates a generic AppError with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches ErrValidation via errors.Is.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

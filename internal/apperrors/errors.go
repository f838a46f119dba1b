package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of the books.
var ErrConflict = errors.New("conflict")

// ErrForbidden indicates the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure in the store or runtime.
var ErrInternal = errors.New("internal error")

// kindError is a named bookkeeping failure that also matches a broader sentinel.
type kindError struct {
	msg    string
	parent error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.parent }

// Bookkeeping error kinds. Each one matches ErrValidation or ErrNotFound through errors.Is.
var (
	// ErrUnknownAccount is returned when an account code is not in the chart of accounts.
	ErrUnknownAccount error = &kindError{msg: "unknown account", parent: ErrValidation}
	// ErrInsufficientStock is returned when a sale (or a purchase reversal) needs more units than are on hand.
	ErrInsufficientStock error = &kindError{msg: "insufficient stock", parent: ErrValidation}
	// ErrUnbalancedEntry is returned when total debits differ from total credits.
	ErrUnbalancedEntry error = &kindError{msg: "unbalanced entry", parent: ErrValidation}
	// ErrInventoryNotFound is returned when a product has no inventory item.
	ErrInventoryNotFound error = &kindError{msg: "inventory item not found", parent: ErrNotFound}
	// ErrTransactionNotFound is returned when no journal lines carry the requested group id.
	ErrTransactionNotFound error = &kindError{msg: "transaction not found", parent: ErrNotFound}
	// ErrImbalanceDetected is reported by statements whose totals do not agree.
	ErrImbalanceDetected = errors.New("imbalance detected")
)

// AppError carries an HTTP-ish status code alongside a wrapped cause.
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
	if e.Code == 404 {
		return ErrNotFound
	}
	return ErrInternal
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError reports a missing resource and matches ErrNotFound.
func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: 404, Message: resource + " not found", Err: ErrNotFound}
}

// ImbalanceError describes totals that failed to agree on a report.
type ImbalanceError struct {
	Report      string
	Discrepancy decimal.Decimal
}

func (e *ImbalanceError) Error() string {
	return fmt.Sprintf("%s: %s is off by %s", ErrImbalanceDetected, e.Report, e.Discrepancy.StringFixed(2))
}

func (e *ImbalanceError) Unwrap() error { return ErrImbalanceDetected }

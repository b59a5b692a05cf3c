package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation           = 4000
	CodeInsufficientBalance  = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidVoteCount     = 4003
	CodeInvalidOption        = 4004
	CodeConstraintViolation  = 4005
	CodeInvalidUPI           = 4006
	CodeInvalidPoll          = 4007
	CodeUnauthorized         = 4010
	CodePaymentDeclined      = 4020
	CodeNotFound             = 4040
	CodeUserNotFound         = 4041
	CodePollNotFound         = 4042
	CodeWithdrawalNotFound   = 4043
	CodePaymentNotFound      = 4044
	CodeStateConflict        = 4090
	CodePollNotActive        = 4091
	CodePollAlreadyClosed    = 4092
	CodeWithdrawalNotPending = 4093
	CodePollOptionsLocked    = 4094
	CodeDuplicateUser        = 4095
	CodePollHasVotes         = 4096
	CodeSettlementMismatch   = 4097
	CodePaymentTimeout       = 4080

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Error classes. Every domain error belongs to exactly one class, and callers
// map classes to transport statuses with errors.Is.
var (
	// ErrValidation is returned for malformed input rejected before any side effect
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrStateConflict is returned when the target aggregate is in the wrong state
	ErrStateConflict = errors.New("state conflict")

	// ErrPaymentFailure is returned when the payment gateway did not confirm a charge
	ErrPaymentFailure = errors.New("payment failed")

	// ErrInsufficientBalance is returned when a wallet cannot cover a debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUnauthorized is returned when the caller identity is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// classifiedError is a sentinel that also matches its class
type classifiedError struct {
	msg   string
	class error
}

func (e *classifiedError) Error() string { return e.msg }

// Is reports whether target is the class this error belongs to
func (e *classifiedError) Is(target error) bool {
	return target == e.class
}

func newClassified(msg string, class error) error {
	return &classifiedError{msg: msg, class: class}
}

// Validation errors
var (
	ErrInvalidAmount       = newClassified("amount must be a positive value with at most 2 decimal places", ErrValidation)
	ErrInvalidVoteCount    = newClassified("vote count must be at least 1", ErrValidation)
	ErrInvalidOption       = newClassified("option does not belong to this poll", ErrValidation)
	ErrInvalidUPI          = newClassified("UPI ID is required", ErrValidation)
	ErrInvalidPoll         = newClassified("invalid poll definition", ErrValidation)
	ErrInvalidUserID       = newClassified("user ID is required", ErrValidation)
	ErrInvalidRequest      = newClassified("invalid request", ErrValidation)
	ErrNegativeBalance     = newClassified("balance cannot be negative", ErrValidation)
	ErrAmountOverflow      = newClassified("amount is too large and would cause overflow", ErrValidation)
	ErrInvalidEnumValue    = newClassified("invalid enumeration value", ErrValidation)
	ErrConstraintViolation = newClassified("database constraint violation", ErrValidation)
)

// Not found errors
var (
	ErrUserNotFound        = newClassified("user not found", ErrNotFound)
	ErrWalletNotFound      = newClassified("wallet not found", ErrNotFound)
	ErrPollNotFound        = newClassified("poll not found", ErrNotFound)
	ErrWithdrawalNotFound  = newClassified("withdrawal not found", ErrNotFound)
	ErrPaymentNotFound     = newClassified("payment order not found", ErrNotFound)
	ErrTransactionNotFound = newClassified("transaction not found", ErrNotFound)
	ErrSettlementNotFound  = newClassified("settlement not found", ErrNotFound)
)

// State conflicts
var (
	ErrPollNotActive        = newClassified("poll is not active", ErrStateConflict)
	ErrPollAlreadyClosed    = newClassified("poll is already closed", ErrStateConflict)
	ErrWithdrawalNotPending = newClassified("withdrawal is not pending", ErrStateConflict)
	ErrPollOptionsLocked    = newClassified("poll options and price cannot change after the first vote", ErrStateConflict)
	ErrPollHasVotes         = newClassified("an active poll with votes cannot be deleted", ErrStateConflict)
	ErrSettlementMismatch   = newClassified("poll is already settling with a different winning option", ErrStateConflict)
	ErrDuplicateUser        = newClassified("user already exists", ErrStateConflict)
	ErrDuplicateVote        = newClassified("vote already recorded for this payment order", ErrStateConflict)
)

// Payment failures
var (
	ErrPaymentDeclined = newClassified("payment declined", ErrPaymentFailure)
	ErrPaymentTimeout  = newClassified("payment confirmation timed out", ErrPaymentFailure)
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrAmountOverflow):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidVoteCount):
		return CodeInvalidVoteCount
	case errors.Is(err, ErrInvalidOption):
		return CodeInvalidOption
	case errors.Is(err, ErrInvalidUPI):
		return CodeInvalidUPI
	case errors.Is(err, ErrInvalidPoll):
		return CodeInvalidPoll
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrWalletNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrPollNotFound):
		return CodePollNotFound
	case errors.Is(err, ErrWithdrawalNotFound):
		return CodeWithdrawalNotFound
	case errors.Is(err, ErrPaymentNotFound):
		return CodePaymentNotFound
	case errors.Is(err, ErrPollNotActive):
		return CodePollNotActive
	case errors.Is(err, ErrPollAlreadyClosed):
		return CodePollAlreadyClosed
	case errors.Is(err, ErrWithdrawalNotPending):
		return CodeWithdrawalNotPending
	case errors.Is(err, ErrPollOptionsLocked):
		return CodePollOptionsLocked
	case errors.Is(err, ErrPollHasVotes):
		return CodePollHasVotes
	case errors.Is(err, ErrSettlementMismatch):
		return CodeSettlementMismatch
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrPaymentDeclined):
		return CodePaymentDeclined
	case errors.Is(err, ErrPaymentTimeout):
		return CodePaymentTimeout
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrStateConflict):
		return CodeStateConflict
	default:
		return CodeInternalServer
	}
}

// LedgerError represents a failed wallet mutation
type LedgerError struct {
	UserID    string
	Operation string
	Amount    string
	Balance   string
	Err       error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s failed for user %s (balance: %s, amount: %s): %v",
		e.Operation, e.UserID, e.Balance, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"user_id":    e.UserID,
		"operation":  e.Operation,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      string
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %s: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// PaymentError describes a gateway outcome that did not confirm an order
type PaymentError struct {
	OrderID string
	Amount  string
	Reason  string
	Err     error
}

// Error implements the error interface
func (e *PaymentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("payment order %s (amount: %s): %v", e.OrderID, e.Amount, e.Err)
	}
	return fmt.Sprintf("payment order %s (amount: %s): %v: %s", e.OrderID, e.Amount, e.Err, e.Reason)
}

// Unwrap returns the underlying error
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PaymentError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "payment_error",
		"order_id":   e.OrderID,
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewPaymentError creates a payment error wrapping ErrPaymentDeclined or ErrPaymentTimeout
func NewPaymentError(orderID, amount, reason string, err error) error {
	return &PaymentError{
		OrderID: orderID,
		Amount:  amount,
		Reason:  reason,
		Err:     err,
	}
}

// SettlementError represents a failure while declaring a poll result
type SettlementError struct {
	PollID   string
	OptionID string
	Phase    string
	Err      error
}

// Error implements the error interface
func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement of poll %s (winner: %s) failed during %s: %v",
		e.PollID, e.OptionID, e.Phase, e.Err)
}

// Unwrap returns the underlying error
func (e *SettlementError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SettlementError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "settlement_error",
		"poll_id":    e.PollID,
		"option_id":  e.OptionID,
		"phase":      e.Phase,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// LogFields extracts structured fields from the first typed error in the chain.
// Plain errors yield their message and code.
func LogFields(err error) map[string]any {
	var fielder interface{ LogFields() map[string]any }
	if errors.As(err, &fielder) {
		return fielder.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsValidationError checks if the error was caused by bad input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStateConflictError checks if the error is a state conflict
func IsStateConflictError(err error) bool {
	return errors.Is(err, ErrStateConflict)
}

// IsPaymentFailureError checks if the error is a declined or timed out payment
func IsPaymentFailureError(err error) bool {
	return errors.Is(err, ErrPaymentFailure)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

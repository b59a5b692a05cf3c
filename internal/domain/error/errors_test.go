package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, CodeInsufficientBalance},
		{"DetailedInsufficientBalance", NewInsufficientBalanceError("user_1", "10.00", "5.00"), CodeInsufficientBalance},
		{"InvalidAmount", ErrInvalidAmount, CodeInvalidAmount},
		{"InvalidVoteCount", ErrInvalidVoteCount, CodeInvalidVoteCount},
		{"PollNotFound", ErrPollNotFound, CodePollNotFound},
		{"PollNotActive", ErrPollNotActive, CodePollNotActive},
		{"PollAlreadyClosed", ErrPollAlreadyClosed, CodePollAlreadyClosed},
		{"WithdrawalNotPending", ErrWithdrawalNotPending, CodeWithdrawalNotPending},
		{"PaymentDeclined", NewPaymentError("order_1", "10.00", "card blocked", ErrPaymentDeclined), CodePaymentDeclined},
		{"PaymentTimeout", ErrPaymentTimeout, CodePaymentTimeout},
		{"GenericValidation", fmt.Errorf("%w: title", ErrValidation), CodeValidation},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidOption), CodeInvalidOption},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestClassifiedErrors_MatchTheirClass(t *testing.T) {
	testCases := []struct {
		name  string
		err   error
		class error
	}{
		{"InvalidVoteCount", ErrInvalidVoteCount, ErrValidation},
		{"InvalidOption", ErrInvalidOption, ErrValidation},
		{"PollNotFound", ErrPollNotFound, ErrNotFound},
		{"PollNotActive", ErrPollNotActive, ErrStateConflict},
		{"PollAlreadyClosed", ErrPollAlreadyClosed, ErrStateConflict},
		{"WithdrawalNotPending", ErrWithdrawalNotPending, ErrStateConflict},
		{"PaymentDeclined", ErrPaymentDeclined, ErrPaymentFailure},
		{"PaymentTimeout", ErrPaymentTimeout, ErrPaymentFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("operation failed: %w", tc.err)
			assert.ErrorIs(t, wrapped, tc.class)
			assert.ErrorIs(t, wrapped, tc.err)
		})
	}

	assert.NotErrorIs(t, ErrPollNotActive, ErrPollAlreadyClosed)
	assert.NotErrorIs(t, ErrPaymentDeclined, ErrPaymentTimeout)
}

func TestPaymentError(t *testing.T) {
	err := NewPaymentError("order_abc", "30.00", "insufficient funds at bank", ErrPaymentDeclined)

	assert.Equal(t, "payment order order_abc (amount: 30.00): payment declined: insufficient funds at bank", err.Error())
	assert.True(t, IsPaymentFailureError(err))
	assert.ErrorIs(t, err, ErrPaymentDeclined)

	fields := LogFields(err)
	assert.Equal(t, "payment_error", fields["error_type"])
	assert.Equal(t, "order_abc", fields["order_id"])
	assert.Equal(t, CodePaymentDeclined, fields["error_code"])
}

func TestLedgerError(t *testing.T) {
	baseErr := NewInsufficientBalanceError("user_1", "100.50", "50.25")
	ledgerErr := &LedgerError{
		UserID:    "user_1",
		Operation: "debit",
		Amount:    "100.50",
		Balance:   "50.25",
		Err:       baseErr,
	}

	assert.Equal(t,
		"ledger debit failed for user user_1 (balance: 50.25, amount: 100.50): insufficient balance for user user_1: required 100.50, available 50.25",
		ledgerErr.Error())
	assert.True(t, IsInsufficientBalanceError(ledgerErr))

	fields := ledgerErr.LogFields()
	assert.Equal(t, "ledger_error", fields["error_type"])
	assert.Equal(t, CodeInsufficientBalance, fields["error_code"])
}

func TestSettlementError(t *testing.T) {
	err := &SettlementError{PollID: "poll_1", OptionID: "opt_1", Phase: "freeze", Err: ErrPollAlreadyClosed}

	assert.ErrorIs(t, err, ErrPollAlreadyClosed)
	assert.True(t, IsStateConflictError(err))
	assert.Equal(t, "freeze", LogFields(err)["phase"])
}

func TestLogFields_PlainError(t *testing.T) {
	fields := LogFields(fmt.Errorf("lookup: %w", ErrUserNotFound))

	assert.Equal(t, "lookup: user not found", fields["error"])
	assert.Equal(t, CodeUserNotFound, fields["error_code"])
}

func TestHelperFunctions(t *testing.T) {
	assert.True(t, IsValidationError(ErrInvalidUPI))
	assert.True(t, IsNotFoundError(ErrWithdrawalNotFound))
	assert.True(t, IsStateConflictError(ErrPollOptionsLocked))
	assert.False(t, IsNotFoundError(ErrPollNotActive))
	assert.False(t, IsValidationError(errors.New("boom")))
}

package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
)

// DefaultWithdrawalFeeBasisPoints is the 10% processing fee
const DefaultWithdrawalFeeBasisPoints = 1000

// WithdrawalStatus is the lifecycle state of a payout request
type WithdrawalStatus string

// Withdrawal statuses; approved and rejected are terminal
const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

// Valid reports whether the status is known
func (s WithdrawalStatus) Valid() bool {
	return s == WithdrawalPending || s == WithdrawalApproved || s == WithdrawalRejected
}

// Withdrawal is a request to pay wallet money out to a UPI ID.
// The gross amount is debited when requested; NetAmount is paid out-of-band.
type Withdrawal struct {
	ID          string
	UserID      string
	Amount      Money
	Fee         Money
	NetAmount   Money
	UPIID       string
	Status      WithdrawalStatus
	AdminNotes  string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// NewWithdrawal validates a request and computes the fee
func NewWithdrawal(
	id string,
	userID string,
	amount Money,
	upiID string,
	feeBasisPoints int64,
	timeProvider coreport.TimeProvider,
) (*Withdrawal, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", errs.ErrInvalidAmount)
	}
	upiID = strings.TrimSpace(upiID)
	if upiID == "" {
		return nil, errs.ErrInvalidUPI
	}

	fee := FeeFor(amount, feeBasisPoints)
	return &Withdrawal{
		ID:        id,
		UserID:    userID,
		Amount:    amount,
		Fee:       fee,
		NetAmount: amount - fee,
		UPIID:     upiID,
		Status:    WithdrawalPending,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// Approve marks the payout as done; the ledger is untouched
func (w *Withdrawal) Approve(timeProvider coreport.TimeProvider) error {
	if w.Status != WithdrawalPending {
		return fmt.Errorf("%w: %s is %s", errs.ErrWithdrawalNotPending, w.ID, w.Status)
	}
	now := timeProvider.Now()
	w.Status = WithdrawalApproved
	w.ProcessedAt = &now
	return nil
}

// Reject cancels the request; the caller must reverse the gross debit
func (w *Withdrawal) Reject(notes string, timeProvider coreport.TimeProvider) error {
	if w.Status != WithdrawalPending {
		return fmt.Errorf("%w: %s is %s", errs.ErrWithdrawalNotPending, w.ID, w.Status)
	}
	now := timeProvider.Now()
	w.Status = WithdrawalRejected
	w.AdminNotes = strings.TrimSpace(notes)
	w.ProcessedAt = &now
	return nil
}

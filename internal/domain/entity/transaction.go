package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
)

// TransactionType is the closed set of ledger entry kinds
type TransactionType string

// Transaction types
const (
	TypePurchase           TransactionType = "purchase"
	TypeWin                TransactionType = "win"
	TypeWithdrawal         TransactionType = "withdrawal"
	TypeWithdrawalReversal TransactionType = "withdrawal_reversal"
)

// Valid reports whether the type is one of the known kinds
func (t TransactionType) Valid() bool {
	switch t {
	case TypePurchase, TypeWin, TypeWithdrawal, TypeWithdrawalReversal:
		return true
	}
	return false
}

// Debit reports whether entries of this type carry a negative amount
func (t TransactionType) Debit() bool {
	return t == TypePurchase || t == TypeWithdrawal
}

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending TransactionStatus = "pending"
	StatusSuccess TransactionStatus = "success"
	StatusFailed  TransactionStatus = "failed"
)

// Valid reports whether the status is known
func (s TransactionStatus) Valid() bool {
	return s == StatusPending || s == StatusSuccess || s == StatusFailed
}

// Funding tells whether an entry moved the wallet balance or an external instrument
type Funding string

// Funding channels
const (
	FundingWallet   Funding = "wallet"
	FundingExternal Funding = "external"
)

// Valid reports whether the funding channel is known
func (f Funding) Valid() bool {
	return f == FundingWallet || f == FundingExternal
}

// Transaction is one append-only ledger entry
type Transaction struct {
	ID           string
	UserID       string
	Type         TransactionType
	Amount       Money // signed: debits are negative
	Status       TransactionStatus
	Funding      Funding
	PollID       string // purchase and win entries
	ReferenceID  string // payment order or withdrawal ID
	ErrorMessage string
	CreatedAt    time.Time
	ProcessedAt  *time.Time
}

// NewTransaction creates a pending ledger entry. The sign of amount is derived
// from the type; amount itself must be positive.
func NewTransaction(
	id string,
	userID string,
	txType TransactionType,
	amount Money,
	funding Funding,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if !txType.Valid() {
		return nil, fmt.Errorf("%w: transaction type %q", errs.ErrInvalidEnumValue, txType)
	}
	if !funding.Valid() {
		return nil, fmt.Errorf("%w: funding %q", errs.ErrInvalidEnumValue, funding)
	}
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	signed := amount
	if txType.Debit() {
		signed = amount.Negate()
	}

	return &Transaction{
		ID:        id,
		UserID:    userID,
		Type:      txType,
		Amount:    signed,
		Status:    StatusPending,
		Funding:   funding,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// MarkAsSucceeded marks the entry as settled
func (t *Transaction) MarkAsSucceeded(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	t.ProcessedAt = &now
	t.Status = StatusSuccess
}

// MarkAsFailed marks the entry as failed with a reason
func (t *Transaction) MarkAsFailed(timeProvider coreport.TimeProvider, errorMessage string) {
	now := timeProvider.Now()
	t.ProcessedAt = &now
	t.Status = StatusFailed
	t.ErrorMessage = errorMessage
}

// AffectsBalance reports whether the entry counts toward the wallet balance
func (t *Transaction) AffectsBalance() bool {
	return t.Status == StatusSuccess && t.Funding == FundingWallet
}

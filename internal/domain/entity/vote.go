package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
)

// Vote is an append-only record of paid votes; a user may hold many per poll
type Vote struct {
	ID             string
	PollID         string
	UserID         string
	OptionID       string
	VoteCount      int64
	AmountPaid     Money
	PaymentOrderID string
	CreatedAt      time.Time
}

// IntentStatus is the state of a payment order
type IntentStatus string

// Payment intent statuses
const (
	IntentPending   IntentStatus = "pending"
	IntentConfirmed IntentStatus = "confirmed"
	IntentFailed    IntentStatus = "failed"
)

// PaymentIntent tracks a vote purchase from order creation until the gateway
// confirms or fails it. The order ID is the idempotency key for confirmation.
type PaymentIntent struct {
	OrderID       string
	UserID        string
	PollID        string
	OptionID      string
	VoteCount     int64
	Amount        Money
	Funding       Funding
	SessionID     string
	Status        IntentStatus
	TransactionID string
	VoteID        string
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPaymentIntent validates a purchase and prices it against the poll
func NewPaymentIntent(
	orderID string,
	userID string,
	poll *Poll,
	optionID string,
	voteCount int64,
	funding Funding,
	timeProvider coreport.TimeProvider,
) (*PaymentIntent, error) {
	if voteCount < 1 {
		return nil, errs.ErrInvalidVoteCount
	}
	if err := poll.EnsureAcceptingVotes(); err != nil {
		return nil, err
	}
	if _, ok := poll.Option(optionID); !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidOption, optionID)
	}
	amount, err := poll.PricePerVote.Times(voteCount)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &PaymentIntent{
		OrderID:   orderID,
		UserID:    userID,
		PollID:    poll.ID,
		OptionID:  optionID,
		VoteCount: voteCount,
		Amount:    amount,
		Funding:   funding,
		Status:    IntentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsTerminal reports whether the intent was already confirmed or failed
func (i *PaymentIntent) IsTerminal() bool {
	return i.Status != IntentPending
}

// Confirm links the recorded vote and completes the intent
func (i *PaymentIntent) Confirm(voteID string, timeProvider coreport.TimeProvider) {
	i.Status = IntentConfirmed
	i.VoteID = voteID
	i.UpdatedAt = timeProvider.Now()
}

// Fail completes the intent without a vote
func (i *PaymentIntent) Fail(reason string, timeProvider coreport.TimeProvider) {
	i.Status = IntentFailed
	i.FailureReason = reason
	i.UpdatedAt = timeProvider.Now()
}

// NewVote creates the vote a confirmed intent pays for
func (i *PaymentIntent) NewVote(voteID string, timeProvider coreport.TimeProvider) *Vote {
	return &Vote{
		ID:             voteID,
		PollID:         i.PollID,
		UserID:         i.UserID,
		OptionID:       i.OptionID,
		VoteCount:      i.VoteCount,
		AmountPaid:     i.Amount,
		PaymentOrderID: i.OrderID,
		CreatedAt:      timeProvider.Now(),
	}
}

// VoteReceipt is what a purchase or a confirmation hands back to the buyer
type VoteReceipt struct {
	OrderID          string
	Status           IntentStatus
	PaymentSessionID string
	Amount           Money
	FailureReason    string
	Vote             *Vote
	Transaction      *Transaction
}

package persistence

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
)

// PollFilter narrows poll listings
type PollFilter struct {
	Status entity.PollStatus // empty matches every status
}

// PollRepository stores polls together with their options. Soft-deleted polls are
// invisible to every method.
type PollRepository interface {
	// Create stores a poll and its options
	Create(ctx context.Context, poll *entity.Poll) error

	// GetByID retrieves a poll with options in position order
	//
	// Possible errors:
	// - ErrPollNotFound: If the poll doesn't exist or was deleted
	GetByID(ctx context.Context, id string) (*entity.Poll, error)

	// GetByIDForUpdate retrieves a poll and row-locks it until the unit of work ends
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Poll, error)

	// Update persists poll fields and option tallies
	Update(ctx context.Context, poll *entity.Poll) error

	// ReplaceOptions swaps the stored option set for poll.Options
	ReplaceOptions(ctx context.Context, poll *entity.Poll) error

	// Delete soft-deletes a poll
	//
	// Possible errors:
	// - ErrPollNotFound: If the poll doesn't exist or was already deleted
	Delete(ctx context.Context, id string) error

	// List returns polls newest first
	List(ctx context.Context, filter PollFilter, page Page) ([]*entity.Poll, error)

	// Count returns the number of polls matching the filter
	Count(ctx context.Context, filter PollFilter) (int64, error)
}

// VoteRepository stores append-only votes
type VoteRepository interface {
	// Create appends a vote
	//
	// Possible errors:
	// - ErrDuplicateVote: If a vote already exists for the payment order
	Create(ctx context.Context, vote *entity.Vote) error

	// GetByPaymentOrderID retrieves the vote a payment order paid for
	//
	// Possible errors:
	// - ErrPaymentNotFound: If no vote references the order
	GetByPaymentOrderID(ctx context.Context, orderID string) (*entity.Vote, error)

	// Tallies sums votes and amounts per (user, option) for a poll
	Tallies(ctx context.Context, pollID string) ([]entity.VoteTally, error)
}

// PaymentIntentRepository stores payment orders
type PaymentIntentRepository interface {
	Create(ctx context.Context, intent *entity.PaymentIntent) error

	// GetByOrderID retrieves an intent
	//
	// Possible errors:
	// - ErrPaymentNotFound: If the order doesn't exist
	GetByOrderID(ctx context.Context, orderID string) (*entity.PaymentIntent, error)

	// GetByOrderIDForUpdate retrieves an intent and row-locks it until the unit of work ends
	GetByOrderIDForUpdate(ctx context.Context, orderID string) (*entity.PaymentIntent, error)

	Update(ctx context.Context, intent *entity.PaymentIntent) error
}

// SettlementRepository stores declared results, one per poll
type SettlementRepository interface {
	// Create persists a settlement report without its payouts
	//
	// Possible errors:
	// - ErrPollAlreadyClosed: If the poll was already settled
	Create(ctx context.Context, report *entity.SettlementReport) error

	// GetByPollID retrieves the stored report
	//
	// Possible errors:
	// - ErrSettlementNotFound: If the poll has not been settled
	GetByPollID(ctx context.Context, pollID string) (*entity.SettlementReport, error)

	// SumHouseRetained sums what the house kept across all settlements
	SumHouseRetained(ctx context.Context) (entity.Money, error)
}

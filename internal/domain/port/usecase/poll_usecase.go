package usecase

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
)

// CreatePollRequest is an admin's poll definition
type CreatePollRequest struct {
	Title        string
	Description  string
	PricePerVote entity.Money
	Options      []string
}

// UpdatePollRequest carries the fields to change; nil and empty fields are left alone
type UpdatePollRequest struct {
	Title        *string
	Description  *string
	PricePerVote *entity.Money
	Options      []string
}

// PollUseCase defines poll management and browsing
type PollUseCase interface {
	CreatePoll(ctx context.Context, req CreatePollRequest) (*entity.Poll, error)

	// UpdatePoll edits an active poll. Options and price are locked after the first vote.
	UpdatePoll(ctx context.Context, pollID string, req UpdatePollRequest) (*entity.Poll, error)

	// DeletePoll soft-deletes a poll that holds no unsettled money
	DeletePoll(ctx context.Context, pollID string) error

	GetPoll(ctx context.Context, pollID string) (*entity.Poll, error)

	ListPolls(ctx context.Context, filter persistence.PollFilter, page persistence.Page) ([]*entity.Poll, error)
}

package usecase

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
)

// WithdrawalRequest asks to pay wallet money out. An empty UPIID falls back to the profile's.
type WithdrawalRequest struct {
	UserID string
	Amount entity.Money
	UPIID  string
}

// WithdrawalUseCase defines the payout lifecycle
type WithdrawalUseCase interface {
	// RequestWithdrawal debits the gross amount and queues the request for an admin
	RequestWithdrawal(ctx context.Context, req WithdrawalRequest) (*entity.Withdrawal, error)

	Approve(ctx context.Context, withdrawalID string) (*entity.Withdrawal, error)

	// Reject cancels the request and credits the gross amount back
	Reject(ctx context.Context, withdrawalID, notes string) (*entity.Withdrawal, error)

	History(ctx context.Context, userID string, page persistence.Page) ([]*entity.Withdrawal, error)

	List(ctx context.Context, filter persistence.WithdrawalFilter, page persistence.Page) ([]*entity.Withdrawal, error)
}

package persistence

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
)

// WithdrawalFilter narrows withdrawal listings; empty fields match everything
type WithdrawalFilter struct {
	UserID string
	Status entity.WithdrawalStatus
}

// WithdrawalRepository stores payout requests
type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *entity.Withdrawal) error

	// GetByID retrieves a withdrawal
	//
	// Possible errors:
	// - ErrWithdrawalNotFound: If the withdrawal doesn't exist
	GetByID(ctx context.Context, id string) (*entity.Withdrawal, error)

	// GetByIDForUpdate retrieves a withdrawal and row-locks it until the unit of work ends
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Withdrawal, error)

	// Update persists status, notes and processed time
	Update(ctx context.Context, withdrawal *entity.Withdrawal) error

	// List returns withdrawals newest first
	List(ctx context.Context, filter WithdrawalFilter, page Page) ([]*entity.Withdrawal, error)

	// Count returns the number of withdrawals matching the filter
	Count(ctx context.Context, filter WithdrawalFilter) (int64, error)
}

package usecase

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
)

// RegisterRequest is the input for creating an account
type RegisterRequest struct {
	Email string
	Name  string
	UPIID string
}

// Profile is a user together with their wallet
type Profile struct {
	User   *entity.User
	Wallet *entity.Wallet
}

// UserUseCase defines methods for account and wallet views
type UserUseCase interface {
	// Register creates the user and an empty wallet in one unit of work
	Register(ctx context.Context, req RegisterRequest) (*Profile, error)

	GetProfile(ctx context.Context, userID string) (*Profile, error)

	// UpdateUPI replaces the default payout identifier
	UpdateUPI(ctx context.Context, userID, upiID string) (*entity.User, error)

	GetWallet(ctx context.Context, userID string) (*entity.Wallet, error)

	// ListTransactions returns the user's ledger entries, newest first
	ListTransactions(ctx context.Context, userID string, page persistence.Page) ([]*entity.Transaction, error)
}

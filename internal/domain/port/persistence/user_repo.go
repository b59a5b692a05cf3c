package persistence

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// Create stores a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same ID or email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// Update saves the mutable profile fields (name, UPI ID)
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	Update(ctx context.Context, user *entity.User) error

	// List returns users ordered by creation time, newest first
	List(ctx context.Context, page Page) ([]*entity.User, error)

	// Count returns the number of registered users
	Count(ctx context.Context) (int64, error)
}

// WalletRepository stores the materialized balances. Balance changes must be paired
// with a transaction in the same unit of work.
type WalletRepository interface {
	// Create stores a new wallet
	//
	// Possible errors:
	// - ErrDuplicateUser: If the user already owns a wallet
	Create(ctx context.Context, wallet *entity.Wallet) error

	// GetByUserID retrieves a user's wallet
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet
	GetByUserID(ctx context.Context, userID string) (*entity.Wallet, error)

	// GetByUserIDForUpdate retrieves a wallet and row-locks it until the unit of work ends
	GetByUserIDForUpdate(ctx context.Context, userID string) (*entity.Wallet, error)

	// UpdateBalance persists the wallet's balance
	//
	// Possible errors:
	// - ErrWalletNotFound: If the wallet doesn't exist
	// - ErrNegativeBalance: If the storage constraint rejects the balance
	UpdateBalance(ctx context.Context, wallet *entity.Wallet) error

	// ListByUserIDs returns wallets keyed by user ID for the given users
	ListByUserIDs(ctx context.Context, userIDs []string) (map[string]*entity.Wallet, error)
}

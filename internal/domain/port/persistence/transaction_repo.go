package persistence

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
)

// TransactionFilter narrows ledger listings; empty fields match everything
type TransactionFilter struct {
	UserID string
	PollID string
	Type   entity.TransactionType
	Status entity.TransactionStatus
}

// TransactionRepository defines essential methods to interact with the append-only ledger
type TransactionRepository interface {
	// Create appends a new ledger entry
	//
	// Possible errors:
	// - ErrConstraintViolation: If an entry with the same ID already exists
	// - ErrUserNotFound: If referenced user does not exist
	Create(ctx context.Context, transaction *entity.Transaction) error

	// UpdateStatus persists a status transition (pending to success or failed)
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the entry doesn't exist
	UpdateStatus(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a ledger entry
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the entry doesn't exist
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// List returns entries matching the filter, newest first
	List(ctx context.Context, filter TransactionFilter, page Page) ([]*entity.Transaction, error)

	// WalletLedgerBalance sums the successful wallet-funded entries of a user
	WalletLedgerBalance(ctx context.Context, userID string) (entity.Money, error)

	// SumAmount sums the signed amounts of entries matching the filter
	SumAmount(ctx context.Context, filter TransactionFilter) (entity.Money, error)
}

package usecase

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
)

// UserSummary is a user row in the admin listing
type UserSummary struct {
	User    *entity.User
	Balance entity.Money
}

// AdminUseCase defines the operator views
type AdminUseCase interface {
	Dashboard(ctx context.Context) (*entity.Dashboard, error)

	ListUsers(ctx context.Context, page persistence.Page) ([]UserSummary, error)

	ListTransactions(ctx context.Context, filter persistence.TransactionFilter, page persistence.Page) ([]*entity.Transaction, error)

	// Reconcile recomputes a wallet's balance from its ledger and reports drift
	Reconcile(ctx context.Context, userID string) (*entity.ReconcileReport, error)
}

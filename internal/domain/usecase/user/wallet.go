package user

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
)

// GetWallet returns the user's wallet with its current balance
func (u *UserUseCase) GetWallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	return u.uow.GetWalletRepository(ctx).GetByUserID(ctx, userID)
}

// ListTransactions returns the user's ledger entries, newest first
func (u *UserUseCase) ListTransactions(ctx context.Context, userID string, page persistence.Page) ([]*entity.Transaction, error) {
	return u.uow.GetTransactionRepository(ctx).List(ctx, persistence.TransactionFilter{UserID: userID}, page)
}

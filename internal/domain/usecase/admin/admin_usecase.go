package admin

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/ledger"
)

// AdminUseCase serves the operator views
type AdminUseCase struct {
	uow    persistence.UnitOfWork
	poster *ledger.Poster
	logger coreport.Logger
}

var _ usecase.AdminUseCase = (*AdminUseCase)(nil)

// NewAdminUseCase creates an AdminUseCase
func NewAdminUseCase(uow persistence.UnitOfWork, poster *ledger.Poster, logger coreport.Logger) *AdminUseCase {
	return &AdminUseCase{uow: uow, poster: poster, logger: logger}
}

// Dashboard gathers platform totals
func (u *AdminUseCase) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	var d entity.Dashboard
	var err error

	if d.TotalUsers, err = u.uow.GetUserRepository(ctx).Count(ctx); err != nil {
		return nil, err
	}

	polls := u.uow.GetPollRepository(ctx)
	if d.TotalPolls, err = polls.Count(ctx, persistence.PollFilter{}); err != nil {
		return nil, err
	}
	if d.ActivePolls, err = polls.Count(ctx, persistence.PollFilter{Status: entity.PollActive}); err != nil {
		return nil, err
	}

	d.PendingWithdrawals, err = u.uow.GetWithdrawalRepository(ctx).Count(ctx, persistence.WithdrawalFilter{Status: entity.WithdrawalPending})
	if err != nil {
		return nil, err
	}

	txns := u.uow.GetTransactionRepository(ctx)
	purchases, err := txns.SumAmount(ctx, persistence.TransactionFilter{Type: entity.TypePurchase, Status: entity.StatusSuccess})
	if err != nil {
		return nil, err
	}
	d.TotalRevenue = purchases.Negate()
	if d.TotalPaidOut, err = txns.SumAmount(ctx, persistence.TransactionFilter{Type: entity.TypeWin, Status: entity.StatusSuccess}); err != nil {
		return nil, err
	}

	if d.HouseRetained, err = u.uow.GetSettlementRepository(ctx).SumHouseRetained(ctx); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListUsers returns users with their current balances
func (u *AdminUseCase) ListUsers(ctx context.Context, page persistence.Page) ([]usecase.UserSummary, error) {
	users, err := u.uow.GetUserRepository(ctx).List(ctx, page)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(users))
	for i, user := range users {
		ids[i] = user.ID
	}
	wallets, err := u.uow.GetWalletRepository(ctx).ListByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]usecase.UserSummary, len(users))
	for i, user := range users {
		summaries[i].User = user
		if w, ok := wallets[user.ID]; ok {
			summaries[i].Balance = w.Balance()
		}
	}
	return summaries, nil
}

// ListTransactions returns ledger entries across users
func (u *AdminUseCase) ListTransactions(
	ctx context.Context,
	filter persistence.TransactionFilter,
	page persistence.Page,
) ([]*entity.Transaction, error) {
	return u.uow.GetTransactionRepository(ctx).List(ctx, filter, page)
}

// Reconcile compares a wallet with its ledger inside one snapshot
func (u *AdminUseCase) Reconcile(ctx context.Context, userID string) (*entity.ReconcileReport, error) {
	var report *entity.ReconcileReport
	err := u.uow.Execute(ctx, func(txCtx context.Context) error {
		var err error
		report, err = u.poster.Reconcile(txCtx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Wallet reconciled", map[string]any{
		"user_id":    userID,
		"consistent": report.Consistent,
		"drift":      report.Drift.String(),
	})
	return report, nil
}

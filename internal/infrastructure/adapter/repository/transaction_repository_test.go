package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/logger"
)

func ledgerEntry(id, userID string, typ entity.TransactionType, amount entity.Money, status entity.TransactionStatus, funding entity.Funding) *entity.Transaction {
	return &entity.Transaction{
		ID:        id,
		UserID:    userID,
		Type:      typ,
		Amount:    amount,
		Status:    status,
		Funding:   funding,
		PollID:    "poll_1",
		CreatedAt: testNow,
	}
}

func TestTransactionRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db, logger.NewNoopLogger())
	ctx := context.Background()

	seedUser(t, db, "user_1", 0)
	seedUser(t, db, "user_2", 0)

	entries := []*entity.Transaction{
		ledgerEntry("txn_1", "user_1", entity.TypePurchase, -entity.Rupees(30), entity.StatusSuccess, entity.FundingExternal),
		ledgerEntry("txn_2", "user_1", entity.TypeWin, entity.Rupees(40), entity.StatusSuccess, entity.FundingWallet),
		ledgerEntry("txn_3", "user_1", entity.TypeWithdrawal, -entity.Rupees(10), entity.StatusSuccess, entity.FundingWallet),
		ledgerEntry("txn_4", "user_1", entity.TypePurchase, -entity.Rupees(20), entity.StatusPending, entity.FundingExternal),
		ledgerEntry("txn_5", "user_2", entity.TypePurchase, -entity.Rupees(10), entity.StatusSuccess, entity.FundingExternal),
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
	}

	t.Run("DuplicateID", func(t *testing.T) {
		err := repo.Create(ctx, entries[0])
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		err := repo.Create(ctx, ledgerEntry("txn_x", "ghost", entity.TypeWin, 1, entity.StatusSuccess, entity.FundingWallet))
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("WalletLedgerBalanceIgnoresExternalAndPending", func(t *testing.T) {
		balance, err := repo.WalletLedgerBalance(ctx, "user_1")
		require.NoError(t, err)
		assert.Equal(t, entity.Rupees(30), balance)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		pending, err := repo.GetByID(ctx, "txn_4")
		require.NoError(t, err)
		pending.Status = entity.StatusFailed
		pending.ErrorMessage = "declined"
		pending.ProcessedAt = &testNow
		require.NoError(t, repo.UpdateStatus(ctx, pending))

		got, err := repo.GetByID(ctx, "txn_4")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, got.Status)
		assert.Equal(t, "declined", got.ErrorMessage)
		assert.NotNil(t, got.ProcessedAt)

		assert.ErrorIs(t, repo.UpdateStatus(ctx, &entity.Transaction{ID: "missing"}), errs.ErrTransactionNotFound)
	})

	t.Run("ListWithFilter", func(t *testing.T) {
		txns, err := repo.List(ctx, persistence.TransactionFilter{UserID: "user_1", Type: entity.TypePurchase}, persistence.Page{})
		require.NoError(t, err)
		assert.Len(t, txns, 2)
		for _, txn := range txns {
			assert.Equal(t, entity.TypePurchase, txn.Type)
		}
	})

	t.Run("SumAmount", func(t *testing.T) {
		revenue, err := repo.SumAmount(ctx, persistence.TransactionFilter{Type: entity.TypePurchase, Status: entity.StatusSuccess})
		require.NoError(t, err)
		assert.Equal(t, -entity.Rupees(40), revenue)
	})
}

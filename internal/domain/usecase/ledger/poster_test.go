package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	mockpersistence "github.com/amirhossein-jamali/pollwin/mocks/port/persistence"
)

type posterFixture struct {
	poster  *Poster
	uow     *mockpersistence.MockUnitOfWork
	wallets *mockpersistence.MockWalletRepository
	txns    *mockpersistence.MockTransactionRepository
}

func newPosterFixture(t *testing.T) *posterFixture {
	f := &posterFixture{
		uow:     mockpersistence.NewMockUnitOfWork(t),
		wallets: mockpersistence.NewMockWalletRepository(t),
		txns:    mockpersistence.NewMockTransactionRepository(t),
	}
	f.uow.EXPECT().GetWalletRepository(mock.Anything).Return(f.wallets).Maybe()
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txns).Maybe()
	f.poster = NewPoster(f.uow, sequentialIDs(t), clockWithIdle(t, 0), quietLogger(t))
	return f
}

func wallet(t *testing.T, userID string, balance entity.Money) *entity.Wallet {
	w, err := entity.RestoreWallet("wal_"+userID, userID, balance, fixedNow)
	require.NoError(t, err)
	return w
}

func TestPoster_Post(t *testing.T) {
	ctx := context.Background()

	t.Run("CreditWin", func(t *testing.T) {
		f := newPosterFixture(t)
		f.wallets.EXPECT().GetByUserIDForUpdate(ctx, "user_1").Return(wallet(t, "user_1", 100), nil)
		f.wallets.EXPECT().UpdateBalance(ctx, mock.MatchedBy(func(w *entity.Wallet) bool {
			return w.Balance() == 2767
		})).Return(nil)
		f.txns.EXPECT().Create(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TypeWin &&
				txn.Amount == 2667 &&
				txn.Status == entity.StatusSuccess &&
				txn.Funding == entity.FundingWallet &&
				txn.PollID == "poll_1"
		})).Return(nil)

		txn, err := f.poster.Post(ctx, Entry{UserID: "user_1", Type: entity.TypeWin, Amount: 2667, PollID: "poll_1"})
		require.NoError(t, err)
		assert.Equal(t, "txn_1", txn.ID)
	})

	t.Run("DebitWithdrawal", func(t *testing.T) {
		f := newPosterFixture(t)
		f.wallets.EXPECT().GetByUserIDForUpdate(ctx, "user_1").Return(wallet(t, "user_1", entity.Rupees(500)), nil)
		f.wallets.EXPECT().UpdateBalance(ctx, mock.MatchedBy(func(w *entity.Wallet) bool {
			return w.Balance() == 0
		})).Return(nil)
		f.txns.EXPECT().Create(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Amount == -entity.Rupees(500) && txn.ReferenceID == "wd_1"
		})).Return(nil)

		_, err := f.poster.Post(ctx, Entry{UserID: "user_1", Type: entity.TypeWithdrawal, Amount: entity.Rupees(500), ReferenceID: "wd_1"})
		require.NoError(t, err)
	})

	t.Run("InsufficientBalanceLeavesNoEntry", func(t *testing.T) {
		f := newPosterFixture(t)
		f.wallets.EXPECT().GetByUserIDForUpdate(ctx, "user_1").Return(wallet(t, "user_1", 99), nil)

		_, err := f.poster.Post(ctx, Entry{UserID: "user_1", Type: entity.TypeWithdrawal, Amount: 100})

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		var ledgerErr *errs.LedgerError
		require.ErrorAs(t, err, &ledgerErr)
		assert.Equal(t, "debit", ledgerErr.Operation)
		f.wallets.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
		f.txns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("InvalidAmount", func(t *testing.T) {
		f := newPosterFixture(t)
		_, err := f.poster.Post(ctx, Entry{UserID: "user_1", Type: entity.TypeWin, Amount: 0})
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestPoster_PendingLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("ExternalPurchaseLeavesWalletAlone", func(t *testing.T) {
		f := newPosterFixture(t)
		f.txns.EXPECT().Create(ctx, mock.Anything).Return(nil)
		f.txns.EXPECT().UpdateStatus(ctx, mock.Anything).Return(nil)

		txn, err := f.poster.OpenPending(ctx, Entry{UserID: "user_1", Type: entity.TypePurchase, Amount: entity.Rupees(30)}, entity.FundingExternal)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, txn.Status)

		require.NoError(t, f.poster.Complete(ctx, txn))
		assert.Equal(t, entity.StatusSuccess, txn.Status)
		f.wallets.AssertNotCalled(t, "GetByUserIDForUpdate", mock.Anything, mock.Anything)

		// completing twice is a no-op
		require.NoError(t, f.poster.Complete(ctx, txn))
		f.txns.AssertNumberOfCalls(t, "UpdateStatus", 1)
	})

	t.Run("WalletPurchaseDebitsOnCompletion", func(t *testing.T) {
		f := newPosterFixture(t)
		f.txns.EXPECT().Create(ctx, mock.Anything).Return(nil)
		f.wallets.EXPECT().GetByUserIDForUpdate(ctx, "user_1").Return(wallet(t, "user_1", entity.Rupees(50)), nil)
		f.wallets.EXPECT().UpdateBalance(ctx, mock.MatchedBy(func(w *entity.Wallet) bool {
			return w.Balance() == entity.Rupees(20)
		})).Return(nil)
		f.txns.EXPECT().UpdateStatus(ctx, mock.Anything).Return(nil)

		txn, err := f.poster.OpenPending(ctx, Entry{UserID: "user_1", Type: entity.TypePurchase, Amount: entity.Rupees(30)}, entity.FundingWallet)
		require.NoError(t, err)
		require.NoError(t, f.poster.Complete(ctx, txn))
	})

	t.Run("Fail", func(t *testing.T) {
		f := newPosterFixture(t)
		f.txns.EXPECT().UpdateStatus(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Status == entity.StatusFailed && txn.ErrorMessage == "declined"
		})).Return(nil)

		txn := &entity.Transaction{ID: "txn_9", UserID: "user_1", Status: entity.StatusPending}
		require.NoError(t, f.poster.Fail(ctx, txn, "declined"))
	})
}

func TestPoster_Reconcile(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		balance    entity.Money
		ledger     entity.Money
		consistent bool
	}{
		{"Consistent", entity.Rupees(40), entity.Rupees(40), true},
		{"Drifted", entity.Rupees(40), entity.Rupees(35), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newPosterFixture(t)
			f.wallets.EXPECT().GetByUserID(ctx, "user_1").Return(wallet(t, "user_1", tc.balance), nil)
			f.txns.EXPECT().WalletLedgerBalance(ctx, "user_1").Return(tc.ledger, nil)

			report, err := f.poster.Reconcile(ctx, "user_1")
			require.NoError(t, err)
			assert.Equal(t, tc.consistent, report.Consistent)
			assert.Equal(t, tc.balance-tc.ledger, report.Drift)
		})
	}
}

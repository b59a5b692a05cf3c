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

func TestWithdrawalRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewWithdrawalRepository(db, logger.NewNoopLogger())
	ctx := context.Background()

	for i, userID := range []string{"user_1", "user_1", "user_2"} {
		require.NoError(t, repo.Create(ctx, &entity.Withdrawal{
			ID:        []string{"wd_1", "wd_2", "wd_3"}[i],
			UserID:    userID,
			Amount:    entity.Rupees(100),
			Fee:       entity.Rupees(10),
			NetAmount: entity.Rupees(90),
			UPIID:     userID + "@upi",
			Status:    entity.WithdrawalPending,
			CreatedAt: testNow,
		}))
	}

	t.Run("Update", func(t *testing.T) {
		wd, err := repo.GetByIDForUpdate(ctx, "wd_1")
		require.NoError(t, err)
		wd.Status = entity.WithdrawalRejected
		wd.AdminNotes = "invalid UPI"
		wd.ProcessedAt = &testNow
		require.NoError(t, repo.Update(ctx, wd))

		got, err := repo.GetByID(ctx, "wd_1")
		require.NoError(t, err)
		assert.Equal(t, entity.WithdrawalRejected, got.Status)
		assert.Equal(t, "invalid UPI", got.AdminNotes)
		assert.Equal(t, entity.Rupees(90), got.NetAmount)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "wd_missing")
		assert.ErrorIs(t, err, errs.ErrWithdrawalNotFound)
		assert.ErrorIs(t, repo.Update(ctx, &entity.Withdrawal{ID: "wd_missing"}), errs.ErrWithdrawalNotFound)
	})

	t.Run("FilterByUserAndStatus", func(t *testing.T) {
		mine, err := repo.List(ctx, persistence.WithdrawalFilter{UserID: "user_1"}, persistence.Page{})
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		pending, err := repo.Count(ctx, persistence.WithdrawalFilter{Status: entity.WithdrawalPending})
		require.NoError(t, err)
		assert.Equal(t, int64(2), pending)
	})
}

func TestSettlementRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettlementRepository(db, logger.NewNoopLogger())
	ctx := context.Background()

	report := &entity.SettlementReport{
		PollID:          "poll_1",
		WinningOptionID: "opt_yes",
		TotalVotes:      10,
		TotalAmount:     entity.Rupees(100),
		WinningWeight:   0,
		HouseRetained:   entity.Rupees(100),
		SettledAt:       testNow,
	}
	require.NoError(t, repo.Create(ctx, report))

	t.Run("SettleOnce", func(t *testing.T) {
		assert.ErrorIs(t, repo.Create(ctx, report), errs.ErrPollAlreadyClosed)
	})

	t.Run("GetByPollID", func(t *testing.T) {
		got, err := repo.GetByPollID(ctx, "poll_1")
		require.NoError(t, err)
		assert.Equal(t, "opt_yes", got.WinningOptionID)
		assert.Equal(t, entity.Rupees(100), got.HouseRetained)

		_, err = repo.GetByPollID(ctx, "poll_2")
		assert.ErrorIs(t, err, errs.ErrSettlementNotFound)
	})

	t.Run("SumHouseRetained", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &entity.SettlementReport{
			PollID:          "poll_2",
			WinningOptionID: "opt_a",
			HouseRetained:   entity.Money(7),
			SettledAt:       testNow,
		}))

		sum, err := repo.SumHouseRetained(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Rupees(100)+7, sum)
	})
}

func TestPaymentIntentRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentIntentRepository(db, logger.NewNoopLogger())
	ctx := context.Background()

	intent := &entity.PaymentIntent{
		OrderID:       "order_1",
		UserID:        "user_1",
		PollID:        "poll_1",
		OptionID:      "opt_yes",
		VoteCount:     3,
		Amount:        entity.Rupees(30),
		Funding:       entity.FundingExternal,
		Status:        entity.IntentPending,
		TransactionID: "txn_1",
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
	}
	require.NoError(t, repo.Create(ctx, intent))

	got, err := repo.GetByOrderIDForUpdate(ctx, "order_1")
	require.NoError(t, err)
	assert.Equal(t, entity.IntentPending, got.Status)

	got.Status = entity.IntentConfirmed
	got.VoteID = "vote_1"
	got.SessionID = "sess_1"
	require.NoError(t, repo.Update(ctx, got))

	confirmed, err := repo.GetByOrderID(ctx, "order_1")
	require.NoError(t, err)
	assert.Equal(t, entity.IntentConfirmed, confirmed.Status)
	assert.Equal(t, "vote_1", confirmed.VoteID)
	assert.Equal(t, "sess_1", confirmed.SessionID)

	_, err = repo.GetByOrderID(ctx, "order_missing")
	assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
}

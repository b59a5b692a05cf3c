package vote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
)

func purchase(optionID string, count int64) usecase.PurchaseRequest {
	return usecase.PurchaseRequest{UserID: "user_1", PollID: "poll_1", OptionID: optionID, VoteCount: count}
}

func TestPurchaseAndVote_ImmediateConfirmation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, entity.FundingExternal)
	poll := activePoll()

	f.expectOpenOrder(poll)
	f.expectStoredOrder()
	f.gateway.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(req external.OrderRequest) bool {
		return req.OrderID == "order_1" && req.Amount == entity.Rupees(30)
	})).Return(&external.OrderResult{OrderID: "order_1", Status: external.OrderConfirmed}, nil)
	f.polls.EXPECT().GetByIDForUpdate(mock.Anything, "poll_1").Return(poll, nil)
	f.polls.EXPECT().Update(mock.Anything, mock.MatchedBy(func(p *entity.Poll) bool {
		return p.TotalVotes == 3 && p.Options[1].VoteCount == 3 && p.Options[1].Amount == entity.Rupees(30)
	})).Return(nil)
	f.votes.EXPECT().Create(mock.Anything, mock.MatchedBy(func(v *entity.Vote) bool {
		return v.PaymentOrderID == "order_1" && v.OptionID == "opt_b" && v.VoteCount == 3
	})).Return(nil)

	receipt, err := f.useCase.PurchaseAndVote(ctx, purchase("opt_b", 3))

	require.NoError(t, err)
	assert.Equal(t, entity.IntentConfirmed, receipt.Status)
	assert.Equal(t, entity.Rupees(30), receipt.Amount)
	require.NotNil(t, receipt.Vote)
	assert.Equal(t, "vote_1", receipt.Vote.ID)
	require.NotNil(t, receipt.Transaction)
	assert.Equal(t, entity.StatusSuccess, receipt.Transaction.Status)
	assert.Equal(t, -entity.Rupees(30), receipt.Transaction.Amount)
	assert.Equal(t, entity.FundingExternal, receipt.Transaction.Funding)
	f.wallets.AssertNotCalled(t, "GetByUserIDForUpdate", mock.Anything, mock.Anything)
}

func TestPurchaseAndVote_DeferredConfirmation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, entity.FundingExternal)

	f.expectOpenOrder(activePoll())
	f.expectStoredOrder()
	f.gateway.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Return(&external.OrderResult{OrderID: "order_1", SessionID: "sess_abc", Status: external.OrderPending}, nil)

	receipt, err := f.useCase.PurchaseAndVote(ctx, purchase("opt_a", 1))

	require.NoError(t, err)
	assert.Equal(t, entity.IntentPending, receipt.Status)
	assert.Equal(t, "sess_abc", receipt.PaymentSessionID)
	assert.Nil(t, receipt.Vote)
	assert.Equal(t, entity.StatusPending, f.txn.Status)
	f.votes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPurchaseAndVote_GatewayOutcomes(t *testing.T) {
	ctx := context.Background()

	t.Run("Declined", func(t *testing.T) {
		f := newFixture(t, entity.FundingExternal)
		f.expectOpenOrder(activePoll())
		f.expectStoredOrder()
		f.gateway.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			Return(&external.OrderResult{OrderID: "order_1", Status: external.OrderDeclined, Reason: "card blocked"}, nil)

		receipt, err := f.useCase.PurchaseAndVote(ctx, purchase("opt_a", 2))

		assert.ErrorIs(t, err, errs.ErrPaymentDeclined)
		require.NotNil(t, receipt)
		assert.Equal(t, entity.IntentFailed, receipt.Status)
		assert.Equal(t, "card blocked", receipt.FailureReason)
		assert.Equal(t, entity.StatusFailed, f.txn.Status)
	})

	t.Run("TimeoutLeavesOrderPending", func(t *testing.T) {
		f := newFixture(t, entity.FundingExternal)
		f.expectOpenOrder(activePoll())
		f.gateway.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			Return(nil, errs.NewPaymentError("order_1", "20.00", "no answer", errs.ErrPaymentTimeout))

		receipt, err := f.useCase.PurchaseAndVote(ctx, purchase("opt_a", 2))

		assert.ErrorIs(t, err, errs.ErrPaymentTimeout)
		require.NotNil(t, receipt)
		assert.Equal(t, entity.IntentPending, receipt.Status)
		assert.Equal(t, entity.IntentPending, f.intent.Status)
		f.intents.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestPurchaseAndVote_Preconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidVoteCount", func(t *testing.T) {
		f := newFixture(t, entity.FundingExternal)
		_, err := f.useCase.PurchaseAndVote(ctx, purchase("opt_a", 0))
		assert.ErrorIs(t, err, errs.ErrInvalidVoteCount)
	})

	testCases := []struct {
		name     string
		poll     func() *entity.Poll
		optionID string
		expected error
	}{
		{
			name:     "PollNotActive",
			poll:     func() *entity.Poll { p := activePoll(); p.Status = entity.PollClosed; return p },
			optionID: "opt_a",
			expected: errs.ErrPollNotActive,
		},
		{
			name:     "OptionFromAnotherPoll",
			poll:     activePoll,
			optionID: "opt_zzz",
			expected: errs.ErrInvalidOption,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, entity.FundingExternal)
			f.users.EXPECT().GetByID(mock.Anything, "user_1").Return(&entity.User{ID: "user_1"}, nil)
			f.polls.EXPECT().GetByID(mock.Anything, "poll_1").Return(tc.poll(), nil)

			_, err := f.useCase.PurchaseAndVote(ctx, purchase(tc.optionID, 1))

			assert.ErrorIs(t, err, tc.expected)
			f.txns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			f.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}

	t.Run("UnknownUser", func(t *testing.T) {
		f := newFixture(t, entity.FundingExternal)
		f.users.EXPECT().GetByID(mock.Anything, "user_1").Return(nil, errs.ErrUserNotFound)

		_, err := f.useCase.PurchaseAndVote(ctx, purchase("opt_a", 1))
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestPurchaseAndVote_WalletFunding(t *testing.T) {
	ctx := context.Background()

	t.Run("DebitsWalletWithoutGateway", func(t *testing.T) {
		f := newFixture(t, entity.FundingWallet)
		poll := activePoll()
		wallet, err := entity.RestoreWallet("wal_1", "user_1", entity.Rupees(50), fixedNow)
		require.NoError(t, err)

		f.expectOpenOrder(poll)
		f.expectStoredOrder()
		f.wallets.EXPECT().GetByUserID(mock.Anything, "user_1").Return(wallet, nil)
		f.wallets.EXPECT().GetByUserIDForUpdate(mock.Anything, "user_1").Return(wallet, nil)
		f.wallets.EXPECT().UpdateBalance(mock.Anything, wallet).Return(nil)
		f.polls.EXPECT().GetByIDForUpdate(mock.Anything, "poll_1").Return(poll, nil)
		f.polls.EXPECT().Update(mock.Anything, poll).Return(nil)
		f.votes.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		receipt, err := f.useCase.PurchaseAndVote(ctx, purchase("opt_a", 3))

		require.NoError(t, err)
		assert.Equal(t, entity.IntentConfirmed, receipt.Status)
		assert.Equal(t, entity.Rupees(20), wallet.Balance())
		assert.Equal(t, entity.FundingWallet, receipt.Transaction.Funding)
		f.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("ShortWalletIsRejectedUpFront", func(t *testing.T) {
		f := newFixture(t, entity.FundingWallet)
		wallet, err := entity.RestoreWallet("wal_1", "user_1", entity.Rupees(5), fixedNow)
		require.NoError(t, err)

		f.users.EXPECT().GetByID(mock.Anything, "user_1").Return(&entity.User{ID: "user_1"}, nil)
		f.polls.EXPECT().GetByID(mock.Anything, "poll_1").Return(activePoll(), nil)
		f.wallets.EXPECT().GetByUserID(mock.Anything, "user_1").Return(wallet, nil)

		_, err = f.useCase.PurchaseAndVote(ctx, purchase("opt_a", 1))

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		f.txns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

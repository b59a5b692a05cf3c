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

// pendingOrder seeds the fixture with an open external order for 2 votes on opt_a
func pendingOrder(f *fixture) {
	f.intent = &entity.PaymentIntent{
		OrderID:       "order_1",
		UserID:        "user_1",
		PollID:        "poll_1",
		OptionID:      "opt_a",
		VoteCount:     2,
		Amount:        entity.Rupees(20),
		Funding:       entity.FundingExternal,
		Status:        entity.IntentPending,
		TransactionID: "txn_9",
		CreatedAt:     fixedNow,
	}
	f.txn = &entity.Transaction{
		ID:          "txn_9",
		UserID:      "user_1",
		Type:        entity.TypePurchase,
		Amount:      -entity.Rupees(20),
		Status:      entity.StatusPending,
		Funding:     entity.FundingExternal,
		PollID:      "poll_1",
		ReferenceID: "order_1",
	}
	f.expectStoredOrder()
}

func TestConfirmPayment_ReplayReturnsOriginalReceipt(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, entity.FundingExternal)
	pendingOrder(f)
	poll := activePoll()

	f.polls.EXPECT().GetByIDForUpdate(mock.Anything, "poll_1").Return(poll, nil).Once()
	f.polls.EXPECT().Update(mock.Anything, poll).Return(nil).Once()
	var stored *entity.Vote
	f.votes.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, v *entity.Vote) error {
			stored = v
			return nil
		}).Once()
	f.votes.EXPECT().GetByPaymentOrderID(mock.Anything, "order_1").RunAndReturn(
		func(context.Context, string) (*entity.Vote, error) {
			return stored, nil
		})

	first, err := f.useCase.ConfirmPayment(ctx, "order_1")
	require.NoError(t, err)
	second, err := f.useCase.ConfirmPayment(ctx, "order_1")
	require.NoError(t, err)

	assert.Equal(t, entity.IntentConfirmed, second.Status)
	assert.Equal(t, first.Vote.ID, second.Vote.ID)
	assert.Equal(t, first.Transaction.ID, second.Transaction.ID)
	assert.Equal(t, int64(2), poll.TotalVotes)
}

func TestConfirmPayment_AfterPollClosed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, entity.FundingExternal)
	pendingOrder(f)
	poll := activePoll()
	poll.Status = entity.PollSettling

	f.polls.EXPECT().GetByIDForUpdate(mock.Anything, "poll_1").Return(poll, nil)
	f.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n external.Notification) bool {
		return n.Kind == external.EventRefundRequired
	})).Return(nil).Once()

	receipt, err := f.useCase.ConfirmPayment(ctx, "order_1")

	require.NoError(t, err)
	assert.Equal(t, entity.IntentFailed, receipt.Status)
	assert.Equal(t, ReasonPollClosed, receipt.FailureReason)
	assert.Equal(t, entity.StatusFailed, f.txn.Status)
	assert.Zero(t, poll.TotalVotes)
	f.votes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.polls.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	// a replayed confirmation neither records a vote nor notifies again
	replay, err := f.useCase.ConfirmPayment(ctx, "order_1")
	require.NoError(t, err)
	assert.Equal(t, entity.IntentFailed, replay.Status)
}

func TestConfirmPayment_OrderThatCanNoLongerVote(t *testing.T) {
	replaced := activePoll()
	replaced.Options = []entity.Option{
		{ID: "opt_c", PollID: "poll_1", Position: 0, Text: "C"},
		{ID: "opt_d", PollID: "poll_1", Position: 1, Text: "D"},
	}

	testCases := []struct {
		name     string
		poll     *entity.Poll
		lookup   error
		expected string
	}{
		{"PollDeleted", nil, errs.ErrPollNotFound, ReasonPollRemoved},
		{"OptionsReplaced", replaced, nil, ReasonOptionRemoved},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			f := newFixture(t, entity.FundingExternal)
			pendingOrder(f)
			f.polls.EXPECT().GetByIDForUpdate(mock.Anything, "poll_1").Return(tc.poll, tc.lookup)
			f.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n external.Notification) bool {
				return n.Kind == external.EventRefundRequired
			})).Return(nil).Once()

			// Act
			receipt, err := f.useCase.ConfirmPayment(context.Background(), "order_1")

			// Assert
			require.NoError(t, err)
			assert.Equal(t, entity.IntentFailed, receipt.Status)
			assert.Equal(t, tc.expected, receipt.FailureReason)
			assert.Equal(t, entity.StatusFailed, f.txn.Status)
			f.votes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			f.polls.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestConfirmPayment_PollLookupFailureKeepsOrderPending(t *testing.T) {
	f := newFixture(t, entity.FundingExternal)
	pendingOrder(f)
	f.polls.EXPECT().GetByIDForUpdate(mock.Anything, "poll_1").Return(nil, assert.AnError)

	_, err := f.useCase.ConfirmPayment(context.Background(), "order_1")

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, entity.IntentPending, f.intent.Status)
}

func TestConfirmPayment_NotificationFailureIsTolerated(t *testing.T) {
	f := newFixture(t, entity.FundingExternal)
	pendingOrder(f)
	poll := activePoll()
	poll.Status = entity.PollClosed

	f.polls.EXPECT().GetByIDForUpdate(mock.Anything, "poll_1").Return(poll, nil)
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(assert.AnError)

	receipt, err := f.useCase.ConfirmPayment(context.Background(), "order_1")
	require.NoError(t, err)
	assert.Equal(t, entity.IntentFailed, receipt.Status)
}

func TestConfirmPayment_UnknownOrder(t *testing.T) {
	f := newFixture(t, entity.FundingExternal)
	f.intents.EXPECT().GetByOrderIDForUpdate(mock.Anything, "order_x").Return(nil, errs.ErrPaymentNotFound)

	_, err := f.useCase.ConfirmPayment(context.Background(), "order_x")
	assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
}

func TestFailPayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, entity.FundingExternal)
	pendingOrder(f)

	receipt, err := f.useCase.FailPayment(ctx, "order_1", "insufficient funds at bank")

	require.NoError(t, err)
	assert.Equal(t, entity.IntentFailed, receipt.Status)
	assert.Equal(t, entity.StatusFailed, f.txn.Status)
	assert.Equal(t, "insufficient funds at bank", f.txn.ErrorMessage)

	// failing a closed order changes nothing
	_, err = f.useCase.FailPayment(ctx, "order_1", "again")
	require.NoError(t, err)
	assert.Equal(t, "insufficient funds at bank", f.intent.FailureReason)
}

func TestRetryConfirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("OtherUsersOrderIsHidden", func(t *testing.T) {
		f := newFixture(t, entity.FundingExternal)
		pendingOrder(f)

		_, err := f.useCase.RetryConfirmation(ctx, "user_2", "order_1")
		assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
	})

	t.Run("StillPending", func(t *testing.T) {
		f := newFixture(t, entity.FundingExternal)
		pendingOrder(f)
		f.intent.SessionID = "sess_1"
		f.gateway.EXPECT().FetchOrderStatus(mock.Anything, "order_1").
			Return(&external.OrderResult{OrderID: "order_1", SessionID: "sess_1", Status: external.OrderPending}, nil)

		receipt, err := f.useCase.RetryConfirmation(ctx, "user_1", "order_1")
		require.NoError(t, err)
		assert.Equal(t, entity.IntentPending, receipt.Status)
		assert.Equal(t, "sess_1", receipt.PaymentSessionID)
	})

	t.Run("GatewayNowConfirms", func(t *testing.T) {
		f := newFixture(t, entity.FundingExternal)
		pendingOrder(f)
		poll := activePoll()
		f.gateway.EXPECT().FetchOrderStatus(mock.Anything, "order_1").
			Return(&external.OrderResult{OrderID: "order_1", Status: external.OrderConfirmed}, nil)
		f.polls.EXPECT().GetByIDForUpdate(mock.Anything, "poll_1").Return(poll, nil)
		f.polls.EXPECT().Update(mock.Anything, poll).Return(nil)
		f.votes.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		receipt, err := f.useCase.RetryConfirmation(ctx, "user_1", "order_1")
		require.NoError(t, err)
		assert.Equal(t, entity.IntentConfirmed, receipt.Status)
	})

	t.Run("GatewayStillSilent", func(t *testing.T) {
		f := newFixture(t, entity.FundingExternal)
		pendingOrder(f)
		f.gateway.EXPECT().FetchOrderStatus(mock.Anything, "order_1").
			Return(nil, errs.NewPaymentError("order_1", "", "no answer", errs.ErrPaymentTimeout))

		_, err := f.useCase.RetryConfirmation(ctx, "user_1", "order_1")
		assert.ErrorIs(t, err, errs.ErrPaymentTimeout)
		assert.Equal(t, entity.IntentPending, f.intent.Status)
	})
}

func TestHandleWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("DeclinedWithoutReason", func(t *testing.T) {
		f := newFixture(t, entity.FundingExternal)
		pendingOrder(f)

		receipt, err := f.useCase.HandleWebhook(ctx, usecase.WebhookEvent{OrderID: "order_1", Status: external.OrderDeclined})
		require.NoError(t, err)
		assert.Equal(t, entity.IntentFailed, receipt.Status)
		assert.Equal(t, "declined by gateway", receipt.FailureReason)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		f := newFixture(t, entity.FundingExternal)

		_, err := f.useCase.HandleWebhook(ctx, usecase.WebhookEvent{OrderID: "order_1", Status: "refunded"})
		assert.ErrorIs(t, err, errs.ErrInvalidEnumValue)
	})
}

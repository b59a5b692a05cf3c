package entity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/pollwin/mocks/port/core"
)

func sequentialIDs(t *testing.T) *coremocks.MockIDGenerator {
	ids := coremocks.NewMockIDGenerator(t)
	n := 0
	ids.EXPECT().NewID(mock.Anything).RunAndReturn(func(prefix string) string {
		n++
		return fmt.Sprintf("%s_%d", prefix, n)
	}).Maybe()
	return ids
}

func newTestPoll(t *testing.T, options ...string) *Poll {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	if len(options) == 0 {
		options = []string{"Yes", "No"}
	}
	p, err := NewPoll(sequentialIDs(t), mockTime, "Will it rain?", "", Rupees(10), options)
	require.NoError(t, err)
	return p
}

func TestNewPoll(t *testing.T) {
	p := newTestPoll(t, " Yes ", "No", "Maybe")

	assert.Equal(t, "poll_1", p.ID)
	assert.Equal(t, PollActive, p.Status)
	require.Len(t, p.Options, 3)
	for i, opt := range p.Options {
		assert.Equal(t, p.ID, opt.PollID)
		assert.Equal(t, i, opt.Position)
	}
	assert.Equal(t, "Yes", p.Options[0].Text)
}

func TestNewPoll_Invalid(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	testCases := []struct {
		name    string
		title   string
		price   Money
		options []string
	}{
		{"blank title", " ", Rupees(10), []string{"A", "B"}},
		{"zero price", "Q", 0, []string{"A", "B"}},
		{"single option", "Q", Rupees(10), []string{"A"}},
		{"empty option", "Q", Rupees(10), []string{"A", " "}},
		{"duplicate option", "Q", Rupees(10), []string{"Yes", "yes"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPoll(sequentialIDs(t), mockTime, tc.title, "", tc.price, tc.options)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, errs.ErrInvalidPoll)
			assert.True(t, errs.IsValidationError(err))
		})
	}
}

func TestPoll_RecordVote(t *testing.T) {
	p := newTestPoll(t)
	yes := p.Options[0].ID

	require.NoError(t, p.RecordVote(yes, 3, Rupees(30)))

	assert.Equal(t, int64(3), p.Options[0].VoteCount)
	assert.Equal(t, Rupees(30), p.Options[0].Amount)
	assert.Equal(t, int64(3), p.TotalVotes)
	assert.Equal(t, Rupees(30), p.TotalAmount)
	assert.ErrorIs(t, p.RecordVote("opt_missing", 1, Rupees(10)), errs.ErrInvalidOption)
}

func TestPoll_SettlementLifecycle(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	closedAt := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	mockTime.EXPECT().Now().Return(closedAt).Maybe()

	p := newTestPoll(t)
	yes, no := p.Options[0].ID, p.Options[1].ID

	assert.Error(t, p.Close(mockTime), "close requires settling first")
	assert.ErrorIs(t, p.BeginSettlement("opt_missing"), errs.ErrInvalidOption)
	assert.Equal(t, PollActive, p.Status)

	require.NoError(t, p.BeginSettlement(yes))
	assert.Equal(t, PollSettling, p.Status)
	assert.ErrorIs(t, p.EnsureAcceptingVotes(), errs.ErrPollNotActive)

	require.NoError(t, p.BeginSettlement(yes), "resuming with the same option")
	assert.ErrorIs(t, p.BeginSettlement(no), errs.ErrSettlementMismatch)

	require.NoError(t, p.Close(mockTime))
	assert.Equal(t, PollClosed, p.Status)
	assert.Equal(t, closedAt, *p.ClosedAt)
	assert.ErrorIs(t, p.BeginSettlement(yes), errs.ErrPollAlreadyClosed)
	assert.ErrorIs(t, p.RecordVote(yes, 1, Rupees(10)), errs.ErrPollNotActive)
}

func TestPoll_Editing(t *testing.T) {
	t.Run("details editable while active", func(t *testing.T) {
		p := newTestPoll(t)
		title, desc := "  New title ", "details"

		require.NoError(t, p.UpdateDetails(&title, &desc))

		assert.Equal(t, "New title", p.Title)
		assert.Equal(t, "details", p.Description)
		blank := ""
		assert.ErrorIs(t, p.UpdateDetails(&blank, nil), errs.ErrInvalidPoll)
	})

	t.Run("options and price lock after the first vote", func(t *testing.T) {
		p := newTestPoll(t)
		require.NoError(t, p.ReplaceOptions(sequentialIDs(t), []string{"A", "B", "C"}))
		require.NoError(t, p.ChangePrice(Rupees(20)))
		assert.Len(t, p.Options, 3)
		assert.Equal(t, Rupees(20), p.PricePerVote)

		require.NoError(t, p.RecordVote(p.Options[0].ID, 1, Rupees(20)))

		assert.ErrorIs(t, p.ReplaceOptions(sequentialIDs(t), []string{"X", "Y"}), errs.ErrPollOptionsLocked)
		assert.ErrorIs(t, p.ChangePrice(Rupees(5)), errs.ErrPollOptionsLocked)
	})
}

func TestPoll_EnsureDeletable(t *testing.T) {
	empty := newTestPoll(t)
	assert.NoError(t, empty.EnsureDeletable())

	voted := newTestPoll(t)
	require.NoError(t, voted.RecordVote(voted.Options[0].ID, 1, Rupees(10)))
	assert.ErrorIs(t, voted.EnsureDeletable(), errs.ErrPollHasVotes)

	require.NoError(t, voted.BeginSettlement(voted.Options[0].ID))
	assert.ErrorIs(t, voted.EnsureDeletable(), errs.ErrPollNotActive)
}

func TestNewPaymentIntent(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	p := newTestPoll(t)

	intent, err := NewPaymentIntent("order_1", "user_1", p, p.Options[1].ID, 3, FundingExternal, mockTime)
	require.NoError(t, err)
	assert.Equal(t, Rupees(30), intent.Amount)
	assert.Equal(t, IntentPending, intent.Status)
	assert.False(t, intent.IsTerminal())

	vote := intent.NewVote("vote_1", mockTime)
	intent.Confirm(vote.ID, mockTime)
	assert.Equal(t, "order_1", vote.PaymentOrderID)
	assert.Equal(t, Rupees(30), vote.AmountPaid)
	assert.True(t, intent.IsTerminal())

	_, err = NewPaymentIntent("order_2", "user_1", p, p.Options[0].ID, 0, FundingExternal, mockTime)
	assert.ErrorIs(t, err, errs.ErrInvalidVoteCount)

	_, err = NewPaymentIntent("order_3", "user_1", p, "opt_missing", 1, FundingExternal, mockTime)
	assert.ErrorIs(t, err, errs.ErrInvalidOption)

	_, err = NewPaymentIntent("order_4", "user_1", p, p.Options[0].ID, 1<<62, FundingExternal, mockTime)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)
}

func newFixedTime(t *testing.T) *coremocks.MockTimeProvider {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)).Maybe()
	return mockTime
}

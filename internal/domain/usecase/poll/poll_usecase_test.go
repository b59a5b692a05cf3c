package poll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/testutil"
)

func newUseCase(t *testing.T) (*PollUseCase, *testutil.Repositories) {
	repos := testutil.NewRepositories(t)
	logger := testutil.QuietLogger(t)
	clock := testutil.Clock(t)
	manager := ledger.NewManager(logger, clock, 10, time.Minute)
	t.Cleanup(manager.Shutdown)
	return NewPollUseCase(repos.UoW, manager, testutil.SequentialIDs(t), clock, logger), repos
}

func storedPoll(totalVotes int64) *entity.Poll {
	return &entity.Poll{
		ID:           "poll_1",
		Title:        "Match winner",
		PricePerVote: entity.Rupees(10),
		Status:       entity.PollActive,
		TotalVotes:   totalVotes,
		Options: []entity.Option{
			{ID: "opt_1", PollID: "poll_1", Position: 0, Text: "Home"},
			{ID: "opt_2", PollID: "poll_1", Position: 1, Text: "Away"},
		},
	}
}

func ptr[T any](v T) *T { return &v }

func TestCreatePoll(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		uc, repos := newUseCase(t)
		repos.Polls.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.Poll) bool {
			return p.ID == "poll_1" && len(p.Options) == 3 && p.Options[2].Position == 2
		})).Return(nil)

		poll, err := uc.CreatePoll(ctx, usecase.CreatePollRequest{
			Title:        " Who scores first? ",
			PricePerVote: entity.Rupees(10),
			Options:      []string{"Home", "Away", "Nobody"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Who scores first?", poll.Title)
		assert.Equal(t, entity.PollActive, poll.Status)
	})

	testCases := []struct {
		name string
		req  usecase.CreatePollRequest
	}{
		{"OneOption", usecase.CreatePollRequest{Title: "t", PricePerVote: 100, Options: []string{"only"}}},
		{"DuplicateOptions", usecase.CreatePollRequest{Title: "t", PricePerVote: 100, Options: []string{"Yes", "yes"}}},
		{"ZeroPrice", usecase.CreatePollRequest{Title: "t", Options: []string{"a", "b"}}},
		{"BlankTitle", usecase.CreatePollRequest{Title: "  ", PricePerVote: 100, Options: []string{"a", "b"}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repos := newUseCase(t)
			_, err := uc.CreatePoll(ctx, tc.req)
			assert.ErrorIs(t, err, errs.ErrInvalidPoll)
			repos.Polls.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdatePoll(t *testing.T) {
	ctx := context.Background()

	t.Run("DetailsAfterVotes", func(t *testing.T) {
		uc, repos := newUseCase(t)
		poll := storedPoll(5)
		repos.Polls.EXPECT().GetByIDForUpdate(mock.Anything, "poll_1").Return(poll, nil)
		repos.Polls.EXPECT().Update(mock.Anything, poll).Return(nil)

		updated, err := uc.UpdatePoll(ctx, "poll_1", usecase.UpdatePollRequest{
			Title:        ptr("Match winner (final)"),
			PricePerVote: ptr(entity.Rupees(10)),
		})

		require.NoError(t, err)
		assert.Equal(t, "Match winner (final)", updated.Title)
	})

	t.Run("OptionsBeforeFirstVote", func(t *testing.T) {
		uc, repos := newUseCase(t)
		poll := storedPoll(0)
		repos.Polls.EXPECT().GetByIDForUpdate(mock.Anything, "poll_1").Return(poll, nil)
		repos.Polls.EXPECT().ReplaceOptions(mock.Anything, poll).Return(nil)
		repos.Polls.EXPECT().Update(mock.Anything, poll).Return(nil)

		updated, err := uc.UpdatePoll(ctx, "poll_1", usecase.UpdatePollRequest{
			Options:      []string{"Home", "Away", "Draw"},
			PricePerVote: ptr(entity.Rupees(20)),
		})

		require.NoError(t, err)
		assert.Len(t, updated.Options, 3)
		assert.Equal(t, entity.Rupees(20), updated.PricePerVote)
	})

	lockedCases := []struct {
		name string
		req  usecase.UpdatePollRequest
	}{
		{"Options", usecase.UpdatePollRequest{Options: []string{"x", "y"}}},
		{"Price", usecase.UpdatePollRequest{PricePerVote: ptr(entity.Rupees(15))}},
	}
	for _, tc := range lockedCases {
		t.Run("LockedAfterFirstVote/"+tc.name, func(t *testing.T) {
			uc, repos := newUseCase(t)
			repos.Polls.EXPECT().GetByIDForUpdate(mock.Anything, "poll_1").Return(storedPoll(1), nil)

			_, err := uc.UpdatePoll(ctx, "poll_1", tc.req)

			assert.ErrorIs(t, err, errs.ErrPollOptionsLocked)
			repos.Polls.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}

	t.Run("ClosedPoll", func(t *testing.T) {
		uc, repos := newUseCase(t)
		poll := storedPoll(0)
		poll.Status = entity.PollClosed
		repos.Polls.EXPECT().GetByIDForUpdate(mock.Anything, "poll_1").Return(poll, nil)

		_, err := uc.UpdatePoll(ctx, "poll_1", usecase.UpdatePollRequest{Title: ptr("new")})
		assert.ErrorIs(t, err, errs.ErrPollNotActive)
	})
}

func TestDeletePoll(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		status   entity.PollStatus
		votes    int64
		expected error
	}{
		{"ActiveWithoutVotes", entity.PollActive, 0, nil},
		{"ClosedWithVotes", entity.PollClosed, 4, nil},
		{"ActiveWithVotes", entity.PollActive, 4, errs.ErrPollHasVotes},
		{"Settling", entity.PollSettling, 4, errs.ErrPollNotActive},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repos := newUseCase(t)
			poll := storedPoll(tc.votes)
			poll.Status = tc.status
			repos.Polls.EXPECT().GetByIDForUpdate(mock.Anything, "poll_1").Return(poll, nil)
			if tc.expected == nil {
				repos.Polls.EXPECT().Delete(mock.Anything, "poll_1").Return(nil)
			}

			err := uc.DeletePoll(ctx, "poll_1")

			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expected)
			repos.Polls.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}
}

func TestListPolls(t *testing.T) {
	uc, repos := newUseCase(t)
	filter := persistence.PollFilter{Status: entity.PollActive}
	repos.Polls.EXPECT().List(mock.Anything, filter, persistence.Page{Limit: 20}).
		Return([]*entity.Poll{storedPoll(0)}, nil)

	polls, err := uc.ListPolls(context.Background(), filter, persistence.Page{Limit: 20})
	require.NoError(t, err)
	assert.Len(t, polls, 1)

	_, err = uc.ListPolls(context.Background(), persistence.PollFilter{Status: "archived"}, persistence.Page{})
	assert.ErrorIs(t, err, errs.ErrInvalidEnumValue)
}

package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/ledger"
)

const notifyTimeout = 3 * time.Second

// SettlementUseCase declares poll results and pays winners out of the pool
type SettlementUseCase struct {
	uow          persistence.UnitOfWork
	manager      *ledger.Manager
	poster       *ledger.Poster
	notifier     external.Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.SettlementUseCase = (*SettlementUseCase)(nil)

// NewSettlementUseCase creates a SettlementUseCase
func NewSettlementUseCase(
	uow persistence.UnitOfWork,
	manager *ledger.Manager,
	poster *ledger.Poster,
	notifier external.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *SettlementUseCase {
	return &SettlementUseCase{
		uow:          uow,
		manager:      manager,
		poster:       poster,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// DeclareResult settles a poll in two committed steps. The first freezes voting
// by moving the poll to settling; the second credits winners and closes it.
// A poll left settling by a crash resumes when declared again with the same option.
func (u *SettlementUseCase) DeclareResult(ctx context.Context, pollID, winningOptionID string) (*entity.SettlementReport, error) {
	var report *entity.SettlementReport
	var title string

	err := u.manager.Do(ctx, ledger.PollKey(pollID), func(ctx context.Context) error {
		if err := u.uow.Execute(ctx, func(txCtx context.Context) error {
			return u.freeze(txCtx, pollID, winningOptionID)
		}); err != nil {
			return err
		}

		return u.uow.Execute(ctx, func(txCtx context.Context) error {
			var err error
			report, title, err = u.distribute(txCtx, pollID, winningOptionID)
			return err
		})
	})
	if err != nil {
		fields := errs.LogFields(err)
		fields["poll_id"] = pollID
		u.logger.Warn("Result declaration failed", fields)
		return nil, err
	}

	u.logger.Info("Poll settled", map[string]any{
		"poll_id":           pollID,
		"winning_option_id": winningOptionID,
		"total_amount":      report.TotalAmount.String(),
		"winners":           len(report.Payouts),
		"distributed":       report.Distributed.String(),
		"house_retained":    report.HouseRetained.String(),
	})
	u.notify(ctx, external.Notification{
		Kind: external.EventPollSettled,
		Message: fmt.Sprintf("%q settled: pool %s, %d winner(s) paid %s, house kept %s.",
			title, report.TotalAmount.Display(), len(report.Payouts),
			report.Distributed.Display(), report.HouseRetained.Display()),
	})
	return report, nil
}

// freeze moves an active poll to settling with the winning option recorded
func (u *SettlementUseCase) freeze(ctx context.Context, pollID, winningOptionID string) error {
	polls := u.uow.GetPollRepository(ctx)
	poll, err := polls.GetByIDForUpdate(ctx, pollID)
	if err != nil {
		return err
	}
	if poll.Status == entity.PollSettling && poll.ResultOptionID == winningOptionID {
		u.logger.Warn("Resuming interrupted settlement", map[string]any{"poll_id": pollID})
		return nil
	}
	if err := poll.BeginSettlement(winningOptionID); err != nil {
		return &errs.SettlementError{PollID: pollID, OptionID: winningOptionID, Phase: "freeze", Err: err}
	}
	return polls.Update(ctx, poll)
}

// distribute computes payouts from the frozen tally, credits them and closes the poll
func (u *SettlementUseCase) distribute(ctx context.Context, pollID, winningOptionID string) (*entity.SettlementReport, string, error) {
	polls := u.uow.GetPollRepository(ctx)
	poll, err := polls.GetByIDForUpdate(ctx, pollID)
	if err != nil {
		return nil, "", err
	}
	if poll.Status != entity.PollSettling || poll.ResultOptionID != winningOptionID {
		return nil, "", &errs.SettlementError{PollID: pollID, OptionID: winningOptionID, Phase: "distribute", Err: errs.ErrPollAlreadyClosed}
	}

	tallies, err := u.uow.GetVoteRepository(ctx).Tallies(ctx, pollID)
	if err != nil {
		return nil, "", err
	}
	report := entity.ComputeSettlement(poll, winningOptionID, tallies, u.timeProvider.Now())

	for _, p := range report.Payouts {
		if p.Amount == 0 {
			continue
		}
		if _, err := u.poster.Post(ctx, ledger.Entry{
			UserID: p.UserID,
			Type:   entity.TypeWin,
			Amount: p.Amount,
			PollID: pollID,
		}); err != nil {
			return nil, "", &errs.SettlementError{PollID: pollID, OptionID: winningOptionID, Phase: "distribute", Err: err}
		}
	}

	if err := poll.Close(u.timeProvider); err != nil {
		return nil, "", err
	}
	if err := polls.Update(ctx, poll); err != nil {
		return nil, "", err
	}
	if err := u.uow.GetSettlementRepository(ctx).Create(ctx, &report); err != nil {
		return nil, "", err
	}
	return &report, poll.Title, nil
}

// GetResults aggregates the poll's votes per option
func (u *SettlementUseCase) GetResults(ctx context.Context, pollID string) (*entity.PollResults, error) {
	poll, err := u.uow.GetPollRepository(ctx).GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	tallies, err := u.uow.GetVoteRepository(ctx).Tallies(ctx, pollID)
	if err != nil {
		return nil, err
	}
	results := entity.BuildResults(poll, tallies)
	return &results, nil
}

// GetMyResult replays the settlement arithmetic for one user
func (u *SettlementUseCase) GetMyResult(ctx context.Context, pollID, userID string) (*entity.MyResult, error) {
	poll, err := u.uow.GetPollRepository(ctx).GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	tallies, err := u.uow.GetVoteRepository(ctx).Tallies(ctx, pollID)
	if err != nil {
		return nil, err
	}
	result := entity.ComputeMyResult(poll, tallies, userID)
	return &result, nil
}

func (u *SettlementUseCase) notify(ctx context.Context, n external.Notification) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if err := u.notifier.Notify(ctx, n); err != nil {
		u.logger.Warn("Failed to deliver notification", map[string]any{
			"kind":  n.Kind,
			"error": err.Error(),
		})
	}
}

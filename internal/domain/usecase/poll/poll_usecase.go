package poll

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/ledger"
)

// PollUseCase manages polls and their options
type PollUseCase struct {
	uow          persistence.UnitOfWork
	manager      *ledger.Manager
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.PollUseCase = (*PollUseCase)(nil)

// NewPollUseCase creates a PollUseCase
func NewPollUseCase(
	uow persistence.UnitOfWork,
	manager *ledger.Manager,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *PollUseCase {
	return &PollUseCase{
		uow:          uow,
		manager:      manager,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreatePoll validates the definition and stores an active poll
func (u *PollUseCase) CreatePoll(ctx context.Context, req usecase.CreatePollRequest) (*entity.Poll, error) {
	poll, err := entity.NewPoll(u.idGenerator, u.timeProvider, req.Title, req.Description, req.PricePerVote, req.Options)
	if err != nil {
		return nil, err
	}

	if err := u.uow.Execute(ctx, func(txCtx context.Context) error {
		return u.uow.GetPollRepository(txCtx).Create(txCtx, poll)
	}); err != nil {
		u.logger.Error("Failed to create poll", errs.LogFields(err))
		return nil, err
	}

	u.logger.Info("Poll created", map[string]any{
		"poll_id":        poll.ID,
		"options":        len(poll.Options),
		"price_per_vote": poll.PricePerVote.String(),
	})
	return poll, nil
}

// UpdatePoll edits an active poll under its key so no settlement interleaves
func (u *PollUseCase) UpdatePoll(ctx context.Context, pollID string, req usecase.UpdatePollRequest) (*entity.Poll, error) {
	var poll *entity.Poll
	err := u.manager.Do(ctx, ledger.PollKey(pollID), func(ctx context.Context) error {
		return u.uow.Execute(ctx, func(txCtx context.Context) error {
			polls := u.uow.GetPollRepository(txCtx)
			var err error
			poll, err = polls.GetByIDForUpdate(txCtx, pollID)
			if err != nil {
				return err
			}

			if err := poll.UpdateDetails(req.Title, req.Description); err != nil {
				return err
			}
			if req.PricePerVote != nil && *req.PricePerVote != poll.PricePerVote {
				if err := poll.ChangePrice(*req.PricePerVote); err != nil {
					return err
				}
			}
			if len(req.Options) > 0 {
				if err := poll.ReplaceOptions(u.idGenerator, req.Options); err != nil {
					return err
				}
				if err := polls.ReplaceOptions(txCtx, poll); err != nil {
					return err
				}
			}
			return polls.Update(txCtx, poll)
		})
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Poll updated", map[string]any{"poll_id": pollID})
	return poll, nil
}

// DeletePoll soft-deletes a poll that holds no unsettled money
func (u *PollUseCase) DeletePoll(ctx context.Context, pollID string) error {
	err := u.manager.Do(ctx, ledger.PollKey(pollID), func(ctx context.Context) error {
		return u.uow.Execute(ctx, func(txCtx context.Context) error {
			polls := u.uow.GetPollRepository(txCtx)
			poll, err := polls.GetByIDForUpdate(txCtx, pollID)
			if err != nil {
				return err
			}
			if err := poll.EnsureDeletable(); err != nil {
				return err
			}
			return polls.Delete(txCtx, pollID)
		})
	})
	if err != nil {
		return err
	}

	u.logger.Info("Poll deleted", map[string]any{"poll_id": pollID})
	return nil
}

// GetPoll returns a poll with its options
func (u *PollUseCase) GetPoll(ctx context.Context, pollID string) (*entity.Poll, error) {
	return u.uow.GetPollRepository(ctx).GetByID(ctx, pollID)
}

// ListPolls returns polls newest first
func (u *PollUseCase) ListPolls(ctx context.Context, filter persistence.PollFilter, page persistence.Page) ([]*entity.Poll, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, errs.ErrInvalidEnumValue
	}
	return u.uow.GetPollRepository(ctx).List(ctx, filter, page)
}

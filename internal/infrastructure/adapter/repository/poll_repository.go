package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/model"
)

// PollRepository implements persistence.PollRepository using GORM
type PollRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPollRepository creates a new PollRepository instance
func NewPollRepository(db *gorm.DB, logger coreport.Logger) *PollRepository {
	return &PollRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func optionModels(poll *entity.Poll) []model.PollOption {
	options := make([]model.PollOption, len(poll.Options))
	for i, o := range poll.Options {
		options[i] = model.PollOption{
			ID:        o.ID,
			PollID:    poll.ID,
			Position:  o.Position,
			Text:      o.Text,
			VoteCount: o.VoteCount,
			Amount:    o.Amount.Paise(),
		}
	}
	return options
}

func pollModelToEntity(m *model.Poll) *entity.Poll {
	poll := &entity.Poll{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		PricePerVote:   entity.Money(m.PricePerVote),
		Status:         entity.PollStatus(m.Status),
		ResultOptionID: m.ResultOptionID,
		TotalVotes:     m.TotalVotes,
		TotalAmount:    entity.Money(m.TotalAmount),
		CreatedAt:      m.CreatedAt,
		ClosedAt:       m.ClosedAt,
		Options:        make([]entity.Option, len(m.Options)),
	}
	for i, o := range m.Options {
		poll.Options[i] = entity.Option{
			ID:        o.ID,
			PollID:    o.PollID,
			Position:  o.Position,
			Text:      o.Text,
			VoteCount: o.VoteCount,
			Amount:    entity.Money(o.Amount),
		}
	}
	return poll
}

func preloadOptions(db *gorm.DB) *gorm.DB {
	return db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

// Create stores a poll and its options
func (r *PollRepository) Create(ctx context.Context, poll *entity.Poll) error {
	pollModel := model.Poll{
		ID:           poll.ID,
		Title:        poll.Title,
		Description:  poll.Description,
		PricePerVote: poll.PricePerVote.Paise(),
		Status:       string(poll.Status),
		CreatedAt:    poll.CreatedAt,
		UpdatedAt:    poll.CreatedAt,
		Options:      optionModels(poll),
	}

	if err := r.db.WithContext(ctx).Create(&pollModel).Error; err != nil {
		return r.errorClassifier.MapError(err, nil, nil)
	}

	r.logger.Debug("Poll created", map[string]any{
		"poll_id": poll.ID,
		"options": len(poll.Options),
	})
	return nil
}

// GetByID retrieves a poll with options in position order
func (r *PollRepository) GetByID(ctx context.Context, id string) (*entity.Poll, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetByIDForUpdate retrieves a poll and row-locks it
func (r *PollRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Poll, error) {
	return r.get(forUpdate(r.db.WithContext(ctx)), id)
}

func (r *PollRepository) get(db *gorm.DB, id string) (*entity.Poll, error) {
	var pollModel model.Poll
	if err := preloadOptions(db).Where("id = ?", id).First(&pollModel).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrPollNotFound, nil)
	}
	return pollModelToEntity(&pollModel), nil
}

// Update persists poll fields and option tallies
func (r *PollRepository) Update(ctx context.Context, poll *entity.Poll) error {
	db := r.db.WithContext(ctx)

	result := db.Model(&model.Poll{}).
		Where("id = ?", poll.ID).
		Updates(map[string]any{
			"title":            poll.Title,
			"description":      poll.Description,
			"price_per_vote":   poll.PricePerVote.Paise(),
			"status":           string(poll.Status),
			"result_option_id": poll.ResultOptionID,
			"total_votes":      poll.TotalVotes,
			"total_amount":     poll.TotalAmount.Paise(),
			"closed_at":        poll.ClosedAt,
		})
	if result.Error != nil {
		return r.errorClassifier.MapError(result.Error, errs.ErrPollNotFound, nil)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPollNotFound
	}

	for _, o := range poll.Options {
		err := db.Model(&model.PollOption{}).
			Where("id = ? AND poll_id = ?", o.ID, poll.ID).
			Updates(map[string]any{
				"text":       o.Text,
				"vote_count": o.VoteCount,
				"amount":     o.Amount.Paise(),
			}).Error
		if err != nil {
			return r.errorClassifier.MapError(err, errs.ErrInvalidOption, nil)
		}
	}
	return nil
}

// ReplaceOptions swaps the stored option set for poll.Options
func (r *PollRepository) ReplaceOptions(ctx context.Context, poll *entity.Poll) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("poll_id = ?", poll.ID).Delete(&model.PollOption{}).Error; err != nil {
		return r.errorClassifier.MapError(err, nil, nil)
	}
	options := optionModels(poll)
	if len(options) == 0 {
		return nil
	}
	if err := db.Create(&options).Error; err != nil {
		return r.errorClassifier.MapError(err, nil, nil)
	}
	return nil
}

// Delete soft-deletes a poll
func (r *PollRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Poll{})
	if result.Error != nil {
		return r.errorClassifier.MapError(result.Error, errs.ErrPollNotFound, nil)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPollNotFound
	}

	r.logger.Info("Poll deleted", map[string]any{"poll_id": id})
	return nil
}

// List returns polls newest first
func (r *PollRepository) List(ctx context.Context, filter persistence.PollFilter, page persistence.Page) ([]*entity.Poll, error) {
	var models []model.Poll
	db := preloadOptions(applyPollFilter(r.db.WithContext(ctx), filter))
	err := paginate(db, page.Limit, page.Offset).
		Order("created_at desc, id").
		Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, nil, nil)
	}

	polls := make([]*entity.Poll, len(models))
	for i := range models {
		polls[i] = pollModelToEntity(&models[i])
	}
	return polls, nil
}

// Count returns the number of polls matching the filter
func (r *PollRepository) Count(ctx context.Context, filter persistence.PollFilter) (int64, error) {
	var count int64
	err := applyPollFilter(r.db.WithContext(ctx).Model(&model.Poll{}), filter).Count(&count).Error
	if err != nil {
		return 0, r.errorClassifier.MapError(err, nil, nil)
	}
	return count, nil
}

func applyPollFilter(db *gorm.DB, filter persistence.PollFilter) *gorm.DB {
	if filter.Status != "" {
		db = db.Where("status = ?", string(filter.Status))
	}
	return db
}

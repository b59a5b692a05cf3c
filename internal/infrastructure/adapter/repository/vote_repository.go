package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/model"
)

// VoteRepository implements persistence.VoteRepository using GORM
type VoteRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewVoteRepository creates a new VoteRepository instance
func NewVoteRepository(db *gorm.DB, logger coreport.Logger) *VoteRepository {
	return &VoteRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create appends a vote
func (r *VoteRepository) Create(ctx context.Context, vote *entity.Vote) error {
	voteModel := model.Vote{
		ID:             vote.ID,
		PollID:         vote.PollID,
		UserID:         vote.UserID,
		OptionID:       vote.OptionID,
		VoteCount:      vote.VoteCount,
		AmountPaid:     vote.AmountPaid.Paise(),
		PaymentOrderID: vote.PaymentOrderID,
		CreatedAt:      vote.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&voteModel).Error; err != nil {
		return r.errorClassifier.MapError(err, nil, errs.ErrDuplicateVote)
	}

	r.logger.Debug("Vote recorded", map[string]any{
		"vote_id":  vote.ID,
		"poll_id":  vote.PollID,
		"order_id": vote.PaymentOrderID,
		"votes":    vote.VoteCount,
	})
	return nil
}

// GetByPaymentOrderID retrieves the vote a payment order paid for
func (r *VoteRepository) GetByPaymentOrderID(ctx context.Context, orderID string) (*entity.Vote, error) {
	var m model.Vote
	if err := r.db.WithContext(ctx).Where("payment_order_id = ?", orderID).First(&m).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrPaymentNotFound, nil)
	}
	return &entity.Vote{
		ID:             m.ID,
		PollID:         m.PollID,
		UserID:         m.UserID,
		OptionID:       m.OptionID,
		VoteCount:      m.VoteCount,
		AmountPaid:     entity.Money(m.AmountPaid),
		PaymentOrderID: m.PaymentOrderID,
		CreatedAt:      m.CreatedAt,
	}, nil
}

type tallyRow struct {
	UserID   string
	OptionID string
	Votes    int64
	Amount   int64
}

// Tallies sums votes and amounts per (user, option) for a poll
func (r *VoteRepository) Tallies(ctx context.Context, pollID string) ([]entity.VoteTally, error) {
	var rows []tallyRow
	err := r.db.WithContext(ctx).Model(&model.Vote{}).
		Select("user_id, option_id, SUM(vote_count) AS votes, SUM(amount_paid) AS amount").
		Where("poll_id = ?", pollID).
		Group("user_id, option_id").
		Order("user_id, option_id").
		Scan(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, nil, nil)
	}

	tallies := make([]entity.VoteTally, len(rows))
	for i, row := range rows {
		tallies[i] = entity.VoteTally{
			UserID:   row.UserID,
			OptionID: row.OptionID,
			Votes:    row.Votes,
			Amount:   entity.Money(row.Amount),
		}
	}
	return tallies, nil
}

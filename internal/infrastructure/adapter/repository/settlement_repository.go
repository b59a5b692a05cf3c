package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/model"
)

// SettlementRepository implements persistence.SettlementRepository using GORM
type SettlementRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSettlementRepository creates a new SettlementRepository instance
func NewSettlementRepository(db *gorm.DB, logger coreport.Logger) *SettlementRepository {
	return &SettlementRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create persists a settlement report without its payouts
func (r *SettlementRepository) Create(ctx context.Context, report *entity.SettlementReport) error {
	m := model.Settlement{
		PollID:          report.PollID,
		WinningOptionID: report.WinningOptionID,
		TotalVotes:      report.TotalVotes,
		TotalAmount:     report.TotalAmount.Paise(),
		WinningWeight:   report.WinningWeight,
		Distributed:     report.Distributed.Paise(),
		HouseRetained:   report.HouseRetained.Paise(),
		WinnersCount:    len(report.Payouts),
		SettledAt:       report.SettledAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errorClassifier.MapError(err, nil, errs.ErrPollAlreadyClosed)
	}

	r.logger.Info("Settlement recorded", map[string]any{
		"poll_id":        report.PollID,
		"winning_option": report.WinningOptionID,
		"distributed":    report.Distributed.String(),
		"house_retained": report.HouseRetained.String(),
		"winners":        len(report.Payouts),
	})
	return nil
}

// GetByPollID retrieves the stored report
func (r *SettlementRepository) GetByPollID(ctx context.Context, pollID string) (*entity.SettlementReport, error) {
	var m model.Settlement
	if err := r.db.WithContext(ctx).Where("poll_id = ?", pollID).First(&m).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrSettlementNotFound, nil)
	}
	return &entity.SettlementReport{
		PollID:          m.PollID,
		WinningOptionID: m.WinningOptionID,
		TotalVotes:      m.TotalVotes,
		TotalAmount:     entity.Money(m.TotalAmount),
		WinningWeight:   m.WinningWeight,
		Distributed:     entity.Money(m.Distributed),
		HouseRetained:   entity.Money(m.HouseRetained),
		SettledAt:       m.SettledAt,
	}, nil
}

// SumHouseRetained sums what the house kept across all settlements
func (r *SettlementRepository) SumHouseRetained(ctx context.Context) (entity.Money, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.Settlement{}).
		Select("COALESCE(SUM(house_retained), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, r.errorClassifier.MapError(err, nil, nil)
	}
	return entity.Money(sum), nil
}

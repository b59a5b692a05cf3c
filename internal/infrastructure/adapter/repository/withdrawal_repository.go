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

// WithdrawalRepository implements persistence.WithdrawalRepository using GORM
type WithdrawalRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWithdrawalRepository creates a new WithdrawalRepository instance
func NewWithdrawalRepository(db *gorm.DB, logger coreport.Logger) *WithdrawalRepository {
	return &WithdrawalRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func withdrawalModelToEntity(m *model.Withdrawal) *entity.Withdrawal {
	return &entity.Withdrawal{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      entity.Money(m.Amount),
		Fee:         entity.Money(m.Fee),
		NetAmount:   entity.Money(m.NetAmount),
		UPIID:       m.UPIID,
		Status:      entity.WithdrawalStatus(m.Status),
		AdminNotes:  m.AdminNotes,
		CreatedAt:   m.CreatedAt,
		ProcessedAt: m.ProcessedAt,
	}
}

// Create stores a new withdrawal request
func (r *WithdrawalRepository) Create(ctx context.Context, withdrawal *entity.Withdrawal) error {
	m := model.Withdrawal{
		ID:          withdrawal.ID,
		UserID:      withdrawal.UserID,
		Amount:      withdrawal.Amount.Paise(),
		Fee:         withdrawal.Fee.Paise(),
		NetAmount:   withdrawal.NetAmount.Paise(),
		UPIID:       withdrawal.UPIID,
		Status:      string(withdrawal.Status),
		AdminNotes:  withdrawal.AdminNotes,
		CreatedAt:   withdrawal.CreatedAt,
		ProcessedAt: withdrawal.ProcessedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errorClassifier.MapError(err, nil, nil)
	}

	r.logger.Debug("Withdrawal requested", map[string]any{
		"withdrawal_id": withdrawal.ID,
		"user_id":       withdrawal.UserID,
		"amount":        withdrawal.Amount.String(),
	})
	return nil
}

// GetByID retrieves a withdrawal
func (r *WithdrawalRepository) GetByID(ctx context.Context, id string) (*entity.Withdrawal, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetByIDForUpdate retrieves a withdrawal and row-locks it
func (r *WithdrawalRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Withdrawal, error) {
	return r.get(forUpdate(r.db.WithContext(ctx)), id)
}

func (r *WithdrawalRepository) get(db *gorm.DB, id string) (*entity.Withdrawal, error) {
	var m model.Withdrawal
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrWithdrawalNotFound, nil)
	}
	return withdrawalModelToEntity(&m), nil
}

// Update persists status, notes and processed time
func (r *WithdrawalRepository) Update(ctx context.Context, withdrawal *entity.Withdrawal) error {
	result := r.db.WithContext(ctx).Model(&model.Withdrawal{}).
		Where("id = ?", withdrawal.ID).
		Updates(map[string]any{
			"status":       string(withdrawal.Status),
			"admin_notes":  withdrawal.AdminNotes,
			"processed_at": withdrawal.ProcessedAt,
		})
	if result.Error != nil {
		return r.errorClassifier.MapError(result.Error, errs.ErrWithdrawalNotFound, nil)
	}
	if result.RowsAffected == 0 {
		return errs.ErrWithdrawalNotFound
	}
	return nil
}

// List returns withdrawals newest first
func (r *WithdrawalRepository) List(
	ctx context.Context,
	filter persistence.WithdrawalFilter,
	page persistence.Page,
) ([]*entity.Withdrawal, error) {
	var models []model.Withdrawal
	err := paginate(applyWithdrawalFilter(r.db.WithContext(ctx), filter), page.Limit, page.Offset).
		Order("created_at desc, id desc").
		Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, nil, nil)
	}

	withdrawals := make([]*entity.Withdrawal, len(models))
	for i := range models {
		withdrawals[i] = withdrawalModelToEntity(&models[i])
	}
	return withdrawals, nil
}

// Count returns the number of withdrawals matching the filter
func (r *WithdrawalRepository) Count(ctx context.Context, filter persistence.WithdrawalFilter) (int64, error) {
	var count int64
	err := applyWithdrawalFilter(r.db.WithContext(ctx).Model(&model.Withdrawal{}), filter).Count(&count).Error
	if err != nil {
		return 0, r.errorClassifier.MapError(err, nil, nil)
	}
	return count, nil
}

func applyWithdrawalFilter(db *gorm.DB, filter persistence.WithdrawalFilter) *gorm.DB {
	if filter.UserID != "" {
		db = db.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", string(filter.Status))
	}
	return db
}

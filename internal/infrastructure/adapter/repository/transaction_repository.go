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

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func transactionEntityToModel(t *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:           t.ID,
		UserID:       t.UserID,
		Type:         string(t.Type),
		Amount:       t.Amount.Paise(),
		Status:       string(t.Status),
		Funding:      string(t.Funding),
		PollID:       t.PollID,
		ReferenceID:  t.ReferenceID,
		ErrorMessage: t.ErrorMessage,
		CreatedAt:    t.CreatedAt,
		ProcessedAt:  t.ProcessedAt,
	}
}

func transactionModelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         entity.TransactionType(m.Type),
		Amount:       entity.Money(m.Amount),
		Status:       entity.TransactionStatus(m.Status),
		Funding:      entity.Funding(m.Funding),
		PollID:       m.PollID,
		ReferenceID:  m.ReferenceID,
		ErrorMessage: m.ErrorMessage,
		CreatedAt:    m.CreatedAt,
		ProcessedAt:  m.ProcessedAt,
	}
}

// Create appends a ledger entry
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Appending ledger entry", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"type":           transaction.Type,
		"amount":         transaction.Amount.String(),
		"status":         transaction.Status,
	})

	if err := r.db.WithContext(ctx).Omit("User").Create(transactionEntityToModel(transaction)).Error; err != nil {
		if r.errorClassifier.IsForeignKeyError(err) {
			return errs.ErrUserNotFound
		}
		return r.errorClassifier.MapError(err, nil, nil)
	}
	return nil
}

// UpdateStatus persists a status transition
func (r *TransactionRepository) UpdateStatus(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]any{
			"status":        string(transaction.Status),
			"error_message": transaction.ErrorMessage,
			"processed_at":  transaction.ProcessedAt,
		})

	if result.Error != nil {
		return r.errorClassifier.MapError(result.Error, errs.ErrTransactionNotFound, nil)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// GetByID retrieves a ledger entry
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var m model.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrTransactionNotFound, nil)
	}
	return transactionModelToEntity(&m), nil
}

// List returns entries matching the filter, newest first
func (r *TransactionRepository) List(
	ctx context.Context,
	filter persistence.TransactionFilter,
	page persistence.Page,
) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := paginate(applyTransactionFilter(r.db.WithContext(ctx), filter), page.Limit, page.Offset).
		Order("created_at desc, id desc").
		Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, nil, nil)
	}

	txns := make([]*entity.Transaction, len(models))
	for i := range models {
		txns[i] = transactionModelToEntity(&models[i])
	}
	return txns, nil
}

// WalletLedgerBalance sums the successful wallet-funded entries of a user
func (r *TransactionRepository) WalletLedgerBalance(ctx context.Context, userID string) (entity.Money, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND status = ? AND funding = ?", userID, string(entity.StatusSuccess), string(entity.FundingWallet)).
		Scan(&sum).Error
	if err != nil {
		return 0, r.errorClassifier.MapError(err, nil, nil)
	}
	return entity.Money(sum), nil
}

// SumAmount sums the signed amounts of entries matching the filter
func (r *TransactionRepository) SumAmount(ctx context.Context, filter persistence.TransactionFilter) (entity.Money, error) {
	var sum int64
	err := applyTransactionFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, r.errorClassifier.MapError(err, nil, nil)
	}
	return entity.Money(sum), nil
}

func applyTransactionFilter(db *gorm.DB, filter persistence.TransactionFilter) *gorm.DB {
	if filter.UserID != "" {
		db = db.Where("user_id = ?", filter.UserID)
	}
	if filter.PollID != "" {
		db = db.Where("poll_id = ?", filter.PollID)
	}
	if filter.Type != "" {
		db = db.Where("type = ?", string(filter.Type))
	}
	if filter.Status != "" {
		db = db.Where("status = ?", string(filter.Status))
	}
	return db
}

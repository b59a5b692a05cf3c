package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/model"
)

// PaymentIntentRepository implements persistence.PaymentIntentRepository using GORM
type PaymentIntentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPaymentIntentRepository creates a new PaymentIntentRepository instance
func NewPaymentIntentRepository(db *gorm.DB, logger coreport.Logger) *PaymentIntentRepository {
	return &PaymentIntentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create stores a new payment order
func (r *PaymentIntentRepository) Create(ctx context.Context, intent *entity.PaymentIntent) error {
	m := model.PaymentIntent{
		OrderID:       intent.OrderID,
		UserID:        intent.UserID,
		PollID:        intent.PollID,
		OptionID:      intent.OptionID,
		VoteCount:     intent.VoteCount,
		Amount:        intent.Amount.Paise(),
		Funding:       string(intent.Funding),
		SessionID:     intent.SessionID,
		Status:        string(intent.Status),
		TransactionID: intent.TransactionID,
		VoteID:        intent.VoteID,
		FailureReason: intent.FailureReason,
		CreatedAt:     intent.CreatedAt,
		UpdatedAt:     intent.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errorClassifier.MapError(err, nil, nil)
	}
	return nil
}

// GetByOrderID retrieves an intent
func (r *PaymentIntentRepository) GetByOrderID(ctx context.Context, orderID string) (*entity.PaymentIntent, error) {
	return r.get(r.db.WithContext(ctx), orderID)
}

// GetByOrderIDForUpdate retrieves an intent and row-locks it
func (r *PaymentIntentRepository) GetByOrderIDForUpdate(ctx context.Context, orderID string) (*entity.PaymentIntent, error) {
	return r.get(forUpdate(r.db.WithContext(ctx)), orderID)
}

func (r *PaymentIntentRepository) get(db *gorm.DB, orderID string) (*entity.PaymentIntent, error) {
	var m model.PaymentIntent
	if err := db.Where("order_id = ?", orderID).First(&m).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrPaymentNotFound, nil)
	}
	return &entity.PaymentIntent{
		OrderID:       m.OrderID,
		UserID:        m.UserID,
		PollID:        m.PollID,
		OptionID:      m.OptionID,
		VoteCount:     m.VoteCount,
		Amount:        entity.Money(m.Amount),
		Funding:       entity.Funding(m.Funding),
		SessionID:     m.SessionID,
		Status:        entity.IntentStatus(m.Status),
		TransactionID: m.TransactionID,
		VoteID:        m.VoteID,
		FailureReason: m.FailureReason,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

// Update persists the intent's mutable fields
func (r *PaymentIntentRepository) Update(ctx context.Context, intent *entity.PaymentIntent) error {
	result := r.db.WithContext(ctx).Model(&model.PaymentIntent{}).
		Where("order_id = ?", intent.OrderID).
		Updates(map[string]any{
			"session_id":     intent.SessionID,
			"status":         string(intent.Status),
			"vote_id":        intent.VoteID,
			"failure_reason": intent.FailureReason,
			"updated_at":     intent.UpdatedAt,
		})
	if result.Error != nil {
		return r.errorClassifier.MapError(result.Error, errs.ErrPaymentNotFound, nil)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPaymentNotFound
	}

	r.logger.Debug("Payment intent updated", map[string]any{
		"order_id": intent.OrderID,
		"status":   intent.Status,
	})
	return nil
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/model"
)

// WalletRepository implements persistence.WalletRepository using GORM
type WalletRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *WalletRepository) modelToEntity(m *model.Wallet) (*entity.Wallet, error) {
	wallet, err := entity.RestoreWallet(m.ID, m.UserID, entity.Money(m.Balance), m.UpdatedAt)
	if err != nil {
		r.logger.Error("Stored wallet is invalid", map[string]any{
			"wallet_id": m.ID,
			"balance":   m.Balance,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("%w: wallet %s: %s", errs.ErrInternalServer, m.ID, err.Error())
	}
	return wallet, nil
}

// Create stores a new wallet
func (r *WalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.Wallet{
		ID:        wallet.ID,
		UserID:    wallet.UserID,
		Balance:   wallet.Balance().Paise(),
		UpdatedAt: wallet.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Omit("User").Create(&walletModel).Error; err != nil {
		return r.errorClassifier.MapError(err, nil, errs.ErrDuplicateUser)
	}
	return nil
}

// GetByUserID retrieves a user's wallet
func (r *WalletRepository) GetByUserID(ctx context.Context, userID string) (*entity.Wallet, error) {
	return r.get(r.db.WithContext(ctx), userID)
}

// GetByUserIDForUpdate retrieves and row-locks a user's wallet
func (r *WalletRepository) GetByUserIDForUpdate(ctx context.Context, userID string) (*entity.Wallet, error) {
	return r.get(forUpdate(r.db.WithContext(ctx)), userID)
}

func (r *WalletRepository) get(db *gorm.DB, userID string) (*entity.Wallet, error) {
	var walletModel model.Wallet
	if err := db.Where("user_id = ?", userID).First(&walletModel).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrWalletNotFound, nil)
	}
	return r.modelToEntity(&walletModel)
}

// UpdateBalance persists the wallet's balance
func (r *WalletRepository) UpdateBalance(ctx context.Context, wallet *entity.Wallet) error {
	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("id = ?", wallet.ID).
		Updates(map[string]any{
			"balance":    wallet.Balance().Paise(),
			"updated_at": wallet.UpdatedAt,
		})

	if result.Error != nil {
		if r.errorClassifier.IsCheckError(result.Error) {
			return errs.ErrNegativeBalance
		}
		return r.errorClassifier.MapError(result.Error, errs.ErrWalletNotFound, nil)
	}
	if result.RowsAffected == 0 {
		return errs.ErrWalletNotFound
	}

	r.logger.Debug("Wallet balance updated", map[string]any{
		"user_id": wallet.UserID,
		"balance": wallet.Balance().String(),
	})
	return nil
}

// ListByUserIDs returns wallets keyed by user ID
func (r *WalletRepository) ListByUserIDs(ctx context.Context, userIDs []string) (map[string]*entity.Wallet, error) {
	wallets := make(map[string]*entity.Wallet, len(userIDs))
	if len(userIDs) == 0 {
		return wallets, nil
	}

	var models []model.Wallet
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&models).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, nil, nil)
	}
	for i := range models {
		w, err := r.modelToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		wallets[w.UserID] = w
	}
	return wallets, nil
}

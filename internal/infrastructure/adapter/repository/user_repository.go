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

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		UPIID:     m.UPIID,
		CreatedAt: m.CreatedAt,
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		UPIID:     user.UPIID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		r.logger.Warn("Failed to create user", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return r.errorClassifier.MapError(err, errs.ErrUserNotFound, errs.ErrDuplicateUser)
	}

	r.logger.Debug("User created", map[string]any{"user_id": user.ID})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrUserNotFound, nil)
	}
	return userModelToEntity(&userModel), nil
}

// Update saves the user's name and UPI ID
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":   user.Name,
			"upi_id": user.UPIID,
		})

	if result.Error != nil {
		return r.errorClassifier.MapError(result.Error, errs.ErrUserNotFound, nil)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// List returns users newest first
func (r *UserRepository) List(ctx context.Context, page persistence.Page) ([]*entity.User, error) {
	var models []model.User
	err := paginate(r.db.WithContext(ctx), page.Limit, page.Offset).
		Order("created_at desc, id").
		Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, nil, nil)
	}

	users := make([]*entity.User, len(models))
	for i := range models {
		users[i] = userModelToEntity(&models[i])
	}
	return users, nil
}

// Count returns the number of registered users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, r.errorClassifier.MapError(err, nil, nil)
	}
	return count, nil
}

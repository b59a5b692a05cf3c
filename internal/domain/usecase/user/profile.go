package user

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
)

// UpdateUPI replaces the default payout identifier
func (u *UserUseCase) UpdateUPI(ctx context.Context, userID, upiID string) (*entity.User, error) {
	var user *entity.User
	err := u.uow.Execute(ctx, func(txCtx context.Context) error {
		users := u.uow.GetUserRepository(txCtx)
		var err error
		user, err = users.GetByID(txCtx, userID)
		if err != nil {
			return err
		}
		if err := user.SetUPI(upiID); err != nil {
			return err
		}
		return users.Update(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("UPI ID updated", map[string]any{"user_id": userID})
	return user, nil
}

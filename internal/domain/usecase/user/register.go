package user

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
)

// Register creates the user and an empty wallet in one unit of work
func (u *UserUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*usecase.Profile, error) {
	user, err := entity.NewUser(u.idGenerator.NewID(coreport.PrefixUser), req.Email, req.Name, u.timeProvider)
	if err != nil {
		return nil, err
	}
	if req.UPIID != "" {
		if err := user.SetUPI(req.UPIID); err != nil {
			return nil, err
		}
	}
	wallet := entity.NewWallet(u.idGenerator.NewID(coreport.PrefixWallet), user.ID, u.timeProvider)

	err = u.uow.Execute(ctx, func(txCtx context.Context) error {
		if err := u.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
			return err
		}
		return u.uow.GetWalletRepository(txCtx).Create(txCtx, wallet)
	})
	if err != nil {
		fields := errs.LogFields(err)
		fields["email"] = user.Email
		u.logger.Warn("Failed to register user", fields)
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return &usecase.Profile{User: user, Wallet: wallet}, nil
}

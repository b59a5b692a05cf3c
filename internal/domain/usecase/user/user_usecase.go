package user

import (
	"context"

	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
)

// UserUseCase handles accounts and their wallets
type UserUseCase struct {
	uow          persistence.UnitOfWork
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	uow persistence.UnitOfWork,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		uow:          uow,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetProfile returns a user together with their wallet
func (u *UserUseCase) GetProfile(ctx context.Context, userID string) (*usecase.Profile, error) {
	user, err := u.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	wallet, err := u.uow.GetWalletRepository(ctx).GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &usecase.Profile{User: user, Wallet: wallet}, nil
}

package withdrawal

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/ledger"
)

const notifyTimeout = 3 * time.Second

// WithdrawalUseCase moves wallet money out through admin-approved payouts
type WithdrawalUseCase struct {
	uow            persistence.UnitOfWork
	manager        *ledger.Manager
	poster         *ledger.Poster
	notifier       external.Notifier
	idGenerator    coreport.IDGenerator
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	feeBasisPoints int64
}

var _ usecase.WithdrawalUseCase = (*WithdrawalUseCase)(nil)

// NewWithdrawalUseCase creates a WithdrawalUseCase. An out-of-range fee falls back to the default.
func NewWithdrawalUseCase(
	uow persistence.UnitOfWork,
	manager *ledger.Manager,
	poster *ledger.Poster,
	notifier external.Notifier,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	feeBasisPoints int64,
) *WithdrawalUseCase {
	if feeBasisPoints < 0 || feeBasisPoints > entity.BasisPointsDenominator {
		feeBasisPoints = entity.DefaultWithdrawalFeeBasisPoints
	}
	return &WithdrawalUseCase{
		uow:            uow,
		manager:        manager,
		poster:         poster,
		notifier:       notifier,
		idGenerator:    idGenerator,
		timeProvider:   timeProvider,
		logger:         logger,
		feeBasisPoints: feeBasisPoints,
	}
}

// RequestWithdrawal debits the gross amount and queues the payout for review
func (u *WithdrawalUseCase) RequestWithdrawal(ctx context.Context, req usecase.WithdrawalRequest) (*entity.Withdrawal, error) {
	if req.Amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	var w *entity.Withdrawal
	err := u.manager.Do(ctx, ledger.WalletKey(req.UserID), func(ctx context.Context) error {
		return u.uow.Execute(ctx, func(txCtx context.Context) error {
			user, err := u.uow.GetUserRepository(txCtx).GetByID(txCtx, req.UserID)
			if err != nil {
				return err
			}
			upiID := req.UPIID
			if upiID == "" {
				upiID = user.UPIID
			}

			w, err = entity.NewWithdrawal(
				u.idGenerator.NewID(coreport.PrefixWithdrawal),
				req.UserID,
				req.Amount,
				upiID,
				u.feeBasisPoints,
				u.timeProvider,
			)
			if err != nil {
				return err
			}

			if _, err := u.poster.Post(txCtx, ledger.Entry{
				UserID:      req.UserID,
				Type:        entity.TypeWithdrawal,
				Amount:      w.Amount,
				ReferenceID: w.ID,
			}); err != nil {
				return err
			}
			return u.uow.GetWithdrawalRepository(txCtx).Create(txCtx, w)
		})
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Withdrawal requested", map[string]any{
		"withdrawal_id": w.ID,
		"user_id":       w.UserID,
		"amount":        w.Amount.String(),
		"fee":           w.Fee.String(),
	})
	u.notify(ctx, external.Notification{
		Kind: external.EventWithdrawalRequested,
		Message: fmt.Sprintf("%s asks for %s to %s (fee %s, pay out %s). ID %s",
			w.UserID, w.Amount.Display(), w.UPIID, w.Fee.Display(), w.NetAmount.Display(), w.ID),
	})
	return w, nil
}

// Approve records that the net amount was paid out
func (u *WithdrawalUseCase) Approve(ctx context.Context, withdrawalID string) (*entity.Withdrawal, error) {
	w, err := u.process(ctx, withdrawalID, func(txCtx context.Context, w *entity.Withdrawal) error {
		return w.Approve(u.timeProvider)
	})
	if err != nil {
		return nil, err
	}

	u.notify(ctx, external.Notification{
		Kind:    external.EventWithdrawalProcessed,
		Message: fmt.Sprintf("Withdrawal %s approved: pay %s to %s.", w.ID, w.NetAmount.Display(), w.UPIID),
	})
	return w, nil
}

// Reject cancels the request and credits the gross amount back
func (u *WithdrawalUseCase) Reject(ctx context.Context, withdrawalID, notes string) (*entity.Withdrawal, error) {
	w, err := u.process(ctx, withdrawalID, func(txCtx context.Context, w *entity.Withdrawal) error {
		if err := w.Reject(notes, u.timeProvider); err != nil {
			return err
		}
		_, err := u.poster.Post(txCtx, ledger.Entry{
			UserID:      w.UserID,
			Type:        entity.TypeWithdrawalReversal,
			Amount:      w.Amount,
			ReferenceID: w.ID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	u.notify(ctx, external.Notification{
		Kind:    external.EventWithdrawalProcessed,
		Message: fmt.Sprintf("Withdrawal %s rejected; %s returned to %s.", w.ID, w.Amount.Display(), w.UserID),
	})
	return w, nil
}

// process locks a withdrawal, applies a transition and persists it. Lock order
// is withdrawal then wallet.
func (u *WithdrawalUseCase) process(
	ctx context.Context,
	withdrawalID string,
	transition func(txCtx context.Context, w *entity.Withdrawal) error,
) (*entity.Withdrawal, error) {
	var w *entity.Withdrawal
	err := u.manager.Do(ctx, ledger.WithdrawalKey(withdrawalID), func(ctx context.Context) error {
		return u.uow.Execute(ctx, func(txCtx context.Context) error {
			withdrawals := u.uow.GetWithdrawalRepository(txCtx)
			var err error
			w, err = withdrawals.GetByIDForUpdate(txCtx, withdrawalID)
			if err != nil {
				return err
			}
			if err := transition(txCtx, w); err != nil {
				return err
			}
			return withdrawals.Update(txCtx, w)
		})
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Withdrawal processed", map[string]any{
		"withdrawal_id": w.ID,
		"status":        w.Status,
	})
	return w, nil
}

// History returns the user's withdrawals newest first
func (u *WithdrawalUseCase) History(ctx context.Context, userID string, page persistence.Page) ([]*entity.Withdrawal, error) {
	return u.uow.GetWithdrawalRepository(ctx).List(ctx, persistence.WithdrawalFilter{UserID: userID}, page)
}

// List returns withdrawals for the admin queue
func (u *WithdrawalUseCase) List(ctx context.Context, filter persistence.WithdrawalFilter, page persistence.Page) ([]*entity.Withdrawal, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, errs.ErrInvalidEnumValue
	}
	return u.uow.GetWithdrawalRepository(ctx).List(ctx, filter, page)
}

func (u *WithdrawalUseCase) notify(ctx context.Context, n external.Notification) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if err := u.notifier.Notify(ctx, n); err != nil {
		u.logger.Warn("Failed to deliver notification", map[string]any{
			"kind":  n.Kind,
			"error": err.Error(),
		})
	}
}

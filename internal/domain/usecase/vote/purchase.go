package vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/ledger"
)

// PurchaseAndVote opens a payment order for the votes and records them once
// the order is paid. Wallet-funded purchases are paid on the spot.
func (u *VoteUseCase) PurchaseAndVote(ctx context.Context, req usecase.PurchaseRequest) (*entity.VoteReceipt, error) {
	if req.VoteCount < 1 {
		return nil, errs.ErrInvalidVoteCount
	}

	orderID := u.idGenerator.NewID(coreport.PrefixOrder)
	var intent *entity.PaymentIntent
	err := u.uow.Execute(ctx, func(txCtx context.Context) error {
		var err error
		intent, err = u.openOrder(txCtx, orderID, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Payment order created", map[string]any{
		"order_id":   orderID,
		"user_id":    req.UserID,
		"poll_id":    req.PollID,
		"option_id":  req.OptionID,
		"vote_count": req.VoteCount,
		"amount":     intent.Amount.String(),
		"funding":    intent.Funding,
	})

	if intent.Funding == entity.FundingWallet {
		receipt, err := u.ConfirmPayment(ctx, orderID)
		if err != nil && errs.IsInsufficientBalanceError(err) {
			if _, failErr := u.FailPayment(ctx, orderID, err.Error()); failErr != nil {
				u.logger.Error("Failed to close unpaid order", errs.LogFields(failErr))
			}
		}
		return receipt, err
	}

	result, err := u.gateway.CreateOrder(ctx, external.OrderRequest{
		OrderID:     orderID,
		UserID:      req.UserID,
		PollID:      req.PollID,
		Amount:      intent.Amount,
		Description: fmt.Sprintf("%d vote(s) on poll %s", req.VoteCount, req.PollID),
	})
	if err != nil {
		return u.gatewayFailed(ctx, intent, err)
	}
	return u.applyOrderResult(ctx, intent, result)
}

// openOrder validates the purchase and stores the intent with its pending entry
func (u *VoteUseCase) openOrder(ctx context.Context, orderID string, req usecase.PurchaseRequest) (*entity.PaymentIntent, error) {
	if _, err := u.uow.GetUserRepository(ctx).GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}
	poll, err := u.uow.GetPollRepository(ctx).GetByID(ctx, req.PollID)
	if err != nil {
		return nil, err
	}

	intent, err := entity.NewPaymentIntent(orderID, req.UserID, poll, req.OptionID, req.VoteCount, u.funding, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if intent.Funding == entity.FundingWallet {
		wallet, err := u.uow.GetWalletRepository(ctx).GetByUserID(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		if wallet.Balance() < intent.Amount {
			return nil, errs.NewInsufficientBalanceError(req.UserID, intent.Amount.String(), wallet.Balance().String())
		}
	}

	txn, err := u.poster.OpenPending(ctx, ledger.Entry{
		UserID:      req.UserID,
		Type:        entity.TypePurchase,
		Amount:      intent.Amount,
		PollID:      req.PollID,
		ReferenceID: orderID,
	}, intent.Funding)
	if err != nil {
		return nil, err
	}
	intent.TransactionID = txn.ID

	if err := u.uow.GetPaymentIntentRepository(ctx).Create(ctx, intent); err != nil {
		return nil, err
	}
	return intent, nil
}

// gatewayFailed leaves timed-out orders pending for a later retry and fails the rest
func (u *VoteUseCase) gatewayFailed(ctx context.Context, intent *entity.PaymentIntent, cause error) (*entity.VoteReceipt, error) {
	if errors.Is(cause, errs.ErrPaymentTimeout) {
		u.logger.Warn("Payment gateway timed out; order left pending", map[string]any{
			"order_id": intent.OrderID,
			"error":    cause.Error(),
		})
		return receiptFor(intent), cause
	}

	receipt, err := u.FailPayment(ctx, intent.OrderID, cause.Error())
	if err != nil {
		return nil, err
	}
	return receipt, errs.NewPaymentError(intent.OrderID, intent.Amount.String(), cause.Error(), errs.ErrPaymentDeclined)
}

// applyOrderResult moves the order according to the gateway's answer
func (u *VoteUseCase) applyOrderResult(
	ctx context.Context,
	intent *entity.PaymentIntent,
	result *external.OrderResult,
) (*entity.VoteReceipt, error) {
	switch result.Status {
	case external.OrderConfirmed:
		return u.ConfirmPayment(ctx, intent.OrderID)

	case external.OrderDeclined:
		receipt, err := u.FailPayment(ctx, intent.OrderID, result.Reason)
		if err != nil {
			return nil, err
		}
		return receipt, errs.NewPaymentError(intent.OrderID, intent.Amount.String(), result.Reason, errs.ErrPaymentDeclined)

	case external.OrderPending:
		return u.attachSession(ctx, intent.OrderID, result.SessionID)
	}
	return nil, fmt.Errorf("%w: order status %q", errs.ErrInvalidEnumValue, result.Status)
}

// attachSession stores the checkout session of a deferred order
func (u *VoteUseCase) attachSession(ctx context.Context, orderID, sessionID string) (*entity.VoteReceipt, error) {
	var receipt *entity.VoteReceipt
	err := u.manager.Do(ctx, ledger.OrderKey(orderID), func(ctx context.Context) error {
		return u.uow.Execute(ctx, func(txCtx context.Context) error {
			intents := u.uow.GetPaymentIntentRepository(txCtx)
			intent, err := intents.GetByOrderIDForUpdate(txCtx, orderID)
			if err != nil {
				return err
			}
			if !intent.IsTerminal() && sessionID != "" && intent.SessionID != sessionID {
				intent.SessionID = sessionID
				intent.UpdatedAt = u.timeProvider.Now()
				if err := intents.Update(txCtx, intent); err != nil {
					return err
				}
			}
			receipt, err = u.loadReceipt(txCtx, intent)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

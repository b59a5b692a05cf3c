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

// ConfirmPayment records the vote an order paid for. Confirming an order
// that is already confirmed or failed returns its stored receipt.
func (u *VoteUseCase) ConfirmPayment(ctx context.Context, orderID string) (*entity.VoteReceipt, error) {
	var receipt *entity.VoteReceipt
	var lateIntent *entity.PaymentIntent

	err := u.manager.Do(ctx, ledger.OrderKey(orderID), func(ctx context.Context) error {
		return u.uow.Execute(ctx, func(txCtx context.Context) error {
			receipt, lateIntent = nil, nil

			intent, err := u.uow.GetPaymentIntentRepository(txCtx).GetByOrderIDForUpdate(txCtx, orderID)
			if err != nil {
				return err
			}
			if intent.IsTerminal() {
				receipt, err = u.loadReceipt(txCtx, intent)
				return err
			}

			receipt, err = u.recordVote(txCtx, intent)
			if err != nil {
				return err
			}
			if intent.Status == entity.IntentFailed {
				lateIntent = intent
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if lateIntent != nil {
		u.logger.Warn("Payment confirmed for an order that can no longer vote", map[string]any{
			"order_id": lateIntent.OrderID,
			"poll_id":  lateIntent.PollID,
			"user_id":  lateIntent.UserID,
			"amount":   lateIntent.Amount.String(),
			"reason":   lateIntent.FailureReason,
		})
		if lateIntent.Funding == entity.FundingExternal {
			u.notify(ctx, external.Notification{
				Kind: external.EventRefundRequired,
				Message: fmt.Sprintf("Order %s by %s paid %s on poll %s but no vote was recorded (%s); refund it at the gateway.",
					lateIntent.OrderID, lateIntent.UserID, lateIntent.Amount.Display(), lateIntent.PollID, lateIntent.FailureReason),
			})
		}
	}
	return receipt, nil
}

// recordVote applies a paid order: vote, tallies, ledger entry and intent move
// together. When the order can no longer become a vote (poll closed or removed,
// option replaced) the order fails instead.
func (u *VoteUseCase) recordVote(ctx context.Context, intent *entity.PaymentIntent) (*entity.VoteReceipt, error) {
	polls := u.uow.GetPollRepository(ctx)
	intents := u.uow.GetPaymentIntentRepository(ctx)

	poll, err := polls.GetByIDForUpdate(ctx, intent.PollID)
	if err != nil && !errors.Is(err, errs.ErrPollNotFound) {
		return nil, err
	}
	txn, err := u.uow.GetTransactionRepository(ctx).GetByID(ctx, intent.TransactionID)
	if err != nil {
		return nil, err
	}

	if reason := unrecordableReason(poll, intent.OptionID); reason != "" {
		if err := u.poster.Fail(ctx, txn, reason); err != nil {
			return nil, err
		}
		intent.Fail(reason, u.timeProvider)
		if err := intents.Update(ctx, intent); err != nil {
			return nil, err
		}
		receipt := receiptFor(intent)
		receipt.Transaction = txn
		return receipt, nil
	}

	if err := u.poster.Complete(ctx, txn); err != nil {
		return nil, err
	}
	if err := poll.RecordVote(intent.OptionID, intent.VoteCount, intent.Amount); err != nil {
		return nil, err
	}
	if err := polls.Update(ctx, poll); err != nil {
		return nil, err
	}

	vote := intent.NewVote(u.idGenerator.NewID(coreport.PrefixVote), u.timeProvider)
	if err := u.uow.GetVoteRepository(ctx).Create(ctx, vote); err != nil {
		return nil, err
	}
	intent.Confirm(vote.ID, u.timeProvider)
	if err := intents.Update(ctx, intent); err != nil {
		return nil, err
	}

	u.logger.Info("Vote recorded", map[string]any{
		"order_id":   intent.OrderID,
		"vote_id":    vote.ID,
		"poll_id":    vote.PollID,
		"option_id":  vote.OptionID,
		"vote_count": vote.VoteCount,
	})

	receipt := receiptFor(intent)
	receipt.Vote = vote
	receipt.Transaction = txn
	return receipt, nil
}

// FailPayment closes a pending order without a vote
func (u *VoteUseCase) FailPayment(ctx context.Context, orderID, reason string) (*entity.VoteReceipt, error) {
	var receipt *entity.VoteReceipt
	err := u.manager.Do(ctx, ledger.OrderKey(orderID), func(ctx context.Context) error {
		return u.uow.Execute(ctx, func(txCtx context.Context) error {
			intents := u.uow.GetPaymentIntentRepository(txCtx)
			intent, err := intents.GetByOrderIDForUpdate(txCtx, orderID)
			if err != nil {
				return err
			}
			if intent.IsTerminal() {
				receipt, err = u.loadReceipt(txCtx, intent)
				return err
			}

			txn, err := u.uow.GetTransactionRepository(txCtx).GetByID(txCtx, intent.TransactionID)
			if err != nil {
				return err
			}
			if err := u.poster.Fail(txCtx, txn, reason); err != nil {
				return err
			}
			intent.Fail(reason, u.timeProvider)
			if err := intents.Update(txCtx, intent); err != nil {
				return err
			}

			receipt = receiptFor(intent)
			receipt.Transaction = txn
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Payment order failed", map[string]any{
		"order_id": orderID,
		"reason":   reason,
	})
	return receipt, nil
}

// RetryConfirmation polls the gateway for an order the user owns
func (u *VoteUseCase) RetryConfirmation(ctx context.Context, userID, orderID string) (*entity.VoteReceipt, error) {
	intent, err := u.uow.GetPaymentIntentRepository(ctx).GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if intent.UserID != userID {
		return nil, errs.ErrPaymentNotFound
	}
	if intent.IsTerminal() {
		return u.loadReceipt(ctx, intent)
	}
	if intent.Funding == entity.FundingWallet {
		return u.ConfirmPayment(ctx, orderID)
	}

	result, err := u.gateway.FetchOrderStatus(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return u.applyOrderResult(ctx, intent, result)
}

// HandleWebhook applies a gateway callback to its order
func (u *VoteUseCase) HandleWebhook(ctx context.Context, event usecase.WebhookEvent) (*entity.VoteReceipt, error) {
	u.logger.Info("Payment webhook received", map[string]any{
		"order_id": event.OrderID,
		"status":   event.Status,
	})

	switch event.Status {
	case external.OrderConfirmed:
		return u.ConfirmPayment(ctx, event.OrderID)
	case external.OrderDeclined:
		reason := event.Reason
		if reason == "" {
			reason = "declined by gateway"
		}
		return u.FailPayment(ctx, event.OrderID, reason)
	case external.OrderPending:
		intent, err := u.uow.GetPaymentIntentRepository(ctx).GetByOrderID(ctx, event.OrderID)
		if err != nil {
			return nil, err
		}
		return u.loadReceipt(ctx, intent)
	}
	return nil, fmt.Errorf("%w: order status %q", errs.ErrInvalidEnumValue, event.Status)
}

// unrecordableReason explains why a paid order cannot become a vote on poll,
// or returns "" when it can. A nil poll was deleted.
func unrecordableReason(poll *entity.Poll, optionID string) string {
	switch {
	case poll == nil:
		return ReasonPollRemoved
	case poll.EnsureAcceptingVotes() != nil:
		return ReasonPollClosed
	}
	if _, ok := poll.Option(optionID); !ok {
		return ReasonOptionRemoved
	}
	return ""
}

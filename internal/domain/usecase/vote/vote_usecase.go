package vote

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/ledger"
)

// Failure reasons recorded on paid orders that could not become votes
const (
	ReasonPollClosed    = "poll closed before payment confirmation"
	ReasonPollRemoved   = "poll removed before payment confirmation"
	ReasonOptionRemoved = "option removed before payment confirmation"
)

const notifyTimeout = 3 * time.Second

// VoteUseCase runs paid votes from order creation to confirmation
type VoteUseCase struct {
	uow          persistence.UnitOfWork
	manager      *ledger.Manager
	poster       *ledger.Poster
	gateway      external.PaymentGateway
	notifier     external.Notifier
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	funding      entity.Funding
}

var _ usecase.VoteUseCase = (*VoteUseCase)(nil)

// NewVoteUseCase creates a VoteUseCase. Purchases are charged to funding:
// external instruments through the gateway, or the buyer's wallet.
func NewVoteUseCase(
	uow persistence.UnitOfWork,
	manager *ledger.Manager,
	poster *ledger.Poster,
	gateway external.PaymentGateway,
	notifier external.Notifier,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	funding entity.Funding,
) *VoteUseCase {
	if !funding.Valid() {
		funding = entity.FundingExternal
	}
	return &VoteUseCase{
		uow:          uow,
		manager:      manager,
		poster:       poster,
		gateway:      gateway,
		notifier:     notifier,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
		funding:      funding,
	}
}

// loadReceipt rebuilds the receipt of an order from storage
func (u *VoteUseCase) loadReceipt(ctx context.Context, intent *entity.PaymentIntent) (*entity.VoteReceipt, error) {
	receipt := receiptFor(intent)
	if intent.TransactionID != "" {
		txn, err := u.uow.GetTransactionRepository(ctx).GetByID(ctx, intent.TransactionID)
		if err != nil {
			return nil, err
		}
		receipt.Transaction = txn
	}
	if intent.Status == entity.IntentConfirmed {
		vote, err := u.uow.GetVoteRepository(ctx).GetByPaymentOrderID(ctx, intent.OrderID)
		if err != nil {
			return nil, err
		}
		receipt.Vote = vote
	}
	return receipt, nil
}

func receiptFor(intent *entity.PaymentIntent) *entity.VoteReceipt {
	return &entity.VoteReceipt{
		OrderID:          intent.OrderID,
		Status:           intent.Status,
		PaymentSessionID: intent.SessionID,
		Amount:           intent.Amount,
		FailureReason:    intent.FailureReason,
	}
}

// notify delivers an operator notification; failures are only logged
func (u *VoteUseCase) notify(ctx context.Context, n external.Notification) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if err := u.notifier.Notify(ctx, n); err != nil {
		fields := errs.LogFields(err)
		fields["kind"] = n.Kind
		u.logger.Warn("Failed to deliver notification", fields)
	}
}

package ledger

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
)

// Entry describes a ledger movement. Amount is the positive magnitude; the
// transaction type decides the sign.
type Entry struct {
	UserID      string
	Type        entity.TransactionType
	Amount      entity.Money
	PollID      string
	ReferenceID string
}

// Poster appends transactions and keeps wallet balances equal to the sum of
// their successful wallet-funded entries. Every method expects a context that
// carries a unit of work.
type Poster struct {
	uow          persistence.UnitOfWork
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPoster creates a Poster
func NewPoster(
	uow persistence.UnitOfWork,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Poster {
	return &Poster{
		uow:          uow,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Post moves the wallet and appends a successful wallet-funded transaction
func (p *Poster) Post(ctx context.Context, e Entry) (*entity.Transaction, error) {
	txn, err := p.newTransaction(e, entity.FundingWallet)
	if err != nil {
		return nil, err
	}
	if err := p.applyToWallet(ctx, txn); err != nil {
		return nil, err
	}

	txn.MarkAsSucceeded(p.timeProvider)
	if err := p.uow.GetTransactionRepository(ctx).Create(ctx, txn); err != nil {
		return nil, err
	}

	p.logger.Debug("Ledger entry posted", map[string]any{
		"transaction_id": txn.ID,
		"user_id":        txn.UserID,
		"type":           txn.Type,
		"amount":         txn.Amount.String(),
	})
	return txn, nil
}

// OpenPending appends a pending transaction that does not touch the wallet yet
func (p *Poster) OpenPending(ctx context.Context, e Entry, funding entity.Funding) (*entity.Transaction, error) {
	txn, err := p.newTransaction(e, funding)
	if err != nil {
		return nil, err
	}
	if err := p.uow.GetTransactionRepository(ctx).Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// Complete marks a pending transaction successful, moving the wallet first
// when the entry is wallet-funded
func (p *Poster) Complete(ctx context.Context, txn *entity.Transaction) error {
	if txn.Status != entity.StatusPending {
		return nil
	}
	if txn.Funding == entity.FundingWallet {
		if err := p.applyToWallet(ctx, txn); err != nil {
			return err
		}
	}
	txn.MarkAsSucceeded(p.timeProvider)
	return p.uow.GetTransactionRepository(ctx).UpdateStatus(ctx, txn)
}

// Fail marks a pending transaction failed
func (p *Poster) Fail(ctx context.Context, txn *entity.Transaction, reason string) error {
	if txn.Status != entity.StatusPending {
		return nil
	}
	txn.MarkAsFailed(p.timeProvider, reason)
	return p.uow.GetTransactionRepository(ctx).UpdateStatus(ctx, txn)
}

// Reconcile recomputes a wallet balance from the ledger and reports drift
func (p *Poster) Reconcile(ctx context.Context, userID string) (*entity.ReconcileReport, error) {
	wallet, err := p.uow.GetWalletRepository(ctx).GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	ledgerBalance, err := p.uow.GetTransactionRepository(ctx).WalletLedgerBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := entity.NewReconcileReport(userID, wallet.Balance(), ledgerBalance)
	if !report.Consistent {
		p.logger.Error("Wallet balance drifted from ledger", map[string]any{
			"user_id":        userID,
			"balance":        report.Balance.String(),
			"ledger_balance": report.LedgerBalance.String(),
			"drift":          report.Drift.String(),
		})
	}
	return &report, nil
}

func (p *Poster) newTransaction(e Entry, funding entity.Funding) (*entity.Transaction, error) {
	txn, err := entity.NewTransaction(
		p.idGenerator.NewID(coreport.PrefixTransaction),
		e.UserID,
		e.Type,
		e.Amount,
		funding,
		p.timeProvider,
	)
	if err != nil {
		return nil, err
	}
	txn.PollID = e.PollID
	txn.ReferenceID = e.ReferenceID
	return txn, nil
}

// applyToWallet locks the wallet and applies the signed amount of txn
func (p *Poster) applyToWallet(ctx context.Context, txn *entity.Transaction) error {
	walletRepo := p.uow.GetWalletRepository(ctx)
	wallet, err := walletRepo.GetByUserIDForUpdate(ctx, txn.UserID)
	if err != nil {
		return err
	}

	operation := "credit"
	if txn.Amount < 0 {
		operation = "debit"
		err = wallet.Debit(txn.Amount.Negate(), p.timeProvider)
	} else {
		err = wallet.Credit(txn.Amount, p.timeProvider)
	}
	if err != nil {
		return &errs.LedgerError{
			UserID:    txn.UserID,
			Operation: operation,
			Amount:    txn.Amount.String(),
			Balance:   wallet.Balance().String(),
			Err:       err,
		}
	}

	return walletRepo.UpdateBalance(ctx, wallet)
}

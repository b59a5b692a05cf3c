package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating ledger operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Execute runs fn inside one transaction. The transaction commits when fn returns nil
	// and rolls back otherwise; transient database failures re-run fn from the start,
	// so fn must not have side effects outside the transaction.
	Execute(ctx context.Context, fn func(txCtx context.Context) error) error

	// Repository getters return repositories bound to the transaction in ctx, if any
	GetUserRepository(ctx context.Context) UserRepository
	GetWalletRepository(ctx context.Context) WalletRepository
	GetTransactionRepository(ctx context.Context) TransactionRepository
	GetPollRepository(ctx context.Context) PollRepository
	GetVoteRepository(ctx context.Context) VoteRepository
	GetPaymentIntentRepository(ctx context.Context) PaymentIntentRepository
	GetWithdrawalRepository(ctx context.Context) WithdrawalRepository
	GetSettlementRepository(ctx context.Context) SettlementRepository
}

// Page bounds a listing. A zero Limit means the repository default.
type Page struct {
	Limit  int
	Offset int
}

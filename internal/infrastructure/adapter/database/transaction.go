package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/repository"
)

type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implements persistence.UnitOfWork on top of GORM transactions.
// Repositories obtained with a transactional context run inside that transaction.
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	classifier   *repository.ErrorClassifier
	metrics      *MetricsCollector
	retry        RetryConfig
	lockTimeout  time.Duration
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(
	db *gorm.DB,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	retry RetryConfig,
	lockTimeout time.Duration,
) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		classifier:   repository.NewErrorClassifier(),
		metrics:      NewMetricsCollector(logger, timeProvider),
		retry:        retry,
		lockTimeout:  lockTimeout,
	}
}

func (u *UnitOfWork) isPostgres() bool {
	return u.db.Dialector.Name() == DriverPostgres
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if u.isPostgres() {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
			tx.Rollback()
			return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
		}
		if u.lockTimeout > 0 {
			stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.lockTimeout.Milliseconds())
			if err := tx.Exec(stmt).Error; err != nil {
				tx.Rollback()
				return ctx, fmt.Errorf("failed to set lock timeout: %w", err)
			}
		}
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the transaction in ctx
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return errors.New("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the transaction in ctx
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return errors.New("no transaction found in context")
	}

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// Execute runs fn in a transaction. A context that already carries a
// transaction joins it; otherwise a new one is begun, and transient failures
// re-run fn from the start.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	attempt := 0
	return RetryOnTransientError(ctx, u.retry, func() error {
		attempt++
		_, err := u.metrics.MeasureUnitOfWork(ctx, attempt, func() error {
			return u.runOnce(ctx, fn)
		})
		return err
	}, u.classifier, u.logger, u.timeProvider)
}

func (u *UnitOfWork) runOnce(ctx context.Context, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = u.Rollback(txCtx)
			panic(r)
		}
	}()

	if err = fn(txCtx); err != nil {
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			u.logger.Warn("Rollback after failed unit of work also failed", map[string]any{
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	return u.Commit(txCtx)
}

// GetUserRepository returns a user repository bound to the transaction in ctx
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.logger)
}

// GetWalletRepository returns a wallet repository bound to the transaction in ctx
func (u *UnitOfWork) GetWalletRepository(ctx context.Context) persistence.WalletRepository {
	return repository.NewWalletRepository(u.getDbFromContext(ctx), u.logger)
}

// GetTransactionRepository returns a ledger repository bound to the transaction in ctx
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetPollRepository returns a poll repository bound to the transaction in ctx
func (u *UnitOfWork) GetPollRepository(ctx context.Context) persistence.PollRepository {
	return repository.NewPollRepository(u.getDbFromContext(ctx), u.logger)
}

// GetVoteRepository returns a vote repository bound to the transaction in ctx
func (u *UnitOfWork) GetVoteRepository(ctx context.Context) persistence.VoteRepository {
	return repository.NewVoteRepository(u.getDbFromContext(ctx), u.logger)
}

// GetPaymentIntentRepository returns a payment intent repository bound to the transaction in ctx
func (u *UnitOfWork) GetPaymentIntentRepository(ctx context.Context) persistence.PaymentIntentRepository {
	return repository.NewPaymentIntentRepository(u.getDbFromContext(ctx), u.logger)
}

// GetWithdrawalRepository returns a withdrawal repository bound to the transaction in ctx
func (u *UnitOfWork) GetWithdrawalRepository(ctx context.Context) persistence.WithdrawalRepository {
	return repository.NewWithdrawalRepository(u.getDbFromContext(ctx), u.logger)
}

// GetSettlementRepository returns a settlement repository bound to the transaction in ctx
func (u *UnitOfWork) GetSettlementRepository(ctx context.Context) persistence.SettlementRepository {
	return repository.NewSettlementRepository(u.getDbFromContext(ctx), u.logger)
}

func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}

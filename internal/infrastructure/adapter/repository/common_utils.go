package repository

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	CheckError        ErrorType = "check"
	ForeignKeyError   ErrorType = "foreign_key"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
)

// Postgres SQLSTATE codes the classifier cares about
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgConnectionClass      = "08"
)

// DefaultPageSize bounds listings that do not set a limit
const DefaultPageSize = 50

// MaxPageSize caps any listing
const MaxPageSize = 500

// ErrorClassifier provides methods to classify Postgres and SQLite errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsCheckError(err):
		return CheckError
	case c.IsForeignKeyError(err):
		return ForeignKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsConnectionError(err):
		return ConnectionError
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		pgCode(err) == pgUniqueViolation ||
		containsAny(err, "UNIQUE constraint failed")
}

// IsCheckError checks if the error is a CHECK constraint violation
func (c *ErrorClassifier) IsCheckError(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		pgCode(err) == pgCheckViolation ||
		containsAny(err, "CHECK constraint failed")
}

// IsForeignKeyError checks if the error is a foreign key violation
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		pgCode(err) == pgForeignKeyViolation ||
		containsAny(err, "FOREIGN KEY constraint failed")
}

// IsLockError checks if the error comes from lock contention or a serialization conflict
func (c *ErrorClassifier) IsLockError(err error) bool {
	switch pgCode(err) {
	case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
		return true
	}
	return containsAny(err, "database is locked", "SQLITE_BUSY", "deadlock")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if strings.HasPrefix(pgCode(err), pgConnectionClass) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	return containsAny(err, "connection refused", "connection reset", "broken pipe", "server closed")
}

// IsTransientError reports whether re-running the whole unit of work may succeed
func (c *ErrorClassifier) IsTransientError(err error) bool {
	return err != nil && (c.IsLockError(err) || c.IsConnectionError(err))
}

// MapError translates a database error into a domain error. notFound is returned
// for missing rows and duplicate for unique violations; a nil duplicate maps to
// ErrConstraintViolation. Transient errors keep their cause so the unit of work
// can decide to retry.
func (c *ErrorClassifier) MapError(err error, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if notFound != nil {
			return notFound
		}
		return errs.ErrNotFound
	case c.IsDuplicateKeyError(err):
		if duplicate != nil {
			return duplicate
		}
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case c.IsCheckError(err), c.IsForeignKeyError(err):
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}
	return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func containsAny(err error, fragments ...string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, f := range fragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}

// forUpdate adds a row lock on drivers that support it. SQLite serializes writers
// on its single connection, so the clause is skipped there.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// paginate applies a bounded limit and offset
func paginate(db *gorm.DB, limit, offset int) *gorm.DB {
	switch {
	case limit <= 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return db.Limit(limit).Offset(offset)
}

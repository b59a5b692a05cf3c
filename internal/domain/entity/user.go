package entity

import (
	"fmt"
	"math"
	"net/mail"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
)

// User is a registered participant; a user owns exactly one wallet
type User struct {
	ID        string
	Email     string
	Name      string
	UPIID     string // default payout identifier, opaque
	CreatedAt time.Time
}

// NewUser validates registration input and creates a user
func NewUser(id, email, name string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == "" {
		return nil, errs.ErrInvalidUserID
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email %q", errs.ErrValidation, email)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrValidation)
	}

	return &User{
		ID:        id,
		Email:     email,
		Name:      name,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// SetUPI replaces the default payout identifier
func (u *User) SetUPI(upiID string) error {
	upiID = strings.TrimSpace(upiID)
	if upiID == "" {
		return errs.ErrInvalidUPI
	}
	u.UPIID = upiID
	return nil
}

// Wallet holds a user's materialized balance. It only changes through Credit and Debit,
// each of which the ledger pairs with exactly one transaction.
type Wallet struct {
	ID        string
	UserID    string
	balance   Money
	UpdatedAt time.Time
}

// NewWallet creates an empty wallet for a user
func NewWallet(id, userID string, timeProvider coreport.TimeProvider) *Wallet {
	return &Wallet{
		ID:        id,
		UserID:    userID,
		UpdatedAt: timeProvider.Now(),
	}
}

// RestoreWallet rebuilds a wallet from storage
func RestoreWallet(id, userID string, balance Money, updatedAt time.Time) (*Wallet, error) {
	if balance < 0 {
		return nil, errs.ErrNegativeBalance
	}
	return &Wallet{ID: id, UserID: userID, balance: balance, UpdatedAt: updatedAt}, nil
}

// Balance returns the current balance
func (w *Wallet) Balance() Money {
	return w.balance
}

// Credit adds a positive amount to the balance
func (w *Wallet) Credit(amount Money, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if w.balance > Money(math.MaxInt64)-amount {
		return errs.ErrAmountOverflow
	}
	w.balance += amount
	w.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit subtracts a positive amount, refusing to drive the balance negative
func (w *Wallet) Debit(amount Money, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if w.balance < amount {
		return errs.NewInsufficientBalanceError(w.UserID, amount.String(), w.balance.String())
	}
	w.balance -= amount
	w.UpdatedAt = timeProvider.Now()
	return nil
}

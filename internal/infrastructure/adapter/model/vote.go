package model

import (
	"time"
)

// Vote represents the database model for purchased votes
type Vote struct {
	ID             string    `gorm:"primaryKey;size:64"`
	PollID         string    `gorm:"not null;size:64;index:idx_votes_poll_user,priority:1"`
	UserID         string    `gorm:"not null;size:64;index:idx_votes_poll_user,priority:2"`
	OptionID       string    `gorm:"not null;size:64"`
	VoteCount      int64     `gorm:"not null;check:chk_votes_count_positive,vote_count > 0"`
	AmountPaid     int64     `gorm:"not null"`
	PaymentOrderID string    `gorm:"uniqueIndex;not null;size:64"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Vote
func (Vote) TableName() string {
	return "votes"
}

// PaymentIntent represents the database model for payment orders
type PaymentIntent struct {
	OrderID       string    `gorm:"primaryKey;size:64"`
	UserID        string    `gorm:"not null;size:64;index"`
	PollID        string    `gorm:"not null;size:64;index"`
	OptionID      string    `gorm:"not null;size:64"`
	VoteCount     int64     `gorm:"not null"`
	Amount        int64     `gorm:"not null"`
	Funding       string    `gorm:"not null;size:16"`
	SessionID     string    `gorm:"size:128"`
	Status        string    `gorm:"not null;size:16;index"`
	TransactionID string    `gorm:"not null;size:64"`
	VoteID        string    `gorm:"size:64"`
	FailureReason string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for PaymentIntent
func (PaymentIntent) TableName() string {
	return "payment_intents"
}

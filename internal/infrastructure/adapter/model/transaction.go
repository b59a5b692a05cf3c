package model

import (
	"time"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID           string    `gorm:"primaryKey;size:64"`
	UserID       string    `gorm:"not null;size:64;index:idx_transactions_user_created,priority:1"`
	Type         string    `gorm:"not null;size:32;index"`
	Amount       int64     `gorm:"not null"` // signed, in paise
	Status       string    `gorm:"not null;size:16"`
	Funding      string    `gorm:"not null;size:16"`
	PollID       string    `gorm:"size:64;index"`
	ReferenceID  string    `gorm:"size:64;index"`
	ErrorMessage string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null;index:idx_transactions_user_created,priority:2"`
	ProcessedAt  *time.Time

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Email     string    `gorm:"uniqueIndex;not null;size:255"`
	Name      string    `gorm:"not null;size:255"`
	UPIID     string    `gorm:"column:upi_id;size:255"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// Wallet represents the materialized balance of a user, in paise
type Wallet struct {
	ID        string    `gorm:"primaryKey;size:64"`
	UserID    string    `gorm:"uniqueIndex;not null;size:64"`
	Balance   int64     `gorm:"not null;default:0;check:chk_wallets_balance_non_negative,balance >= 0"`
	UpdatedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}

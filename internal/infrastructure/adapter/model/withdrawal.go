package model

import (
	"time"
)

// Withdrawal represents the database model for payout requests
type Withdrawal struct {
	ID          string    `gorm:"primaryKey;size:64"`
	UserID      string    `gorm:"not null;size:64;index"`
	Amount      int64     `gorm:"not null"`
	Fee         int64     `gorm:"not null"`
	NetAmount   int64     `gorm:"not null"`
	UPIID       string    `gorm:"column:upi_id;not null;size:255"`
	Status      string    `gorm:"not null;size:16;index"`
	AdminNotes  string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null;index"`
	ProcessedAt *time.Time
}

// TableName specifies the table name for Withdrawal
func (Withdrawal) TableName() string {
	return "withdrawals"
}

// Settlement represents a declared poll result
type Settlement struct {
	PollID          string    `gorm:"primaryKey;size:64"`
	WinningOptionID string    `gorm:"not null;size:64"`
	TotalVotes      int64     `gorm:"not null"`
	TotalAmount     int64     `gorm:"not null"`
	WinningWeight   int64     `gorm:"not null"`
	Distributed     int64     `gorm:"not null"`
	HouseRetained   int64     `gorm:"not null"`
	WinnersCount    int       `gorm:"not null"`
	SettledAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for Settlement
func (Settlement) TableName() string {
	return "settlements"
}

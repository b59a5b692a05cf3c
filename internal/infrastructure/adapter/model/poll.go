package model

import (
	"time"

	"gorm.io/gorm"
)

// Poll represents the database model for polls
type Poll struct {
	ID             string    `gorm:"primaryKey;size:64"`
	Title          string    `gorm:"not null;size:255"`
	Description    string    `gorm:"type:text"`
	PricePerVote   int64     `gorm:"not null;check:chk_polls_price_positive,price_per_vote > 0"`
	Status         string    `gorm:"not null;size:16;index"`
	ResultOptionID string    `gorm:"size:64"`
	TotalVotes     int64     `gorm:"not null;default:0"`
	TotalAmount    int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time
	ClosedAt       *time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	Options []PollOption `gorm:"foreignKey:PollID;references:ID"`
}

// TableName specifies the table name for Poll
func (Poll) TableName() string {
	return "polls"
}

// PollOption represents one option of a poll together with its tallies
type PollOption struct {
	ID        string `gorm:"primaryKey;size:64"`
	PollID    string `gorm:"not null;size:64;index"`
	Position  int    `gorm:"not null"`
	Text      string `gorm:"not null;size:255"`
	VoteCount int64  `gorm:"not null;default:0"`
	Amount    int64  `gorm:"not null;default:0"`
}

// TableName specifies the table name for PollOption
func (PollOption) TableName() string {
	return "poll_options"
}

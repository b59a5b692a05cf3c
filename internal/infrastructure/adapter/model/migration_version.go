package model

import (
	"time"
)

// MigrationVersion records one applied schema step
type MigrationVersion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Version     string    `gorm:"uniqueIndex;not null;size:20"`
	Description string    `gorm:"type:text"`
	Driver      string    `gorm:"not null;size:16"`
	AppliedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for the migration version model
func (MigrationVersion) TableName() string {
	return "migration_versions"
}

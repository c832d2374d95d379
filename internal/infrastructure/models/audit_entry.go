package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID  string    `gorm:"type:varchar(20);not null;index"`
	ActionBy  string    `gorm:"type:varchar(255);not null"`
	NewStatus string    `gorm:"type:varchar(20);not null"`
	Comment   string    `gorm:"type:text"`
	Timestamp time.Time `gorm:"not null;index"`
}

func (AuditEntry) TableName() string {
	return "audit_entries"
}

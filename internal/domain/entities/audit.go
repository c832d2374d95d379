package entities

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is an immutable record of a single status-changing action.
// Entries are only ever created by the review workflow.
type AuditEntry struct {
	ID        uuid.UUID    `json:"id"`
	VendorID  string       `json:"vendorId"`
	ActionBy  string       `json:"actionBy"`
	NewStatus VendorStatus `json:"newStatus"`
	Comment   string       `json:"comment"`
	Timestamp time.Time    `json:"timestamp"`
}

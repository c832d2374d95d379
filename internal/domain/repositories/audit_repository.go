package repositories

import (
	"context"

	"vendor-kyc.backend/internal/domain/entities"
)

// AuditRepository defines the append-only audit log. No update or delete is
// exposed.
type AuditRepository interface {
	Record(ctx context.Context, entry *entities.AuditEntry) error
	// ListFor returns entries for a vendor ordered by timestamp descending
	ListFor(ctx context.Context, vendorID string) ([]*entities.AuditEntry, error)
}

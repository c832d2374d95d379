package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"vendor-kyc.backend/internal/domain/entities"
	"vendor-kyc.backend/internal/infrastructure/models"
)

// AuditRepository implements the append-only audit log
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record appends an audit entry
func (r *AuditRepository) Record(ctx context.Context, entry *entities.AuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	m := &models.AuditEntry{
		ID:        entry.ID,
		VendorID:  entry.VendorID,
		ActionBy:  entry.ActionBy,
		NewStatus: string(entry.NewStatus),
		Comment:   entry.Comment,
		Timestamp: entry.Timestamp,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListFor returns entries for a vendor ordered by timestamp descending
func (r *AuditRepository) ListFor(ctx context.Context, vendorID string) ([]*entities.AuditEntry, error) {
	var ms []models.AuditEntry
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("timestamp DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	var entries []*entities.AuditEntry
	for _, m := range ms {
		entries = append(entries, &entities.AuditEntry{
			ID:        m.ID,
			VendorID:  m.VendorID,
			ActionBy:  m.ActionBy,
			NewStatus: entities.VendorStatus(m.NewStatus),
			Comment:   m.Comment,
			Timestamp: m.Timestamp,
		})
	}
	return entries, nil
}

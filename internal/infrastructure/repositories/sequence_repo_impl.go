package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"vendor-kyc.backend/internal/infrastructure/models"
	"vendor-kyc.backend/pkg/vendorid"
)

const vendorSequenceName = "vendor_id"

// SequenceRepository implements exclusive vendor sequence allocation backed
// by a single counter row
type SequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// NextVendorSequence increments and returns the counter under an exclusive
// row lock. When called inside a unit-of-work transaction the lock is held
// until that transaction commits, so concurrent registrations serialize here
// and never observe the same value.
//
// On first use the counter is seeded from the highest VEN-format identifier
// already in the vendors table, so databases that predate the counter keep
// their numbering.
func (r *SequenceRepository) NextVendorSequence(ctx context.Context) (int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var seq models.VendorSequence
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", vendorSequenceName).
		First(&seq).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		seed, seedErr := r.seedValue(ctx, db)
		if seedErr != nil {
			return 0, seedErr
		}
		seq = models.VendorSequence{Name: vendorSequenceName, Value: seed}
		// Another transaction may have created the row between the
		// SELECT and here; DoNothing plus a locked re-read covers it.
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seq).Error; err != nil {
			return 0, err
		}
		if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", vendorSequenceName).
			First(&seq).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	seq.Value++
	if err := db.Model(&models.VendorSequence{}).
		Where("name = ?", vendorSequenceName).
		Update("value", seq.Value).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}

func (r *SequenceRepository) seedValue(ctx context.Context, db *gorm.DB) (int64, error) {
	var ids []string
	if err := db.Model(&models.Vendor{}).Pluck("vendor_id", &ids).Error; err != nil {
		return 0, err
	}
	return vendorid.MaxSequence(ids), nil
}

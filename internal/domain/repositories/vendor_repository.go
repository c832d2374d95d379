package repositories

import (
	"context"

	"vendor-kyc.backend/internal/domain/entities"
)

// VendorRepository defines vendor record data operations
type VendorRepository interface {
	Create(ctx context.Context, vendor *entities.Vendor) error
	GetByVendorID(ctx context.Context, vendorID string) (*entities.Vendor, error)
	// GetByVendorIDForUpdate loads a vendor holding a row lock for the
	// remainder of the surrounding transaction
	GetByVendorIDForUpdate(ctx context.Context, vendorID string) (*entities.Vendor, error)
	GetByEmail(ctx context.Context, email string) (*entities.Vendor, error)
	UpdateStatus(ctx context.Context, vendorID string, status entities.VendorStatus, rejectionReason string) error
	// Touch refreshes the record's updatedAt timestamp
	Touch(ctx context.Context, vendorID string) error
	List(ctx context.Context, status entities.VendorStatus, limit, offset int) ([]*entities.Vendor, int, error)
	ListVendorIDs(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*entities.VendorStats, error)
}

// DocumentRepository defines document slot data operations
type DocumentRepository interface {
	// Upsert sets the slot to the given file reference, replacing any
	// previous reference for the same slot
	Upsert(ctx context.Context, doc *entities.Document) error
	// Clear empties the given slots, returning the file paths they held
	Clear(ctx context.Context, vendorID string, types []entities.DocumentType) ([]string, error)
	Get(ctx context.Context, vendorID string, docType entities.DocumentType) (*entities.Document, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*entities.Document, error)
	ListAllPaths(ctx context.Context) ([]string, error)
}

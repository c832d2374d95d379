package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"vendor-kyc.backend/internal/domain/entities"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
	"vendor-kyc.backend/internal/infrastructure/models"
)

// DocumentRepository implements document slot data operations
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Upsert sets the slot to the given file reference, replacing any previous
// reference for the same slot
func (r *DocumentRepository) Upsert(ctx context.Context, doc *entities.Document) error {
	m := &models.VendorDocument{
		VendorID:   doc.VendorID,
		DocType:    string(doc.DocType),
		FilePath:   doc.FilePath,
		UploadedAt: time.Now(),
	}
	err := GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "vendor_id"}, {Name: "doc_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"file_path", "uploaded_at"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	doc.UploadedAt = m.UploadedAt
	return nil
}

// Clear empties the given slots, returning the file paths they held
func (r *DocumentRepository) Clear(ctx context.Context, vendorID string, types []entities.DocumentType) ([]string, error) {
	if len(types) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(types))
	for _, t := range types {
		keys = append(keys, string(t))
	}

	db := GetDB(ctx, r.db).WithContext(ctx)

	var ms []models.VendorDocument
	if err := db.Where("vendor_id = ? AND doc_type IN ?", vendorID, keys).Find(&ms).Error; err != nil {
		return nil, err
	}
	if len(ms) == 0 {
		return nil, nil
	}

	if err := db.Where("vendor_id = ? AND doc_type IN ?", vendorID, keys).
		Delete(&models.VendorDocument{}).Error; err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(ms))
	for _, m := range ms {
		paths = append(paths, m.FilePath)
	}
	return paths, nil
}

// Get returns a single populated slot
func (r *DocumentRepository) Get(ctx context.Context, vendorID string, docType entities.DocumentType) (*entities.Document, error) {
	var m models.VendorDocument
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("vendor_id = ? AND doc_type = ?", vendorID, string(docType)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return docToEntity(&m), nil
}

// ListByVendor returns all populated slots for a vendor
func (r *DocumentRepository) ListByVendor(ctx context.Context, vendorID string) ([]*entities.Document, error) {
	var ms []models.VendorDocument
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("doc_type").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	var docs []*entities.Document
	for _, m := range ms {
		model := m
		docs = append(docs, docToEntity(&model))
	}
	return docs, nil
}

// ListAllPaths returns every stored file reference across all vendors
func (r *DocumentRepository) ListAllPaths(ctx context.Context) ([]string, error) {
	var paths []string
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.VendorDocument{}).
		Pluck("file_path", &paths).Error; err != nil {
		return nil, err
	}
	return paths, nil
}

func docToEntity(m *models.VendorDocument) *entities.Document {
	return &entities.Document{
		VendorID:   m.VendorID,
		DocType:    entities.DocumentType(m.DocType),
		FilePath:   m.FilePath,
		UploadedAt: m.UploadedAt,
	}
}

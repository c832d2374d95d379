package usecases

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"vendor-kyc.backend/internal/domain/entities"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
	"vendor-kyc.backend/internal/domain/repositories"
	"vendor-kyc.backend/pkg/logger"
)

// DocumentUpload is one file part of an upload request
type DocumentUpload struct {
	DocType  entities.DocumentType
	Filename string
	Content  io.Reader
}

// DocumentUsecase handles document slot management
type DocumentUsecase struct {
	vendorRepo repositories.VendorRepository
	docRepo    repositories.DocumentRepository
	store      repositories.FileStore
	uow        repositories.UnitOfWork
}

// NewDocumentUsecase creates a new document usecase
func NewDocumentUsecase(
	vendorRepo repositories.VendorRepository,
	docRepo repositories.DocumentRepository,
	store repositories.FileStore,
	uow repositories.UnitOfWork,
) *DocumentUsecase {
	return &DocumentUsecase{
		vendorRepo: vendorRepo,
		docRepo:    docRepo,
		store:      store,
		uow:        uow,
	}
}

// Upload stores the given files and binds them to their document slots.
// Uploading into an exclusive category vacates the sibling slots, so a record
// never holds two identity proofs or two address proofs at once. Each file is
// written to storage before its slot row changes; the previous file is removed
// only after the slot swap commits, so a crash mid-upload never leaves a slot
// pointing at missing bytes.
//
// All document types are validated up front: one unknown type rejects the
// whole request with no mutation. A request carrying no files at all is not an
// error; it leaves every slot untouched and returns an empty map.
func (u *DocumentUsecase) Upload(ctx context.Context, vendorID string, uploads []*DocumentUpload) (map[entities.DocumentType]string, error) {
	for _, up := range uploads {
		if !up.DocType.Valid() {
			return nil, domainerrors.BadRequest(fmt.Sprintf("Unknown document type: %s", up.DocType))
		}
	}
	uploads = dedupeByCategory(uploads)

	if _, err := u.vendorRepo.GetByVendorID(ctx, vendorID); err != nil {
		return nil, err
	}

	stored := make(map[entities.DocumentType]string, len(uploads))
	for _, up := range uploads {
		ref, err := u.uploadOne(ctx, vendorID, up)
		if err != nil {
			return stored, err
		}
		stored[up.DocType] = ref
	}
	return stored, nil
}

// uploadOne performs the write-new-then-swap-then-delete-old sequence for a
// single slot
func (u *DocumentUsecase) uploadOne(ctx context.Context, vendorID string, up *DocumentUpload) (string, error) {
	newRef, err := u.store.Write(ctx, vendorID, up.Filename, up.Content)
	if err != nil {
		return "", domainerrors.Storage("Failed to store document", err)
	}

	cleared := up.DocType.Siblings()
	cleared = append(cleared, up.DocType)

	var oldRefs []string
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		// Row lock on the vendor serializes concurrent uploads to the
		// same record, so sibling clears cannot interleave.
		if _, err := u.vendorRepo.GetByVendorIDForUpdate(txCtx, vendorID); err != nil {
			return err
		}
		refs, err := u.docRepo.Clear(txCtx, vendorID, cleared)
		if err != nil {
			return err
		}
		oldRefs = refs
		if err := u.docRepo.Upsert(txCtx, &entities.Document{
			VendorID: vendorID,
			DocType:  up.DocType,
			FilePath: newRef,
		}); err != nil {
			return err
		}
		return u.vendorRepo.Touch(txCtx, vendorID)
	})
	if err != nil {
		// The slot still points at the old file; the new one is unreferenced.
		if delErr := u.store.Delete(ctx, newRef); delErr != nil {
			logger.WithContext(ctx).Warn("failed to remove unreferenced document file",
				zap.String("ref", newRef), zap.Error(delErr))
		}
		if _, ok := err.(*domainerrors.AppError); ok {
			return "", err
		}
		return "", domainerrors.Persistence("Failed to update document slot", err)
	}

	// Best effort: a failed delete leaves an orphan file for the sweep job,
	// never a dangling slot.
	for _, ref := range oldRefs {
		if ref == newRef {
			continue
		}
		if delErr := u.store.Delete(ctx, ref); delErr != nil {
			logger.WithContext(ctx).Warn("failed to remove replaced document file",
				zap.String("ref", ref), zap.Error(delErr))
		}
	}
	return newRef, nil
}

// GetDocument opens a stored document for download
func (u *DocumentUsecase) GetDocument(ctx context.Context, vendorID string, docType entities.DocumentType) (*entities.Document, io.ReadCloser, error) {
	if !docType.Valid() {
		return nil, nil, domainerrors.BadRequest(fmt.Sprintf("Unknown document type: %s", docType))
	}
	doc, err := u.docRepo.Get(ctx, vendorID, docType)
	if err != nil {
		return nil, nil, err
	}
	rc, err := u.store.Open(ctx, doc.FilePath)
	if err != nil {
		return nil, nil, err
	}
	return doc, rc, nil
}

// dedupeByCategory keeps the first upload per exclusive category so a single
// request cannot race itself into holding two proofs of the same kind.
// Independent slots pass through untouched; a repeated slot key keeps its
// first occurrence.
func dedupeByCategory(uploads []*DocumentUpload) []*DocumentUpload {
	seenCat := make(map[entities.DocumentCategory]bool)
	seenType := make(map[entities.DocumentType]bool)
	out := uploads[:0:0]
	for _, up := range uploads {
		if seenType[up.DocType] {
			continue
		}
		if cat := up.DocType.Category(); cat != entities.CategoryNone {
			if seenCat[cat] {
				continue
			}
			seenCat[cat] = true
		}
		seenType[up.DocType] = true
		out = append(out, up)
	}
	return out
}

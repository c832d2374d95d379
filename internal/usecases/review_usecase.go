package usecases

import (
	"context"
	"strings"

	"vendor-kyc.backend/internal/domain/entities"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
	"vendor-kyc.backend/internal/domain/repositories"
)

// ReviewUsecase handles the admin review workflow
type ReviewUsecase struct {
	vendorRepo repositories.VendorRepository
	auditRepo  repositories.AuditRepository
	uow        repositories.UnitOfWork
}

// NewReviewUsecase creates a new review usecase
func NewReviewUsecase(
	vendorRepo repositories.VendorRepository,
	auditRepo repositories.AuditRepository,
	uow repositories.UnitOfWork,
) *ReviewUsecase {
	return &ReviewUsecase{
		vendorRepo: vendorRepo,
		auditRepo:  auditRepo,
		uow:        uow,
	}
}

// Review applies a status decision to a vendor record. Rejection requires a
// non-empty reason; moving to any other status clears a previously stored
// reason. The status change and its audit entry commit together, and every
// decision is logged even when the status does not change.
func (u *ReviewUsecase) Review(ctx context.Context, vendorID, actionBy string, input *entities.ReviewInput) (*entities.Vendor, error) {
	if !input.Status.Valid() {
		return nil, domainerrors.BadRequest("Invalid status. Must be one of: pending, approved, rejected")
	}

	comment := strings.TrimSpace(input.Reason)
	if input.Status == entities.VendorStatusRejected && comment == "" {
		return nil, domainerrors.BadRequest("Rejection reason is required when rejecting a vendor")
	}

	// Only a rejection keeps a stored reason on the record; the comment is
	// logged for every decision.
	storedReason := comment
	if input.Status != entities.VendorStatusRejected {
		storedReason = ""
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := u.vendorRepo.GetByVendorIDForUpdate(txCtx, vendorID); err != nil {
			return err
		}
		if err := u.vendorRepo.UpdateStatus(txCtx, vendorID, input.Status, storedReason); err != nil {
			return err
		}
		return u.auditRepo.Record(txCtx, &entities.AuditEntry{
			VendorID:  vendorID,
			ActionBy:  actionBy,
			NewStatus: input.Status,
			Comment:   comment,
		})
	})
	if err != nil {
		return nil, err
	}

	return u.vendorRepo.GetByVendorID(ctx, vendorID)
}

// ListVendors returns a page of vendor records, optionally filtered by status
func (u *ReviewUsecase) ListVendors(ctx context.Context, status entities.VendorStatus, limit, offset int) ([]*entities.Vendor, int, error) {
	if status != "" && !status.Valid() {
		return nil, 0, domainerrors.BadRequest("Invalid status filter. Must be one of: pending, approved, rejected")
	}
	return u.vendorRepo.List(ctx, status, limit, offset)
}

// ListAudit returns the audit trail for a vendor, newest first
func (u *ReviewUsecase) ListAudit(ctx context.Context, vendorID string) ([]*entities.AuditEntry, error) {
	if _, err := u.vendorRepo.GetByVendorID(ctx, vendorID); err != nil {
		return nil, err
	}
	return u.auditRepo.ListFor(ctx, vendorID)
}

// Stats returns dashboard counters by status
func (u *ReviewUsecase) Stats(ctx context.Context) (*entities.VendorStats, error) {
	return u.vendorRepo.Stats(ctx)
}

package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"vendor-kyc.backend/internal/domain/entities"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
	"vendor-kyc.backend/internal/interfaces/http/middleware"
	"vendor-kyc.backend/internal/interfaces/http/response"
	"vendor-kyc.backend/internal/metrics"
	"vendor-kyc.backend/internal/usecases"
	"vendor-kyc.backend/pkg/utils"
)

// AdminHandler handles the admin review surface
type AdminHandler struct {
	reviewUsecase       *usecases.ReviewUsecase
	registrationUsecase *usecases.RegistrationUsecase
	documentUsecase     *usecases.DocumentUsecase
	metrics             *metrics.Metrics
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	reviewUsecase *usecases.ReviewUsecase,
	registrationUsecase *usecases.RegistrationUsecase,
	documentUsecase *usecases.DocumentUsecase,
	m *metrics.Metrics,
) *AdminHandler {
	return &AdminHandler{
		reviewUsecase:       reviewUsecase,
		registrationUsecase: registrationUsecase,
		documentUsecase:     documentUsecase,
		metrics:             m,
	}
}

// ListVendors returns a page of vendor records
// GET /api/v1/admin/vendors?status=pending&page=1&limit=20
func (h *AdminHandler) ListVendors(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	status := entities.VendorStatus(c.Query("status"))

	vendors, total, err := h.reviewUsecase.ListVendors(c.Request.Context(), status, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"vendors":    vendors,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}

// GetVendor returns the full vendor record
// GET /api/v1/admin/vendors/:vendorId
func (h *AdminHandler) GetVendor(c *gin.Context) {
	vendor, err := h.registrationUsecase.GetVendor(c.Request.Context(), c.Param("vendorId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, vendor)
}

// UpdateStatus applies a review decision
// PUT /api/v1/admin/vendors/:vendorId/status
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var input entities.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	username, _ := middleware.GetUsername(c)

	vendor, err := h.reviewUsecase.Review(c.Request.Context(), c.Param("vendorId"), username, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.metrics.ReviewsTotal.WithLabelValues(string(vendor.Status)).Inc()

	response.Success(c, http.StatusOK, gin.H{
		"message": "Vendor status updated",
		"vendor":  vendor,
	})
}

// ListAudit returns the audit trail for a vendor, newest first
// GET /api/v1/admin/vendors/:vendorId/audit
func (h *AdminHandler) ListAudit(c *gin.Context) {
	entries, err := h.reviewUsecase.ListAudit(c.Request.Context(), c.Param("vendorId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"vendorId": c.Param("vendorId"),
		"entries":  entries,
	})
}

// DownloadDocument streams a stored document
// GET /api/v1/admin/vendors/:vendorId/documents/:docType
func (h *AdminHandler) DownloadDocument(c *gin.Context) {
	docType := entities.DocumentType(c.Param("docType"))

	doc, rc, err := h.documentUsecase.GetDocument(c.Request.Context(), c.Param("vendorId"), docType)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", "attachment; filename=\""+filepath.Base(doc.FilePath)+"\"")
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

// Stats returns dashboard counters
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.reviewUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

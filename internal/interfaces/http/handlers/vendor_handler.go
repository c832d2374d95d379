package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vendor-kyc.backend/internal/domain/entities"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
	"vendor-kyc.backend/internal/interfaces/http/response"
	"vendor-kyc.backend/internal/metrics"
	"vendor-kyc.backend/internal/usecases"
)

// maxUploadSize bounds a single multipart upload request
const maxUploadSize = 32 << 20 // 32 MB

// VendorHandler handles public vendor endpoints
type VendorHandler struct {
	registrationUsecase *usecases.RegistrationUsecase
	documentUsecase     *usecases.DocumentUsecase
	metrics             *metrics.Metrics
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(
	registrationUsecase *usecases.RegistrationUsecase,
	documentUsecase *usecases.DocumentUsecase,
	m *metrics.Metrics,
) *VendorHandler {
	return &VendorHandler{
		registrationUsecase: registrationUsecase,
		documentUsecase:     documentUsecase,
		metrics:             m,
	}
}

// Register handles vendor registration
// POST /api/v1/vendors/register
func (h *VendorHandler) Register(c *gin.Context) {
	var input entities.RegisterVendorInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	vendor, err := h.registrationUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.metrics.RegistrationsTotal.Inc()

	response.Success(c, http.StatusCreated, gin.H{
		"message":  "Vendor registered successfully",
		"vendorId": vendor.VendorID,
		"status":   vendor.Status,
	})
}

// UploadDocuments handles multipart document upload. Each form file field is
// named after the document slot it fills.
// POST /api/v1/vendors/:vendorId/documents
func (h *VendorHandler) UploadDocuments(c *gin.Context) {
	vendorID := c.Param("vendorId")

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid multipart form: "+err.Error()))
		return
	}

	// Walk slots in declaration order so the request is processed
	// deterministically regardless of part ordering
	var uploads []*usecases.DocumentUpload
	var opened []interface{ Close() error }
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, docType := range entities.AllDocumentTypes() {
		files, ok := form.File[string(docType)]
		if !ok || len(files) == 0 {
			continue
		}
		f, err := files[0].Open()
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Failed to read uploaded file: "+err.Error()))
			return
		}
		opened = append(opened, f)
		uploads = append(uploads, &usecases.DocumentUpload{
			DocType:  docType,
			Filename: files[0].Filename,
			Content:  f,
		})
	}

	// Surface an unknown field name instead of silently dropping it
	for field, files := range form.File {
		if len(files) > 0 && !entities.DocumentType(field).Valid() {
			response.Error(c, domainerrors.BadRequest("Unknown document type: "+field))
			return
		}
	}

	stored, err := h.documentUsecase.Upload(c.Request.Context(), vendorID, uploads)
	if err != nil {
		response.Error(c, err)
		return
	}

	for docType := range stored {
		h.metrics.UploadsTotal.WithLabelValues(string(docType)).Inc()
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":   "Documents uploaded successfully",
		"vendorId":  vendorID,
		"documents": stored,
	})
}

// CheckStatus returns the public status tracker view
// GET /api/v1/vendors/:vendorId/status
func (h *VendorHandler) CheckStatus(c *gin.Context) {
	vendorID := c.Param("vendorId")

	status, err := h.registrationUsecase.CheckStatus(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

// GetVendor returns the full vendor record including document slots
// GET /api/v1/vendors/:vendorId
func (h *VendorHandler) GetVendor(c *gin.Context) {
	vendorID := c.Param("vendorId")

	vendor, err := h.registrationUsecase.GetVendor(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, vendor)
}

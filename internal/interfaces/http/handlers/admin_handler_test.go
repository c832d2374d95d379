package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_ReviewWorkflow(t *testing.T) {
	env := newTestEnv(t)
	vendorID := env.registerVendor(t, "review@example.com")

	t.Run("invalid status", func(t *testing.T) {
		w := env.review(t, vendorID, "archived", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reject without reason leaves no trace", func(t *testing.T) {
		w := env.review(t, vendorID, "rejected", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Rejection reason is required")

		audit := env.do(t, http.MethodGet, "/api/v1/admin/vendors/"+vendorID+"/audit", nil)
		require.Equal(t, http.StatusOK, audit.Code)
		var trail struct {
			Entries []json.RawMessage `json:"entries"`
		}
		require.NoError(t, json.Unmarshal(audit.Body.Bytes(), &trail))
		assert.Empty(t, trail.Entries)
	})

	t.Run("reject with reason", func(t *testing.T) {
		w := env.review(t, vendorID, "rejected", "Aadhaar copy unreadable")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Vendor struct {
				Status          string `json:"status"`
				RejectionReason string `json:"rejectionReason"`
			} `json:"vendor"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "rejected", resp.Vendor.Status)
		assert.Equal(t, "Aadhaar copy unreadable", resp.Vendor.RejectionReason)
	})

	t.Run("approval clears the stored reason", func(t *testing.T) {
		w := env.review(t, vendorID, "approved", "all documents verified")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		get := env.do(t, http.MethodGet, "/api/v1/vendors/"+vendorID+"/status", nil)
		require.Equal(t, http.StatusOK, get.Code)
		var status struct {
			Status          string `json:"status"`
			RejectionReason string `json:"rejectionReason"`
		}
		require.NoError(t, json.Unmarshal(get.Body.Bytes(), &status))
		assert.Equal(t, "approved", status.Status)
		assert.Empty(t, status.RejectionReason)
	})

	t.Run("audit trail is newest first", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/admin/vendors/"+vendorID+"/audit", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var trail struct {
			Entries []struct {
				ActionBy  string `json:"actionBy"`
				NewStatus string `json:"newStatus"`
				Comment   string `json:"comment"`
			} `json:"entries"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trail))
		require.Len(t, trail.Entries, 2)
		assert.Equal(t, "approved", trail.Entries[0].NewStatus)
		assert.Equal(t, "all documents verified", trail.Entries[0].Comment)
		assert.Equal(t, "rejected", trail.Entries[1].NewStatus)
		assert.Equal(t, "Aadhaar copy unreadable", trail.Entries[1].Comment)
		assert.Equal(t, "reviewer", trail.Entries[0].ActionBy)
	})

	t.Run("audit for unknown vendor", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/admin/vendors/VEN999999/audit", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("review unknown vendor", func(t *testing.T) {
		w := env.review(t, "VEN999999", "approved", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminHandler_ListVendors(t *testing.T) {
	env := newTestEnv(t)
	first := env.registerVendor(t, "list1@example.com")
	env.registerVendor(t, "list2@example.com")
	env.registerVendor(t, "list3@example.com")

	w := env.review(t, first, "approved", "")
	require.Equal(t, http.StatusOK, w.Code)

	type listResponse struct {
		Vendors []struct {
			VendorID string `json:"vendorId"`
			Status   string `json:"status"`
		} `json:"vendors"`
		Pagination struct {
			TotalCount int64 `json:"totalCount"`
			Page       int   `json:"page"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}

	t.Run("all vendors paginated", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/admin/vendors?page=1&limit=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Vendors, 2)
		assert.Equal(t, int64(3), resp.Pagination.TotalCount)
		assert.Equal(t, 2, resp.Pagination.TotalPages)
	})

	t.Run("status filter", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/admin/vendors?status=approved", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Vendors, 1)
		assert.Equal(t, first, resp.Vendors[0].VendorID)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/admin/vendors?status=archived", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandler_DownloadDocument(t *testing.T) {
	env := newTestEnv(t)
	vendorID := env.registerVendor(t, "download@example.com")

	w := env.uploadDocuments(t, vendorID, map[string]string{
		"pan_document": "pan.pdf",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	t.Run("streams stored bytes", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/admin/vendors/"+vendorID+"/documents/pan_document", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		assert.Equal(t, "content of pan.pdf", w.Body.String())
	})

	t.Run("empty slot", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/admin/vendors/"+vendorID+"/documents/aadhaar_document", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown slot name", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/admin/vendors/"+vendorID+"/documents/mystery_document", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandler_Stats(t *testing.T) {
	env := newTestEnv(t)
	first := env.registerVendor(t, "stats1@example.com")
	env.registerVendor(t, "stats2@example.com")

	w := env.review(t, first, "approved", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := env.do(t, http.MethodGet, "/api/v1/admin/stats", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var stats struct {
		Total    int64 `json:"total"`
		Pending  int64 `json:"pending"`
		Approved int64 `json:"approved"`
		Rejected int64 `json:"rejected"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Approved)
	assert.Equal(t, int64(0), stats.Rejected)
}

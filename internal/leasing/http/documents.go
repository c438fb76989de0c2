package http

import (
	"encoding/json"
	"net/http"

	"github.com/havenlet/leasing/internal/leasing/service"
	"github.com/havenlet/leasing/pkg/httpx"
	"github.com/havenlet/leasing/pkg/leasingapi"
)

type DocumentsHandler struct {
	DocumentService *service.DocumentService
}

// HandleUploadURL godoc
//
//	@Summary		Presign Document Upload
//	@Description	Request a time-limited upload URL for a custom lease agreement. Persist the returned object_url on the lease after uploading.
//	@Tags			Documents
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leasingapi.UploadURLRequest	true	"Document metadata"
//	@Success		200		{object}	leasingapi.UploadURLResponse
//	@Failure		400		{object}	leasingapi.ErrorResponse
//	@Failure		503		{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/documents/upload-url [post].
func (h *DocumentsHandler) HandleUploadURL(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.UploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	presigned, err := h.DocumentService.UploadURL(r.Context(), httpx.UserIDFromCtx(r.Context()), req.Filename, req.ContentType)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, leasingapi.UploadURLResponse{
		URL:       presigned.URL,
		ObjectURL: presigned.ObjectURL,
		ExpiresAt: presigned.ExpiresAt,
	})
}

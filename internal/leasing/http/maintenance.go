package http

import (
	"encoding/json"
	"net/http"

	"github.com/havenlet/leasing/internal/leasing/service"
	"github.com/havenlet/leasing/pkg/httpx"
	"github.com/havenlet/leasing/pkg/leasingapi"
)

type MaintenanceHandler struct {
	MaintenanceService *service.MaintenanceService
}

// HandleCreate godoc
//
//	@Summary	Record Maintenance Request
//	@Tags		Maintenance
//	@Accept		json
//	@Produce	json
//	@Param		request	body		leasingapi.MaintenanceRequestBody	true	"Maintenance fields"
//	@Success	201		{object}	leasingapi.MaintenanceResponse
//	@Failure	400		{object}	leasingapi.ErrorResponse
//	@Failure	403		{object}	leasingapi.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/maintenance [post].
func (h *MaintenanceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.MaintenanceRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	mr, err := h.MaintenanceService.Create(r.Context(), httpx.UserIDFromCtx(r.Context()), service.MaintenanceInput{
		ListingID:   req.ListingID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMaintenanceResponse(mr))
}

// HandleList godoc
//
//	@Summary	List Maintenance Requests
//	@Tags		Maintenance
//	@Produce	json
//	@Success	200	{array}	leasingapi.MaintenanceResponse
//	@Security	BearerAuth
//	@Router		/v1/maintenance [get].
func (h *MaintenanceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.MaintenanceService.List(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]leasingapi.MaintenanceResponse, 0, len(requests))
	for _, mr := range requests {
		out = append(out, toMaintenanceResponse(mr))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

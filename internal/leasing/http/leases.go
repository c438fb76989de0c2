package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/service"
	"github.com/havenlet/leasing/pkg/httpx"
	"github.com/havenlet/leasing/pkg/leasingapi"
)

type LeasesHandler struct {
	LeaseService *service.LeaseService
}

// leaseRefFromRequest builds a lease reference from the path id and the
// `type` query parameter. The variant defaults to standard.
func leaseRefFromRequest(r *http.Request) domain.LeaseRef {
	t := domain.LeaseType(r.URL.Query().Get("type"))
	if t == "" {
		t = domain.LeaseStandard
	}
	return domain.LeaseRef{ID: r.PathValue("id"), Type: t}
}

// HandleCreate godoc
//
//	@Summary		Draft Lease
//	@Description	Draft a lease directly, outside the application flow. Type is "standard" or "custom"; custom leases must reference an uploaded agreement document.
//	@Tags			Leases
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leasingapi.LeaseRequest	true	"Lease terms"
//	@Success		201		{object}	leasingapi.LeaseResponse
//	@Failure		400		{object}	leasingapi.ErrorResponse
//	@Failure		403		{object}	leasingapi.ErrorResponse
//	@Failure		404		{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/leases [post].
func (h *LeasesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.LeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	leaseType := domain.LeaseType(req.Type)
	if leaseType == "" {
		leaseType = domain.LeaseStandard
	}

	lease, err := h.LeaseService.Create(r.Context(), httpx.UserIDFromCtx(r.Context()), service.LeaseInput{
		ListingID:     req.ListingID,
		Type:          leaseType,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		RentAmount:    req.RentAmount,
		DepositAmount: req.DepositAmount,
		DocumentURL:   req.DocumentURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toLeaseResponse(lease))
}

// HandleList godoc
//
//	@Summary		List Leases
//	@Description	Landlords see leases on their properties; tenants see leases they signed. Both variants are returned.
//	@Tags			Leases
//	@Produce		json
//	@Success		200	{array}	leasingapi.LeaseResponse
//	@Security		BearerAuth
//	@Router			/v1/leases [get].
func (h *LeasesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	leases, err := h.LeaseService.List(ctx, httpx.UserIDFromCtx(ctx), domain.Role(httpx.RoleFromCtx(ctx)))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLeaseResponses(leases))
}

// HandleGet godoc
//
//	@Summary	Get Lease
//	@Tags		Leases
//	@Produce	json
//	@Param		id		path		string	true	"Lease id"
//	@Param		type	query		string	false	"Lease variant (standard|custom), default standard"
//	@Success	200		{object}	leasingapi.LeaseResponse
//	@Failure	403		{object}	leasingapi.ErrorResponse
//	@Failure	404		{object}	leasingapi.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/leases/{id} [get].
func (h *LeasesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lease, err := h.LeaseService.Get(ctx, leaseRefFromRequest(r), httpx.UserIDFromCtx(ctx), domain.Role(httpx.RoleFromCtx(ctx)))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLeaseResponse(lease))
}

// HandleUpdate godoc
//
//	@Summary		Update Lease Terms
//	@Description	Edit the terms of a DRAFT lease. Signed leases are immutable.
//	@Tags			Leases
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Lease id"
//	@Param			type	query		string					false	"Lease variant (standard|custom), default standard"
//	@Param			request	body		leasingapi.LeaseRequest	true	"Lease terms"
//	@Success		200		{object}	leasingapi.LeaseResponse
//	@Failure		400		{object}	leasingapi.ErrorResponse
//	@Failure		409		{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/leases/{id} [patch].
func (h *LeasesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.LeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	lease, err := h.LeaseService.Update(r.Context(), leaseRefFromRequest(r), httpx.UserIDFromCtx(r.Context()), service.LeaseInput{
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		RentAmount:    req.RentAmount,
		DepositAmount: req.DepositAmount,
		DocumentURL:   req.DocumentURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLeaseResponse(lease))
}

// HandleTerminate godoc
//
//	@Summary		Terminate Lease
//	@Description	End an ACTIVE lease early, recording when, why and by whom.
//	@Tags			Leases
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Lease id"
//	@Param			type	query		string							false	"Lease variant (standard|custom), default standard"
//	@Param			request	body		leasingapi.LeaseTerminateRequest	true	"Termination details"
//	@Success		200		{object}	leasingapi.LeaseResponse
//	@Failure		403		{object}	leasingapi.ErrorResponse
//	@Failure		409		{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/leases/{id}/terminate [post].
func (h *LeasesHandler) HandleTerminate(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.LeaseTerminateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	lease, err := h.LeaseService.Terminate(r.Context(), leaseRefFromRequest(r), httpx.UserIDFromCtx(r.Context()), date, req.Reason, req.Notes)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLeaseResponse(lease))
}

// HandleDelete godoc
//
//	@Summary		Delete Lease
//	@Description	Remove a lease that never took effect. ACTIVE leases must be terminated instead.
//	@Tags			Leases
//	@Param			id		path	string	true	"Lease id"
//	@Param			type	query	string	false	"Lease variant (standard|custom), default standard"
//	@Success		204
//	@Failure		403	{object}	leasingapi.ErrorResponse
//	@Failure		409	{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/leases/{id} [delete].
func (h *LeasesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.LeaseService.Delete(r.Context(), leaseRefFromRequest(r), httpx.UserIDFromCtx(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

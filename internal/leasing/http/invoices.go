package http

import (
	"encoding/json"
	"net/http"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/service"
	"github.com/havenlet/leasing/pkg/httpx"
	"github.com/havenlet/leasing/pkg/leasingapi"
)

type InvoicesHandler struct {
	InvoiceService *service.InvoiceService
}

// HandleCreate godoc
//
//	@Summary		Create Invoice
//	@Description	Raise an invoice against a maintenance request. The companion payment is charged to the tenant holding the active lease on the affected listing.
//	@Tags			Invoices
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leasingapi.InvoiceRequest	true	"Invoice fields"
//	@Success		201		{object}	leasingapi.InvoiceResponse
//	@Failure		400		{object}	leasingapi.ErrorResponse
//	@Failure		403		{object}	leasingapi.ErrorResponse
//	@Failure		409		{object}	leasingapi.ErrorResponse	"listing has no active lease"
//	@Security		BearerAuth
//	@Router			/v1/invoices [post].
func (h *InvoicesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.InvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if req.MaintenanceRequestID == "" {
		writeInvalidRequest(w, "maintenance_request_id is required")
		return
	}

	inv, err := h.InvoiceService.Create(r.Context(), httpx.UserIDFromCtx(r.Context()), service.InvoiceInput{
		MaintenanceRequestID: req.MaintenanceRequestID,
		Description:          req.Description,
		Amount:               req.Amount,
		SharedWithTenant:     req.SharedWithTenant,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toInvoiceResponse(inv))
}

// HandleList godoc
//
//	@Summary	List Invoices
//	@Tags		Invoices
//	@Produce	json
//	@Success	200	{array}	leasingapi.InvoiceResponse
//	@Security	BearerAuth
//	@Router		/v1/invoices [get].
func (h *InvoicesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.InvoiceService.List(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvoiceResponses(invoices))
}

// HandleUpdate godoc
//
//	@Summary		Update Invoice
//	@Description	Edit a pending invoice. Amount changes propagate to the companion payment.
//	@Tags			Invoices
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Invoice id"
//	@Param			request	body		leasingapi.InvoiceRequest	true	"Invoice fields"
//	@Success		200		{object}	leasingapi.InvoiceResponse
//	@Failure		400		{object}	leasingapi.ErrorResponse
//	@Failure		409		{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/invoices/{id} [patch].
func (h *InvoicesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.InvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	inv, err := h.InvoiceService.Update(r.Context(), r.PathValue("id"), httpx.UserIDFromCtx(r.Context()), service.InvoiceInput{
		Description:      req.Description,
		Amount:           req.Amount,
		SharedWithTenant: req.SharedWithTenant,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvoiceResponse(inv))
}

// HandleUpdateStatus godoc
//
//	@Summary		Update Invoice Status
//	@Description	Move an invoice between PENDING, PAID and CANCELLED; the companion payment mirrors the transition.
//	@Tags			Invoices
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Invoice id"
//	@Param			request	body		leasingapi.InvoiceStatusRequest	true	"New status"
//	@Success		200		{object}	leasingapi.InvoiceResponse
//	@Failure		400		{object}	leasingapi.ErrorResponse
//	@Failure		404		{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/invoices/{id}/status [patch].
func (h *InvoicesHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.InvoiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	inv, err := h.InvoiceService.UpdateStatus(r.Context(), r.PathValue("id"), httpx.UserIDFromCtx(r.Context()), domain.InvoiceStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvoiceResponse(inv))
}

// HandleDelete godoc
//
//	@Summary		Delete Invoice
//	@Description	Remove an invoice and its companion payment together.
//	@Tags			Invoices
//	@Param			id	path	string	true	"Invoice id"
//	@Success		204
//	@Failure		403	{object}	leasingapi.ErrorResponse
//	@Failure		404	{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/invoices/{id} [delete].
func (h *InvoicesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.InvoiceService.Delete(r.Context(), r.PathValue("id"), httpx.UserIDFromCtx(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListPayments godoc
//
//	@Summary		List Payments
//	@Description	Landlords see every payment on their properties; tenants see their own payments except those backing an invoice the landlord kept private.
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{array}	leasingapi.PaymentResponse
//	@Security		BearerAuth
//	@Router			/v1/payments [get].
func (h *InvoicesHandler) HandleListPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payments, err := h.InvoiceService.ListPayments(ctx, httpx.UserIDFromCtx(ctx), domain.Role(httpx.RoleFromCtx(ctx)))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPaymentResponses(payments))
}

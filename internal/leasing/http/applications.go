package http

import (
	"encoding/json"
	"net/http"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/service"
	"github.com/havenlet/leasing/pkg/httpx"
	"github.com/havenlet/leasing/pkg/leasingapi"
)

type ApplicationsHandler struct {
	ApplicationService *service.ApplicationService
}

func employmentInputs(reqs []leasingapi.EmploymentRequest) []service.EmploymentInput {
	out := make([]service.EmploymentInput, 0, len(reqs))
	for _, e := range reqs {
		out = append(out, service.EmploymentInput{
			Employer:      e.Employer,
			Position:      e.Position,
			MonthlyIncome: e.MonthlyIncome,
			StartDate:     e.StartDate,
			EndDate:       e.EndDate,
		})
	}
	return out
}

// HandleCreate godoc
//
//	@Summary		Create Application
//	@Description	Create a rental application for one of the caller's listings. Omitting the applicant fields produces a placeholder application whose public link a prospective tenant fills in later.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leasingapi.ApplicationRequest	true	"Application fields"
//	@Success		201		{object}	leasingapi.ApplicationResponse
//	@Failure		400		{object}	leasingapi.ErrorResponse
//	@Failure		403		{object}	leasingapi.ErrorResponse
//	@Failure		404		{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/applications [post].
func (h *ApplicationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.ApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if req.ListingID == "" {
		writeInvalidRequest(w, "listing_id is required")
		return
	}

	app, err := h.ApplicationService.Create(r.Context(), httpx.UserIDFromCtx(r.Context()), service.CreateApplicationInput{
		ListingID:      req.ListingID,
		TenantID:       req.TenantID,
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		ApplicantPhone: req.ApplicantPhone,
		MoveInDate:     req.MoveInDate,
		ExpiresAt:      req.ExpiresAt,
		Employment:     employmentInputs(req.Employment),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// HandleList godoc
//
//	@Summary	List Applications
//	@Tags		Applications
//	@Produce	json
//	@Success	200	{array}	leasingapi.ApplicationResponse
//	@Security	BearerAuth
//	@Router		/v1/applications [get].
func (h *ApplicationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	apps, err := h.ApplicationService.List(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toApplicationResponses(apps))
}

// HandleGetPublic godoc
//
//	@Summary		Fetch Application (public)
//	@Description	Fetch an application by its public link id for the applicant-facing form.
//	@Tags			Applications
//	@Produce		json
//	@Param			publicID	path		string	true	"Public link id"
//	@Success		200			{object}	leasingapi.PublicApplicationResponse
//	@Failure		403			{object}	leasingapi.ErrorResponse
//	@Failure		404			{object}	leasingapi.ErrorResponse
//	@Router			/v1/applications/public/{publicID} [get].
func (h *ApplicationsHandler) HandleGetPublic(w http.ResponseWriter, r *http.Request) {
	app, err := h.ApplicationService.GetPublic(r.Context(), r.PathValue("publicID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPublicApplicationResponse(app))
}

// HandleSubmitPublic godoc
//
//	@Summary		Submit Application (public)
//	@Description	Fill in the applicant fields on an application reached through its public link.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			publicID	path		string								true	"Public link id"
//	@Param			request		body		leasingapi.ApplicationSubmitRequest	true	"Applicant fields"
//	@Success		200			{object}	leasingapi.PublicApplicationResponse
//	@Failure		400			{object}	leasingapi.ErrorResponse
//	@Failure		403			{object}	leasingapi.ErrorResponse
//	@Failure		404			{object}	leasingapi.ErrorResponse
//	@Failure		409			{object}	leasingapi.ErrorResponse
//	@Router			/v1/applications/public/{publicID} [put].
func (h *ApplicationsHandler) HandleSubmitPublic(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.ApplicationSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	app, err := h.ApplicationService.SubmitPublic(r.Context(), r.PathValue("publicID"), service.SubmitApplicationInput{
		TenantID:       req.TenantID,
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		ApplicantPhone: req.ApplicantPhone,
		MoveInDate:     req.MoveInDate,
		Employment:     employmentInputs(req.Employment),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPublicApplicationResponse(app))
}

// HandleUpdateStatus godoc
//
//	@Summary		Decide Application
//	@Description	Approve, reject or cancel a NEW application. Approving an application with a bound tenant drafts its lease in the same transaction; the response then carries the lease id.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Application id"
//	@Param			request	body		leasingapi.ApplicationStatusRequest	true	"Decision"
//	@Success		200		{object}	leasingapi.ApplicationResponse
//	@Failure		400		{object}	leasingapi.ErrorResponse
//	@Failure		403		{object}	leasingapi.ErrorResponse
//	@Failure		404		{object}	leasingapi.ErrorResponse
//	@Failure		409		{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/applications/{id}/status [patch].
func (h *ApplicationsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.ApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	app, _, err := h.ApplicationService.UpdateStatus(
		r.Context(),
		r.PathValue("id"),
		httpx.UserIDFromCtx(r.Context()),
		domain.ApplicationStatus(req.Status),
		req.DecisionNotes,
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toApplicationResponse(app))
}

// HandleDelete godoc
//
//	@Summary		Delete Application
//	@Description	Approved applications with a linked lease cannot be deleted.
//	@Tags			Applications
//	@Param			id	path	string	true	"Application id"
//	@Success		204
//	@Failure		403	{object}	leasingapi.ErrorResponse
//	@Failure		409	{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/applications/{id} [delete].
func (h *ApplicationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ApplicationService.Delete(r.Context(), r.PathValue("id"), httpx.UserIDFromCtx(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteBatch godoc
//
//	@Summary		Delete Applications (bulk)
//	@Description	Delete several applications atomically; if any is an approved application with a linked lease, nothing is deleted.
//	@Tags			Applications
//	@Accept			json
//	@Param			request	body	leasingapi.ApplicationDeleteBatchRequest	true	"Application ids"
//	@Success		204
//	@Failure		400	{object}	leasingapi.ErrorResponse
//	@Failure		409	{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/applications/delete [post].
func (h *ApplicationsHandler) HandleDeleteBatch(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.ApplicationDeleteBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	if err := h.ApplicationService.DeleteBatch(r.Context(), req.IDs, httpx.UserIDFromCtx(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/service"
	"github.com/havenlet/leasing/pkg/httpx"
	"github.com/havenlet/leasing/pkg/leasingapi"
)

type ListingsHandler struct {
	ListingService *service.ListingService
}

func listingInputFromRequest(req leasingapi.ListingRequest) service.ListingInput {
	return service.ListingInput{
		Title:         req.Title,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		RentAmount:    req.RentAmount,
		DepositAmount: req.DepositAmount,
	}
}

// HandleCreate godoc
//
//	@Summary		Create Listing
//	@Tags			Listings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leasingapi.ListingRequest	true	"Listing fields"
//	@Success		201		{object}	leasingapi.ListingResponse
//	@Failure		400		{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/listings [post].
func (h *ListingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	listing, err := h.ListingService.Create(r.Context(), httpx.UserIDFromCtx(r.Context()), listingInputFromRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toListingResponse(listing))
}

// HandleList godoc
//
//	@Summary		List Listings
//	@Description	Landlords see their own listings; tenants see available listings.
//	@Tags			Listings
//	@Produce		json
//	@Success		200	{array}	leasingapi.ListingResponse
//	@Security		BearerAuth
//	@Router			/v1/listings [get].
func (h *ListingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listings, err := h.ListingService.List(ctx, httpx.UserIDFromCtx(ctx), domain.Role(httpx.RoleFromCtx(ctx)))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toListingResponses(listings))
}

// HandleGet godoc
//
//	@Summary	Get Listing
//	@Tags		Listings
//	@Produce	json
//	@Param		id	path		string	true	"Listing id"
//	@Success	200	{object}	leasingapi.ListingResponse
//	@Failure	404	{object}	leasingapi.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/listings/{id} [get].
func (h *ListingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	listing, err := h.ListingService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toListingResponse(listing))
}

// HandleUpdate godoc
//
//	@Summary	Update Listing
//	@Tags		Listings
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Listing id"
//	@Param		request	body		leasingapi.ListingRequest	true	"Listing fields"
//	@Success	200		{object}	leasingapi.ListingResponse
//	@Failure	403		{object}	leasingapi.ErrorResponse
//	@Failure	404		{object}	leasingapi.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/listings/{id} [patch].
func (h *ListingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req leasingapi.ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	listing, err := h.ListingService.Update(r.Context(), r.PathValue("id"), httpx.UserIDFromCtx(r.Context()), listingInputFromRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toListingResponse(listing))
}

// HandleDelete godoc
//
//	@Summary		Delete Listing
//	@Description	Rented listings cannot be deleted while their lease is active.
//	@Tags			Listings
//	@Param			id	path	string	true	"Listing id"
//	@Success		204
//	@Failure		403	{object}	leasingapi.ErrorResponse
//	@Failure		409	{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/listings/{id} [delete].
func (h *ListingsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ListingService.Delete(r.Context(), r.PathValue("id"), httpx.UserIDFromCtx(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/havenlet/leasing/internal/leasing/service"
	"github.com/havenlet/leasing/pkg/httpx"
	"github.com/havenlet/leasing/pkg/leasingapi"
)

type InvitesHandler struct {
	InviteService  *service.InviteService
	SigningService *service.SigningService
}

// HandleGenerate godoc
//
//	@Summary		Create Signing Invite
//	@Description	Mint a single-use signing invite for a DRAFT lease. The raw token is returned exactly once; only its fingerprint is stored.
//	@Tags			Invites
//	@Produce		json
//	@Param			id		path		string	true	"Lease id"
//	@Param			type	query		string	false	"Lease variant (standard|custom), default standard"
//	@Success		201		{object}	leasingapi.InviteResponse
//	@Failure		403		{object}	leasingapi.ErrorResponse
//	@Failure		404		{object}	leasingapi.ErrorResponse
//	@Failure		409		{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/leases/{id}/invite [post].
func (h *InvitesHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	minted, err := h.InviteService.Generate(r.Context(), leaseRefFromRequest(r), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, leasingapi.InviteResponse{
		InviteID:  minted.Invite.ID,
		Token:     minted.Token,
		ShareURL:  minted.ShareURL,
		ExpiresAt: minted.Invite.ExpiresAt,
	})
}

// HandleResolve godoc
//
//	@Summary		Resolve Signing Invite (public)
//	@Description	Look up an invite by its raw token and return the lease terms the signer is about to agree to.
//	@Tags			Invites
//	@Produce		json
//	@Param			token	path		string	true	"Raw invite token"
//	@Success		200		{object}	leasingapi.InviteViewResponse
//	@Failure		404		{object}	leasingapi.ErrorResponse
//	@Failure		409		{object}	leasingapi.ErrorResponse
//	@Failure		410		{object}	leasingapi.ErrorResponse
//	@Router			/v1/invites/{token} [get].
func (h *InvitesHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	view, err := h.InviteService.Resolve(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leasingapi.InviteViewResponse{
		InviteID:      view.InviteID,
		LeaseType:     string(view.LeaseType),
		StartDate:     view.StartDate,
		EndDate:       view.EndDate,
		RentAmount:    view.RentAmount,
		DepositAmount: view.DepositAmount,
		DocumentURL:   view.DocumentURL,
		Property:      view.Property,
		LandlordName:  view.LandlordName,
		ExpiresAt:     view.ExpiresAt,
	})
}

type signRequest struct {
	UserID string `json:"user_id"`
}

// HandleSign godoc
//
//	@Summary		Sign Lease (public)
//	@Description	Redeem a signing invite. Activates the lease, binds the signer as its tenant and marks the listing rented, all atomically; the invite token is the capability and is single-use.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string		true	"Raw invite token"
//	@Param			request	body		signRequest	true	"Signer's user id"
//	@Success		200		{object}	leasingapi.LeaseResponse
//	@Failure		400		{object}	leasingapi.ErrorResponse
//	@Failure		404		{object}	leasingapi.ErrorResponse
//	@Failure		409		{object}	leasingapi.ErrorResponse	"already signed, or signer holds an active lease (existing_lease_id)"
//	@Failure		410		{object}	leasingapi.ErrorResponse
//	@Router			/v1/invites/{token}/sign [post].
func (h *InvitesHandler) HandleSign(w http.ResponseWriter, r *http.Request) {
	var req signRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	// An authenticated caller signs as themselves; the body user_id covers
	// signers arriving straight from the share link.
	userID := httpx.UserIDFromCtx(r.Context())
	if userID == "" {
		userID = req.UserID
	}
	if userID == "" {
		writeInvalidRequest(w, "user_id is required")
		return
	}

	lease, err := h.SigningService.Sign(r.Context(), r.PathValue("token"), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLeaseResponse(lease))
}

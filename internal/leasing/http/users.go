package http

import (
	"encoding/json"
	"net/http"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/service"
	"github.com/havenlet/leasing/pkg/httpx"
	"github.com/havenlet/leasing/pkg/leasingapi"
)

type MeHandler struct {
	UserService *service.UserService
}

// HandlePut godoc
//
//	@Summary		Sync Profile
//	@Description	Upsert the caller's profile row. Identity and role are taken from the bearer token.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leasingapi.UserRequest	true	"Profile fields"
//	@Success		200		{object}	leasingapi.UserResponse
//	@Failure		400		{object}	leasingapi.ErrorResponse
//	@Failure		401		{object}	leasingapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/me [put].
func (h *MeHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req leasingapi.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	user, err := h.UserService.Sync(ctx,
		httpx.UserIDFromCtx(ctx),
		domain.Role(httpx.RoleFromCtx(ctx)),
		service.UserInput{Name: req.Name, Email: req.Email, Phone: req.Phone},
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleGet godoc
//
//	@Summary	Current Profile
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	leasingapi.UserResponse
//	@Failure	404	{object}	leasingapi.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.Get(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

package http

import (
	"errors"
	"net/http"

	"github.com/havenlet/leasing/internal/leasing/service"
	"github.com/havenlet/leasing/pkg/httpx"
	"github.com/havenlet/leasing/pkg/leasingapi"
	"github.com/havenlet/leasing/pkg/slogx"
)

// writeServiceError maps service-layer errors onto the JSON error envelope.
// Unrecognized errors are logged and returned as a generic 500 so internals
// never leak to clients.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var activeLease *service.ActiveLeaseError

	switch {
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, leasingapi.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "Resource not found",
		})
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteJSON(w, http.StatusForbidden, leasingapi.ErrorResponse{
			Error:            "forbidden",
			ErrorDescription: "You do not have access to this resource",
		})
	case errors.Is(err, service.ErrInvalidState):
		httpx.WriteJSON(w, http.StatusConflict, leasingapi.ErrorResponse{
			Error:            "invalid_state",
			ErrorDescription: "Operation not allowed in the resource's current state",
		})
	case errors.Is(err, service.ErrInvalidRequest):
		httpx.WriteJSON(w, http.StatusBadRequest, leasingapi.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid or missing request fields",
		})
	case errors.Is(err, service.ErrInviteExpired):
		httpx.WriteJSON(w, http.StatusGone, leasingapi.ErrorResponse{
			Error:            "invite_expired",
			ErrorDescription: "This signing link has expired; request a new one",
		})
	case errors.Is(err, service.ErrInviteAlreadySigned):
		httpx.WriteJSON(w, http.StatusConflict, leasingapi.ErrorResponse{
			Error:            "already_signed",
			ErrorDescription: "This signing link has already been used",
		})
	case errors.Is(err, service.ErrBlobUnavailable):
		httpx.WriteJSON(w, http.StatusServiceUnavailable, leasingapi.ErrorResponse{
			Error:            "unavailable",
			ErrorDescription: "Document storage is not configured",
		})
	case errors.As(err, &activeLease):
		httpx.WriteJSON(w, http.StatusConflict, leasingapi.ErrorResponse{
			Error:             "conflict",
			ErrorDescription:  "Signer already holds an active lease",
			ExistingLeaseID:   activeLease.ExistingLeaseID,
			ExistingLeaseType: string(activeLease.ExistingLeaseType),
		})
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, leasingapi.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Internal server error",
		})
	}
}

func writeInvalidRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, leasingapi.ErrorResponse{
		Error:            "invalid_request",
		ErrorDescription: desc,
	})
}

package http

import (
	"net/http"

	"github.com/cimillas/checkout/internal/app"
	"github.com/go-chi/chi/v5"
)

// Authorizations is the minimal interface needed to drive code verification.
type Authorizations interface {
	Start(channel string) (app.Authorization, error)
	Verify(id string, code int) (app.Authorization, error)
	Status(id string) (app.Authorization, error)
}

func HandleStartAuthorization(svc Authorizations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req startAuthorizationRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		a, err := svc.Start(req.Channel)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAuthorizationResponse(a))
	}
}

// HandleVerifyAuthorization accepts any code; the check is a stub.
func HandleVerifyAuthorization(svc Authorizations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req verifyAuthorizationRequest
		if err := decodeJSON(r, &req); err != nil || req.Code == nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		a, err := svc.Verify(chi.URLParam(r, "authorizationID"), *req.Code)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAuthorizationResponse(a))
	}
}

func HandleGetAuthorization(svc Authorizations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Status(chi.URLParam(r, "authorizationID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAuthorizationResponse(a))
	}
}

type startAuthorizationRequest struct {
	Channel string `json:"channel"`
}

type verifyAuthorizationRequest struct {
	Code *int `json:"code"`
}

type authorizationResponse struct {
	ID         string `json:"id"`
	Channel    string `json:"channel"`
	Authorized bool   `json:"authorized"`
}

func toAuthorizationResponse(a app.Authorization) authorizationResponse {
	return authorizationResponse{
		ID:         a.ID,
		Channel:    string(a.Channel),
		Authorized: a.Authorized,
	}
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cimillas/checkout/internal/domain"
)

const (
	codeMethodNotAllowed      = "method_not_allowed"
	codeNotFound              = "not_found"
	codeInvalidRequestBody    = "invalid_request_body"
	codeInvalidID             = "invalid_id"
	codeUnknownPaymentMethod  = "unknown_payment_method"
	codeUnknownChannel        = "unknown_channel"
	codeEmptyOrder            = "empty_order"
	codeNonFiniteTotal        = "non_finite_total"
	codeNotAuthorized         = "not_authorized"
	codeAuthorizationNotFound = "authorization_not_found"
	codeReceiptNotFound       = "receipt_not_found"
	codeForbidden             = "forbidden"
	codeInternalError         = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps service errors to a status and a stable code.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAuthorized):
		writeError(w, http.StatusPaymentRequired, codeNotAuthorized, domain.ErrNotAuthorized.Error())
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case errors.Is(err, domain.ErrUnknownPaymentMethod):
		writeError(w, http.StatusBadRequest, codeUnknownPaymentMethod, err.Error())
	case errors.Is(err, domain.ErrUnknownChannel):
		writeError(w, http.StatusBadRequest, codeUnknownChannel, err.Error())
	case errors.Is(err, domain.ErrEmptyOrder):
		writeError(w, http.StatusBadRequest, codeEmptyOrder, err.Error())
	case errors.Is(err, domain.ErrNonFiniteTotal):
		writeError(w, http.StatusBadRequest, codeNonFiniteTotal, err.Error())
	case errors.Is(err, domain.ErrAuthorizationNotFound):
		writeError(w, http.StatusNotFound, codeAuthorizationNotFound, err.Error())
	case errors.Is(err, domain.ErrReceiptNotFound):
		writeError(w, http.StatusNotFound, codeReceiptNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// writeJSON encodes v before committing the status, so a value that cannot
// be marshaled becomes a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(payload, '\n'))
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

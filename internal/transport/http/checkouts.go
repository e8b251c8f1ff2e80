package http

import (
	"context"
	"net/http"
	"time"

	"github.com/cimillas/checkout/internal/app"
	"github.com/cimillas/checkout/internal/domain"
	"github.com/go-chi/chi/v5"
)

// Checkouter is the minimal interface needed to pay for a basket.
type Checkouter interface {
	Checkout(ctx context.Context, in app.CheckoutInput) (app.CheckoutResult, error)
	GetReceipt(ctx context.Context, id string) (domain.Receipt, error)
}

// HandleCreateCheckout builds an order from the request and pays it.
func HandleCreateCheckout(svc Checkouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCheckoutRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		method, err := domain.ParsePaymentMethod(req.Method)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		lines := make([]domain.LineItem, 0, len(req.Items))
		for _, item := range req.Items {
			lines = append(lines, domain.LineItem{
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}

		res, err := svc.Checkout(r.Context(), app.CheckoutInput{
			Lines:           lines,
			Method:          method,
			Credential:      req.Credential,
			AuthorizationID: req.AuthorizationID,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, checkoutResponse{
			ReceiptID: res.Receipt.ID,
			Status:    string(res.Order.Status),
			Total:     res.Receipt.Total,
		})
	}
}

// HandleGetReceipt returns one recorded receipt.
func HandleGetReceipt(svc Checkouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		receipt, err := svc.GetReceipt(r.Context(), chi.URLParam(r, "receiptID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, receiptResponse{
			ID:         receipt.ID,
			Method:     string(receipt.Method),
			Credential: receipt.Credential,
			Total:      receipt.Total,
			ItemCount:  receipt.ItemCount,
			PaidAt:     receipt.PaidAt,
		})
	}
}

type lineItemRequest struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type createCheckoutRequest struct {
	Items           []lineItemRequest `json:"items"`
	Method          string            `json:"method"`
	Credential      string            `json:"credential"`
	AuthorizationID string            `json:"authorization_id"`
}

type checkoutResponse struct {
	ReceiptID string  `json:"receipt_id"`
	Status    string  `json:"status"`
	Total     float64 `json:"total"`
}

type receiptResponse struct {
	ID         string    `json:"id"`
	Method     string    `json:"method"`
	Credential string    `json:"credential"`
	Total      float64   `json:"total"`
	ItemCount  int       `json:"item_count"`
	PaidAt     time.Time `json:"paid_at"`
}

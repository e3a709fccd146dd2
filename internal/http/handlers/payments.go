package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tablepos/internal/models"
	"tablepos/internal/payment"
	"tablepos/pkg/response"
)

type paymentRequest struct {
	OrderIDs       []int64 `json:"orderIds"`
	PaymentMethod  string  `json:"paymentMethod"`
	AmountReceived float64 `json:"amountReceived"`
}

type paymentQuoteRequest struct {
	OrderIDs []int64 `json:"orderIds"`
}

// PaymentQuote returns the total due for a selection without touching any
// state, so the till can show the amount and change live.
func (h *Handler) PaymentQuote(w http.ResponseWriter, r *http.Request) {
	var body paymentQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	active, err := h.Store.Orders()
	if err != nil {
		h.Logger.Error("payment quote failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load orders")
		return
	}

	selected := make(map[int64]bool, len(body.OrderIDs))
	for _, id := range body.OrderIDs {
		selected[id] = true
	}

	response.Success(w, map[string]any{
		"total": payment.ComputeTotal(active, selected),
	})
}

func (h *Handler) PaymentProcess(w http.ResponseWriter, r *http.Request) {
	var body paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if len(body.OrderIDs) == 0 {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "No orders selected")
		return
	}
	method, ok := models.ParsePaymentMethod(body.PaymentMethod)
	if !ok {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment method")
		return
	}

	result, err := h.Payments.Pay(body.OrderIDs, method, body.AmountReceived)
	switch {
	case errors.Is(err, payment.ErrOrderNotReady):
		response.Error(w, http.StatusBadRequest, "ORDER_NOT_READY", "Selection contains an order that is not ready for payment")
	case errors.Is(err, payment.ErrInsufficientCash):
		response.Error(w, http.StatusBadRequest, "INSUFFICIENT_CASH", "Amount received is less than the total due")
	case err != nil:
		h.Logger.Error("payment failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process payment")
	default:
		response.Success(w, map[string]any{
			"total":          result.Total,
			"change":         result.Change,
			"paid":           result.Entries,
			"remainingCount": len(result.Remaining),
		})
	}
}

package handlers

import (
	"net/http"

	"tablepos/internal/history"
	"tablepos/internal/receipt"
	"tablepos/pkg/response"
)

func (h *Handler) HistoryList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	methodFilter := query.Get("paymentMethod")
	switch methodFilter {
	case "", "all", "cash", "card":
	default:
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown payment method filter")
		return
	}
	sortOrder := query.Get("sort")
	switch sortOrder {
	case "":
		sortOrder = "desc"
	case "asc", "desc":
	default:
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Sort must be asc or desc")
		return
	}

	records, err := h.Store.History()
	if err != nil {
		h.Logger.Error("history load failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load history")
		return
	}

	filtered, err := history.Filter(records, history.Query{
		DateFrom:      query.Get("dateFrom"),
		DateTo:        query.Get("dateTo"),
		PaymentMethod: methodFilter,
	})
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	sorted := history.Sort(filtered, sortOrder)

	response.Success(w, map[string]any{
		"transactions": sorted,
		"stats":        history.Aggregate(sorted),
	})
}

func (h *Handler) receiptOptions() receipt.Options {
	return receipt.Options{
		Header:         h.Config.ReceiptHeader,
		Footer:         h.Config.ReceiptFooter,
		CurrencySuffix: h.Config.CurrencySuffix,
	}
}

func (h *Handler) HistoryReceiptText(w http.ResponseWriter, r *http.Request) {
	orderID, err := readPathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Transaction ID is required")
		return
	}

	records, err := h.Store.History()
	if err != nil {
		h.Logger.Error("history load failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load history")
		return
	}
	record, ok := history.Find(records, orderID)
	if !ok {
		response.Error(w, http.StatusNotFound, "RECEIPT_NOT_FOUND", "Transaction not found")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(receipt.Text(record, h.receiptOptions())))
}

func (h *Handler) HistoryReceiptPDF(w http.ResponseWriter, r *http.Request) {
	orderID, err := readPathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Transaction ID is required")
		return
	}

	records, err := h.Store.History()
	if err != nil {
		h.Logger.Error("history load failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load history")
		return
	}
	record, ok := history.Find(records, orderID)
	if !ok {
		response.Error(w, http.StatusNotFound, "RECEIPT_NOT_FOUND", "Transaction not found")
		return
	}

	buf, err := receipt.PDF(record, h.receiptOptions())
	if err != nil {
		h.Logger.Error("receipt pdf failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	_, _ = w.Write(buf.Bytes())
}

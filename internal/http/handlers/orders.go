package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tablepos/internal/models"
	"tablepos/internal/orders"
	"tablepos/pkg/response"
)

type createOrderRequest struct {
	TableID int64   `json:"tableId"`
	ItemIDs []int64 `json:"itemIds"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) OrdersList(w http.ResponseWriter, r *http.Request) {
	var status models.Status
	if value := r.URL.Query().Get("status"); value != "" {
		parsed, ok := models.ParseStatus(value)
		if !ok {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown order status")
			return
		}
		status = parsed
	}

	list, err := h.Orders.List(status)
	if err != nil {
		h.Logger.Error("orders list failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load orders")
		return
	}

	if value := r.URL.Query().Get("tableId"); value != "" {
		tableID, err := parseInt64(value)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid tableId")
			return
		}
		filtered := make([]models.Order, 0, len(list))
		for _, order := range list {
			if order.TableID == tableID {
				filtered = append(filtered, order)
			}
		}
		list = filtered
	}

	response.Success(w, list)
}

func (h *Handler) OrderCreate(w http.ResponseWriter, r *http.Request) {
	var body createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	order, err := h.Orders.Create(body.TableID, body.ItemIDs)
	switch {
	case errors.Is(err, orders.ErrEmptyOrder):
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Order has no items")
	case errors.Is(err, orders.ErrTableNotFound):
		response.Error(w, http.StatusBadRequest, "TABLE_NOT_FOUND", "Table not found")
	case errors.Is(err, orders.ErrMenuItemNotFound):
		response.Error(w, http.StatusBadRequest, "MENU_ITEM_NOT_FOUND", "Menu item not found")
	case err != nil:
		h.Logger.Error("order create failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
	default:
		response.Created(w, order)
	}
}

func (h *Handler) OrderSetStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := readPathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Order ID is required")
		return
	}

	var body setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	status, ok := models.ParseStatus(body.Status)
	if !ok {
		response.Error(w, http.StatusBadRequest, "INVALID_STATUS", "Unknown order status")
		return
	}

	order, err := h.Orders.SetStatus(orderID, status)
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		response.Error(w, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	case errors.Is(err, orders.ErrInvalidStatus):
		response.Error(w, http.StatusBadRequest, "INVALID_STATUS", "Status transition not allowed")
	case err != nil:
		h.Logger.Error("order status update failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update order")
	default:
		response.Success(w, order)
	}
}

func (h *Handler) OrderRevert(w http.ResponseWriter, r *http.Request) {
	orderID, err := readPathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Order ID is required")
		return
	}

	order, err := h.Orders.Revert(orderID)
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		response.Error(w, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	case errors.Is(err, orders.ErrNothingToRevert):
		response.Error(w, http.StatusBadRequest, "NOTHING_TO_REVERT", "Order has no previous status")
	case err != nil:
		h.Logger.Error("order revert failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to revert order")
	default:
		response.Success(w, order)
	}
}

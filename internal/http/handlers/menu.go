package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tablepos/internal/catalog"
	"tablepos/pkg/response"
)

type menuItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

func (h *Handler) MenuList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.Items()
	if err != nil {
		h.Logger.Error("menu list failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load menu")
		return
	}
	response.Success(w, items)
}

func (h *Handler) MenuCreate(w http.ResponseWriter, r *http.Request) {
	var body menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.Catalog.AddItem(body.Name, body.Price, body.Category)
	switch {
	case errors.Is(err, catalog.ErrInvalidMenuItem):
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Name, price and category are required")
	case err != nil:
		h.Logger.Error("menu create failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create menu item")
	default:
		response.Created(w, item)
	}
}

func (h *Handler) MenuUpdate(w http.ResponseWriter, r *http.Request) {
	itemID, err := readPathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Menu item ID is required")
		return
	}

	var body menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.Catalog.UpdateItem(itemID, body.Name, body.Price, body.Category)
	switch {
	case errors.Is(err, catalog.ErrInvalidMenuItem):
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Name, price and category are required")
	case errors.Is(err, catalog.ErrMenuItemNotFound):
		response.Error(w, http.StatusNotFound, "MENU_ITEM_NOT_FOUND", "Menu item not found")
	case err != nil:
		h.Logger.Error("menu update failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update menu item")
	default:
		response.Success(w, item)
	}
}

func (h *Handler) MenuDelete(w http.ResponseWriter, r *http.Request) {
	itemID, err := readPathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Menu item ID is required")
		return
	}

	err = h.Catalog.DeleteItem(itemID)
	switch {
	case errors.Is(err, catalog.ErrMenuItemNotFound):
		response.Error(w, http.StatusNotFound, "MENU_ITEM_NOT_FOUND", "Menu item not found")
	case err != nil:
		h.Logger.Error("menu delete failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete menu item")
	default:
		response.Success(w, map[string]any{"deleted": itemID})
	}
}

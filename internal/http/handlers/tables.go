package handlers

import (
	"net/http"

	"tablepos/pkg/response"
)

func (h *Handler) TablesList(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Store.Tables()
	if err != nil {
		h.Logger.Error("tables list failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load tables")
		return
	}
	response.Success(w, tables)
}

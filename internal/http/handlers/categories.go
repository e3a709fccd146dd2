package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"tablepos/internal/catalog"
	"tablepos/pkg/response"
)

type categoryRequest struct {
	Name string `json:"name"`
}

type renameCategoriesRequest struct {
	Categories []string `json:"categories"`
}

func (h *Handler) CategoriesList(w http.ResponseWriter, r *http.Request) {
	custom, err := h.Store.CustomCategories()
	if err != nil {
		h.Logger.Error("categories list failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load categories")
		return
	}
	response.Success(w, map[string]any{
		"builtin": catalog.BuiltinCategories,
		"custom":  custom,
	})
}

func (h *Handler) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var body categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err := h.Catalog.AddCategory(body.Name)
	switch {
	case errors.Is(err, catalog.ErrEmptyCategory):
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Category name is required")
	case errors.Is(err, catalog.ErrCategoryExists):
		response.Error(w, http.StatusConflict, "CATEGORY_EXISTS", "Category already exists")
	case err != nil:
		h.Logger.Error("category create failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create category")
	default:
		response.Created(w, map[string]any{"name": body.Name})
	}
}

func (h *Handler) CategoriesRename(w http.ResponseWriter, r *http.Request) {
	var body renameCategoriesRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err := h.Catalog.RenameCategories(body.Categories)
	switch {
	case errors.Is(err, catalog.ErrEmptyCategory):
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Category names must not be empty")
	case errors.Is(err, catalog.ErrDuplicateCategories):
		response.Error(w, http.StatusBadRequest, "DUPLICATE_CATEGORIES", "Categories must have unique names")
	case errors.Is(err, catalog.ErrCategoryNotFound):
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Category list length mismatch")
	case err != nil:
		h.Logger.Error("categories rename failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save categories")
	default:
		response.Success(w, map[string]any{"categories": body.Categories})
	}
}

func (h *Handler) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if name == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Category name is required")
		return
	}

	err := h.Catalog.DeleteCategory(name)
	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound):
		response.Error(w, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
	case errors.Is(err, catalog.ErrCategoryInUse):
		response.Error(w, http.StatusConflict, "CATEGORY_IN_USE", "Category is used by menu items")
	case err != nil:
		h.Logger.Error("category delete failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete category")
	default:
		response.Success(w, map[string]any{"deleted": name})
	}
}

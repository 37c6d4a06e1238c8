package handlers

import (
	"errors"
	"net/http"

	"johuart/internal/models"
	"johuart/internal/services"
)

type CategoryHandler struct {
	Service *services.CategoryService
}

func (h *CategoryHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.GetAllCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryByName(w http.ResponseWriter, r *http.Request) {
	subcategoryName := getParam(r, "subcategory_name")
	if subcategoryName == "" {
		writeError(w, http.StatusBadRequest, "missing subcategory name")
		return
	}

	category, err := h.Service.GetCategoryByName(r.Context(), subcategoryName)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, category)
}

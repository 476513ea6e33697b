package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	repo "github.com/stockops/stock-manager/internal/repo"
)

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// GetItemsHandler godoc
// @Summary List stock items
// @Description Lists items in store order. The free-text query matches name
// @Description or category case-insensitively; an empty query returns
// @Description everything unchanged.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param q query string false "Free-text search over name and category"
// @Param category query string false "Exact category ('All' for no restriction)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ItemsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /items [get]
func GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.ItemFilter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Offset:   parseIntPtr(q.Get("offset")),
		Limit:    parseIntPtr(q.Get("limit")),
	}

	if filter.Limit != nil && *filter.Limit <= 0 {
		http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
		return
	}
	if filter.Offset != nil && *filter.Offset < 0 {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}

	items, total, err := itemRepo.Filter(filter)
	if err != nil {
		http.Error(w, "could not filter items", http.StatusInternalServerError)
		return
	}

	totalValue, err := itemRepo.TotalValue()
	if err != nil {
		http.Error(w, "could not compute total value", http.StatusInternalServerError)
		return
	}

	resp := ItemsSearchResult{
		Data: make([]ItemResponse, len(items)),
		Meta: Meta{TotalCount: total, TotalValue: totalValue},
	}
	for i, item := range items {
		resp.Data[i] = toItemResponse(item)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode response: %v", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// GetItemByIDHandler godoc
// @Summary Get item by ID
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /items/{id} [get]
func GetItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	item, err := itemRepo.GetByID(id)
	if err != nil {
		if err == repo.ErrItemNotFound {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toItemResponse(item))
}

// DeleteItemHandler godoc
// @Summary Delete an item
// @Description Removes the item immediately and unconditionally. The store
// @Description is left untouched when the ID is absent.
// @Tags items
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /items/{id} [delete]
func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		http.Error(w, "item ID is required", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}
	if err := itemRepo.Delete(id); err != nil {
		if err == repo.ErrItemNotFound {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete item", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetCategoriesHandler godoc
// @Summary Category index
// @Description Returns "All" followed by the distinct categories present in
// @Description the store, in first-seen order.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 500 {string} string "Internal error"
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := itemRepo.Categories()
	if err != nil {
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(categories); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

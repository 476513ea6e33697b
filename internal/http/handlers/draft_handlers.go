package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/stockops/stock-manager/internal/draft"
	repo "github.com/stockops/stock-manager/internal/repo"
)

// GetDraftHandler godoc
// @Summary Current draft
// @Tags draft
// @Produce json
// @Security BearerAuth
// @Success 200 {object} draft.Draft
// @Router /draft [get]
func GetDraftHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(currentDraft); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// SetDraftFieldHandler godoc
// @Summary Apply one field edit to the draft
// @Description Name and category are accepted as typed. Quantity and price
// @Description must parse as non-negative numbers; input that does not
// @Description parse is dropped and the prior value is kept, while empty
// @Description input clears the field. The response is the resulting draft
// @Description either way.
// @Tags draft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param field path string true "name | quantity | price | category"
// @Param value body DraftFieldRequest true "Field value as typed"
// @Success 200 {object} draft.Draft
// @Failure 400 {string} string "Unknown field"
// @Router /draft/{field} [put]
func SetDraftFieldHandler(w http.ResponseWriter, r *http.Request) {
	var req DraftFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	field := chi.URLParam(r, "field")
	if err := currentDraft.Set(field, req.Value); err != nil {
		if errors.Is(err, draft.ErrUnknownField) {
			http.Error(w, "unknown draft field", http.StatusBadRequest)
			return
		}
		http.Error(w, "could not update draft", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(currentDraft)
}

// EditItemHandler godoc
// @Summary Begin editing an item
// @Description Copies the item's fields into the draft and selects it, so
// @Description the next commit updates it in place.
// @Tags draft
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} draft.Draft
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /draft/edit/{id} [post]
func EditItemHandler(w http.ResponseWriter, r *http.Request) {
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

	currentDraft.FromItem(item)
	editingID = item.ID

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(currentDraft)
}

// CommitDraftHandler godoc
// @Summary Commit the draft
// @Description Creates a new item, or updates the selected one in place
// @Description preserving its ID. An incomplete draft is rejected with the
// @Description blocking fields and nothing changes; the draft stays open.
// @Description On success the draft and the selection are discarded.
// @Tags draft
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ItemResponse "Updated"
// @Success 201 {object} ItemResponse "Created"
// @Failure 404 {string} string "Selected item no longer exists"
// @Failure 422 {array} ItemValidationError
// @Router /draft/commit [post]
func CommitDraftHandler(w http.ResponseWriter, r *http.Request) {
	validationErrors := validateDraft(currentDraft)
	if len(validationErrors) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	item, err := currentDraft.Item()
	if err != nil {
		http.Error(w, "could not read draft", http.StatusInternalServerError)
		return
	}

	status := http.StatusCreated
	if editingID != 0 {
		item.ID = editingID
		item, err = itemRepo.Update(item)
		status = http.StatusOK
	} else {
		item, err = itemRepo.Create(item)
	}
	if err != nil {
		if err == repo.ErrItemNotFound {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not commit draft", http.StatusInternalServerError)
		return
	}

	currentDraft.Reset()
	editingID = 0

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(toItemResponse(item))
}

// CancelDraftHandler godoc
// @Summary Discard the draft
// @Description Clears all draft fields and the editing selection without
// @Description touching the store.
// @Tags draft
// @Security BearerAuth
// @Success 204 "Discarded"
// @Router /draft [delete]
func CancelDraftHandler(w http.ResponseWriter, r *http.Request) {
	currentDraft.Reset()
	editingID = 0
	w.WriteHeader(http.StatusNoContent)
}

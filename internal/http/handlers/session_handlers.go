package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/stockops/stock-manager/internal/auth"
	"github.com/stockops/stock-manager/internal/models"
)

// LoginHandler godoc
// @Summary Open the session and return its token
// @Description Captures the user's display name. No credentials are
// @Description verified; the gate is presentational, not a security boundary.
// @Tags session
// @Accept json
// @Produce json
// @Param name body LoginRequest true "first and last name"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Missing name"
// @Router /session [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		http.Error(w, "first and last name are required", http.StatusBadRequest)
		return
	}

	token, err := auth.GenerateToken(models.Session{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(LoginResult{Token: token}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

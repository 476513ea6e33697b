package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/stockops/stock-manager/internal/report"
)

// GenerateReportHandler godoc
// @Summary Generate the valuation report
// @Description Renders the plain-text valuation report for the selected
// @Description category and keeps it as the current report, overwriting any
// @Description prior one. An empty category means "All".
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param selection body ReportRequest true "Category selection"
// @Success 200 {object} ReportResult
// @Failure 422 {string} string "Unknown category"
// @Router /reports [post]
func GenerateReportHandler(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	categories, err := itemRepo.Categories()
	if err != nil {
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}
	if req.Category != "" && !slices.Contains(categories, req.Category) {
		http.Error(w, "unknown category", http.StatusUnprocessableEntity)
		return
	}

	session, err := sessionFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid session token", http.StatusUnauthorized)
		return
	}

	items, err := itemRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}

	currentReport = report.Generate(items, report.Params{
		User:     session,
		Category: req.Category,
		Now:      time.Now(),
	})

	if err := json.NewEncoder(w).Encode(ReportResult{Report: currentReport}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetReportHandler godoc
// @Summary Current report text
// @Tags reports
// @Produce plain
// @Security BearerAuth
// @Success 200 {string} string "Report text"
// @Failure 404 {string} string "No report generated yet"
// @Router /reports/current [get]
func GetReportHandler(w http.ResponseWriter, r *http.Request) {
	if currentReport == "" {
		http.Error(w, "no report generated yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, currentReport)
}

// DownloadReportHandler godoc
// @Summary Download the current report
// @Description Offers the current report as a text file named after the
// @Description logged-in user, with filename-unsafe characters replaced.
// @Tags reports
// @Produce plain
// @Security BearerAuth
// @Success 200 {string} string "Report file"
// @Failure 404 {string} string "No report generated yet"
// @Router /reports/current/download [get]
func DownloadReportHandler(w http.ResponseWriter, r *http.Request) {
	if currentReport == "" {
		http.Error(w, "no report generated yet", http.StatusNotFound)
		return
	}

	session, err := sessionFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid session token", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", report.Filename(session)))
	fmt.Fprint(w, currentReport)
}

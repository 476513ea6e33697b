package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stockops/stock-manager/internal/models"
)

type csvRow struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
	Category string
	parseErr error
}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "quantity", "price", "category"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", required)
		}
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := csvRow{
			Name:     strings.TrimSpace(record[index["name"]]),
			Category: strings.TrimSpace(record[index["category"]]),
		}
		row.Quantity, err = strconv.Atoi(strings.TrimSpace(record[index["quantity"]]))
		if err != nil {
			row.parseErr = errors.New("quantity is not an integer")
		}
		row.Price, err = decimal.NewFromString(strings.TrimSpace(record[index["price"]]))
		if err != nil && row.parseErr == nil {
			row.parseErr = errors.New("price is not a number")
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if r.parseErr != nil {
		return r.parseErr
	}
	if r.Name == "" {
		return errors.New("missing name")
	}
	if r.Category == "" {
		return errors.New("missing category")
	}
	if r.Quantity < 0 {
		return errors.New("invalid quantity")
	}
	if r.Price.IsNegative() {
		return errors.New("invalid price")
	}
	return nil
}

// ImportItemsHandler godoc
// @Summary Import stock items via CSV
// @Description Bulk-loads items from a CSV file with name, quantity, price
// @Description and category columns. Rows whose name matches an existing
// @Description item are skipped by default, or replace the existing fields
// @Description in update mode.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportItemsResult
// @Failure 400 {string} string "Invalid file"
// @Router /items/import [post]
func ImportItemsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var imported int
	var errorsList []ItemValidationError

	for i, rec := range records {
		rowNum := i + 2 // header is row 1

		if err := validateRow(rec); err != nil {
			errorsList = append(errorsList, ItemValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}

		existing, err := itemRepo.GetByName(rec.Name)
		if err == nil && existing.ID != 0 {
			if mode == "skip" {
				errorsList = append(errorsList, ItemValidationError{Description: fmt.Sprintf("row %d: item '%s' already exists", rowNum, rec.Name)})
				continue
			}
			existing.Quantity = rec.Quantity
			existing.Price = rec.Price
			existing.Category = rec.Category
			if _, err := itemRepo.Update(existing); err != nil {
				errorsList = append(errorsList, ItemValidationError{Description: fmt.Sprintf("row %d: failed to update '%s'", rowNum, rec.Name)})
				continue
			}
			imported++
			continue
		}

		newItem := models.StockItem{
			Name:     rec.Name,
			Quantity: rec.Quantity,
			Price:    rec.Price,
			Category: rec.Category,
		}
		if _, err := itemRepo.Create(newItem); err != nil {
			errorsList = append(errorsList, ItemValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}
		imported++
	}

	err = writeJSON(w, http.StatusOK, ImportItemsResult{
		ImportedItemsCount: imported,
		Errors:             errorsList,
	})

	if err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}

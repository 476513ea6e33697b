package handlers

import "github.com/stockops/stock-manager/internal/draft"

type ItemValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateDraft lists the fields still blocking a commit. Numeric fields
// are normalized as they are typed, so a non-empty quantity or price is
// already a well-formed non-negative number; zero counts as present.
func validateDraft(d draft.Draft) []ItemValidationError {
	errs := []ItemValidationError{}
	if d.Name == "" {
		errs = append(errs, ItemValidationError{Field: "Name", Description: "Name is required"})
	}
	if d.Quantity == "" {
		errs = append(errs, ItemValidationError{Field: "Quantity", Description: "Quantity is required"})
	}
	if d.Price == "" {
		errs = append(errs, ItemValidationError{Field: "Price", Description: "Price is required"})
	}
	if d.Category == "" {
		errs = append(errs, ItemValidationError{Field: "Category", Description: "Category is required"})
	}
	return errs
}

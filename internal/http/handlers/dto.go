package handlers

import "github.com/shopspring/decimal"

type LoginRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type ItemResponse struct {
	Id         int             `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Category   string          `json:"category"`
	TotalValue decimal.Decimal `json:"total_value"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
	// TotalValue is the valuation of the whole store, independent of any
	// search restriction, the way the list view displays it.
	TotalValue decimal.Decimal `json:"total_value"`
}

type ItemsSearchResult struct {
	Data []ItemResponse `json:"data"`
	Meta Meta           `json:"meta,omitempty"`
}

type DraftFieldRequest struct {
	Value string `json:"value"`
}

type ReportRequest struct {
	Category string `json:"category"`
}

type ReportResult struct {
	Report string `json:"report"`
}

type ImportItemsResult struct {
	ImportedItemsCount int                   `json:"imported"`
	Errors             []ItemValidationError `json:"errors"`
}

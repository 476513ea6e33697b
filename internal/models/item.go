package models

import "github.com/shopspring/decimal"

// StockItem represents a tracked inventory record.
type StockItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// TotalValue returns quantity times unit price at full precision.
// Rounding happens only where the value is displayed.
func (s StockItem) TotalValue() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

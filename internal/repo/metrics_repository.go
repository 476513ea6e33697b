package repo

import "github.com/shopspring/decimal"

type MostValuableItem struct {
	Name       string          `json:"name"`
	TotalValue decimal.Decimal `json:"total_value"`
}

type Metrics struct {
	TotalItems         int              `json:"total_items"`
	DistinctCategories int              `json:"distinct_categories"`
	TotalValue         decimal.Decimal  `json:"total_value"`
	MostValuableItem   MostValuableItem `json:"most_valuable_item"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}

// Package report renders the plain-text valuation report for a category
// selection.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockops/stock-manager/internal/models"
	"github.com/stockops/stock-manager/internal/repo"
)

// timestampLayout approximates a locale-style wall-clock timestamp,
// e.g. "8/29/2026, 3:04:05 PM".
const timestampLayout = "1/2/2006, 3:04:05 PM"

// Params carries the non-store inputs of a report.
type Params struct {
	User     models.Session
	Category string
	Now      time.Time
}

// Generate filters items by the selected category (repo.CategoryAll means no
// filtering) and renders the report document: a title line with the user's
// name, the generation timestamp, the category, the grand total, and one
// block per item in store order. Per-item totals and the grand total are
// rounded to two decimals for display only; the grand total is the rounding
// of the exact sum, not a sum of rounded values.
func Generate(items []models.StockItem, p Params) string {
	category := p.Category
	if category == "" {
		category = repo.CategoryAll
	}

	filtered := []models.StockItem{}
	grandTotal := decimal.Zero
	for _, item := range items {
		if category != repo.CategoryAll && item.Category != category {
			continue
		}
		filtered = append(filtered, item)
		grandTotal = grandTotal.Add(item.TotalValue())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Stock Report for %s\n", p.User.DisplayName())
	fmt.Fprintf(&b, "Generated on: %s\n\n", p.Now.Format(timestampLayout))
	fmt.Fprintf(&b, "Category: %s\n", category)
	fmt.Fprintf(&b, "Total Inventory Value: $%s\n\n", grandTotal.StringFixed(2))
	b.WriteString("Detailed Stock List:\n")
	for _, item := range filtered {
		fmt.Fprintf(&b, "\n  Item: %s\n  Category: %s\n  Quantity: %d\n  Price: $%s\n  Total Value: $%s\n",
			item.Name, item.Category, item.Quantity,
			item.Price.StringFixed(2), item.TotalValue().StringFixed(2))
	}
	return b.String()
}

// Filename builds the export filename from the user's name pair. Characters
// unsafe in filenames are replaced with underscores.
func Filename(user models.Session) string {
	return fmt.Sprintf("stock_report_%s_%s.txt",
		sanitize(user.FirstName), sanitize(user.LastName))
}

func sanitize(part string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-':
			return r
		default:
			return '_'
		}
	}, part)
}

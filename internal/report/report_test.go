package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockops/stock-manager/internal/models"
	"github.com/stockops/stock-manager/internal/repo"
)

var testUser = models.Session{FirstName: "Ada", LastName: "Lovelace"}

func testItems() []models.StockItem {
	return []models.StockItem{
		{ID: 1, Name: "Widget A", Quantity: 50, Price: decimal.NewFromFloat(9.99), Category: "Electronics"},
		{ID: 2, Name: "Gadget B", Quantity: 30, Price: decimal.NewFromFloat(19.99), Category: "Electronics"},
		{ID: 3, Name: "Doohickey C", Quantity: 20, Price: decimal.NewFromFloat(14.99), Category: "Tools"},
	}
}

func TestGenerateAllCategories(t *testing.T) {
	now := time.Date(2025, time.March, 7, 14, 30, 5, 0, time.Local)
	text := Generate(testItems(), Params{User: testUser, Category: repo.CategoryAll, Now: now})

	for _, want := range []string{
		"Stock Report for Ada Lovelace\n",
		"Generated on: 3/7/2025, 2:30:05 PM\n",
		"Category: All\n",
		"Total Inventory Value: $1399.00\n",
		"Detailed Stock List:\n",
		"  Item: Widget A\n  Category: Electronics\n  Quantity: 50\n  Price: $9.99\n  Total Value: $499.50\n",
		"  Item: Gadget B\n",
		"  Item: Doohickey C\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\nreport:\n%s", want, text)
		}
	}

	// Items must appear in store order.
	if strings.Index(text, "Widget A") > strings.Index(text, "Gadget B") ||
		strings.Index(text, "Gadget B") > strings.Index(text, "Doohickey C") {
		t.Errorf("items out of order:\n%s", text)
	}
}

func TestGenerateFiltersByCategory(t *testing.T) {
	text := Generate(testItems(), Params{User: testUser, Category: "Tools", Now: time.Now()})

	if !strings.Contains(text, "Category: Tools\n") {
		t.Errorf("missing category line:\n%s", text)
	}
	if !strings.Contains(text, "Total Inventory Value: $299.80\n") {
		t.Errorf("wrong grand total:\n%s", text)
	}
	if !strings.Contains(text, "Doohickey C") {
		t.Errorf("missing Tools item:\n%s", text)
	}
	if strings.Contains(text, "Widget A") || strings.Contains(text, "Gadget B") {
		t.Errorf("report leaked items outside the category:\n%s", text)
	}
}

func TestGenerateEmptyCategoryMeansAll(t *testing.T) {
	text := Generate(testItems(), Params{User: testUser, Now: time.Now()})
	if !strings.Contains(text, "Category: All\n") {
		t.Errorf("empty selection should render as All:\n%s", text)
	}
	if !strings.Contains(text, "Total Inventory Value: $1399.00\n") {
		t.Errorf("wrong grand total:\n%s", text)
	}
}

func TestGrandTotalRoundsExactSum(t *testing.T) {
	// Three thirds of a cent each: the exact sum rounds to 0.01, a sum of
	// per-item roundings would give 0.00.
	items := []models.StockItem{
		{Name: "A", Quantity: 1, Price: decimal.RequireFromString("0.00333"), Category: "X"},
		{Name: "B", Quantity: 1, Price: decimal.RequireFromString("0.00333"), Category: "X"},
		{Name: "C", Quantity: 1, Price: decimal.RequireFromString("0.00333"), Category: "X"},
	}
	text := Generate(items, Params{User: testUser, Now: time.Now()})
	if !strings.Contains(text, "Total Inventory Value: $0.01\n") {
		t.Errorf("grand total must round the exact sum:\n%s", text)
	}
}

func TestGenerateEmptyStore(t *testing.T) {
	text := Generate(nil, Params{User: testUser, Now: time.Now()})
	if !strings.Contains(text, "Total Inventory Value: $0.00\n") {
		t.Errorf("expected zero total:\n%s", text)
	}
	if !strings.Contains(text, "Detailed Stock List:\n") {
		t.Errorf("expected empty detail section:\n%s", text)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		user models.Session
		want string
	}{
		{"plain names", models.Session{FirstName: "Ada", LastName: "Lovelace"}, "stock_report_Ada_Lovelace.txt"},
		{"path separators replaced", models.Session{FirstName: "a/b", LastName: `c\d`}, "stock_report_a_b_c_d.txt"},
		{"spaces and quotes replaced", models.Session{FirstName: "Mary Jane", LastName: `O'Brien`}, "stock_report_Mary_Jane_O_Brien.txt"},
		{"dots and dashes kept", models.Session{FirstName: "J.-P", LastName: "Sartre"}, "stock_report_J.-P_Sartre.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.user); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

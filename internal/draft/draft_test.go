package draft

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stockops/stock-manager/internal/models"
)

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name  string
		prior string
		input string
		want  string
	}{
		{"valid integer replaces prior", "3", "5", "5"},
		{"zero is a valid value", "3", "0", "0"},
		{"empty input clears the field", "3", "", ""},
		{"unparseable input keeps prior", "3", "abc", "3"},
		{"decimal input keeps prior", "3", "2.5", "3"},
		{"negative input keeps prior", "3", "-4", "3"},
		{"unparseable input on empty field stays empty", "", "x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Draft{Quantity: tt.prior}
			if err := d.Set(FieldQuantity, tt.input); err != nil {
				t.Fatalf("set: %v", err)
			}
			if d.Quantity != tt.want {
				t.Errorf("expected quantity %q, got %q", tt.want, d.Quantity)
			}
		})
	}
}

func TestSetPrice(t *testing.T) {
	tests := []struct {
		name  string
		prior string
		input string
		want  string
	}{
		{"valid decimal replaces prior", "1", "2.5", "2.5"},
		{"integer input is a valid decimal", "1", "7", "7"},
		{"zero is a valid value", "1", "0", "0"},
		{"empty input clears the field", "1", "", ""},
		{"unparseable input keeps prior", "1", "9.99.9", "1"},
		{"negative input keeps prior", "1", "-2", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Draft{Price: tt.prior}
			if err := d.Set(FieldPrice, tt.input); err != nil {
				t.Fatalf("set: %v", err)
			}
			if d.Price != tt.want {
				t.Errorf("expected price %q, got %q", tt.want, d.Price)
			}
		})
	}
}

func TestSetTextFieldsAcceptedAsTyped(t *testing.T) {
	d := Draft{}
	d.Set(FieldName, "  Widget A ")
	d.Set(FieldCategory, "Electronics")
	if d.Name != "  Widget A " {
		t.Errorf("name altered: %q", d.Name)
	}
	if d.Category != "Electronics" {
		t.Errorf("category altered: %q", d.Category)
	}
}

func TestSetUnknownField(t *testing.T) {
	d := Draft{}
	if err := d.Set("threshold", "1"); err != ErrUnknownField {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestCompleteRequiresAllFields(t *testing.T) {
	d := Draft{Name: "X", Quantity: "5", Price: "2.5", Category: "Y"}
	if !d.Complete() {
		t.Error("expected complete draft")
	}

	for _, field := range []string{FieldName, FieldQuantity, FieldPrice, FieldCategory} {
		d := Draft{Name: "X", Quantity: "5", Price: "2.5", Category: "Y"}
		d.Set(field, "")
		if d.Complete() {
			t.Errorf("draft with empty %s reported complete", field)
		}
	}
}

func TestItemFromCompleteDraft(t *testing.T) {
	d := Draft{}
	d.Set(FieldName, "X")
	d.Set(FieldQuantity, "5")
	d.Set(FieldPrice, "2.5")
	d.Set(FieldCategory, "Y")

	item, err := d.Item()
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	if item.ID != 0 {
		t.Errorf("expected no ID, got %d", item.ID)
	}
	if item.Name != "X" || item.Category != "Y" {
		t.Errorf("unexpected text fields: %q / %q", item.Name, item.Category)
	}
	if item.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", item.Quantity)
	}
	if !item.Price.Equal(decimal.NewFromFloat(2.5)) {
		t.Errorf("expected price 2.5, got %s", item.Price)
	}
}

func TestItemFromIncompleteDraft(t *testing.T) {
	d := Draft{Name: "X"}
	if _, err := d.Item(); err != ErrIncomplete {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
}

func TestFromItemAndReset(t *testing.T) {
	d := Draft{}
	d.FromItem(models.StockItem{ID: 7, Name: "Widget A", Quantity: 50, Price: decimal.NewFromFloat(9.99), Category: "Electronics"})

	if d.Name != "Widget A" || d.Quantity != "50" || d.Price != "9.99" || d.Category != "Electronics" {
		t.Errorf("unexpected draft after FromItem: %+v", d)
	}

	d.Reset()
	if d != (Draft{}) {
		t.Errorf("expected empty draft after reset, got %+v", d)
	}
}

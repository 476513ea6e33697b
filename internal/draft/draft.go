// Package draft holds the in-progress field values of an add or edit
// operation before they are committed to the item store.
package draft

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/stockops/stock-manager/internal/models"
)

// Field names accepted by Set.
const (
	FieldName     = "name"
	FieldQuantity = "quantity"
	FieldPrice    = "price"
	FieldCategory = "category"
)

var (
	// ErrUnknownField is returned by Set for a field name outside the four
	// editable fields.
	ErrUnknownField = errors.New("unknown draft field")
	// ErrIncomplete is returned by Item when a field is still empty.
	ErrIncomplete = errors.New("draft is incomplete")
)

// Draft is a working copy of the four editable item fields. Every field is
// kept as entered text so a value can transiently be empty while the user
// types; numeric fields are normalized to their parsed form on each edit.
type Draft struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

// Set applies one field edit. Name and category are accepted as typed.
// Quantity must parse as a non-negative integer and price as a non-negative
// decimal; input that does not parse leaves the prior value in place, while
// empty input clears the field. Zero is a valid value for both.
func (d *Draft) Set(field, value string) error {
	switch field {
	case FieldName:
		d.Name = value
	case FieldCategory:
		d.Category = value
	case FieldQuantity:
		if value == "" {
			d.Quantity = ""
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil
		}
		d.Quantity = strconv.Itoa(n)
	case FieldPrice:
		if value == "" {
			d.Price = ""
			return nil
		}
		p, err := decimal.NewFromString(value)
		if err != nil || p.IsNegative() {
			return nil
		}
		d.Price = p.String()
	default:
		return ErrUnknownField
	}
	return nil
}

// Complete reports whether every field holds a committable value.
func (d *Draft) Complete() bool {
	return d.Name != "" && d.Quantity != "" && d.Price != "" && d.Category != ""
}

// Item materializes a stock item from a complete draft. The returned item
// carries no ID; the store assigns one on create.
func (d *Draft) Item() (models.StockItem, error) {
	if !d.Complete() {
		return models.StockItem{}, ErrIncomplete
	}
	quantity, err := strconv.Atoi(d.Quantity)
	if err != nil {
		return models.StockItem{}, err
	}
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return models.StockItem{}, err
	}
	return models.StockItem{
		Name:     d.Name,
		Quantity: quantity,
		Price:    price,
		Category: d.Category,
	}, nil
}

// FromItem populates the draft with a copy of an existing item's fields,
// the starting state of an edit.
func (d *Draft) FromItem(item models.StockItem) {
	d.Name = item.Name
	d.Quantity = strconv.Itoa(item.Quantity)
	d.Price = item.Price.String()
	d.Category = item.Category
}

// Reset clears all fields.
func (d *Draft) Reset() {
	*d = Draft{}
}

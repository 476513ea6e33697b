package repo

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/stockops/stock-manager/internal/models"
)

// CategoryAll is the sentinel category meaning "no category restriction".
// It is never stored on an item.
const CategoryAll = "All"

// ItemRepository defines the interface for stock item data operations.
type ItemRepository interface {
	Create(item models.StockItem) (models.StockItem, error)
	GetAll() ([]models.StockItem, error)
	GetByID(id int) (models.StockItem, error)
	GetByName(name string) (models.StockItem, error)
	Update(item models.StockItem) (models.StockItem, error)
	Delete(id int) error
	Filter(f ItemFilter) ([]models.StockItem, int, error)
	Categories() ([]string, error)
	TotalValue() (decimal.Decimal, error)
}

// ErrItemNotFound is returned when an item is not found in the repository.
var ErrItemNotFound = errors.New("item not found")

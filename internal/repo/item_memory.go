package repo

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stockops/stock-manager/internal/models"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository.
// Items are held in insertion order; IDs come from a monotonically
// increasing counter so a delete followed by a create can never reuse a
// surviving item's ID.
type InMemoryItemRepository struct {
	items  []models.StockItem
	nextID int
}

// NewInMemoryItemRepository creates a new instance of InMemoryItemRepository.
func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{
		items:  []models.StockItem{},
		nextID: 1,
	}
}

func matchesFilter(item models.StockItem, f ItemFilter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Category), q) {
			return false
		}
	}
	if f.Category != "" && f.Category != CategoryAll && item.Category != f.Category {
		return false
	}
	return true
}

// Filter returns the items matching f in store order, plus the total number
// of matches before pagination.
func (r *InMemoryItemRepository) Filter(f ItemFilter) ([]models.StockItem, int, error) {
	filtered := []models.StockItem{}
	for _, item := range r.items {
		if matchesFilter(item, f) {
			filtered = append(filtered, item)
		}
	}

	start := 0
	if f.Offset != nil {
		start = clamp(*f.Offset, 0, len(filtered))
	}
	end := len(filtered)
	if f.Limit != nil && *f.Limit > 0 {
		end = clamp(start+*f.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

// Create adds a new item to the repository and assigns it a fresh ID.
func (r *InMemoryItemRepository) Create(item models.StockItem) (models.StockItem, error) {
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

// GetAll retrieves all items from the repository in insertion order.
func (r *InMemoryItemRepository) GetAll() ([]models.StockItem, error) {
	return r.items, nil
}

// GetByID retrieves an item by its ID.
func (r *InMemoryItemRepository) GetByID(id int) (models.StockItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.StockItem{}, ErrItemNotFound
}

// GetByName retrieves an item by its exact name.
func (r *InMemoryItemRepository) GetByName(name string) (models.StockItem, error) {
	for _, item := range r.items {
		if item.Name == name {
			return item, nil
		}
	}
	return models.StockItem{}, ErrItemNotFound
}

// Update replaces the fields of an existing item, preserving its ID and its
// position in the store.
func (r *InMemoryItemRepository) Update(item models.StockItem) (models.StockItem, error) {
	for i, existing := range r.items {
		if existing.ID == item.ID {
			r.items[i] = item
			return item, nil
		}
	}
	return models.StockItem{}, ErrItemNotFound
}

// Delete removes an item from the repository by its ID. The store is left
// untouched when the ID is absent.
func (r *InMemoryItemRepository) Delete(id int) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Categories returns the category index: CategoryAll followed by each
// distinct category value in first-seen store order.
func (r *InMemoryItemRepository) Categories() ([]string, error) {
	categories := []string{CategoryAll}
	seen := map[string]bool{}
	for _, item := range r.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories, nil
}

// TotalValue sums quantity times price over every item at full precision.
func (r *InMemoryItemRepository) TotalValue() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range r.items {
		total = total.Add(item.TotalValue())
	}
	return total, nil
}

func (r *InMemoryItemRepository) Clear() {
	r.items = []models.StockItem{}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

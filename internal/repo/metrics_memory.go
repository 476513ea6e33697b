package repo

type InMemoryMetricsRepository struct {
	itemRepo ItemRepository
}

func NewInMemoryMetricsRepository(itemRepo ItemRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{itemRepo: itemRepo}
}

// GetDashboardMetrics implements MetricsRepository.
func (r *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	m := Metrics{}

	items, err := r.itemRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalItems = len(items)

	categories, err := r.itemRepo.Categories()
	if err != nil {
		return m, err
	}
	// Categories includes the "All" sentinel.
	m.DistinctCategories = len(categories) - 1

	total, err := r.itemRepo.TotalValue()
	if err != nil {
		return m, err
	}
	m.TotalValue = total

	for _, item := range items {
		if item.TotalValue().GreaterThan(m.MostValuableItem.TotalValue) {
			m.MostValuableItem.Name = item.Name
			m.MostValuableItem.TotalValue = item.TotalValue()
		}
	}

	return m, nil
}

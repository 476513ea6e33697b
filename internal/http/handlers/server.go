package handlers

import (
	"github.com/stockops/stock-manager/internal/draft"
	"github.com/stockops/stock-manager/internal/repo"
)

// Handler state is injected with setters, the same way repositories reach
// the handlers in the rest of the service. The draft, the editing selection
// and the current report are session-scoped singletons: this is a
// single-session application.
var (
	itemRepo    repo.ItemRepository
	metricsRepo repo.MetricsRepository

	currentDraft  draft.Draft
	editingID     int // 0 means no item selected for editing
	currentReport string
)

func SetItemRepo(r repo.ItemRepository) {
	itemRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

// ResetSessionState discards the draft, the editing selection and the
// current report.
func ResetSessionState() {
	currentDraft.Reset()
	editingID = 0
	currentReport = ""
}

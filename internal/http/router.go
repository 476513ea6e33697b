package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stockops/stock-manager/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)

	r.Post("/session", handlers.LoginHandler)

	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware)

		r.Get("/items", handlers.GetItemsHandler)
		r.Get("/items/{id}", handlers.GetItemByIDHandler)
		r.Delete("/items/{id}", handlers.DeleteItemHandler)
		r.Post("/items/import", handlers.ImportItemsHandler)

		r.Get("/categories", handlers.GetCategoriesHandler)

		r.Get("/draft", handlers.GetDraftHandler)
		r.Put("/draft/{field}", handlers.SetDraftFieldHandler)
		r.Post("/draft/edit/{id}", handlers.EditItemHandler)
		r.Post("/draft/commit", handlers.CommitDraftHandler)
		r.Delete("/draft", handlers.CancelDraftHandler)

		r.Post("/reports", handlers.GenerateReportHandler)
		r.Get("/reports/current", handlers.GetReportHandler)
		r.Get("/reports/current/download", handlers.DownloadReportHandler)

		r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)
	})

	return r
}

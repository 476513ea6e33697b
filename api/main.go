package main

import (
	"log"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stockops/stock-manager/internal/auth"
	"github.com/stockops/stock-manager/internal/config"
	api "github.com/stockops/stock-manager/internal/http"
	"github.com/stockops/stock-manager/internal/http/handlers"
	rl "github.com/stockops/stock-manager/internal/http/rate_limiter"
	"github.com/stockops/stock-manager/internal/models"
	"github.com/stockops/stock-manager/internal/repo"
)

// @title Stock Manager API
// @version 1.0
// @description Single-session stock tracking: items, search, category
// @description valuation reports. All state lives in process memory.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	auth.SetSecret(cfg.JWTSecret)
	rl.SetLimits(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	itemRepo := repo.NewInMemoryItemRepository()
	if cfg.SeedData {
		seed(itemRepo)
	}

	handlers.SetItemRepo(itemRepo)
	handlers.SetMetricsRepo(repo.NewInMemoryMetricsRepository(itemRepo))

	r := api.NewRouter()
	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}

func seed(r repo.ItemRepository) {
	items := []models.StockItem{
		{Name: "Widget A", Quantity: 50, Price: decimal.NewFromFloat(9.99), Category: "Electronics"},
		{Name: "Gadget B", Quantity: 30, Price: decimal.NewFromFloat(19.99), Category: "Electronics"},
		{Name: "Doohickey C", Quantity: 20, Price: decimal.NewFromFloat(14.99), Category: "Tools"},
	}
	for _, item := range items {
		if _, err := r.Create(item); err != nil {
			log.Fatalf("could not seed stock: %v", err)
		}
	}
}

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"gp-ticketing/internal/app"
	"gp-ticketing/internal/config"
)

func main() {
	_ = godotenv.Load() // Loads .env file if present

	ctx := context.Background()
	cfg := config.Load()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer a.Close()

	a.Logger.Info("MAIN", "catalog:")
	for _, t := range a.ListCatalog() {
		a.Logger.Info("MAIN", fmt.Sprintf("  %s -> final price AED %g", t, a.FinalPrice(t)))
	}

	report := a.SalesReport()
	if len(report) == 0 {
		a.Logger.Info("MAIN", "no sales recorded yet")
		return
	}
	a.Logger.Info("MAIN", "sales report:")
	for day, count := range report {
		a.Logger.Info("MAIN", fmt.Sprintf("  %s: %d tickets", day, count))
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/app/catalog/repo"
	"github.com/murkotick/catalog-admin/internal/pkg/apiclient"
	"github.com/murkotick/catalog-admin/internal/pkg/config"
	"github.com/murkotick/catalog-admin/internal/pkg/obs"
)

// A tiny seeding helper that loads a handful of demo products into the
// products backend (typically the local stub for dev).
//
// Usage:
//
//	set PRODUCTS_BASE_URL=http://localhost:8081
//	set PRODUCTS_API_KEY=dev-key
//	go run ./cmd/seed
func main() {
	config.LoadEnv()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	logger := obs.NewLogger(os.Stdout, cfg.LogLevel)
	api := apiclient.New("products", cfg.ProductsBaseURL, cfg.ProductsAPIKey, cfg.RequestTimeout, logger)
	products := repo.NewProductRepo(api)

	seeds := []domain.ProductForm{
		{Name: "Espresso Grinder", Description: "Flat-burr grinder tuned for espresso grind sizes.", Price: decimal.RequireFromString("219.00"), SKU: "GRD-001"},
		{Name: "Pour-over Kettle", Description: "Gooseneck kettle with temperature hold between 80 and 100 C.", Price: decimal.RequireFromString("64.50"), SKU: "KTL-014"},
		{Name: "Ceramic Dripper", Description: "Cone dripper for single-cup pour-over brewing.", Price: decimal.RequireFromString("24.00"), SKU: "DRP-203"},
		{Name: "Paper Filters 100pk", Description: "Bleached cone filters sized for the ceramic dripper.", Price: decimal.RequireFromString("7.90"), SKU: "FLT-100"},
		{Name: "Milk Pitcher 600ml", Description: "Stainless pitcher with a narrow spout for latte art.", Price: decimal.RequireFromString("18.75"), SKU: "PCH-600"},
	}

	created := 0
	for _, form := range seeds {
		if errs := form.Validate(); len(errs) > 0 {
			log.Fatalf("seed %q invalid: %v", form.SKU, errs)
		}
		p, err := products.Create(ctx, form)
		if err != nil {
			log.Fatalf("create %q: %v", form.SKU, err)
		}
		created++
		fmt.Printf("created product %d (%s)\n", p.ID, p.SKU)
	}

	fmt.Printf("Seeded %d products into %s\n", created, cfg.ProductsBaseURL)
}

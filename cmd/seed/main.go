package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stockfolio/internal/config"
	"stockfolio/internal/db"
	"stockfolio/internal/model"
	"stockfolio/internal/repository"
)

// SeedStockData represents one entry of the seed file.
type SeedStockData struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	Purchase    float64 `json:"purchase"`
	LastDiv     float64 `json:"lastDiv"`
	Industry    string  `json:"industry"`
	MarketCap   int64   `json:"marketCap"`
}

func main() {
	file := flag.String("file", "stocks.json", "path to the JSON stock list")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Stock{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	entries, err := loadStocksFromFile(*file)
	if err != nil {
		log.Fatalf("Failed to load stock list: %v", err)
	}
	log.Printf("Loaded %d stocks from %s", len(entries), *file)

	stocks := make([]model.Stock, 0, len(entries))
	skipped := 0
	for _, item := range entries {
		if item.Symbol == "" {
			log.Printf("Skipping entry with empty symbol: %q", item.CompanyName)
			skipped++
			continue
		}
		stocks = append(stocks, model.Stock{
			Symbol:      item.Symbol,
			CompanyName: item.CompanyName,
			Purchase:    decimal.NewFromFloat(item.Purchase),
			LastDiv:     decimal.NewFromFloat(item.LastDiv),
			Industry:    item.Industry,
			MarketCap:   item.MarketCap,
		})
	}
	if skipped > 0 {
		log.Printf("Skipped %d invalid entries", skipped)
	}

	stockRepo := repository.NewStockRepository(gormDB)
	ctx := context.Background()

	log.Println("Seeding stocks into database...")
	created, updated, err := seedStocks(ctx, stockRepo, stocks)
	if err != nil {
		log.Fatalf("Failed to seed stocks: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New stocks created: %d", created)
	log.Printf("  - Existing stocks updated: %d", updated)
	log.Printf("  - Total stocks processed: %d", created+updated)
}

// loadStocksFromFile reads and parses the JSON stock list.
func loadStocksFromFile(path string) ([]SeedStockData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []SeedStockData
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return entries, nil
}

// seedStocks upserts stocks by symbol, creating new rows or updating existing ones.
func seedStocks(ctx context.Context, repo repository.StockRepository, stocks []model.Stock) (created int, updated int, err error) {
	for _, stock := range stocks {
		existing, err := repo.FindBySymbol(ctx, stock.Symbol)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, updated, fmt.Errorf("error checking stock %s: %w", stock.Symbol, err)
		}

		if existing != nil {
			existing.CompanyName = stock.CompanyName
			existing.Purchase = stock.Purchase
			existing.LastDiv = stock.LastDiv
			existing.Industry = stock.Industry
			existing.MarketCap = stock.MarketCap
			if err := repo.Update(ctx, existing); err != nil {
				return created, updated, fmt.Errorf("error updating stock %s: %w", stock.Symbol, err)
			}
			updated++
		} else {
			stock := stock
			if err := repo.Create(ctx, &stock); err != nil {
				return created, updated, fmt.Errorf("error creating stock %s: %w", stock.Symbol, err)
			}
			created++
		}
	}

	return created, updated, nil
}

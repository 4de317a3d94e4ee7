package main

import (
	"context"
	"log"
	"sync"

	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"

	"matchmaker/internal/config"
	"matchmaker/internal/db"
	"matchmaker/internal/export"
	"matchmaker/internal/pkg/declarations"
	"matchmaker/internal/pkg/match"
)

// One-shot batch run: load every declaration section with its asset
// totals, sweep each reporting year for undeclared-spouse candidates and
// write the findings to an xlsx workbook, one sheet per year.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbConn, err := db.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	store := declarations.NewStore(dbConn)

	records, err := store.Records(ctx, 0)
	if err != nil {
		log.Fatalf("Failed to load declaration records: %v", err)
	}
	log.Printf("Loaded %d records with asset signal", len(records))

	byYear := match.SplitByYear(records)

	// Years share nothing, so they sweep in parallel. Each year's resolver
	// stays sequential, the greedy removal depends on visiting order.
	var mu sync.Mutex
	results := make(map[int][]match.Result)

	var g errgroup.Group
	for year, group := range byYear {
		year, group := year, group
		g.Go(func() error {
			found := match.Resolve(group)
			log.Printf("Year %d: %d records, %d matches", year, len(group), len(found))
			if len(found) == 0 {
				return nil
			}
			mu.Lock()
			results[year] = found
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Matching failed: %v", err)
	}

	if len(results) == 0 {
		log.Println("No matches found, skipping export")
		return
	}

	if err := export.WriteWorkbook(results, cfg.OutputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}
	log.Printf("Wrote %s", cfg.OutputPath)
}

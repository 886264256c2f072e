package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/mufgmixi/cgss-checker/internal/config"
	"github.com/mufgmixi/cgss-checker/internal/scrape"
	"github.com/mufgmixi/cgss-checker/internal/service"
	"github.com/mufgmixi/cgss-checker/internal/storage"
)

// openStorage opens the catalog database and runs pending migrations.
// The caller owns the returned storage and must Close it.
func openStorage(ctx context.Context) (service.Storage, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// newScrapeClient builds the site client from configuration.
func newScrapeClient() *scrape.Client {
	return scrape.NewClient(scrape.Options{
		BaseURL: viper.GetString("scrape.base_url"),
		Delay:   time.Duration(viper.GetInt("scrape.delay_ms")) * time.Millisecond,
	})
}

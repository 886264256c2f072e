// Package service defines the interfaces between the pipeline stages.
package service

import (
	"context"
	"io"

	"github.com/mufgmixi/cgss-checker/internal/model"
)

// CardFilter defines filtering options for card queries.
type CardFilter struct {
	Rarity      *model.Rarity
	Category    *model.CategoryLabel
	NeedsEnrich bool
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Card operations
	SaveCards(ctx context.Context, cards []model.Card) (int, error)
	GetCards(ctx context.Context, filter CardFilter) ([]model.Card, error)
	GetCardByID(ctx context.Context, id string) (*model.Card, error)
	UpdateAvailability(ctx context.Context, id, availability string) error
	UpdateAttribute(ctx context.Context, id, attribute string) error

	// Classification operations
	UpdateCategory(ctx context.Context, id string, category model.CategoryLabel, status model.ClassificationStatus) (bool, error)
	GetClassification(ctx context.Context, cardID string) (*model.Classification, error)
	CategoryCounts(ctx context.Context) (map[model.CategoryLabel]int, error)

	// CSV interchange with the legacy per-rarity files
	ImportCSV(ctx context.Context, r io.Reader) (int, error)
	ExportCSV(ctx context.Context, w io.Writer, filter CardFilter) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// ListingFetcher supplies catalog entries from the upstream site.
type ListingFetcher interface {
	FetchRarity(ctx context.Context, rarity model.Rarity) ([]model.Card, error)
}

// DetailFetcher supplies per-card availability text.
type DetailFetcher interface {
	FetchAvailability(ctx context.Context, detailURL string) (string, error)
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mufgmixi/cgss-checker/internal/model"
	"github.com/mufgmixi/cgss-checker/internal/service"
)

func scrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape the card listings",
		Long: `Scrape the per-rarity card listing pages and store any cards not
yet in the catalog. Existing rows are never overwritten, so availability
text and classifications survive re-scrapes.

Examples:
  curator scrape               # All four rarities
  curator scrape --rarity SSR  # One rarity only`,
		RunE: runScrape,
	}

	cmd.Flags().StringSliceP("rarity", "r", nil, "rarities to scrape (SSR, SR, R, N; default all)")
	return cmd
}

func runScrape(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	rarities, err := raritiesFromFlag(cmd)
	if err != nil {
		return err
	}

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
	}()

	var client service.ListingFetcher = newScrapeClient()
	totalNew := 0

	for _, rarity := range rarities {
		cards, fetchErr := client.FetchRarity(ctx, rarity)
		if fetchErr != nil {
			return fmt.Errorf("scrape of %s listings failed: %w", rarity.Code(), fetchErr)
		}

		inserted, saveErr := db.SaveCards(ctx, cards)
		if saveErr != nil {
			return saveErr
		}
		slog.Info("Saved listing", "rarity", rarity.Code(), "scraped", len(cards), "new", inserted)
		totalNew += inserted
	}

	slog.Info("Scrape complete", "new_cards", totalNew)
	return nil
}

func raritiesFromFlag(cmd *cobra.Command) ([]model.Rarity, error) {
	codes, err := cmd.Flags().GetStringSlice("rarity")
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		// Highest rarity first, like the original curation runs.
		return []model.Rarity{model.RaritySSRare, model.RaritySRare, model.RarityRare, model.RarityNormal}, nil
	}

	var rarities []model.Rarity
	for _, code := range codes {
		rarity, parseErr := model.ParseRarity(code)
		if parseErr != nil {
			return nil, parseErr
		}
		rarities = append(rarities, rarity)
	}
	return rarities, nil
}

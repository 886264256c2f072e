package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mufgmixi/cgss-checker/internal/common"
	"github.com/mufgmixi/cgss-checker/internal/service"
)

func enrichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enrich",
		Short: "Fetch availability text for cards that lack it",
		Long: `Visit the detail page of every card without availability text and
store the 主な入手方法 cell. Cards already enriched are skipped, so the
command can be interrupted and resumed freely.`,
		RunE: runEnrich,
	}
}

func runEnrich(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
	}()

	cards, err := db.GetCards(ctx, service.CardFilter{NeedsEnrich: true})
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		slog.Info("All cards already have availability text")
		return nil
	}

	slog.Info("Enriching cards", "count", len(cards))
	bar := progressbar.Default(int64(len(cards)), "enriching")

	var client service.DetailFetcher = newScrapeClient()
	fetched, missing, failed := 0, 0, 0

	for _, card := range cards {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		_ = bar.Add(1)

		if card.DetailURL == "" {
			missing++
			continue
		}

		text, fetchErr := client.FetchAvailability(ctx, card.DetailURL)
		switch {
		case fetchErr == nil:
			if saveErr := db.UpdateAvailability(ctx, card.ID, text); saveErr != nil {
				return saveErr
			}
			fetched++
		case errors.Is(fetchErr, common.ErrNoPageContent):
			// The page is fine, the cell just isn't there. Record the
			// sentinel so stats can surface these cards.
			if saveErr := db.UpdateAvailability(ctx, card.ID, "情報なし"); saveErr != nil {
				return saveErr
			}
			missing++
		case errors.Is(fetchErr, context.Canceled):
			return fetchErr
		default:
			slog.Warn("Failed to fetch detail page", "card", card.ID, "error", fetchErr)
			if saveErr := db.UpdateAvailability(ctx, card.ID, "取得失敗"); saveErr != nil {
				return saveErr
			}
			failed++
		}
	}

	slog.Info("Enrichment complete", "fetched", fetched, "no_info", missing, "failed", failed)
	return nil
}

package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mufgmixi/cgss-checker/internal/common"
	"github.com/mufgmixi/cgss-checker/internal/scrape"
)

func attributesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attributes",
		Short: "Fetch idol attributes for catalog cards",
		Long: `Walk the attribute-filtered card listings and record which of Cute,
Cool and Passion each catalog card belongs to. Cards on the site but
not in the catalog are skipped.`,
		RunE: runAttributes,
	}
}

func runAttributes(cmd *cobra.Command, _ []string) error {
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

	client := newScrapeClient()

	updated := 0
	for _, attribute := range scrape.AllAttributes() {
		ids, fetchErr := client.FetchAttributeIDs(ctx, attribute)
		if fetchErr != nil {
			return fetchErr
		}
		slog.Info("Fetched attribute listing", "attribute", attribute, "cards", len(ids))

		for id := range ids {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			updateErr := db.UpdateAttribute(ctx, id, attribute)
			if errors.Is(updateErr, common.ErrNotFound) {
				continue
			}
			if updateErr != nil {
				return updateErr
			}
			updated++
		}
	}

	slog.Info("Attribute update complete", "updated", updated)
	return nil
}

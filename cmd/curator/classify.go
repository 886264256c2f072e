package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mufgmixi/cgss-checker/internal/classify"
	"github.com/mufgmixi/cgss-checker/internal/model"
	"github.com/mufgmixi/cgss-checker/internal/service"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify card availability into categories",
		Long: `Run the availability rules over every card and store the resulting
category. Only cards whose stored label differs are written, so repeat
runs are cheap and safe. Labels assigned manually with 'curator review'
are never overwritten.

Examples:
  curator classify            # Classify the whole catalog
  curator classify --dry-run  # Preview the changes`,
		RunE: runClassify,
	}

	cmd.Flags().Bool("dry-run", false, "preview without saving changes")
	_ = viper.BindPFlag("classification.dry_run", cmd.Flags().Lookup("dry-run"))
	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	dryRun := viper.GetBool("classification.dry_run")

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
	}()

	cards, err := db.GetCards(ctx, service.CardFilter{})
	if err != nil {
		return err
	}

	changed, unknown := 0, 0
	for _, card := range cards {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		label := classify.Classify(card.Availability, card.Rarity.IsLowTier())
		if label == model.CategoryUnknown {
			unknown++
		}

		if dryRun {
			if label != card.Category {
				slog.Info("Would update category",
					"card", card.ID, "from", card.Category, "to", label)
				changed++
			}
			continue
		}

		wrote, updateErr := db.UpdateCategory(ctx, card.ID, label, model.StatusClassifiedByRule)
		if updateErr != nil {
			return updateErr
		}
		if wrote {
			changed++
		}
	}

	slog.Info("Classification complete",
		"cards", len(cards), "changed", changed, "unknown", unknown, "dry_run", dryRun)
	return nil
}

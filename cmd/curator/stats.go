package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mufgmixi/cgss-checker/internal/analysis"
	"github.com/mufgmixi/cgss-checker/internal/model"
	"github.com/mufgmixi/cgss-checker/internal/service"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report category distribution and audit listings",
		Long: `Print the number of cards per category, the cards whose
availability text no rule matched, and the distinct availability texts
behind the collaboration categories.`,
		RunE: runStats,
	}

	cmd.Flags().Bool("unknown", true, "list the 不明 cards")
	_ = viper.BindPFlag("stats.unknown", cmd.Flags().Lookup("unknown"))
	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
	}()

	counts, err := db.CategoryCounts(ctx)
	if err != nil {
		return err
	}

	cmd.Println("カテゴリ別件数:")
	analysis.WriteCategoryReport(out, counts)

	if viper.GetBool("stats.unknown") {
		unknown := model.CategoryUnknown
		cards, listErr := db.GetCards(ctx, service.CardFilter{Category: &unknown})
		if listErr != nil {
			return listErr
		}
		if len(cards) > 0 {
			cmd.Printf("\n不明カード (%d 件):\n", len(cards))
			analysis.WriteUnknownReport(out, cards)
		}
	}

	// The collaboration labels carry a short, closed vocabulary;
	// listing their texts verifies new scrapes didn't bring variants.
	for _, label := range []model.CategoryLabel{model.CategoryCollabEventReward, model.CategoryCollabLimitedGasha} {
		label := label
		cards, listErr := db.GetCards(ctx, service.CardFilter{Category: &label})
		if listErr != nil {
			return listErr
		}
		texts := analysis.UniqueAvailabilities(cards)
		if len(texts) == 0 {
			continue
		}
		cmd.Printf("\n「%s」の入手方法一覧:\n", label)
		for _, text := range texts {
			cmd.Printf("- %s\n", text)
		}
	}

	return nil
}

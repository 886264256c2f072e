package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mufgmixi/cgss-checker/internal/model"
	"github.com/mufgmixi/cgss-checker/internal/service"
	"github.com/mufgmixi/cgss-checker/internal/tui"
)

func reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Interactively label the 不明 cards",
		Long: `Walk through the cards whose availability text no rule matched and
assign categories by hand. Manual labels are preserved across later
classify runs.`,
		RunE: runReview,
	}
}

func runReview(cmd *cobra.Command, _ []string) error {
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

	unknown := model.CategoryUnknown
	cards, err := db.GetCards(ctx, service.CardFilter{Category: &unknown})
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		cmd.Println("不明カードはありません。")
		return nil
	}

	program := tea.NewProgram(tui.NewReview(ctx, db, cards))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("review session failed: %w", err)
	}

	if m, ok := final.(tui.ReviewModel); ok {
		slog.Info("Review finished", "labeled", m.Assigned(), "total", len(cards))
	}
	return nil
}

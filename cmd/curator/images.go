package main

import (
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mufgmixi/cgss-checker/internal/config"
	"github.com/mufgmixi/cgss-checker/internal/model"
	"github.com/mufgmixi/cgss-checker/internal/scrape"
	"github.com/mufgmixi/cgss-checker/internal/service"
)

func imagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Download card images",
		Long: `Download the listing thumbnail of every catalog card into a per-rarity
directory tree. Files already on disk are skipped, so the command can be
interrupted and resumed freely.`,
		RunE: runImages,
	}

	cmd.Flags().StringP("rarity", "r", "", "restrict to one rarity (SSR, SR, R, N)")
	cmd.Flags().StringP("dir", "d", "", "destination directory (default from config)")
	return cmd
}

func runImages(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = viper.GetString("images.dir")
	}
	dir = config.ExpandPath(dir)

	filter := service.CardFilter{}
	if code, _ := cmd.Flags().GetString("rarity"); code != "" {
		rarity, parseErr := model.ParseRarity(code)
		if parseErr != nil {
			return parseErr
		}
		filter.Rarity = &rarity
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

	cards, err := db.GetCards(ctx, filter)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		slog.Info("No cards in catalog")
		return nil
	}

	slog.Info("Downloading images", "count", len(cards), "dir", dir)
	bar := progressbar.Default(int64(len(cards)), "downloading")

	client := newScrapeClient()
	downloaded, skipped, failed := 0, 0, 0

	for _, card := range cards {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		_ = bar.Add(1)

		if card.ImageURL == "" {
			skipped++
			continue
		}

		wrote, dlErr := client.DownloadImage(ctx, card.ImageURL, scrape.ImagePath(dir, card))
		if dlErr != nil {
			slog.Warn("Failed to download image", "card", card.ID, "error", dlErr)
			failed++
			continue
		}
		if wrote {
			downloaded++
		} else {
			skipped++
		}
	}

	slog.Info("Image download complete", "downloaded", downloaded, "skipped", skipped, "failed", failed)
	return nil
}

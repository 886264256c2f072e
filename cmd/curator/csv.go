package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mufgmixi/cgss-checker/internal/model"
	"github.com/mufgmixi/cgss-checker/internal/service"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv> [file.csv...]",
		Short: "Import legacy card list CSVs",
		Long: `Import cards from the legacy per-rarity CSV files. Stored labels in
the filter_category column are preserved; rows already in the catalog
are left untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
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

	total := 0
	for _, path := range args {
		f, openErr := os.Open(path)
		if openErr != nil {
			return fmt.Errorf("failed to open %s: %w", path, openErr)
		}

		n, importErr := db.ImportCSV(ctx, f)
		_ = f.Close()
		if importErr != nil {
			return fmt.Errorf("import of %s failed: %w", path, importErr)
		}

		slog.Info("Imported CSV", "file", path, "new_cards", n)
		total += n
	}

	slog.Info("Import complete", "new_cards", total)
	return nil
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Export the catalog as CSV",
		Long: `Write the catalog in the legacy CSV layout, UTF-8 with BOM, so the
file opens cleanly in spreadsheet tools.

Examples:
  curator export all_cards.csv
  curator export ssr_cards.csv --rarity SSR`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringP("rarity", "r", "", "restrict to one rarity (SSR, SR, R, N)")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	if err := db.ExportCSV(ctx, f, filter); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	slog.Info("Export complete", "file", args[0])
	return nil
}

package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mufgmixi/cgss-checker/internal/model"
	"github.com/mufgmixi/cgss-checker/internal/service"
)

// csvHeader is the column layout of the legacy per-rarity card CSVs.
var csvHeader = []string{"id", "name", "rarity", "image_url", "detail_url", "availability", "filter_category"}

// utf8BOM is prepended on export so spreadsheet tools detect UTF-8,
// matching the utf-8-sig files the catalog has always shipped.
const utf8BOM = "\ufeff"

// ImportCSV loads cards from a legacy catalog CSV. Unknown columns are
// ignored; missing availability/category columns default to empty and
// 不明. Returns the number of rows inserted (existing rows are kept).
func (s *SQLiteStorage) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"id", "name", "rarity"} {
		if _, ok := col[required]; !ok {
			return 0, fmt.Errorf("CSV is missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var cards []model.Card
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return 0, fmt.Errorf("failed to read CSV record: %w", readErr)
		}

		rarity, rarityErr := model.ParseRarity(field(record, "rarity"))
		if rarityErr != nil {
			return 0, fmt.Errorf("row %q: %w", field(record, "id"), rarityErr)
		}

		category := model.CategoryLabel(field(record, "filter_category"))
		if category == "" {
			category = model.CategoryUnknown
		}

		cards = append(cards, model.Card{
			ID:           field(record, "id"),
			Name:         field(record, "name"),
			Rarity:       rarity,
			ImageURL:     field(record, "image_url"),
			DetailURL:    field(record, "detail_url"),
			Availability: field(record, "availability"),
			Category:     category,
		})
	}

	return s.SaveCards(ctx, cards)
}

// ExportCSV writes cards matching the filter in the legacy CSV layout.
func (s *SQLiteStorage) ExportCSV(ctx context.Context, w io.Writer, filter service.CardFilter) error {
	cards, err := s.GetCards(ctx, filter)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, card := range cards {
		record := []string{
			card.ID,
			card.Name,
			string(card.Rarity),
			card.ImageURL,
			card.DetailURL,
			card.Availability,
			string(card.Category),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card %s: %w", card.ID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

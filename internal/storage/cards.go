package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mufgmixi/cgss-checker/internal/common"
	"github.com/mufgmixi/cgss-checker/internal/model"
	"github.com/mufgmixi/cgss-checker/internal/service"
)

// SaveCards inserts newly scraped cards, leaving existing rows
// untouched so that enrichment and classification survive re-scrapes.
// It returns the number of rows actually inserted.
func (s *SQLiteStorage) SaveCards(ctx context.Context, cards []model.Card) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	for i := range cards {
		if err := validateCard(&cards[i]); err != nil {
			return 0, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO cards (
			id, name, rarity, attribute, image_url, detail_url, availability, category
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for _, card := range cards {
		category := card.Category
		if category == "" {
			category = model.CategoryUnknown
		}
		res, execErr := stmt.ExecContext(ctx,
			card.ID, card.Name, string(card.Rarity), card.Attribute,
			card.ImageURL, card.DetailURL, card.Availability, string(category))
		if execErr != nil {
			return 0, fmt.Errorf("failed to insert card %s: %w", card.ID, execErr)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return inserted, nil
}

// GetCards returns cards matching the filter, ordered by rarity then id.
func (s *SQLiteStorage) GetCards(ctx context.Context, filter service.CardFilter) ([]model.Card, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, name, rarity, attribute, image_url, detail_url,
		availability, category, created_at, updated_at FROM cards`
	var conds []string
	var args []any

	if filter.Rarity != nil {
		conds = append(conds, "rarity = ?")
		args = append(args, string(*filter.Rarity))
	}
	if filter.Category != nil {
		conds = append(conds, "category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.NeedsEnrich {
		conds = append(conds, "availability IN ('', '情報なし', '取得失敗', '解析エラー')")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY rarity, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cards []model.Card
	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// GetCardByID returns one card or common.ErrNotFound.
func (s *SQLiteStorage) GetCardByID(ctx context.Context, id string) (*model.Card, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT id, name, rarity, attribute,
		image_url, detail_url, availability, category, created_at, updated_at
		FROM cards WHERE id = ?`, id)

	card, err := scanCard(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("card %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateAvailability stores the scraped availability text for a card.
func (s *SQLiteStorage) UpdateAvailability(ctx context.Context, id, availability string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE cards SET availability = ?, updated_at = ? WHERE id = ?`,
		availability, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update availability for %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("card %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// UpdateAttribute stores the card's attribute (キュート/クール/パッション).
func (s *SQLiteStorage) UpdateAttribute(ctx context.Context, id, attribute string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE cards SET attribute = ?, updated_at = ? WHERE id = ?`,
		attribute, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update attribute for %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("card %s: %w", id, common.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (model.Card, error) {
	var card model.Card
	var rarity, category string
	err := row.Scan(&card.ID, &card.Name, &rarity, &card.Attribute,
		&card.ImageURL, &card.DetailURL, &card.Availability, &category,
		&card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		return model.Card{}, err
	}
	card.Rarity = model.Rarity(rarity)
	card.Category = model.CategoryLabel(category)
	return card, nil
}

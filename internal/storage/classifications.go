package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mufgmixi/cgss-checker/internal/common"
	"github.com/mufgmixi/cgss-checker/internal/model"
)

// UpdateCategory writes a card's category, returning whether any row
// changed. The write is idempotent: a label identical to the stored
// one touches nothing. A rule-driven write never overwrites a manual
// USER_MODIFIED label; the reverse is allowed.
func (s *SQLiteStorage) UpdateCategory(ctx context.Context, id string, category model.CategoryLabel, status model.ClassificationStatus) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(id, "id"); err != nil {
		return false, err
	}
	if !category.IsValid() {
		return false, fmt.Errorf("invalid category label %q", category)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var current string
	err = tx.QueryRowContext(ctx, `SELECT category FROM cards WHERE id = ?`, id).Scan(&current)
	if err == sql.ErrNoRows {
		return false, fmt.Errorf("card %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("failed to read current category for %s: %w", id, err)
	}

	var currentStatus sql.NullString
	err = tx.QueryRowContext(ctx, `SELECT status FROM classifications WHERE card_id = ?`, id).Scan(&currentStatus)
	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to read classification status for %s: %w", id, err)
	}

	if status == model.StatusClassifiedByRule &&
		currentStatus.Valid && currentStatus.String == string(model.StatusUserModified) {
		return false, nil
	}
	if current == string(category) && currentStatus.Valid && currentStatus.String == string(status) {
		return false, nil
	}

	now := time.Now().UTC()
	if _, err = tx.ExecContext(ctx,
		`UPDATE cards SET category = ?, updated_at = ? WHERE id = ?`,
		string(category), now, id); err != nil {
		return false, fmt.Errorf("failed to update category for %s: %w", id, err)
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO classifications (card_id, category, status, classified_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(card_id) DO UPDATE SET
			category = excluded.category,
			status = excluded.status,
			classified_at = excluded.classified_at
	`, id, string(category), string(status), now); err != nil {
		return false, fmt.Errorf("failed to record classification for %s: %w", id, err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}
	return true, nil
}

// GetClassification returns the classification record for a card, or
// common.ErrNotFound when the card has never been classified.
func (s *SQLiteStorage) GetClassification(ctx context.Context, cardID string) (*model.Classification, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(cardID, "cardID"); err != nil {
		return nil, err
	}

	var c model.Classification
	var category, status string
	err := s.db.QueryRowContext(ctx, `SELECT card_id, category, status, notes, classified_at
		FROM classifications WHERE card_id = ?`, cardID).
		Scan(&c.CardID, &category, &status, &c.Notes, &c.ClassifiedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("classification for %s: %w", cardID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query classification for %s: %w", cardID, err)
	}
	c.Category = model.CategoryLabel(category)
	c.Status = model.ClassificationStatus(status)
	return &c, nil
}

// CategoryCounts returns the number of cards per category label.
func (s *SQLiteStorage) CategoryCounts(ctx context.Context) (map[model.CategoryLabel]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT category, COUNT(*) FROM cards GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[model.CategoryLabel]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts[model.CategoryLabel(category)] = n
	}
	return counts, rows.Err()
}

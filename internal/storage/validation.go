package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/mufgmixi/cgss-checker/internal/model"
)

var errNilContext = errors.New("context must not be nil")

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return errNilContext
	}
	return ctx.Err()
}

func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", name)
	}
	return nil
}

func validateCard(card *model.Card) error {
	if card == nil {
		return errors.New("card must not be nil")
	}
	if card.ID == "" {
		return errors.New("card ID must not be empty")
	}
	if card.Name == "" {
		return fmt.Errorf("card %s has no name", card.ID)
	}
	if _, err := model.ParseRarity(string(card.Rarity)); err != nil {
		return fmt.Errorf("card %s: %w", card.ID, err)
	}
	return nil
}

package scrape

import (
	"context"
	"fmt"
	"log/slog"
)

// Card attributes as the site labels them.
const (
	AttributeCute    = "キュート"
	AttributeCool    = "クール"
	AttributePassion = "パッション"
)

// AllAttributes lists the three attributes in site order.
func AllAttributes() []string {
	return []string{AttributeCute, AttributeCool, AttributePassion}
}

// FetchAttributeIDs walks the attribute-filtered listings and returns
// the set of card ids carrying the attribute. The listing markup is
// the same as the rarity listings, only the filter differs.
func (c *Client) FetchAttributeIDs(ctx context.Context, attribute string) (map[string]struct{}, error) {
	switch attribute {
	case AttributeCute, AttributeCool, AttributePassion:
	default:
		return nil, fmt.Errorf("unknown attribute %q", attribute)
	}

	pageURL := listingURL(c.baseURL, "a", attribute)
	ids := make(map[string]struct{})
	page := 1

	for pageURL != "" {
		slog.Info("Scraping attribute page", "attribute", attribute, "page", page)

		doc, err := c.fetchDocument(ctx, pageURL)
		if err != nil {
			return nil, err
		}

		// Rarity is a placeholder here; only the ids are used.
		cards, nextURL, err := parseListingPage(doc, pageURL, "")
		if err != nil {
			return nil, err
		}
		for _, card := range cards {
			ids[card.ID] = struct{}{}
		}

		pageURL = nextURL
		page++
	}

	slog.Info("Finished attribute scrape", "attribute", attribute, "cards", len(ids))
	return ids, nil
}

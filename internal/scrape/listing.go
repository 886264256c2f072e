package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mufgmixi/cgss-checker/internal/common"
	"github.com/mufgmixi/cgss-checker/internal/model"
)

// listingURL builds a percent-encoded card search URL. The site takes
// the filter label (rarity or attribute) plus fixed zero parameters.
func listingURL(baseURL, filterKey, filterValue string) string {
	q := url.Values{
		"q":       {""},
		filterKey: {filterValue},
		"c":       {"0"},
		"s":       {"0"},
		"p":       {"0"},
	}
	return baseURL + "/cgss/card?" + q.Encode()
}

// FetchRarity walks every listing page for one rarity and returns the
// cards found. Card id, name, image and detail URL come straight from
// the listing markup; availability is enriched later from detail pages.
func (c *Client) FetchRarity(ctx context.Context, rarity model.Rarity) ([]model.Card, error) {
	if _, err := model.ParseRarity(string(rarity)); err != nil {
		return nil, err
	}

	pageURL := listingURL(c.baseURL, "r", string(rarity))
	var all []model.Card
	page := 1

	for pageURL != "" {
		slog.Info("Scraping listing page", "rarity", rarity.Code(), "page", page, "url", pageURL)

		doc, err := c.fetchDocument(ctx, pageURL)
		if err != nil {
			return nil, err
		}

		cards, nextURL, err := parseListingPage(doc, pageURL, rarity)
		if err != nil {
			return nil, err
		}
		all = append(all, cards...)

		pageURL = nextURL
		page++
	}

	slog.Info("Finished listing scrape", "rarity", rarity.Code(), "cards", len(all))
	return all, nil
}

// parseListingPage extracts cards and the next-page URL from one
// listing document.
func parseListingPage(doc *goquery.Document, pageURL string, rarity model.Rarity) ([]model.Card, string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, "", fmt.Errorf("bad page URL %q: %w", pageURL, err)
	}

	list := doc.Find("ul.dblst.flexbox.flexwrap").First()
	if list.Length() == 0 {
		return nil, "", fmt.Errorf("%w on %s", common.ErrNoCardList, pageURL)
	}

	var cards []model.Card
	list.Find("li > a").Each(func(_ int, anchor *goquery.Selection) {
		href, ok := anchor.Attr("href")
		if !ok {
			return
		}
		detail, resolveErr := base.Parse(href)
		if resolveErr != nil {
			return
		}

		id := cardIDFromURL(detail)
		if id == "" {
			return
		}

		card := model.Card{
			ID:        id,
			Rarity:    rarity,
			DetailURL: detail.String(),
			Name:      strings.TrimSpace(anchor.Find("div").First().Text()),
		}

		img := anchor.Find("img.lazy").First()
		if src, found := img.Attr("data-original"); found {
			card.ImageURL = resolveRef(base, src)
		} else if src, found := img.Attr("src"); found {
			card.ImageURL = resolveRef(base, src)
		}

		cards = append(cards, card)
	})

	next := ""
	if href, ok := doc.Find(`div.pagination a.page-link[rel="next"]`).First().Attr("href"); ok {
		next = resolveRef(base, href)
	}
	return cards, next, nil
}

// cardIDFromURL pulls the numeric card id from a detail URL. The site
// uses both /cgss/card/<id> paths and #card-<id> fragments.
func cardIDFromURL(u *url.URL) string {
	if strings.HasPrefix(u.Fragment, "card-") {
		id := strings.TrimPrefix(u.Fragment, "card-")
		if isDigits(id) {
			return id
		}
	}
	parts := strings.Split(strings.TrimRight(u.Path, "/"), "/")
	if len(parts) > 0 {
		if id := parts[len(parts)-1]; isDigits(id) {
			return id
		}
	}
	return ""
}

func resolveRef(base *url.URL, ref string) string {
	resolved, err := base.Parse(ref)
	if err != nil {
		return ""
	}
	return resolved.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mufgmixi/cgss-checker/internal/common"
)

// availabilityHeader is the row label of the acquisition cell on a
// card detail page.
const availabilityHeader = "主な入手方法"

// FetchAvailability loads a card detail page and extracts the
// 主な入手方法 text. An intact page without the cell returns
// common.ErrNoPageContent; some very old cards genuinely lack it.
func (c *Client) FetchAvailability(ctx context.Context, detailURL string) (string, error) {
	doc, err := c.fetchDocument(ctx, detailURL)
	if err != nil {
		return "", err
	}

	text, ok := extractAvailability(doc)
	if !ok {
		return "", fmt.Errorf("%w on %s", common.ErrNoPageContent, detailURL)
	}
	return text, nil
}

// extractAvailability scans the detail tables for the header cell and
// returns the text of the data cell that follows it.
func extractAvailability(doc *goquery.Document) (string, bool) {
	text := ""
	found := false

	doc.Find("ul.tblbox.flexbox.flexwrap").EachWithBreak(func(_ int, tblbox *goquery.Selection) bool {
		tblbox.Find("li.h").EachWithBreak(func(_ int, header *goquery.Selection) bool {
			if !strings.Contains(strings.TrimSpace(header.Text()), availabilityHeader) {
				return true
			}
			data := header.Next()
			if data.Length() == 0 || !data.HasClass("d") {
				return true
			}
			text = strings.TrimSpace(data.Text())
			found = true
			return false
		})
		return !found
	})

	return text, found
}

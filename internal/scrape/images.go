package scrape

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mufgmixi/cgss-checker/internal/common"
	"github.com/mufgmixi/cgss-checker/internal/model"
)

var unsafeFilenameRE = regexp.MustCompile(`[\\/:*?"<>|]`)

// sanitizeFilename replaces characters that are unsafe in filenames
// and collapses whitespace, mirroring the naming of the existing image
// archives so re-runs find previously downloaded files.
func sanitizeFilename(name string) string {
	name = unsafeFilenameRE.ReplaceAllString(name, "_")
	return strings.TrimSpace(whitespaceFoldRE.ReplaceAllString(name, " "))
}

var whitespaceFoldRE = regexp.MustCompile(`\s+`)

// ImagePath returns the destination path for a card's image under dir,
// grouped by rarity code.
func ImagePath(dir string, card model.Card) string {
	ext := path.Ext(card.ImageURL)
	if ext == "" || len(ext) > 5 {
		ext = ".jpg"
	}
	name := sanitizeFilename(fmt.Sprintf("%s_%s", card.ID, card.Name)) + ext
	return filepath.Join(dir, card.Rarity.Code(), name)
}

// DownloadImage fetches one card image to destPath. Existing files are
// kept; the bool reports whether a download actually happened.
func (c *Client) DownloadImage(ctx context.Context, imageURL, destPath string) (bool, error) {
	if imageURL == "" || (!strings.HasPrefix(imageURL, "http://") && !strings.HasPrefix(imageURL, "https://")) {
		return false, fmt.Errorf("invalid image URL %q", imageURL)
	}

	if _, err := os.Stat(destPath); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0750); err != nil {
		return false, fmt.Errorf("failed to create image directory: %w", err)
	}

	if err := c.wait(ctx); err != nil {
		return false, err
	}

	err := common.WithRetry(ctx, func() error {
		res, err := c.http.R().SetContext(ctx).SetOutput(destPath).Get(imageURL)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", common.ErrFetchFailed, imageURL, err)
		}
		if res.StatusCode() != http.StatusOK {
			_ = os.Remove(destPath)
			return &common.RetryableError{
				Err:       fmt.Errorf("%w: %s: HTTP %d", common.ErrFetchFailed, imageURL, res.StatusCode()),
				Retryable: res.StatusCode() >= 500,
			}
		}
		return nil
	}, common.RetryOptions{MaxAttempts: 3})
	if err != nil {
		return false, err
	}
	return true, nil
}

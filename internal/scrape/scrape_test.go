package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mufgmixi/cgss-checker/internal/common"
	"github.com/mufgmixi/cgss-checker/internal/model"
)

const listingPage1 = `<html><body>
<ul class="dblst flexbox flexwrap">
  <li><a href="/cgss/card/10001">
    <img class="lazy" data-original="/images/10001_s.jpg">
    <div>[きらめきの勇者]夢見りあむ</div>
  </a></li>
  <li><a href="/cgss/card/show#card-10002">
    <img class="lazy" src="/images/10002_s.jpg">
    <div>[ハイテンションスマイル]本田未央</div>
  </a></li>
</ul>
<div class="pagination"><a class="page-link" rel="next" href="?q=&r=SS%E3%83%AC%E3%82%A2&page=2">次</a></div>
</body></html>`

const listingPage2 = `<html><body>
<ul class="dblst flexbox flexwrap">
  <li><a href="/cgss/card/10003">
    <img class="lazy" data-original="/images/10003_s.jpg">
    <div>[夏色物語]渋谷凛</div>
  </a></li>
</ul>
<div class="pagination"></div>
</body></html>`

const detailPage = `<html><body>
<ul class="tblbox flexbox flexwrap">
  <li class="h">特技</li>
  <li class="d">きらめきスパート</li>
</ul>
<ul class="tblbox flexbox flexwrap">
  <li class="h">主な入手方法</li>
  <li class="d">
    シンデレラフェス限定
    プラチナオーディションガシャ
  </li>
</ul>
</body></html>`

func newTestClient(baseURL string) *Client {
	return NewClient(Options{BaseURL: baseURL, Delay: time.Millisecond})
}

func TestFetchRarityPaginates(t *testing.T) {
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages = append(pages, r.URL.String())
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, listingPage2)
			return
		}
		io.WriteString(w, listingPage1)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	cards, err := client.FetchRarity(context.Background(), model.RaritySSRare)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Len(t, pages, 2)

	assert.Equal(t, "10001", cards[0].ID)
	assert.Equal(t, "[きらめきの勇者]夢見りあむ", cards[0].Name)
	assert.Equal(t, model.RaritySSRare, cards[0].Rarity)
	assert.Equal(t, srv.URL+"/images/10001_s.jpg", cards[0].ImageURL)
	assert.Equal(t, srv.URL+"/cgss/card/10001", cards[0].DetailURL)

	// Fragment-style detail link.
	assert.Equal(t, "10002", cards[1].ID)
	// src fallback when data-original is absent.
	assert.Equal(t, srv.URL+"/images/10002_s.jpg", cards[1].ImageURL)

	assert.Equal(t, "10003", cards[2].ID)
}

func TestFetchRarityMissingContainer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html><body><p>メンテナンス中</p></body></html>")
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.FetchRarity(context.Background(), model.RarityNormal)
	assert.ErrorIs(t, err, common.ErrNoCardList)
}

func TestFetchRarityServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.FetchRarity(context.Background(), model.RaritySRare)
	assert.ErrorIs(t, err, common.ErrFetchFailed)
}

func TestFetchAvailability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, detailPage)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	text, err := client.FetchAvailability(context.Background(), srv.URL+"/cgss/card/10001")
	require.NoError(t, err)
	assert.Contains(t, text, "シンデレラフェス限定")
	assert.Contains(t, text, "プラチナオーディションガシャ")
}

func TestFetchAvailabilityMissingCell(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><ul class="tblbox flexbox flexwrap"><li class="h">特技</li><li class="d">なし</li></ul></body></html>`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.FetchAvailability(context.Background(), srv.URL+"/cgss/card/10001")
	assert.ErrorIs(t, err, common.ErrNoPageContent)
}

func TestCardIDFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.test/cgss/card/12345", "12345"},
		{"https://example.test/cgss/card/show#card-678", "678"},
		{"https://example.test/cgss/card/show#card-abc", ""},
		{"https://example.test/cgss/card/abc", ""},
		{"https://example.test/", ""},
	}
	for _, tt := range tests {
		u, err := url.Parse(tt.in)
		require.NoError(t, err)
		if got := cardIDFromURL(u); got != tt.want {
			t.Errorf("cardIDFromURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFetchAttributeIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "キュート", r.URL.Query().Get("a"))
		fmt.Fprint(w, listingPage2)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	ids, err := client.FetchAttributeIDs(context.Background(), AttributeCute)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"10003": {}}, ids)
}

func TestDownloadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "missing.jpg") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, "jpegbytes")
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	dir := t.TempDir()

	card := model.Card{
		ID:       "10001",
		Name:     "[きらめきの勇者]夢見りあむ",
		Rarity:   model.RaritySSRare,
		ImageURL: srv.URL + "/images/10001.jpg",
	}
	dest := ImagePath(dir, card)
	assert.Equal(t, filepath.Join(dir, "SSR", "10001_[きらめきの勇者]夢見りあむ.jpg"), dest)

	downloaded, err := client.DownloadImage(context.Background(), card.ImageURL, dest)
	require.NoError(t, err)
	assert.True(t, downloaded)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "jpegbytes", string(data))

	// Second call skips the existing file.
	downloaded, err = client.DownloadImage(context.Background(), card.ImageURL, dest)
	require.NoError(t, err)
	assert.False(t, downloaded)

	_, err = client.DownloadImage(context.Background(), srv.URL+"/images/missing.jpg", filepath.Join(dir, "missing.jpg"))
	assert.Error(t, err)

	_, err = client.DownloadImage(context.Background(), "ftp://nope", filepath.Join(dir, "nope.jpg"))
	assert.Error(t, err)
}

func TestExtractAvailabilityUsesFirstMatchingTable(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(detailPage))
	require.NoError(t, err)

	text, ok := extractAvailability(doc)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(text, "シンデレラフェス限定"))
}

// Package wiki obtains real shop prices by scraping the community wiki's
// SkinData Lua module and parsing it into a pricing catalog. This is the
// price authority for reconciliation: the official feed has names but no
// prices, the wiki has prices keyed by free-text names.
package wiki

import (
	"context"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/riftworks/skinforge/pkg/errors"
	"github.com/riftworks/skinforge/pkg/logging"
)

// DefaultURL is the edit view of the SkinData module, which exposes the
// full Lua source in a textarea.
const DefaultURL = "https://leagueoflegends.fandom.com/wiki/Module:SkinData/data?action=edit"

// minLuaSize guards against picking up a stub element instead of the
// actual module source.
const minLuaSize = 10000

// Client scrapes the SkinData module page.
type Client struct {
	http *http.Client
	url  string
}

// Option configures a Client.
type Option func(*Client)

// WithURL overrides the page URL, mainly for tests.
func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient creates a wiki scraper client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{Timeout: 30 * time.Second},
		url:  DefaultURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchLua downloads the module page and extracts the Lua source. The
// edit textarea is preferred; rendered code blocks and the longest pre
// element are fallbacks, since the wiki serves different markup depending
// on protection state.
func (c *Client) FetchLua(ctx context.Context) (string, error) {
	logger := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &errors.APIError{Source: "wiki", Endpoint: c.url, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &errors.APIError{Source: "wiki", Endpoint: c.url, StatusCode: resp.StatusCode, Message: "unexpected status"}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &errors.ParseError{Source: "wiki", Message: "parsing page HTML", Err: err}
	}

	lua := doc.Find("textarea#wpTextbox1").Text()
	if len(lua) < minLuaSize {
		if code := doc.Find(".mw-code").Text(); len(code) > len(lua) {
			lua = code
		}
	}
	if len(lua) < minLuaSize {
		doc.Find("pre").Each(func(_ int, sel *goquery.Selection) {
			if text := sel.Text(); len(text) > len(lua) {
				lua = text
			}
		})
	}

	if lua == "" {
		return "", &errors.ParseError{Source: "wiki", Message: "no Lua source found on page"}
	}

	logger.Info().Int("bytes", len(lua)).Msg("Fetched SkinData module source")
	return lua, nil
}

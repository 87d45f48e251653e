// Package ddragon fetches the official skin catalog from the Riot Data
// Dragon static-data CDN. It is a thin I/O collaborator: the catalog it
// returns carries names and identifiers only, never prices.
package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/riftworks/skinforge/pkg/catalog"
	"github.com/riftworks/skinforge/pkg/errors"
	"github.com/riftworks/skinforge/pkg/logging"
)

// DefaultBaseURL is the production Data Dragon endpoint.
const DefaultBaseURL = "https://ddragon.leagueoflegends.com"

// Client fetches champion and skin data from Data Dragon.
type Client struct {
	http    *resty.Client
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Data Dragon endpoint, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// NewClient creates a Data Dragon client.
func NewClient(opts ...Option) *Client {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	c := &Client{http: client, baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LatestVersion returns the newest Data Dragon release version.
func (c *Client) LatestVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := c.getJSON(ctx, c.baseURL+"/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", &errors.ParseError{Source: "ddragon", Message: "empty version list"}
	}
	return versions[0], nil
}

// ChampionIDs returns every champion identifier in the given release.
func (c *Client) ChampionIDs(ctx context.Context, version string) ([]string, error) {
	var resp championListResponse
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", c.baseURL, version)
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Data))
	for id := range resp.Data {
		ids = append(ids, id)
	}
	// Champion order feeds identifier assignment downstream, so keep it
	// deterministic across runs.
	sort.Strings(ids)
	return ids, nil
}

// ChampionSkins returns the skin records of one champion. The base skin
// arrives with skin number zero and is flagged accordingly.
func (c *Client) ChampionSkins(ctx context.Context, version, championID string) ([]catalog.SkinRecord, error) {
	var resp championDetailResponse
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/champion/%s.json", c.baseURL, version, championID)
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}

	detail, ok := resp.Data[championID]
	if !ok {
		return nil, &errors.ParseError{Source: "ddragon", Message: fmt.Sprintf("champion %s missing from its own detail payload", championID)}
	}

	skins := make([]catalog.SkinRecord, 0, len(detail.Skins))
	for _, skin := range detail.Skins {
		skins = append(skins, catalog.SkinRecord{
			ChampionID:   championID,
			ChampionName: detail.Name,
			SkinNum:      skin.Num,
			SkinName:     skin.Name,
			IsBase:       skin.Num == 0,
		})
	}
	return skins, nil
}

// AllSkins fetches the complete official skin catalog: champion list,
// then one detail request per champion, in champion-list order. An empty
// version pins to the latest release. A champion whose detail request
// fails is skipped with a log line rather than failing the whole
// catalog, matching how sparse the CDN occasionally is right after a
// patch.
func (c *Client) AllSkins(ctx context.Context, version string) ([]catalog.SkinRecord, error) {
	logger := logging.FromContext(ctx)

	if version == "" {
		var err error
		if version, err = c.LatestVersion(ctx); err != nil {
			return nil, err
		}
	}
	logger.Info().Str("version", version).Msg("Using Data Dragon version")

	ids, err := c.ChampionIDs(ctx, version)
	if err != nil {
		return nil, err
	}

	var skins []catalog.SkinRecord
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		champSkins, err := c.ChampionSkins(ctx, version, id)
		if err != nil {
			logger.Warn().Err(err).Str("champion", id).Msg("Skipping champion")
			continue
		}
		skins = append(skins, champSkins...)
	}

	logger.Info().Int("skins", len(skins)).Int("champions", len(ids)).Msg("Fetched official catalog")
	return skins, nil
}

// getJSON performs a GET request and decodes the JSON response body.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return &errors.APIError{Source: "ddragon", Endpoint: url, Message: "request failed", Err: err}
	}
	if resp.StatusCode() != 200 {
		return &errors.APIError{Source: "ddragon", Endpoint: url, StatusCode: resp.StatusCode(), Message: string(resp.Body())}
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &errors.ParseError{Source: "ddragon", Message: "decoding response", Err: err}
	}
	return nil
}

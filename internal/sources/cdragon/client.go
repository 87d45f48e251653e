// Package cdragon fetches the CommunityDragon skin dump, a tier-labeled
// catalog. Prices here are representative values derived from the tier
// table, not observed shop prices; the reconciler treats this source as
// a rarity authority and a pricing source of last resort.
package cdragon

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/riftworks/skinforge/pkg/catalog"
	"github.com/riftworks/skinforge/pkg/errors"
	"github.com/riftworks/skinforge/pkg/logging"
)

// DefaultURL is the production CommunityDragon skins endpoint.
const DefaultURL = "https://raw.communitydragon.org/latest/plugins/rcp-be-lol-game-data/global/default/v1/skins.json"

// characterPath pulls the champion identifier out of a load-screen asset
// path such as /lol-game-data/assets/Characters/Ahri/Skins/....
var characterPath = regexp.MustCompile(`/Characters/([^/]+)/`)

// Client fetches the CommunityDragon skin catalog.
type Client struct {
	http  *resty.Client
	url   string
	table catalog.PriceTable
}

// Option configures a Client.
type Option func(*Client)

// WithURL overrides the skins.json endpoint, mainly for tests.
func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

// WithPriceTable sets the table used to assign representative prices.
func WithPriceTable(table catalog.PriceTable) Option {
	return func(c *Client) {
		c.table = table
	}
}

// NewClient creates a CommunityDragon client.
func NewClient(opts ...Option) *Client {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	c := &Client{http: client, url: DefaultURL, table: catalog.DefaultPriceTable()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Skins fetches and classifies the complete skin dump, ordered by the
// game's numeric skin identifier for reproducibility.
func (c *Client) Skins(ctx context.Context) ([]catalog.SkinRecord, error) {
	logger := logging.FromContext(ctx)

	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return nil, &errors.APIError{Source: "cdragon", Endpoint: c.url, Message: "request failed", Err: err}
	}
	if resp.StatusCode() != 200 {
		return nil, &errors.APIError{Source: "cdragon", Endpoint: c.url, StatusCode: resp.StatusCode(), Message: "unexpected status"}
	}

	var dump map[string]skinEntry
	if err := json.Unmarshal(resp.Body(), &dump); err != nil {
		return nil, &errors.ParseError{Source: "cdragon", Message: "decoding skins.json", Err: err}
	}

	ids := make([]string, 0, len(dump))
	for id := range dump {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})

	skins := make([]catalog.SkinRecord, 0, len(ids))
	skipped := 0
	for _, id := range ids {
		entry := dump[id]
		championID := extractChampionID(entry.LoadScreenPath)
		if championID == "" {
			skipped++
			continue
		}

		tier := detectTier(entry)
		skins = append(skins, catalog.SkinRecord{
			ChampionID:   championID,
			ChampionName: championID,
			SkinName:     entry.Name,
			PriceRP:      c.table.Price(tier),
			Tier:         tier,
			IsBase:       entry.IsBase,
		})
	}

	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Msg("Entries without a recognizable champion path")
	}
	logger.Info().Int("skins", len(skins)).Msg("Fetched CommunityDragon catalog")
	return skins, nil
}

// extractChampionID parses the champion identifier from an asset path.
func extractChampionID(path string) string {
	m := characterPath.FindStringSubmatch(path)
	if m == nil {
		return ""
	}
	return m[1]
}

// detectTier classifies a dump entry. The base skin is always Default;
// otherwise the skin type and rarity gem decide between Ultimate,
// Legendary, and the Epic bulk of the catalog.
func detectTier(entry skinEntry) catalog.Tier {
	if entry.IsBase {
		return catalog.TierDefault
	}

	skinType := strings.ToLower(entry.SkinType)
	gem := strings.ToLower(entry.RarityGemPath)

	switch {
	case strings.Contains(skinType, "ultimate") || strings.Contains(gem, "ultimate"):
		return catalog.TierUltimate
	case strings.Contains(skinType, "legendary") || strings.Contains(gem, "legendary"):
		return catalog.TierLegendary
	default:
		return catalog.TierEpic
	}
}

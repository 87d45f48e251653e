package catalog

import (
	"slices"

	"github.com/riftworks/skinforge/pkg/errors"
)

// PriceTable is the closed set of shop prices and their rarity buckets.
// It is configuration, not derived logic: deployments that track a
// different price history supply their own table.
//
// The forward mapping (Classify) is price-driven and exact. The reverse
// mapping (Price) assigns one representative price per tier and is an
// approximation, because Legacy skins historically sold at several
// prices. The asymmetry is deliberate; collapsing it would lose the
// information of which source carried a real price.
type PriceTable struct {
	// LegacyPrices enumerates the historical Legacy price points.
	LegacyPrices []int `yaml:"legacy_prices"`
	// LegacyPrice is the representative price assigned when only the
	// Legacy tier label is known.
	LegacyPrice    int `yaml:"legacy_price"`
	EpicPrice      int `yaml:"epic_price"`
	LegendaryPrice int `yaml:"legendary_price"`
	// UltimatePrice is a threshold: any price at or above it is Ultimate.
	UltimatePrice int `yaml:"ultimate_price"`
}

// DefaultPriceTable returns the RP price table as of the current shop.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		LegacyPrices:   []int{390, 520, 750, 790, 880, 975},
		LegacyPrice:    750,
		EpicPrice:      1350,
		LegendaryPrice: 1820,
		UltimatePrice:  3250,
	}
}

// Validate checks the table for a usable total order.
func (t PriceTable) Validate() error {
	if t.EpicPrice <= 0 || t.LegendaryPrice <= 0 || t.UltimatePrice <= 0 {
		return &errors.ValidationError{Field: "price_table", Message: "tier prices must be positive"}
	}
	if !(t.EpicPrice < t.LegendaryPrice && t.LegendaryPrice < t.UltimatePrice) {
		return &errors.ValidationError{Field: "price_table", Message: "tier prices must increase from Epic to Ultimate"}
	}
	for _, p := range t.LegacyPrices {
		if p <= 0 || p >= t.EpicPrice {
			return &errors.ValidationError{Field: "legacy_prices", Value: p, Message: "legacy prices must sit below the Epic price"}
		}
	}
	return nil
}

// Classify maps a price to its rarity tier. The second return reports
// whether the price was an exact member of the table; prices outside the
// known set fall back to Epic, and callers count that coercion rather
// than erroring on it.
func (t PriceTable) Classify(price int) (Tier, bool) {
	switch {
	case price == 0:
		return TierDefault, true
	case slices.Contains(t.LegacyPrices, price):
		return TierLegacy, true
	case price == t.EpicPrice:
		return TierEpic, true
	case price == t.LegendaryPrice:
		return TierLegendary, true
	case price >= t.UltimatePrice:
		return TierUltimate, true
	default:
		return TierEpic, false
	}
}

// Price maps a tier label back to a representative price. Default and
// Special skins are never sold and map to zero.
func (t PriceTable) Price(tier Tier) int {
	switch tier {
	case TierLegacy:
		return t.LegacyPrice
	case TierEpic:
		return t.EpicPrice
	case TierLegendary:
		return t.LegendaryPrice
	case TierUltimate:
		return t.UltimatePrice
	default:
		return 0
	}
}

// FallbackTier is the documented tier for positive prices outside the
// table and for unmatched records under the fallback policy.
func (t PriceTable) FallbackTier() Tier {
	return TierEpic
}

// FallbackPrice is the price paired with FallbackTier.
func (t PriceTable) FallbackPrice() int {
	return t.EpicPrice
}

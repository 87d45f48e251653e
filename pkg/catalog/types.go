// Package catalog defines the skin catalog data model together with the
// name-normalization and tier-classification rules used to reconcile
// independently sourced catalogs into one authoritative table.
package catalog

// Tier is the categorical rarity bucket of a skin.
type Tier string

// Known rarity tiers.
const (
	// TierDefault marks a champion's non-purchasable base appearance.
	TierDefault Tier = "Default"
	// TierSpecial marks promotional or reward-only skins with no shop
	// price. They are excluded from sales data entirely.
	TierSpecial   Tier = "Special"
	TierLegacy    Tier = "Legacy"
	TierEpic      Tier = "Epic"
	TierLegendary Tier = "Legendary"
	TierUltimate  Tier = "Ultimate"
)

// String returns the tier name.
func (t Tier) String() string {
	return string(t)
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierDefault, TierSpecial, TierLegacy, TierEpic, TierLegendary, TierUltimate:
		return true
	}
	return false
}

// Sellable reports whether skins of this tier appear in sales data.
// Default and Special skins are never sold.
func (t Tier) Sellable() bool {
	return t.Valid() && t != TierDefault && t != TierSpecial
}

// SkinRecord is one catalog entry before reconciliation. Records sourced
// from the official catalog carry identity fields (champion, name, skin
// number); records sourced from a pricing catalog additionally carry
// PriceRP and Tier. An empty Tier means the source did not provide one.
type SkinRecord struct {
	ChampionID   string
	ChampionName string
	SkinNum      int
	SkinName     string
	PriceRP      int
	Tier         Tier
	IsBase       bool
}

// Base reports whether the record is the champion's default appearance.
// Loaders flag base skins from their source-native markers (skin number
// zero in the official catalog, the "Original" entry in the wiki dump);
// the literal name "default" is recognized here as a safety net.
func (s SkinRecord) Base() bool {
	return s.IsBase || s.SkinName == "default"
}

// JoinKey returns the normalized key used to match this record against a
// record from another source. Base skins key on the champion name rather
// than the literal "default", so two champions' base skins never collide.
func (s SkinRecord) JoinKey() string {
	if s.Base() {
		return Normalize(s.ChampionName)
	}
	return Normalize(s.SkinName)
}

// ReconciledSkin is a SkinRecord that survived reconciliation, augmented
// with a sequential warehouse identifier. Identifiers are assigned in
// join order after filtering and are stable only within one run.
type ReconciledSkin struct {
	SkinID int
	SkinRecord
}

// Package reconcile merges two independently sourced skin catalogs into one
// authoritative table. Catalog A (the official feed) decides which skins
// exist; catalog B (the pricing source) supplies price and rarity. Rows are
// matched on normalized name keys, conflicts resolve through an explicit
// precedence policy, and every fallback the reconciler takes is counted and
// surfaced in the run summary.
package reconcile

import (
	"context"

	"github.com/riftworks/skinforge/pkg/catalog"
	"github.com/riftworks/skinforge/pkg/errors"
	"github.com/riftworks/skinforge/pkg/logging"
)

// Reconciler merges an official catalog with a pricing catalog.
type Reconciler interface {
	// Reconcile joins official against pricing and resolves every row to a
	// valid price and tier. The official slice's order determines output
	// order and identifier assignment, so results are reproducible given
	// the same two inputs.
	Reconcile(ctx context.Context, official, pricing []catalog.SkinRecord) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	filter *filter
	policy Policy
	table  catalog.PriceTable
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &reconciler{
		filter: newFilter(options.exclude),
		policy: options.policy,
		table:  options.table,
	}, nil
}

// Reconcile implements Reconciler.
func (r *reconciler) Reconcile(ctx context.Context, official, pricing []catalog.SkinRecord) (*Result, error) {
	logger := logging.FromContext(ctx)

	result := NewResult(r.policy)
	result.Stats.OfficialRows = len(official)
	result.Stats.PricingRows = len(pricing)

	// Index the pricing catalog by normalized key, first-seen wins.
	prices := make(map[string]catalog.SkinRecord, len(pricing))
	for _, rec := range pricing {
		key := rec.JoinKey()
		if key == "" {
			continue
		}
		if _, ok := prices[key]; ok {
			result.Stats.DuplicateKeys++
			continue
		}
		prices[key] = rec
	}

	seen := make(map[string]struct{}, len(official))
	for _, rec := range official {
		if r.filter.excluded(rec.SkinName) {
			result.Stats.Excluded++
			continue
		}

		key := rec.JoinKey()
		if key == "" {
			result.Stats.Excluded++
			logger.Debug().
				Str("champion", rec.ChampionName).
				Str("skin", rec.SkinName).
				Msg("Skipping record with empty join key")
			continue
		}
		if _, ok := seen[key]; ok {
			result.Stats.DuplicateKeys++
			continue
		}
		seen[key] = struct{}{}

		resolved, ok := r.resolve(rec, prices, result)
		if !ok {
			continue
		}
		result.Skins = append(result.Skins, catalog.ReconciledSkin{SkinRecord: resolved})
	}

	// Warehouse identifiers are assigned only after filtering and joining,
	// sequentially in join order.
	for i := range result.Skins {
		result.Skins[i].SkinID = i + 1
		result.Stats.tally(result.Skins[i].Tier)
	}

	if err := validate(result.Skins); err != nil {
		return nil, err
	}

	if result.Stats.Matched == 0 && len(official) > 0 {
		// A broken key scheme looks exactly like this. Not fatal, but the
		// operator has to see it.
		result.Warnings = append(result.Warnings,
			"join produced zero matches; check that both catalogs use compatible names")
	}

	logger.Info().
		Int("total", len(result.Skins)).
		Int("matched", result.Stats.Matched).
		Int("dropped", result.Stats.Dropped).
		Int("fallback", result.Stats.FallbackAssigned).
		Str("policy", string(r.policy)).
		Msg("Reconciled catalogs")

	return result, nil
}

// resolve produces the authoritative row for one official record, or
// reports that the record does not survive reconciliation.
func (r *reconciler) resolve(rec catalog.SkinRecord, prices map[string]catalog.SkinRecord, result *Result) (catalog.SkinRecord, bool) {
	// Base skins are forced to price 0 / Default no matter what the join
	// says; a wrong match must not price a non-purchasable skin.
	if rec.Base() {
		rec.IsBase = true
		rec.PriceRP = 0
		rec.Tier = catalog.TierDefault
		result.Stats.Defaults++
		return rec, true
	}

	match, ok := prices[rec.JoinKey()]
	if ok && match.PriceRP > 0 {
		result.Stats.Matched++
		rec.PriceRP = match.PriceRP
		tier, exact := r.table.Classify(match.PriceRP)
		if !exact {
			result.Stats.Coerced++
		}
		rec.Tier = tier
		return rec, true
	}

	// Either no counterpart, or the counterpart carries no shop price
	// (promotional Special entries). One policy applies to both.
	switch r.policy {
	case PolicyFallback:
		result.Stats.FallbackAssigned++
		rec.PriceRP = r.table.FallbackPrice()
		rec.Tier = r.table.FallbackTier()
		return rec, true
	default: // PolicyDrop
		result.Stats.Dropped++
		return catalog.SkinRecord{}, false
	}
}

// validate asserts the output invariants: one row per key, and price and
// tier agree on both sides of the Default boundary.
func validate(skins []catalog.ReconciledSkin) error {
	keys := make(map[string]struct{}, len(skins))
	for _, s := range skins {
		key := s.JoinKey()
		if _, ok := keys[key]; ok {
			return &errors.ValidationError{Field: "normalized_key", Value: key, Message: "duplicate key in reconciled output"}
		}
		keys[key] = struct{}{}

		if s.Tier == catalog.TierDefault && s.PriceRP != 0 {
			return &errors.ValidationError{Field: "price_rp", Value: s.PriceRP, Message: "Default tier row with nonzero price"}
		}
		if s.Tier != catalog.TierDefault && s.PriceRP == 0 {
			return &errors.ValidationError{Field: "price_rp", Value: s.SkinName, Message: "non-Default row with zero price"}
		}
	}
	return nil
}

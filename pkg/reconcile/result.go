package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riftworks/skinforge/pkg/catalog"
)

// Result represents the outcome of a reconciliation run.
type Result struct {
	// Skins is the authoritative catalog, one row per normalized key,
	// identifiers sequential in join order.
	Skins []catalog.ReconciledSkin

	// Stats counts what happened to every input row.
	Stats Stats

	// Warnings are non-fatal conditions an operator should see.
	Warnings []string

	// Policy that governed unmatched records in this run.
	Policy Policy
}

// Stats counts row dispositions during reconciliation. These are
// observability output, not part of the data contract.
type Stats struct {
	OfficialRows     int
	PricingRows      int
	Excluded         int
	DuplicateKeys    int
	Defaults         int
	Matched          int
	Dropped          int
	FallbackAssigned int
	// Coerced counts matched rows whose price sat outside the tier table
	// and was bucketed to the fallback tier.
	Coerced int
	ByTier  map[catalog.Tier]int
}

// NewResult creates an empty result for the given policy.
func NewResult(policy Policy) *Result {
	return &Result{
		Policy: policy,
		Stats:  Stats{ByTier: make(map[catalog.Tier]int)},
	}
}

func (s *Stats) tally(tier catalog.Tier) {
	s.ByTier[tier]++
}

// MatchRate returns the fraction of non-excluded, non-default official
// rows the pricing catalog could price.
func (s Stats) MatchRate() float64 {
	candidates := s.Matched + s.Dropped + s.FallbackAssigned
	if candidates == 0 {
		return 0
	}
	return float64(s.Matched) / float64(candidates)
}

// Summary returns a human-readable report of the run.
func (r *Result) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Reconciled %d skins from %d official and %d pricing rows\n",
		len(r.Skins), r.Stats.OfficialRows, r.Stats.PricingRows)
	fmt.Fprintf(&b, "  excluded by keyword filter: %d\n", r.Stats.Excluded)
	fmt.Fprintf(&b, "  duplicate keys skipped:     %d\n", r.Stats.DuplicateKeys)
	fmt.Fprintf(&b, "  default skins:              %d\n", r.Stats.Defaults)
	fmt.Fprintf(&b, "  matched:                    %d (%.1f%%)\n", r.Stats.Matched, r.Stats.MatchRate()*100)
	switch r.Policy {
	case PolicyFallback:
		fmt.Fprintf(&b, "  fallback-assigned:          %d\n", r.Stats.FallbackAssigned)
	default:
		fmt.Fprintf(&b, "  dropped (unmatched):        %d\n", r.Stats.Dropped)
	}
	if r.Stats.Coerced > 0 {
		fmt.Fprintf(&b, "  out-of-table prices coerced: %d\n", r.Stats.Coerced)
	}

	b.WriteString("  by tier:\n")
	tiers := make([]string, 0, len(r.Stats.ByTier))
	for tier := range r.Stats.ByTier {
		tiers = append(tiers, string(tier))
	}
	sort.Strings(tiers)
	for _, tier := range tiers {
		fmt.Fprintf(&b, "    %-10s %d\n", tier, r.Stats.ByTier[catalog.Tier(tier)])
	}

	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "  WARNING: %s\n", w)
	}

	return b.String()
}

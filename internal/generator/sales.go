package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riftworks/skinforge/pkg/catalog"
	"github.com/riftworks/skinforge/pkg/errors"
)

// Price bands used to bias skin choice per player segment.
const (
	cheapMax = 750
	midMax   = 1350
)

// SalesResult is the generated fact_sales table plus its defect report.
type SalesResult struct {
	Transactions []Transaction
	ErrorCounts  map[ErrorType]int
	Duplicates   int
	Clean        int
}

// Sales generates the fact_sales table against a reconciled catalog.
// Default and Special skins never sell; whales skew expensive, casuals
// skew cheap. A configured fraction of rows is corrupted with tagged
// defects and a further fraction duplicated outright.
func (g *Generator) Sales(players []PlayerRecord, skins []catalog.ReconciledSkin) (*SalesResult, error) {
	if len(players) == 0 {
		return nil, &errors.ValidationError{Field: "players", Message: "no players to generate sales for"}
	}

	prices := make(map[int]int, len(skins))
	var cheap, mid, expensive []int
	for _, s := range skins {
		if !s.Tier.Sellable() {
			continue
		}
		prices[s.SkinID] = s.PriceRP
		switch {
		case s.PriceRP <= cheapMax:
			cheap = append(cheap, s.SkinID)
		case s.PriceRP <= midMax:
			mid = append(mid, s.SkinID)
		default:
			expensive = append(expensive, s.SkinID)
		}
	}
	if len(prices) == 0 {
		return nil, &errors.ValidationError{Field: "skins", Message: "catalog has no sellable skins"}
	}

	all := make([]int, 0, len(prices))
	for id := range prices {
		all = append(all, id)
	}
	sort.Ints(all)
	maxSkinID := all[len(all)-1]

	pools := map[Segment][]int{
		SegmentWhale:  pool(expensive, 7, mid, 2, cheap, 1, all),
		SegmentCore:   pool(mid, 5, expensive, 3, cheap, 2, all),
		SegmentCasual: pool(cheap, 5, mid, 4, expensive, 1, all),
	}

	result := &SalesResult{ErrorCounts: make(map[ErrorType]int)}
	for t := 1; t <= g.cfg.Transactions; t++ {
		player := players[g.rng.Intn(len(players))]
		choices := pools[player.Segment]
		skinID := choices[g.rng.Intn(len(choices))]

		tx := Transaction{
			TransactionID: t,
			PlayerID:      intp(player.PlayerID),
			SkinID:        intp(skinID),
			PurchaseDate:  g.now.AddDate(0, 0, -g.intn(1, 365)),
			PriceRP:       intp(prices[skinID]),
			Quantity:      1,
		}

		if g.rng.Float64() < g.cfg.ErrorRate {
			g.corrupt(&tx, len(players), maxSkinID)
			result.ErrorCounts[tx.ErrorType]++
		} else {
			result.Clean++
		}

		result.Transactions = append(result.Transactions, tx)
	}

	// Append verbatim duplicates under fresh transaction ids.
	dups := int(float64(g.cfg.Transactions) * g.cfg.DuplicateRate)
	for i := 0; i < dups && len(result.Transactions) > 0; i++ {
		dup := result.Transactions[g.rng.Intn(g.cfg.Transactions)]
		dup.TransactionID = len(result.Transactions) + 1
		dup.ErrorType = ErrDuplicate
		result.Transactions = append(result.Transactions, dup)
		result.Duplicates++
	}

	return result, nil
}

// corrupt applies one randomly chosen defect to the transaction.
// Invalid references are drawn from a band strictly above the live
// identifier ranges, so a dangling reference never resolves no matter
// how large the tables are.
func (g *Generator) corrupt(tx *Transaction, players, maxSkinID int) {
	tx.ErrorType = errorTypes[g.rng.Intn(len(errorTypes))]
	switch tx.ErrorType {
	case ErrNullPlayerID:
		tx.PlayerID = nil
	case ErrNullSkinID:
		tx.SkinID = nil
	case ErrNullPrice:
		tx.PriceRP = nil
	case ErrNegativePrice:
		tx.PriceRP = intp(-g.intn(1, 1000))
	case ErrZeroQuantity:
		tx.Quantity = 0
	case ErrInvalidPlayerID:
		tx.PlayerID = intp(g.intn(players+1000, players+9999))
	case ErrInvalidSkinID:
		tx.SkinID = intp(g.intn(maxSkinID+1000, maxSkinID+9999))
	case ErrFutureDate:
		tx.PurchaseDate = g.now.AddDate(0, 0, g.intn(1, 365))
	case ErrPastDate:
		tx.PurchaseDate = g.now.AddDate(0, 0, -g.intn(3000, 5000))
	}
}

// Summary returns a human-readable defect report.
func (r *SalesResult) Summary() string {
	var b strings.Builder
	total := len(r.Transactions)
	injected := total - r.Clean - r.Duplicates

	fmt.Fprintf(&b, "Generated %d transactions (%d clean, %d corrupted, %d duplicates)\n",
		total, r.Clean, injected, r.Duplicates)

	if len(r.ErrorCounts) > 0 {
		b.WriteString("  injected defects:\n")
		types := make([]string, 0, len(r.ErrorCounts))
		for et := range r.ErrorCounts {
			types = append(types, string(et))
		}
		sort.Strings(types)
		for _, et := range types {
			fmt.Fprintf(&b, "    %-18s %d\n", et, r.ErrorCounts[ErrorType(et)])
		}
	}
	return b.String()
}

// pool builds a segment's sampling pool by repeating each price band by
// its weight, the segment's primary band first. A segment whose primary
// band has no skins buys from the whole catalog instead of a skewed
// remainder; a catalog too small to fill any band does the same.
func pool(primary []int, wp int, b []int, wb int, c []int, wc int, all []int) []int {
	if len(primary) == 0 {
		return all
	}
	p := make([]int, 0, len(primary)*wp+len(b)*wb+len(c)*wc)
	for i := 0; i < wp; i++ {
		p = append(p, primary...)
	}
	for i := 0; i < wb; i++ {
		p = append(p, b...)
	}
	for i := 0; i < wc; i++ {
		p = append(p, c...)
	}
	return p
}

func intp(v int) *int {
	return &v
}

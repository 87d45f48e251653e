package generator

import (
	"math/rand"
	"time"
)

// Config controls the size and noise level of the synthetic tables.
type Config struct {
	Players      int
	Transactions int
	// ErrorRate is the fraction of transactions corrupted by one injected
	// defect.
	ErrorRate float64
	// DuplicateRate is the fraction of transactions re-appended verbatim
	// under a fresh transaction id.
	DuplicateRate float64
	// Seed makes a run reproducible. Zero seeds from the clock.
	Seed int64
	// Now anchors all generated dates. Zero means time.Now().
	Now time.Time
}

// DefaultConfig mirrors the warehouse's usual volumes: five thousand
// players, twenty thousand transactions, ten percent defects plus one
// percent duplicates.
func DefaultConfig() Config {
	return Config{
		Players:       5000,
		Transactions:  20000,
		ErrorRate:     0.10,
		DuplicateRate: 0.01,
	}
}

// Generator produces the synthetic tables.
type Generator struct {
	cfg Config
	rng *rand.Rand
	now time.Time
}

// New creates a Generator from config.
func New(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Players generates the dim_player table. Segments are weighted 60/30/10
// casual/core/whale and account ages span thirty days to five years.
func (g *Generator) Players() []PlayerRecord {
	players := make([]PlayerRecord, 0, g.cfg.Players)
	for i := 1; i <= g.cfg.Players; i++ {
		players = append(players, PlayerRecord{
			PlayerID:       i,
			Region:         Regions[g.rng.Intn(len(Regions))],
			AccountCreated: g.now.AddDate(0, 0, -g.intn(30, 1825)),
			Segment:        g.segment(),
		})
	}
	return players
}

// segment draws a weighted behavioral segment.
func (g *Generator) segment() Segment {
	switch r := g.rng.Float64(); {
	case r < 0.6:
		return SegmentCasual
	case r < 0.9:
		return SegmentCore
	default:
		return SegmentWhale
	}
}

// intn returns a uniform int in [lo, hi].
func (g *Generator) intn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

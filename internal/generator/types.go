// Package generator fabricates the synthetic player and transaction
// tables of the warehouse. Everything here is deliberately random and
// seedable; none of it feeds back into the reconciliation core, which
// stays a pure function of its two input catalogs.
package generator

import "time"

// Segment is a player's behavioral spending segment.
type Segment string

// Known segments, weighted casual-heavy like a real player base.
const (
	SegmentCasual Segment = "casual"
	SegmentCore   Segment = "core"
	SegmentWhale  Segment = "whale"
)

// Regions is the fixed region set players are drawn from.
var Regions = []string{"EUW", "EUNE", "NA", "KR"}

// PlayerRecord is one synthetic player.
type PlayerRecord struct {
	PlayerID       int
	Region         string
	AccountCreated time.Time
	Segment        Segment
}

// Transaction is one synthetic purchase. Identifier and price fields are
// pointers because error injection deliberately nulls them.
type Transaction struct {
	TransactionID int
	PlayerID      *int
	SkinID        *int
	PurchaseDate  time.Time
	PriceRP       *int
	Quantity      int
	// ErrorType tags deliberately corrupted rows so downstream validation
	// exercises can score themselves. Empty for clean rows.
	ErrorType ErrorType
}

// ErrorType names one kind of injected data-quality defect.
type ErrorType string

// The injected defect taxonomy.
const (
	ErrNullPlayerID    ErrorType = "null_player_id"
	ErrNullSkinID      ErrorType = "null_skin_id"
	ErrNullPrice       ErrorType = "null_price"
	ErrNegativePrice   ErrorType = "negative_price"
	ErrZeroQuantity    ErrorType = "zero_quantity"
	ErrInvalidPlayerID ErrorType = "invalid_player_id"
	ErrInvalidSkinID   ErrorType = "invalid_skin_id"
	ErrFutureDate      ErrorType = "future_date"
	ErrPastDate        ErrorType = "past_date"
	ErrDuplicate       ErrorType = "duplicate"
)

// errorTypes are the defects drawn from during injection. Duplicates are
// appended separately at a fixed rate.
var errorTypes = []ErrorType{
	ErrNullPlayerID,
	ErrNullSkinID,
	ErrNullPrice,
	ErrNegativePrice,
	ErrZeroQuantity,
	ErrInvalidPlayerID,
	ErrInvalidSkinID,
	ErrFutureDate,
	ErrPastDate,
}

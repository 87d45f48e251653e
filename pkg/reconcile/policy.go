package reconcile

// Policy decides what happens to an official record the pricing catalog
// cannot price. The source data used both approaches interchangeably;
// here exactly one applies per run, chosen at construction time.
type Policy string

const (
	// PolicyDrop removes unmatched records from the output entirely.
	// This is the default: a skin without a verifiable shop price is
	// almost always event-exclusive and should not enter sales data.
	PolicyDrop Policy = "drop"

	// PolicyFallback keeps unmatched records and assigns them the
	// documented fallback tier and price.
	PolicyFallback Policy = "fallback"
)

// String returns the policy name.
func (p Policy) String() string {
	return string(p)
}

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	return p == PolicyDrop || p == PolicyFallback
}

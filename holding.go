package vavoping

import "time"

// Balance is one asset balance as reported by the exchange. Bitvavo
// splits the position between what is freely available and what is
// locked in open orders.
type Balance struct {
	Symbol    string
	Available Quantity
	InOrder   Quantity
}

// Total is the full position, available plus in order.
func (b Balance) Total() Quantity { return b.Available.Add(b.InOrder) }

// Holding is one valued line of the summary.
type Holding struct {
	Symbol   string
	Quantity Quantity
	Value    Money // zero unless Priced
	Priced   bool  // false when no price could be resolved
}

// Summary is the full set of holdings plus total valuation for one run.
// It is built once, never mutated after construction, and discarded after
// the message is sent.
type Summary struct {
	Time       time.Time
	Currency   string // reporting currency
	Holdings   []Holding
	Total      Money
	RateLimit  int // remaining exchange rate-limit budget, -1 when unknown
	Raw        bool // true when valuation was skipped
	Commentary string
}

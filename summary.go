package vavoping

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// quoteCurrency is the currency all Bitvavo markets are quoted in, and
// therefore the natural reporting currency of a summary.
const quoteCurrency = "EUR"

// Exchange is the read-only view of the exchange account the notifier
// needs: current balances and a spot price per asset.
type Exchange interface {
	// Balances returns every asset balance of the account, including
	// zero ones, in the exchange's own order.
	Balances(ctx context.Context) ([]Balance, error)
	// Price returns the current price of one unit of the asset in EUR.
	// It returns an error wrapping ErrNoPrice when the asset has no
	// EUR market.
	Price(ctx context.Context, symbol string) (Money, error)
	// RateLimitRemaining reports the remaining request budget as
	// observed on the last response, or -1 if none was seen yet.
	RateLimitRemaining() int
}

// ErrNoPrice reports that an asset has no resolvable price.
var ErrNoPrice = errors.New("no price available")

// BuildSummary fetches the balances and values each non-zero one in EUR.
//
// Assets for which no price resolves are kept in the summary unpriced and
// excluded from the total. The quote currency itself is valued at par.
// With raw set, valuation is skipped entirely and the summary only lists
// quantities.
func BuildSummary(ctx context.Context, ex Exchange, raw bool) (*Summary, error) {
	balances, err := ex.Balances(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExchangeUnavailable, err)
	}

	s := &Summary{
		Time:     time.Now(),
		Currency: quoteCurrency,
		Raw:      raw,
	}

	total := M(0, quoteCurrency)
	for _, b := range balances {
		qty := b.Total()
		if qty.IsZero() {
			continue
		}
		h := Holding{Symbol: b.Symbol, Quantity: qty}
		switch {
		case raw:
			// no valuation at all
		case b.Symbol == quoteCurrency:
			h.Value = M(qty.Decimal(), quoteCurrency)
			h.Priced = true
		default:
			price, err := ex.Price(ctx, b.Symbol)
			if err != nil {
				// Listing the asset without a value keeps the message
				// honest, excluding it from the total keeps the total
				// a sum of the printed lines.
				log.Printf("no price for %s, listed unvalued: %v", b.Symbol, err)
				break
			}
			h.Value = price.Mul(qty)
			h.Priced = true
		}
		if h.Priced {
			total = total.Add(h.Value)
		}
		s.Holdings = append(s.Holdings, h)
	}
	s.Total = total
	s.RateLimit = ex.RateLimitRemaining()
	return s, nil
}

// Convert returns a copy of the summary with all priced values and the
// total expressed in another currency at the given rate (units of
// currency per EUR).
func (s *Summary) Convert(currency string, rate Quantity) *Summary {
	out := *s
	out.Currency = currency
	out.Holdings = make([]Holding, len(s.Holdings))
	for i, h := range s.Holdings {
		if h.Priced {
			h.Value = h.Value.Convert(currency, rate.Decimal())
		}
		out.Holdings[i] = h
	}
	out.Total = s.Total.Convert(currency, rate.Decimal())
	return &out
}

package bitvavo

import (
	"context"

	"github.com/mjansen/vavoping"
	"github.com/shopspring/decimal"
)

// balanceEntry is one entry of the /balance payload.
//
//	[
//	  {"symbol": "BTC", "available": "1.57593193", "inOrder": "0.74832374"},
//	  {"symbol": "EUR", "available": "280.12", "inOrder": "0"}
//	]
type balanceEntry struct {
	Symbol    string          `json:"symbol"`
	Available decimal.Decimal `json:"available"`
	InOrder   decimal.Decimal `json:"inOrder"`
}

// Balances fetches the account balances. The endpoint requires a signed
// request and returns every asset the account ever touched, including
// zero balances.
func (c *Client) Balances(ctx context.Context) ([]vavoping.Balance, error) {
	entries := make([]balanceEntry, 0)
	if err := c.get(ctx, c.client, "/balance", true, &entries); err != nil {
		return nil, err
	}
	balances := make([]vavoping.Balance, 0, len(entries))
	for _, e := range entries {
		balances = append(balances, vavoping.Balance{
			Symbol:    e.Symbol,
			Available: vavoping.Q(e.Available),
			InOrder:   vavoping.Q(e.InOrder),
		})
	}
	return balances, nil
}

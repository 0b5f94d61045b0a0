package bitvavo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mjansen/vavoping"
	"github.com/shopspring/decimal"
)

// Price returns the current EUR price of one unit of the asset, from the
// SYMBOL-EUR ticker. Assets without a EUR market resolve to
// vavoping.ErrNoPrice.
func (c *Client) Price(ctx context.Context, symbol string) (vavoping.Money, error) {
	market := symbol + "-EUR"

	listed, err := c.markets(ctx)
	if err != nil {
		return vavoping.Money{}, err
	}
	if !listed[market] {
		return vavoping.Money{}, fmt.Errorf("market %s: %w", market, vavoping.ErrNoPrice)
	}

	// https://api.bitvavo.com/v2/ticker/price?market=BTC-EUR
	// {"market": "BTC-EUR", "price": "60000"}
	var ticker struct {
		Market string `json:"market"`
		Price  string `json:"price"`
	}
	addr := "/ticker/price?market=" + url.QueryEscape(market)
	if err := c.get(ctx, c.client, addr, false, &ticker); err != nil {
		return vavoping.Money{}, err
	}
	if ticker.Price == "" {
		// a listed but never traded market has no price field
		return vavoping.Money{}, fmt.Errorf("market %s: %w", market, vavoping.ErrNoPrice)
	}
	price, err := decimal.NewFromString(ticker.Price)
	if err != nil {
		return vavoping.Money{}, fmt.Errorf("market %s: bad price %q: %w", market, ticker.Price, err)
	}
	return vavoping.M(price, "EUR"), nil
}

// markets returns the set of EUR-quoted markets, fetched at most once per
// client and served from the daily disk cache across runs: the listing
// moves slowly enough.
func (c *Client) markets(ctx context.Context) (map[string]bool, error) {
	if c.eurMarkets != nil {
		return c.eurMarkets, nil
	}
	// https://api.bitvavo.com/v2/markets
	// [
	//   {"market": "BTC-EUR", "status": "trading", "base": "BTC", "quote": "EUR", ...},
	//   ...
	// ]
	type info struct {
		Market string `json:"market"`
		Status string `json:"status"`
		Quote  string `json:"quote"`
	}
	content := make([]info, 0)
	if err := c.get(ctx, newDailyCachingClient(), "/markets", false, &content); err != nil {
		return nil, err
	}
	c.eurMarkets = make(map[string]bool)
	for _, m := range content {
		if m.Quote == "EUR" && m.Status == "trading" {
			c.eurMarkets[m.Market] = true
		}
	}
	return c.eurMarkets, nil
}

package vavoping

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// The two failure modes of a run. Every error returned by Notifier.Run
// wraps one of them.
var (
	// ErrExchangeUnavailable reports that the balance fetch could not
	// complete: bad credentials, network failure, rate limiting or a
	// malformed response.
	ErrExchangeUnavailable = errors.New("exchange unavailable")
	// ErrNotificationDeliveryFailed reports that the summary could not
	// be delivered: bad bot token, bad chat id or network failure.
	ErrNotificationDeliveryFailed = errors.New("notification delivery failed")
)

// Messenger delivers one text message to the configured chat.
type Messenger interface {
	Send(ctx context.Context, text string) error
}

// Commentator produces an optional one-line remark about a summary.
type Commentator interface {
	Comment(ctx context.Context, s *Summary) (string, error)
}

// RateFunc resolves the conversion rate from EUR to the given currency.
type RateFunc func(currency string) (Quantity, error)

// Notifier runs the fetch, value, format, send sequence once.
//
// The flow is strictly sequential, the send observes the result of the
// fetch, and there is no retry: a failed run exits non-zero and the
// external trigger decides whether to run again.
type Notifier struct {
	Exchange  Exchange
	Messenger Messenger
	Render    func(*Summary) string

	Commentator Commentator // optional, failures never fail the run
	Rate        RateFunc    // optional, defaults to LatestRate

	Raw      bool   // skip valuation, list raw balances
	Currency string // reporting currency, "" or "EUR" for none
}

// Run executes one notification. The returned error wraps either
// ErrExchangeUnavailable or ErrNotificationDeliveryFailed.
func (n *Notifier) Run(ctx context.Context) error {
	s, err := BuildSummary(ctx, n.Exchange, n.Raw)
	if err != nil {
		return err
	}

	if n.Currency != "" && n.Currency != quoteCurrency && !n.Raw {
		rate := n.Rate
		if rate == nil {
			rate = LatestRate
		}
		r, err := rate(n.Currency)
		if err != nil {
			return fmt.Errorf("%w: cannot resolve %s rate: %v", ErrExchangeUnavailable, n.Currency, err)
		}
		s = s.Convert(n.Currency, r)
	}

	if n.Commentator != nil {
		remark, err := n.Commentator.Comment(ctx, s)
		if err != nil {
			log.Printf("commentary skipped: %v", err)
		} else {
			s.Commentary = remark
		}
	}

	if err := n.Messenger.Send(ctx, n.Render(s)); err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationDeliveryFailed, err)
	}
	log.Printf("summary of %d holdings sent", len(s.Holdings))
	return nil
}

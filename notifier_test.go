package vavoping

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeMessenger records sent messages, and optionally fails.
type fakeMessenger struct {
	sent []string
	err  error
}

func (f *fakeMessenger) Send(ctx context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

// a deterministic renderer for the tests.
func testRender(s *Summary) string {
	return fmt.Sprintf("%d holdings, total %s", len(s.Holdings), s.Total)
}

func happyExchange() *fakeExchange {
	return &fakeExchange{
		balances: []Balance{
			{Symbol: "BTC", Available: Q(0.5)},
			{Symbol: "EUR", Available: Q(100)},
		},
		prices:    map[string]Money{"BTC": M(60000, "EUR")},
		rateLimit: 900,
	}
}

func TestNotifier_Run(t *testing.T) {
	m := &fakeMessenger{}
	n := &Notifier{Exchange: happyExchange(), Messenger: m, Render: testRender}

	if err := n.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(m.sent) != 1 {
		t.Fatalf("got %d messages, want 1", len(m.sent))
	}
	if want := "2 holdings, total 30100.00 EUR"; m.sent[0] != want {
		t.Errorf("sent %q, want %q", m.sent[0], want)
	}
}

func TestNotifier_Run_twiceSendsTwice(t *testing.T) {
	// no deduplication: identical balances, two runs, two identical messages.
	m := &fakeMessenger{}
	n := &Notifier{Exchange: happyExchange(), Messenger: m, Render: testRender}

	if err := n.Run(context.Background()); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if err := n.Run(context.Background()); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if len(m.sent) != 2 {
		t.Fatalf("got %d messages, want 2", len(m.sent))
	}
	if m.sent[0] != m.sent[1] {
		t.Errorf("messages differ:\n%q\n%q", m.sent[0], m.sent[1])
	}
}

func TestNotifier_Run_exchangeFailure(t *testing.T) {
	m := &fakeMessenger{}
	n := &Notifier{
		Exchange:  &fakeExchange{err: errors.New("401 Unauthorized")},
		Messenger: m,
		Render:    testRender,
	}

	err := n.Run(context.Background())
	if !errors.Is(err, ErrExchangeUnavailable) {
		t.Fatalf("Run() error = %v, want ErrExchangeUnavailable", err)
	}
	// no message may be attempted after a failed fetch.
	if len(m.sent) != 0 {
		t.Errorf("got %d messages, want 0", len(m.sent))
	}
}

func TestNotifier_Run_deliveryFailure(t *testing.T) {
	n := &Notifier{
		Exchange:  happyExchange(),
		Messenger: &fakeMessenger{err: errors.New("chat not found")},
		Render:    testRender,
	}

	err := n.Run(context.Background())
	if !errors.Is(err, ErrNotificationDeliveryFailed) {
		t.Fatalf("Run() error = %v, want ErrNotificationDeliveryFailed", err)
	}
}

func TestNotifier_Run_convertsCurrency(t *testing.T) {
	m := &fakeMessenger{}
	n := &Notifier{
		Exchange:  happyExchange(),
		Messenger: m,
		Render:    testRender,
		Currency:  "USD",
		Rate: func(currency string) (Quantity, error) {
			if currency != "USD" {
				t.Errorf("Rate called with %q", currency)
			}
			return Q(1.1), nil
		},
	}

	if err := n.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := "2 holdings, total 33110.00 USD"; m.sent[0] != want {
		t.Errorf("sent %q, want %q", m.sent[0], want)
	}
}

type fixedCommentator string

func (c fixedCommentator) Comment(ctx context.Context, s *Summary) (string, error) {
	if c == "" {
		return "", errors.New("quota exceeded")
	}
	return string(c), nil
}

func TestNotifier_Run_commentary(t *testing.T) {
	m := &fakeMessenger{}
	n := &Notifier{
		Exchange:    happyExchange(),
		Messenger:   m,
		Commentator: fixedCommentator("steady as she goes"),
		Render:      func(s *Summary) string { return s.Commentary },
	}

	if err := n.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if m.sent[0] != "steady as she goes" {
		t.Errorf("commentary not propagated, sent %q", m.sent[0])
	}
}

func TestNotifier_Run_commentaryFailureIsNotFatal(t *testing.T) {
	m := &fakeMessenger{}
	n := &Notifier{
		Exchange:    happyExchange(),
		Messenger:   m,
		Commentator: fixedCommentator(""),
		Render:      testRender,
	}

	if err := n.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(m.sent) != 1 {
		t.Errorf("got %d messages, want 1", len(m.sent))
	}
}

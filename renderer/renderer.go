// Package renderer turns a Summary into the text of the chat message.
// The output is deliberately plain: one line per holding, a total line,
// and a short header and footer. It reads fine both in Telegram and on a
// terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/mjansen/vavoping"
)

// Message renders the full message for a summary.
func Message(s *vavoping.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Portfolio Update (%s)\n\n", s.Time.Format("2006-01-02 15:04:05"))

	if len(s.Holdings) == 0 {
		b.WriteString("No holdings.\n")
		return b.String()
	}

	for _, h := range s.Holdings {
		b.WriteString(Line(h, s.Currency))
		b.WriteString("\n")
	}

	if !s.Raw {
		fmt.Fprintf(&b, "\nTotal: ≈%s\n", s.Total)
	}

	if s.Commentary != "" {
		fmt.Fprintf(&b, "\n💬 %s\n", s.Commentary)
	}

	if s.RateLimit >= 0 {
		fmt.Fprintf(&b, "\n🔒 Rate limit remaining: %d\n", s.RateLimit)
	}
	return b.String()
}

// Line renders a single holding line.
//
// A priced holding reads "BTC: 0.5 (≈30000.00 EUR)". The value is left
// out for the reporting currency itself (its value is its quantity) and
// for holdings with no resolvable price.
func Line(h vavoping.Holding, reportingCurrency string) string {
	if h.Priced && h.Symbol != reportingCurrency {
		return fmt.Sprintf("%s: %s (≈%s)", h.Symbol, h.Quantity, h.Value)
	}
	return fmt.Sprintf("%s: %s", h.Symbol, h.Quantity)
}

// Package format holds the display formatting helpers shared by the
// confirmation, result and receipt projections.
package format

import (
	"fmt"
	"strings"
	"time"
)

// CurrencySymbol prefixes every formatted amount. Single-currency service.
const CurrencySymbol = "₦"

// TimeLayout is the timestamp layout used on result and receipt screens.
const TimeLayout = "2006-01-02 15:04:05"

// Currency renders an amount with two decimals, thousands separators and the
// currency symbol, e.g. 1234.5 -> "₦1,234.50".
func Currency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString(CurrencySymbol)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// Timestamp renders t in the fixed screen layout.
func Timestamp(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTimestamp parses a screen-layout timestamp. The zero time and false
// are returned when the value does not match the layout.
func ParseTimestamp(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

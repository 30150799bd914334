package format

import (
	"testing"
	"time"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₦0.00"},
		{500, "₦500.00"},
		{1234.5, "₦1,234.50"},
		{1000000, "₦1,000,000.00"},
		{999.999, "₦1,000.00"},
		{-2500, "-₦2,500.00"},
	}
	for _, tc := range cases {
		if got := Currency(tc.amount); got != tc.want {
			t.Errorf("Currency(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local)
	s := Timestamp(at)
	if s != "2025-03-14 09:26:53" {
		t.Fatalf("Timestamp = %q", s)
	}
	parsed, ok := ParseTimestamp(s)
	if !ok {
		t.Fatal("ParseTimestamp failed on formatted value")
	}
	if !parsed.Equal(at) {
		t.Errorf("round trip drift: %v != %v", parsed, at)
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	if _, ok := ParseTimestamp("not a time"); ok {
		t.Error("expected parse failure for garbage input")
	}
	if _, ok := ParseTimestamp(""); ok {
		t.Error("expected parse failure for empty input")
	}
}

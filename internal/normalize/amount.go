// Package normalize provides the field-value normalizers applied while
// building canonical transactions: currency and date parsing, whitespace
// and casing cleanup, merchant and region canonicalization, and category
// path concatenation.
package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbolRe = regexp.MustCompile(`[€$£¥\s]`)

// ParseAmount parses a raw monetary string into a decimal value. Currency
// symbols and thousands separators are stripped before parsing; the sign is
// preserved since negative amounts drive refund detection. Returns nil for
// values that cannot be parsed - per-row failures are recoverable and must
// not abort a batch.
func ParseAmount(raw string) *decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	s = currencySymbolRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "'", "")

	// Accounting-style negatives: (10.00) means -10.00.
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + strings.Trim(s, "()")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// ParseAmountOrZero parses like ParseAmount but treats unparseable values
// as zero. Used when summing monetary columns where a bad cell should not
// poison the aggregate.
func ParseAmountOrZero(raw string) decimal.Decimal {
	if d := ParseAmount(raw); d != nil {
		return *d
	}
	return decimal.Zero
}

// FormatAmount formats a decimal as a display currency string with two
// decimal places, e.g. "$2353.88". Presentation only: aggregation always
// operates on decimal values, never on formatted strings.
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)
	switch strings.ToUpper(currency) {
	case "USD", "":
		return "$" + formatted
	case "EUR":
		return "€" + formatted
	case "GBP":
		return "£" + formatted
	default:
		return currency + " " + formatted
	}
}

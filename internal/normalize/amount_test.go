package normalize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		isNil    bool
	}{
		{"Simple decimal", "123.45", "123.45", false},
		{"Integer", "100", "100", false},
		{"Dollar sign", "$19.99", "19.99", false},
		{"Dollar sign with thousands comma", "$2,353.88", "2353.88", false},
		{"Negative with symbol", "-$10.00", "-10", false},
		{"Accounting negative", "(10.00)", "-10", false},
		{"Accounting negative with symbol", "($1,500.00)", "-1500", false},
		{"Euro symbol", "€123.45", "123.45", false},
		{"Apostrophe thousands separator", "1'234.56", "1234.56", false},
		{"Internal spaces", "1 234.56", "1234.56", false},
		{"Surrounding spaces", "  42.00  ", "42", false},
		{"Empty string", "", "", true},
		{"Whitespace only", "   ", "", true},
		{"Non-numeric", "abc", "", true},
		{"Double decimal point", "12.34.56", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseAmount(tc.raw)
			if tc.isNil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			expected, err := decimal.NewFromString(tc.expected)
			require.NoError(t, err)
			assert.True(t, expected.Equal(*result),
				"expected %s but got %s", expected.String(), result.String())
		})
	}
}

func TestParseAmountOrZero(t *testing.T) {
	assert.True(t, decimal.NewFromFloat(12.5).Equal(ParseAmountOrZero("$12.50")))
	assert.True(t, decimal.Zero.Equal(ParseAmountOrZero("garbage")))
	assert.True(t, decimal.Zero.Equal(ParseAmountOrZero("")))
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		expected string
	}{
		{"USD", decimal.NewFromFloat(2353.88), "USD", "$2353.88"},
		{"Default currency", decimal.NewFromFloat(10), "", "$10.00"},
		{"EUR", decimal.NewFromFloat(99.9), "EUR", "€99.90"},
		{"GBP", decimal.NewFromFloat(1.5), "GBP", "£1.50"},
		{"Other code", decimal.NewFromFloat(5), "CHF", "CHF 5.00"},
		{"Negative", decimal.NewFromFloat(-10.005), "USD", "$-10.01"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(tc.amount, tc.currency))
		})
	}
}

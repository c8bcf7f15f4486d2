package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchKey(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"Spaces dropped", "Order Date", "orderdate"},
		{"Underscores dropped", "Order_Date", "orderdate"},
		{"Already compact", "OrderDate", "orderdate"},
		{"Punctuation dropped", "State/Province", "stateprovince"},
		{"Digits kept", "Tax1", "tax1"},
		{"Empty", "", ""},
		{"Symbols only", "---", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MatchKey(tc.header))
		})
	}
}

func TestMapHeaders_AliasVariants(t *testing.T) {
	// Each spelling variant of the same header maps to the same field.
	for _, headers := range [][]string{
		{"Order Date", "Item Description", "Order Subtotal"},
		{"order_date", "item_description", "order_subtotal"},
		{"ORDERDATE", "ItemDescription", "OrderSubtotal"},
	} {
		m := MapHeaders(Marketplace(), headers)
		assert.Equal(t, 0, m.Columns[FieldTransactionDate], "headers %v", headers)
		assert.Equal(t, 1, m.Columns[FieldItemName], "headers %v", headers)
		assert.Equal(t, 2, m.Columns[FieldSubtotal], "headers %v", headers)
	}
}

func TestMapHeaders_PriorityOrder(t *testing.T) {
	// "Order Date" is declared before "Transaction Date" so it wins even
	// when both are present.
	m := MapHeaders(Marketplace(), []string{"Transaction Date", "Order Date"})
	assert.Equal(t, 1, m.Columns[FieldTransactionDate])
}

func TestMapHeaders_ColumnClaimedOnce(t *testing.T) {
	// Card declares "Total" for total price; once a column is claimed no
	// other field may claim it.
	m := MapHeaders(Card(), []string{"Transaction Amount", "Amount"})
	assert.Equal(t, 0, m.Columns[FieldTotalPrice])
	// The unclaimed "Amount" column must not leak into another field.
	for field, idx := range m.Columns {
		if field == FieldTotalPrice {
			continue
		}
		assert.NotEqual(t, 1, idx, "field %s claimed a duplicate column", field)
	}
}

func TestMapHeaders_UnmatchedFieldsAreNull(t *testing.T) {
	m := MapHeaders(Card(), []string{"Transaction Date", "Merchant Name"})

	require.Len(t, m.Columns, 9)
	assert.Equal(t, 0, m.Columns[FieldTransactionDate])
	assert.Equal(t, 1, m.Columns[FieldMerchantName])
	assert.Equal(t, -1, m.Columns[FieldItemName])
	assert.Equal(t, -1, m.Columns[FieldSubtotal])
	assert.Equal(t, -1, m.Columns[FieldTotalPrice])
}

func TestMapHeaders_NothingMatches(t *testing.T) {
	m := MapHeaders(Procurement(), []string{"Foo", "Bar"})
	require.Len(t, m.Columns, 9)
	for field, idx := range m.Columns {
		assert.Equal(t, -1, idx, "field %s", field)
	}
}

func TestMapHeaders_DuplicateRawHeaders(t *testing.T) {
	// First occurrence of a duplicated raw header wins.
	m := MapHeaders(Card(), []string{"Amount", "Amount"})
	assert.Equal(t, 0, m.Columns[FieldTotalPrice])
}

func TestMappingValue(t *testing.T) {
	m := MapHeaders(Card(), []string{"Transaction Date", "Amount"})
	row := []string{"2024-01-05", "-12.50"}

	v, ok := m.Value(row, FieldTotalPrice)
	assert.True(t, ok)
	assert.Equal(t, "-12.50", v)

	_, ok = m.Value(row, FieldItemName)
	assert.False(t, ok)

	// Short row reads as absent, not out of range.
	_, ok = m.Value([]string{"2024-01-05"}, FieldTotalPrice)
	assert.False(t, ok)
}

func TestBySource(t *testing.T) {
	for _, name := range []string{SourceMarketplace, SourceProcurement, SourceCard} {
		s, ok := BySource(name)
		assert.True(t, ok)
		assert.Equal(t, name, s.Name)
		assert.Len(t, s.Aliases, 9)
	}

	_, ok := BySource("unknown")
	assert.False(t, ok)
}

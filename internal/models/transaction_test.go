package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTransactionType(t *testing.T) {
	assert.Equal(t, TransactionTypePurchase, ClassifyTransactionType(decimal.NewFromFloat(12.50)))
	assert.Equal(t, TransactionTypePurchase, ClassifyTransactionType(decimal.Zero))
	assert.Equal(t, TransactionTypeRefund, ClassifyTransactionType(decimal.NewFromFloat(-0.01)))
}

func TestIsRefund(t *testing.T) {
	purchase := CanonicalTransaction{TransactionType: TransactionTypePurchase}
	refund := CanonicalTransaction{TransactionType: TransactionTypeRefund}

	assert.False(t, purchase.IsRefund())
	assert.True(t, refund.IsRefund())
}

func TestToCSVRow(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	qty := decimal.NewFromInt(3)
	subtotal := decimal.NewFromFloat(29.97)

	tx := CanonicalTransaction{
		TransactionDate: &date,
		ItemName:        "Copy Paper",
		Category:        "Office > Supplies",
		MerchantName:    "Staples",
		MerchantState:   "California",
		Quantity:        &qty,
		Subtotal:        &subtotal,
		SalesTax:        decimal.NewFromFloat(2.62),
		TotalPrice:      decimal.NewFromFloat(32.59),
		TransactionType: TransactionTypePurchase,
		MerchantType:    MerchantTypeExternal,
	}

	row := tx.ToCSVRow()
	assert.Equal(t, "2024-03-15", row.TransactionDate)
	assert.Equal(t, "Copy Paper", row.ItemName)
	assert.Equal(t, "3", row.Quantity)
	assert.Equal(t, "29.97", row.Subtotal)
	assert.Equal(t, "2.62", row.SalesTax)
	assert.Equal(t, "32.59", row.TotalPrice)
	assert.Equal(t, TransactionTypePurchase, row.TransactionType)
}

func TestToCSVRow_NilFieldsBlank(t *testing.T) {
	tx := CanonicalTransaction{
		ItemName:        "Misc",
		TotalPrice:      decimal.NewFromFloat(-5),
		TransactionType: TransactionTypeRefund,
		MerchantType:    MerchantTypeExternal,
	}

	row := tx.ToCSVRow()
	assert.Empty(t, row.TransactionDate)
	assert.Empty(t, row.Quantity)
	assert.Empty(t, row.Subtotal)
	assert.Equal(t, "0.00", row.SalesTax)
	assert.Equal(t, "-5.00", row.TotalPrice)
}

func TestCSVRowRoundTrip(t *testing.T) {
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	qty := decimal.NewFromInt(2)

	original := CanonicalTransaction{
		TransactionDate: &date,
		ItemName:        "Nitrile Gloves",
		Category:        "Lab",
		MerchantName:    "Fisher Scientific",
		MerchantState:   "New Hampshire",
		Quantity:        &qty,
		SalesTax:        decimal.NewFromFloat(1.10),
		TotalPrice:      decimal.NewFromFloat(13.25),
		TransactionType: TransactionTypePurchase,
		MerchantType:    MerchantTypeExternal,
	}

	row := original.ToCSVRow()
	restored := row.ToTransaction()

	require.NotNil(t, restored.TransactionDate)
	assert.True(t, restored.TransactionDate.Equal(date))
	assert.Equal(t, original.ItemName, restored.ItemName)
	assert.Equal(t, original.Category, restored.Category)
	assert.Equal(t, original.MerchantName, restored.MerchantName)
	assert.Equal(t, original.MerchantState, restored.MerchantState)
	require.NotNil(t, restored.Quantity)
	assert.True(t, restored.Quantity.Equal(qty))
	assert.Nil(t, restored.Subtotal)
	assert.True(t, restored.SalesTax.Equal(original.SalesTax))
	assert.True(t, restored.TotalPrice.Equal(original.TotalPrice))
	assert.Equal(t, original.TransactionType, restored.TransactionType)
	assert.Equal(t, original.MerchantType, restored.MerchantType)
}

func TestCanonicalColumnsShape(t *testing.T) {
	require.Len(t, CanonicalColumns, 11)
	assert.Equal(t, "Transaction Date", CanonicalColumns[0])
	assert.Equal(t, "Merchant Type", CanonicalColumns[len(CanonicalColumns)-1])
}

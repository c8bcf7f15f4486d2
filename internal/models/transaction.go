// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction type values derived from the sign of the parsed amount.
const (
	TransactionTypePurchase = "Purchase"
	TransactionTypeRefund   = "Refund"
)

// Merchant type values derived from the institution-internal merchant list.
const (
	MerchantTypeCampus   = "Campus"
	MerchantTypeExternal = "External"
)

// CanonicalTransaction is one normalized purchase line in the fixed target
// schema, independent of which source it came from. Instances are created
// fresh per pipeline run and never updated in place.
type CanonicalTransaction struct {
	TransactionDate *time.Time       // nil when the raw date was unparseable
	ItemName        string
	Category        string
	MerchantName    string
	MerchantState   string
	Quantity        *decimal.Decimal // nil when absent or unparseable
	Subtotal        *decimal.Decimal // nil for sources reporting totals directly
	SalesTax        decimal.Decimal  // zero when absent
	TotalPrice      decimal.Decimal  // always present; rows without one are dropped
	TransactionType string           // TransactionTypePurchase or TransactionTypeRefund
	MerchantType    string           // MerchantTypeCampus or MerchantTypeExternal
}

// IsRefund returns true if the transaction is a refund (negative amount).
func (t *CanonicalTransaction) IsRefund() bool {
	return t.TransactionType == TransactionTypeRefund
}

// ClassifyTransactionType derives the transaction type from the signed amount.
func ClassifyTransactionType(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return TransactionTypeRefund
	}
	return TransactionTypePurchase
}

// CanonicalColumns is the fixed output column order for canonical CSVs.
// Downstream consumers rely on this shape regardless of source.
var CanonicalColumns = []string{
	"Transaction Date",
	"Item Name",
	"Category",
	"Merchant Name",
	"Merchant State",
	"Quantity",
	"Subtotal",
	"Sales Tax",
	"Total Price",
	"Transaction Type",
	"Merchant Type",
}

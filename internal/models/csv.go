package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCSVRow is the gocsv-tagged row used when reading and writing
// canonical CSV files. Amounts are formatted with two decimal places and
// dates as YYYY-MM-DD at emission time only; all in-memory computation
// happens on CanonicalTransaction's decimal and time values.
type TransactionCSVRow struct {
	TransactionDate string `csv:"Transaction Date"`
	ItemName        string `csv:"Item Name"`
	Category        string `csv:"Category"`
	MerchantName    string `csv:"Merchant Name"`
	MerchantState   string `csv:"Merchant State"`
	Quantity        string `csv:"Quantity"`
	Subtotal        string `csv:"Subtotal"`
	SalesTax        string `csv:"Sales Tax"`
	TotalPrice      string `csv:"Total Price"`
	TransactionType string `csv:"Transaction Type"`
	MerchantType    string `csv:"Merchant Type"`
}

const csvDateLayout = "2006-01-02"

// ToCSVRow converts a canonical transaction to its CSV representation.
func (t *CanonicalTransaction) ToCSVRow() TransactionCSVRow {
	row := TransactionCSVRow{
		ItemName:        t.ItemName,
		Category:        t.Category,
		MerchantName:    t.MerchantName,
		MerchantState:   t.MerchantState,
		SalesTax:        t.SalesTax.StringFixed(2),
		TotalPrice:      t.TotalPrice.StringFixed(2),
		TransactionType: t.TransactionType,
		MerchantType:    t.MerchantType,
	}
	if t.TransactionDate != nil {
		row.TransactionDate = t.TransactionDate.Format(csvDateLayout)
	}
	if t.Quantity != nil {
		row.Quantity = t.Quantity.String()
	}
	if t.Subtotal != nil {
		row.Subtotal = t.Subtotal.StringFixed(2)
	}
	return row
}

// ToTransaction converts a CSV row back to a canonical transaction.
// Blank cells map back to nil fields; a blank total parses as zero since
// cleaned files are guaranteed to carry one.
func (r *TransactionCSVRow) ToTransaction() CanonicalTransaction {
	tx := CanonicalTransaction{
		ItemName:        r.ItemName,
		Category:        r.Category,
		MerchantName:    r.MerchantName,
		MerchantState:   r.MerchantState,
		TransactionType: r.TransactionType,
		MerchantType:    r.MerchantType,
	}
	if r.TransactionDate != "" {
		if d, err := time.Parse(csvDateLayout, r.TransactionDate); err == nil {
			tx.TransactionDate = &d
		}
	}
	if r.Quantity != "" {
		if q, err := decimal.NewFromString(r.Quantity); err == nil {
			tx.Quantity = &q
		}
	}
	if r.Subtotal != "" {
		if s, err := decimal.NewFromString(r.Subtotal); err == nil {
			tx.Subtotal = &s
		}
	}
	if r.SalesTax != "" {
		if tax, err := decimal.NewFromString(r.SalesTax); err == nil {
			tx.SalesTax = tax
		}
	}
	if r.TotalPrice != "" {
		if total, err := decimal.NewFromString(r.TotalPrice); err == nil {
			tx.TotalPrice = total
		}
	}
	return tx
}

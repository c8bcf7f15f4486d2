// Package schema declares the per-source column-alias contracts and maps
// arbitrary raw headers onto the canonical field set.
package schema

// Canonical field names shared by all sources. Every mapped frame exposes
// exactly this set of fields, null-filled where the source has no match.
const (
	FieldTransactionDate = "transaction_date"
	FieldItemName        = "item_name"
	FieldCategory        = "category"
	FieldMerchantName    = "merchant_name"
	FieldMerchantState   = "merchant_state"
	FieldQuantity        = "quantity"
	FieldSubtotal        = "subtotal"
	FieldSalesTax        = "sales_tax"
	FieldTotalPrice      = "total_price"
)

// Alias declares the acceptable raw-header variants for one canonical
// field, in priority order: the first variant that matches a raw header
// wins when more than one could apply.
type Alias struct {
	Field    string
	Variants []string
}

// SourceSchema is the declared column-alias contract for one input source.
// Immutable; loaded once per source at pipeline start.
type SourceSchema struct {
	Name    string
	Aliases []Alias
}

// Source names for the three declared feeds.
const (
	SourceMarketplace = "marketplace"
	SourceProcurement = "procurement"
	SourceCard        = "card"
)

// Marketplace is the business-marketplace export schema (Amazon-style
// order feed: item totals reported directly, merchant state present).
func Marketplace() SourceSchema {
	return SourceSchema{
		Name: SourceMarketplace,
		Aliases: []Alias{
			{FieldTransactionDate, []string{"Order Date", "Transaction Date", "Date"}},
			{FieldItemName, []string{"Item Description", "Title", "Product Name"}},
			{FieldCategory, []string{"Item Category", "Category"}},
			{FieldMerchantName, []string{"Merchant Name", "Seller Name", "Seller"}},
			{FieldMerchantState, []string{"Seller State", "Merchant State", "State"}},
			{FieldQuantity, []string{"Order Quantity", "Quantity", "Qty"}},
			{FieldSubtotal, []string{"Order Subtotal", "Subtotal"}},
			{FieldSalesTax, []string{"Order Tax", "Sales Tax", "Tax"}},
			{FieldTotalPrice, []string{"Order Net Total", "Total Price", "Total"}},
		},
	}
}

// Procurement is the campus e-procurement export schema. Totals are split
// into subtotal and tax, and the category is a multi-level hierarchy that
// gets concatenated by the cleaner.
func Procurement() SourceSchema {
	return SourceSchema{
		Name: SourceProcurement,
		Aliases: []Alias{
			{FieldTransactionDate, []string{"Creation Date", "PO Date", "Transaction Date"}},
			{FieldItemName, []string{"Item Description", "Product Description", "Description"}},
			{FieldCategory, []string{"Product Category", "Category Name"}},
			{FieldMerchantName, []string{"Supplier Name", "Supplier", "Vendor Name", "Manufacturer"}},
			{FieldMerchantState, []string{"Supplier State", "State"}},
			{FieldQuantity, []string{"Quantity", "QTY Ordered"}},
			{FieldSubtotal, []string{"Extended Price", "Line Total", "Subtotal"}},
			{FieldSalesTax, []string{"Tax Amount", "Tax1", "Sales Tax"}},
			{FieldTotalPrice, []string{"Total Price", "Net Amount"}},
		},
	}
}

// Card is the corporate-card export schema. Only a signed transaction
// amount is reported; tax is never split out.
func Card() SourceSchema {
	return SourceSchema{
		Name: SourceCard,
		Aliases: []Alias{
			{FieldTransactionDate, []string{"Transaction Date", "Trans Date", "Posting Date"}},
			{FieldItemName, []string{"Item Name", "ITEM_DSC", "Line Item Description"}},
			{FieldCategory, []string{"Merchant Category", "MCC Description"}},
			{FieldMerchantName, []string{"Merchant Name", "MERCHANT_NME", "Vendor"}},
			{FieldMerchantState, []string{"Merchant State", "MERCHANT_ST", "State/Province"}},
			{FieldQuantity, []string{"Quantity", "ITEM_QTY"}},
			{FieldSubtotal, nil},
			{FieldSalesTax, []string{"Sales Tax", "TAX_AMT"}},
			{FieldTotalPrice, []string{"Transaction Amount", "Amount", "Total"}},
		},
	}
}

// BySource returns the declared schema for a source name, or false when
// the source is unknown.
func BySource(name string) (SourceSchema, bool) {
	switch name {
	case SourceMarketplace:
		return Marketplace(), true
	case SourceProcurement:
		return Procurement(), true
	case SourceCard:
		return Card(), true
	}
	return SourceSchema{}, false
}

// Package cleaner turns raw source tables into canonical transactions.
// One engine handles every source; the behavioral differences between the
// three feeds live in per-source Profiles instead of diverging per-source
// cleaning functions.
package cleaner

import "campusfin/procure-csv/internal/schema"

// Profile is a source cleaning profile: the source's alias table plus the
// normalization flags that legitimately differ between feeds.
type Profile struct {
	Schema schema.SourceSchema

	// SplitSubtotalTax selects how the total price is derived: true means
	// total = subtotal + tax (tax nil -> 0) and a row without a parseable
	// subtotal is dropped; false means the total column is used directly
	// and a row without a parseable total is dropped.
	SplitSubtotalTax bool

	// ZeroQuantityValid keeps zero quantities as real values. The feeds
	// disagree on whether zero means "unknown" or "zero"; the original
	// behavior differs per source without clear justification, so it is
	// carried as configuration.
	ZeroQuantityValid bool

	// DropUnparsableDate drops rows whose date cannot be parsed instead of
	// keeping them with a null date for downstream filtering.
	DropUnparsableDate bool

	// NormalizeMerchant applies the code-stripping merchant pipeline and
	// canonical-map lookup. Feeds with clean seller names skip it and get
	// plain title-casing.
	NormalizeMerchant bool

	// CategoryLevelHeaders lists raw hierarchy-level headers joined in
	// front of the mapped category leaf. Empty for flat-category feeds.
	CategoryLevelHeaders []string
}

// MarketplaceProfile returns the cleaning profile for the marketplace
// export: subtotal+tax totals, seller names already clean, zero quantity
// means unknown.
func MarketplaceProfile() Profile {
	return Profile{
		Schema:            schema.Marketplace(),
		SplitSubtotalTax:  true,
		ZeroQuantityValid: false,
		NormalizeMerchant: false,
	}
}

// ProcurementProfile returns the cleaning profile for the campus
// e-procurement export: subtotal+tax totals and a hierarchical category
// path.
func ProcurementProfile() Profile {
	return Profile{
		Schema:            schema.Procurement(),
		SplitSubtotalTax:  true,
		ZeroQuantityValid: true,
		NormalizeMerchant: false,
		CategoryLevelHeaders: []string{
			"Category Level 1",
			"Category Level 2",
			"Category Level 3",
		},
	}
}

// CardProfile returns the cleaning profile for the corporate-card export:
// signed direct totals and noisy merchant strings that need the full
// canonicalization pipeline.
func CardProfile() Profile {
	return Profile{
		Schema:             schema.Card(),
		SplitSubtotalTax:   false,
		ZeroQuantityValid:  true,
		DropUnparsableDate: true,
		NormalizeMerchant:  true,
	}
}

// ProfileBySource returns the declared profile for a source name.
func ProfileBySource(name string) (Profile, bool) {
	switch name {
	case schema.SourceMarketplace:
		return MarketplaceProfile(), true
	case schema.SourceProcurement:
		return ProcurementProfile(), true
	case schema.SourceCard:
		return CardProfile(), true
	}
	return Profile{}, false
}

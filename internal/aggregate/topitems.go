// Package aggregate implements the summary computations consumed by the
// dashboard: ranked top-item and top-value aggregations, cross-batch
// summary merging, time-bucketed spend series and demand scoring. All
// aggregations are deterministic and mergeable across ingestion batches.
package aggregate

import (
	"sort"
	"strings"

	"campusfin/procure-csv/internal/models"

	"github.com/shopspring/decimal"
)

// TopItemsOptions selects the fields and limit for a top-item aggregation.
// Nil selectors fall back to the canonical item / total / merchant fields.
type TopItemsOptions struct {
	Limit       int
	ItemField   func(*models.CanonicalTransaction) string
	AmountField func(*models.CanonicalTransaction) decimal.Decimal
	VendorField func(*models.CanonicalTransaction) string
}

func (o *TopItemsOptions) applyDefaults() {
	if o.Limit <= 0 {
		o.Limit = 20
	}
	if o.ItemField == nil {
		o.ItemField = func(tx *models.CanonicalTransaction) string { return tx.ItemName }
	}
	if o.AmountField == nil {
		o.AmountField = func(tx *models.CanonicalTransaction) decimal.Decimal { return tx.TotalPrice }
	}
	if o.VendorField == nil {
		o.VendorField = func(tx *models.CanonicalTransaction) string { return tx.MerchantName }
	}
}

type itemGroup struct {
	name       string
	count      int
	totalSpent decimal.Decimal
	vendors    map[string]struct{}
	firstSeen  int
}

// TopItems groups transactions by exact cleaned item name, counting rows,
// summing spend and collecting distinct vendors, then returns the top N
// groups by count. Names on the blacklist are excluded case-insensitively,
// as is single-character noise. Ties keep first-seen row order (stable).
func TopItems(transactions []models.CanonicalTransaction, blacklist map[string]struct{}, opts TopItemsOptions) []models.TopCountItem {
	opts.applyDefaults()

	groups := make(map[string]*itemGroup)
	var order []*itemGroup

	for i := range transactions {
		tx := &transactions[i]
		name := strings.TrimSpace(opts.ItemField(tx))
		if len([]rune(name)) <= 1 {
			continue
		}
		if _, banned := blacklist[strings.ToLower(name)]; banned {
			continue
		}

		g, ok := groups[name]
		if !ok {
			g = &itemGroup{name: name, vendors: make(map[string]struct{}), firstSeen: i}
			groups[name] = g
			order = append(order, g)
		}
		g.count++
		g.totalSpent = g.totalSpent.Add(opts.AmountField(tx))
		if vendor := opts.VendorField(tx); vendor != "" {
			g.vendors[vendor] = struct{}{}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})
	if len(order) > opts.Limit {
		order = order[:opts.Limit]
	}

	items := make([]models.TopCountItem, 0, len(order))
	for _, g := range order {
		items = append(items, models.TopCountItem{
			Name:       g.name,
			Count:      g.count,
			TotalSpent: roundedFloat(g.totalSpent),
			Vendors:    sortedKeys(g.vendors),
		})
	}
	return items
}

// TopValues is the plain frequency aggregation over one categorical field
// (top merchants, top states). Empty values count under the fill label.
func TopValues(transactions []models.CanonicalTransaction, field func(*models.CanonicalTransaction) string, limit int, fillValue string) []models.TopCountItem {
	if limit <= 0 {
		limit = 10
	}

	type valueGroup struct {
		name  string
		count int
	}
	groups := make(map[string]*valueGroup)
	var order []*valueGroup

	for i := range transactions {
		name := strings.TrimSpace(field(&transactions[i]))
		if name == "" {
			name = fillValue
		}
		g, ok := groups[name]
		if !ok {
			g = &valueGroup{name: name}
			groups[name] = g
			order = append(order, g)
		}
		g.count++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})
	if len(order) > limit {
		order = order[:limit]
	}

	items := make([]models.TopCountItem, 0, len(order))
	for _, g := range order {
		items = append(items, models.TopCountItem{Name: g.name, Count: g.count})
	}
	return items
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func roundedFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

package aggregate

import (
	"sort"
	"strings"

	"campusfin/procure-csv/internal/models"
	"campusfin/procure-csv/internal/normalize"

	"github.com/shopspring/decimal"
)

// StoredItem is one top-item entry read back from a previously-computed
// summary document. TotalSpent is loosely typed because upstream summaries
// may have applied display formatting ("$2,353.88") before storage; the
// merge reparses such strings defensively.
type StoredItem struct {
	Name       string
	Count      int
	TotalSpent interface{}
	Vendors    []string
}

// MergeTopItems combines top-item summaries from multiple batches (one
// slice per dataset) into a single ranked list: groups are joined by exact
// item-name equality, counts and spend are summed, vendor sets unioned,
// and the contributing dataset names recorded. Ranking is by summed count
// descending, truncated to limit. Datasets are processed in sorted name
// order so the result is deterministic.
func MergeTopItems(byDataset map[string][]StoredItem, limit int) []models.TopCountItem {
	if limit <= 0 {
		limit = 20
	}

	datasets := make([]string, 0, len(byDataset))
	for name := range byDataset {
		datasets = append(datasets, name)
	}
	sort.Strings(datasets)

	type mergedGroup struct {
		name    string
		count   int
		total   decimal.Decimal
		vendors map[string]struct{}
		sources map[string]struct{}
	}
	groups := make(map[string]*mergedGroup)
	var order []*mergedGroup

	for _, dataset := range datasets {
		for _, item := range byDataset[dataset] {
			g, ok := groups[item.Name]
			if !ok {
				g = &mergedGroup{
					name:    item.Name,
					vendors: make(map[string]struct{}),
					sources: make(map[string]struct{}),
				}
				groups[item.Name] = g
				order = append(order, g)
			}
			g.count += item.Count
			g.total = g.total.Add(parseMonetary(item.TotalSpent))
			for _, v := range item.Vendors {
				g.vendors[v] = struct{}{}
			}
			g.sources[strings.ToUpper(dataset)] = struct{}{}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})
	if len(order) > limit {
		order = order[:limit]
	}

	items := make([]models.TopCountItem, 0, len(order))
	for _, g := range order {
		items = append(items, models.TopCountItem{
			Name:       g.name,
			Count:      g.count,
			TotalSpent: roundedFloat(g.total),
			Vendors:    sortedKeys(g.vendors),
			Sources:    sortedKeys(g.sources),
		})
	}
	return items
}

// parseMonetary coerces a stored total to a decimal: numeric types pass
// through, strings are reparsed through the currency parser, anything else
// counts as zero.
func parseMonetary(v interface{}) decimal.Decimal {
	switch val := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return val
	case float64:
		return decimal.NewFromFloat(val)
	case float32:
		return decimal.NewFromFloat32(val)
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	case string:
		return normalize.ParseAmountOrZero(val)
	default:
		return decimal.Zero
	}
}

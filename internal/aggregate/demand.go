package aggregate

import (
	"sort"
	"time"

	"campusfin/procure-csv/internal/models"
)

// Demand score weights: recent quantity dominates, then purchase
// frequency, then recency.
const (
	demandWeightQuantity = 0.6
	demandWeightCount    = 0.3
	demandWeightRecency  = 0.1
)

// Restock band labels.
const (
	BandImmediateRestock = "immediate restock"
	BandUpcomingRestock  = "upcoming restock"
)

// ItemDemand is one item group entering demand ranking.
type ItemDemand struct {
	Name                  string
	Quantity              float64
	PurchaseCount         int
	DaysSinceLastPurchase int
}

// RankedDemand is an item with its composite score and restock band.
type RankedDemand struct {
	ItemDemand
	Score float64
	Band  string
}

// DemandOptions controls demand ranking.
type DemandOptions struct {
	// SplitPoint is the rank (1-based) after which items move from the
	// immediate band to the upcoming band.
	SplitPoint int
	// RecencyWindowDays bounds how recent a purchase must be for the
	// weighted score to apply. When no item falls inside the window the
	// ranking degrades to raw purchase volume.
	RecencyWindowDays int
}

func (o *DemandOptions) applyDefaults() {
	if o.SplitPoint <= 0 {
		o.SplitPoint = 5
	}
	if o.RecencyWindowDays <= 0 {
		o.RecencyWindowDays = 90
	}
}

// BuildItemDemand groups canonical transactions by item name into demand
// inputs: summed quantity (count fallback when quantity is absent),
// purchase count, and days since the most recent purchase relative to now.
// Rows without a date or name are skipped.
func BuildItemDemand(transactions []models.CanonicalTransaction, now time.Time) []ItemDemand {
	type group struct {
		quantity float64
		count    int
		last     time.Time
	}
	groups := make(map[string]*group)
	var names []string

	for i := range transactions {
		tx := &transactions[i]
		if tx.ItemName == "" || tx.TransactionDate == nil || tx.IsRefund() {
			continue
		}
		g, ok := groups[tx.ItemName]
		if !ok {
			g = &group{}
			groups[tx.ItemName] = g
			names = append(names, tx.ItemName)
		}
		g.count++
		if tx.Quantity != nil {
			q, _ := tx.Quantity.Float64()
			g.quantity += q
		} else {
			g.quantity++
		}
		if tx.TransactionDate.After(g.last) {
			g.last = *tx.TransactionDate
		}
	}

	items := make([]ItemDemand, 0, len(names))
	for _, name := range names {
		g := groups[name]
		days := int(now.Sub(g.last).Hours() / 24)
		if days < 0 {
			days = 0
		}
		items = append(items, ItemDemand{
			Name:                  name,
			Quantity:              g.quantity,
			PurchaseCount:         g.count,
			DaysSinceLastPurchase: days,
		})
	}
	return items
}

// RankDemand scores and ranks item groups by restock priority. The score
// is a weighted composite of normalized quantity, purchase count and
// recency; every normalizing maximum is floored at 1 so the score is
// always defined and bounded in [0,1]. If no item falls inside the recency
// window the weighted score is abandoned and items rank by raw purchase
// volume instead.
func RankDemand(items []ItemDemand, opts DemandOptions) []RankedDemand {
	opts.applyDefaults()
	if len(items) == 0 {
		return nil
	}

	maxQuantity, maxCount, maxDays := 1.0, 1.0, 1.0
	anyRecent := false
	for _, item := range items {
		if item.Quantity > maxQuantity {
			maxQuantity = item.Quantity
		}
		if float64(item.PurchaseCount) > maxCount {
			maxCount = float64(item.PurchaseCount)
		}
		if float64(item.DaysSinceLastPurchase) > maxDays {
			maxDays = float64(item.DaysSinceLastPurchase)
		}
		if item.DaysSinceLastPurchase <= opts.RecencyWindowDays {
			anyRecent = true
		}
	}

	ranked := make([]RankedDemand, 0, len(items))
	for _, item := range items {
		var score float64
		if anyRecent {
			score = demandWeightQuantity*(item.Quantity/maxQuantity) +
				demandWeightCount*(float64(item.PurchaseCount)/maxCount) +
				demandWeightRecency*((maxDays-float64(item.DaysSinceLastPurchase))/maxDays)
		} else {
			score = float64(item.PurchaseCount) / maxCount
		}
		ranked = append(ranked, RankedDemand{ItemDemand: item, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	for i := range ranked {
		if i < opts.SplitPoint {
			ranked[i].Band = BandImmediateRestock
		} else {
			ranked[i].Band = BandUpcomingRestock
		}
	}
	return ranked
}

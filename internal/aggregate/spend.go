package aggregate

import (
	"sort"

	"campusfin/procure-csv/internal/models"
	"campusfin/procure-csv/internal/normalize"
	"campusfin/procure-csv/internal/pipeerror"

	"github.com/shopspring/decimal"
)

// Interval selects the time bucket for spend aggregation.
type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
)

// ValidateInterval rejects unknown interval selectors. An invalid interval
// is a configuration error: it fails immediately, is never retried and
// never silently defaulted.
func ValidateInterval(interval Interval) error {
	switch interval {
	case IntervalDay, IntervalWeek, IntervalMonth:
		return nil
	}
	return &pipeerror.ConfigError{
		Parameter: "interval",
		Value:     string(interval),
		Msg:       "must be day, week or month",
	}
}

// SpendOptions controls a spend-over-time aggregation.
type SpendOptions struct {
	Interval Interval
	// IncludeRefunds keeps refund rows in the sums. When false, rows
	// classified as refunds are dropped; rows without an explicit type
	// fall back to the amount sign.
	IncludeRefunds bool
	// AmountField defaults to the total price.
	AmountField func(*models.CanonicalTransaction) decimal.Decimal
}

// SpendOverTime buckets spend by calendar period and returns the series in
// ascending period order, each value rounded to two decimal places. Rows
// without a parseable date are excluded, not zero-filled.
func SpendOverTime(transactions []models.CanonicalTransaction, opts SpendOptions) ([]models.SpendPoint, error) {
	if err := ValidateInterval(opts.Interval); err != nil {
		return nil, err
	}
	amountField := opts.AmountField
	if amountField == nil {
		amountField = func(tx *models.CanonicalTransaction) decimal.Decimal { return tx.TotalPrice }
	}

	sums := make(map[string]decimal.Decimal)
	for i := range transactions {
		tx := &transactions[i]
		if tx.TransactionDate == nil {
			continue
		}
		amount := amountField(tx)
		if !opts.IncludeRefunds && isRefund(tx, amount) {
			continue
		}

		var period string
		switch opts.Interval {
		case IntervalDay:
			period = tx.TransactionDate.Format("2006-01-02")
		case IntervalWeek:
			period = normalize.ISOWeek(*tx.TransactionDate)
		case IntervalMonth:
			period = tx.TransactionDate.Format("2006-01")
		}
		sums[period] = sums[period].Add(amount)
	}

	return sortedSpendPoints(sums), nil
}

// CombineSpendSeries merges same-period sums across several per-source
// series into one combined series, ascending by period.
func CombineSpendSeries(series map[string][]models.SpendPoint) []models.SpendPoint {
	sums := make(map[string]decimal.Decimal)
	for _, points := range series {
		for _, p := range points {
			sums[p.Period] = sums[p.Period].Add(decimal.NewFromFloat(p.Spend))
		}
	}
	return sortedSpendPoints(sums)
}

func isRefund(tx *models.CanonicalTransaction, amount decimal.Decimal) bool {
	if tx.TransactionType != "" {
		return tx.TransactionType == models.TransactionTypeRefund
	}
	return amount.IsNegative()
}

func sortedSpendPoints(sums map[string]decimal.Decimal) []models.SpendPoint {
	periods := make([]string, 0, len(sums))
	for period := range sums {
		periods = append(periods, period)
	}
	sort.Strings(periods)

	points := make([]models.SpendPoint, 0, len(periods))
	for _, period := range periods {
		points = append(points, models.SpendPoint{
			Period: period,
			Spend:  roundedFloat(sums[period]),
		})
	}
	return points
}

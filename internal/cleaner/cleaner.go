package cleaner

import (
	"errors"
	"strings"

	"campusfin/procure-csv/internal/logging"
	"campusfin/procure-csv/internal/models"
	"campusfin/procure-csv/internal/normalize"
	"campusfin/procure-csv/internal/pipeerror"
	"campusfin/procure-csv/internal/rules"
	"campusfin/procure-csv/internal/schema"
	"campusfin/procure-csv/internal/tabular"
)

var errUnparsable = errors.New("unparseable value")

// Result carries the canonical output of one source's cleaning run.
type Result struct {
	Transactions []models.CanonicalTransaction
	// Dropped counts rows excluded for lacking a parseable total price
	// (or date, when the profile requires one).
	Dropped int
}

// Cleaner is the single cleaning engine, parameterized per source by a
// Profile and sharing one read-only rule table across sources.
type Cleaner struct {
	rules  *rules.Table
	logger logging.Logger
}

// New creates a cleaning engine over the given rule tables.
func New(ruleTable *rules.Table, logger logging.Logger) *Cleaner {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Cleaner{rules: ruleTable, logger: logger}
}

// Clean maps a raw table onto the canonical shape and normalizes every
// row. Per-row failures null the offending field or drop the row; Clean
// itself never fails on data.
func (c *Cleaner) Clean(table tabular.Table, profile Profile) Result {
	mapping := schema.MapHeaders(profile.Schema, table.Headers)
	levelIdx := categoryLevelIndexes(table.Headers, profile.CategoryLevelHeaders)

	log := c.logger.WithField(logging.FieldSource, profile.Schema.Name)

	var result Result
	for _, row := range table.Rows {
		tx, err := c.cleanRow(row, mapping, levelIdx, profile)
		if err != nil {
			result.Dropped++
			log.Debug("Dropped row",
				logging.Field{Key: logging.FieldError, Value: err.Error()})
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}

	log.Info("Cleaned source table",
		logging.Field{Key: logging.FieldCount, Value: len(result.Transactions)},
		logging.Field{Key: logging.FieldDropped, Value: result.Dropped})
	return result
}

func (c *Cleaner) cleanRow(row []string, mapping schema.Mapping, levelIdx []int, profile Profile) (models.CanonicalTransaction, error) {
	var tx models.CanonicalTransaction
	source := profile.Schema.Name

	rawDate, _ := mapping.Value(row, schema.FieldTransactionDate)
	tx.TransactionDate = normalize.ParseDate(rawDate)
	if tx.TransactionDate == nil && profile.DropUnparsableDate {
		return tx, &pipeerror.ParseError{
			Source: source, Field: schema.FieldTransactionDate, Value: rawDate, Err: errUnparsable,
		}
	}

	// Total price is the one hard requirement: every surviving row carries
	// a numeric total, either direct or derived from subtotal + tax.
	rawTax, _ := mapping.Value(row, schema.FieldSalesTax)
	if tax := normalize.ParseAmount(rawTax); tax != nil {
		tx.SalesTax = *tax
	}
	if profile.SplitSubtotalTax {
		rawSubtotal, _ := mapping.Value(row, schema.FieldSubtotal)
		subtotal := normalize.ParseAmount(rawSubtotal)
		if subtotal == nil {
			return tx, &pipeerror.ParseError{
				Source: source, Field: schema.FieldSubtotal, Value: rawSubtotal, Err: errUnparsable,
			}
		}
		tx.Subtotal = subtotal
		tx.TotalPrice = subtotal.Add(tx.SalesTax)
	} else {
		rawTotal, _ := mapping.Value(row, schema.FieldTotalPrice)
		total := normalize.ParseAmount(rawTotal)
		if total == nil {
			return tx, &pipeerror.ParseError{
				Source: source, Field: schema.FieldTotalPrice, Value: rawTotal, Err: errUnparsable,
			}
		}
		tx.TotalPrice = *total
	}
	tx.TransactionType = models.ClassifyTransactionType(tx.TotalPrice)

	rawQty, _ := mapping.Value(row, schema.FieldQuantity)
	if qty := normalize.ParseAmount(rawQty); qty != nil {
		if !qty.IsNegative() && (profile.ZeroQuantityValid || !qty.IsZero()) {
			tx.Quantity = qty
		}
	}

	rawItem, _ := mapping.Value(row, schema.FieldItemName)
	tx.ItemName = normalize.TitleCase(rawItem)

	rawMerchant, _ := mapping.Value(row, schema.FieldMerchantName)
	if profile.NormalizeMerchant {
		tx.MerchantName = normalize.CanonicalMerchant(rawMerchant, c.rules.MerchantMap, c.rules.SpecialPrefixes)
	} else {
		tx.MerchantName = normalize.TitleCase(rawMerchant)
	}
	tx.MerchantType = c.classifyMerchantType(tx.MerchantName)

	rawState, _ := mapping.Value(row, schema.FieldMerchantState)
	tx.MerchantState = normalize.CanonicalRegion(rawState, c.rules.RegionMap)

	rawCategory, _ := mapping.Value(row, schema.FieldCategory)
	if len(levelIdx) > 0 {
		levels := make([]string, 0, len(levelIdx))
		for _, idx := range levelIdx {
			if idx >= 0 && idx < len(row) {
				levels = append(levels, row[idx])
			}
		}
		tx.Category = normalize.JoinCategoryPath(levels, rawCategory)
	} else {
		tx.Category = normalize.TitleCase(rawCategory)
	}

	return tx, nil
}

// ItemBlacklist exposes the engine's aggregation blacklist so downstream
// summaries filter with the same table the cleaning run used.
func (c *Cleaner) ItemBlacklist() map[string]struct{} {
	return c.rules.ItemBlacklist
}

// classifyMerchantType labels a merchant Campus when its canonical name
// matches one of the institution-internal names, else External.
func (c *Cleaner) classifyMerchantType(merchantName string) string {
	if merchantName == "" {
		return models.MerchantTypeExternal
	}
	lower := strings.ToLower(merchantName)
	for _, campus := range c.rules.CampusMerchants {
		if strings.Contains(lower, strings.ToLower(campus)) {
			return models.MerchantTypeCampus
		}
	}
	return models.MerchantTypeExternal
}

// categoryLevelIndexes resolves the profile's hierarchy-level headers to
// raw column indexes, matching the same way the schema mapper matches
// aliases. Missing levels resolve to -1 and are skipped.
func categoryLevelIndexes(headers []string, levelHeaders []string) []int {
	if len(levelHeaders) == 0 {
		return nil
	}
	byKey := make(map[string]int, len(headers))
	for i, h := range headers {
		key := schema.MatchKey(h)
		if _, seen := byKey[key]; !seen {
			byKey[key] = i
		}
	}
	idx := make([]int, len(levelHeaders))
	for i, h := range levelHeaders {
		if j, ok := byKey[schema.MatchKey(h)]; ok {
			idx[i] = j
		} else {
			idx[i] = -1
		}
	}
	return idx
}

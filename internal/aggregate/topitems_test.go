package aggregate

import (
	"testing"

	"campusfin/procure-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchase(item, merchant string, total float64) models.CanonicalTransaction {
	return models.CanonicalTransaction{
		ItemName:        item,
		MerchantName:    merchant,
		TotalPrice:      decimal.NewFromFloat(total),
		TransactionType: models.TransactionTypePurchase,
	}
}

func TestTopItems(t *testing.T) {
	transactions := []models.CanonicalTransaction{
		purchase("Copy Paper", "Staples", 10),
		purchase("Copy Paper", "Amazon", 12),
		purchase("Copy Paper", "Staples", 8),
		purchase("Toner", "Staples", 60),
		purchase("Toner", "Staples", 55),
		purchase("Gloves", "Fisher", 20),
	}

	items := TopItems(transactions, nil, TopItemsOptions{Limit: 2})

	require.Len(t, items, 2)
	assert.Equal(t, "Copy Paper", items[0].Name)
	assert.Equal(t, 3, items[0].Count)
	assert.InDelta(t, 30.0, items[0].TotalSpent, 0.001)
	assert.Equal(t, []string{"Amazon", "Staples"}, items[0].Vendors)

	assert.Equal(t, "Toner", items[1].Name)
	assert.Equal(t, 2, items[1].Count)
}

func TestTopItems_BlacklistCaseInsensitive(t *testing.T) {
	blacklist := map[string]struct{}{
		"noncatalog product": {},
	}
	transactions := []models.CanonicalTransaction{
		purchase("NonCatalog Product", "X", 5),
		purchase("NONCATALOG PRODUCT", "X", 5),
		purchase("Real Item", "X", 5),
	}

	items := TopItems(transactions, blacklist, TopItemsOptions{})

	require.Len(t, items, 1)
	assert.Equal(t, "Real Item", items[0].Name)
}

func TestTopItems_SingleCharacterNoiseExcluded(t *testing.T) {
	transactions := []models.CanonicalTransaction{
		purchase("-", "X", 5),
		purchase("A", "X", 5),
		purchase(" ", "X", 5),
		purchase("OK", "X", 5),
	}

	items := TopItems(transactions, nil, TopItemsOptions{})

	require.Len(t, items, 1)
	assert.Equal(t, "OK", items[0].Name)
}

func TestTopItems_TiesKeepFirstSeenOrder(t *testing.T) {
	transactions := []models.CanonicalTransaction{
		purchase("Beta", "X", 1),
		purchase("Alpha", "X", 1),
	}

	items := TopItems(transactions, nil, TopItemsOptions{})

	require.Len(t, items, 2)
	assert.Equal(t, "Beta", items[0].Name)
	assert.Equal(t, "Alpha", items[1].Name)
}

func TestTopItems_ExactNameGrouping(t *testing.T) {
	// Distinct cleaned names never merge, even when similar.
	transactions := []models.CanonicalTransaction{
		purchase("Glove Large", "X", 1),
		purchase("Glove  Large", "X", 1),
	}

	items := TopItems(transactions, nil, TopItemsOptions{})
	assert.Len(t, items, 2)
}

func TestTopValues(t *testing.T) {
	transactions := []models.CanonicalTransaction{
		purchase("A", "Staples", 1),
		purchase("B", "Staples", 1),
		purchase("C", "Amazon", 1),
		purchase("D", "", 1),
	}

	items := TopValues(transactions, func(tx *models.CanonicalTransaction) string {
		return tx.MerchantName
	}, 10, "Unknown")

	require.Len(t, items, 3)
	assert.Equal(t, "Staples", items[0].Name)
	assert.Equal(t, 2, items[0].Count)

	names := []string{items[1].Name, items[2].Name}
	assert.Contains(t, names, "Amazon")
	assert.Contains(t, names, "Unknown")
}

func TestTopValues_LimitTruncates(t *testing.T) {
	transactions := []models.CanonicalTransaction{
		purchase("A", "M1", 1),
		purchase("B", "M2", 1),
		purchase("C", "M3", 1),
	}

	items := TopValues(transactions, func(tx *models.CanonicalTransaction) string {
		return tx.MerchantName
	}, 2, "Unknown")

	assert.Len(t, items, 2)
}

package waste

import (
	"testing"
	"time"

	"github.com/nholm/sundial/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statsNow = time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

func entry(name string, daysAgo int, reason domain.WasteReason, cost *float64) *domain.WasteEntry {
	e := &domain.WasteEntry{
		ID:            name,
		Reason:        reason,
		Date:          statsNow.AddDate(0, 0, -daysAgo),
		EstimatedCost: cost,
	}
	e.SetIngredientName(name)
	return e
}

func dollars(v float64) *float64 { return &v }

func TestCalculateStats_EmptyLog(t *testing.T) {
	stats := CalculateStats(nil, 3, statsNow)

	assert.Equal(t, 0, stats.TotalEntries)
	assert.Equal(t, 0.0, stats.TotalEstimatedCost)
	assert.Empty(t, stats.TopWastedIngredients)
	require.Len(t, stats.WasteByReason, len(domain.WasteReasons), "every reason key present")
	for reason, count := range stats.WasteByReason {
		assert.Equal(t, 0, count, "reason %s", reason)
	}
}

func TestCalculateStats_WindowFilter(t *testing.T) {
	entries := []*domain.WasteEntry{
		entry("Spinach", 10, domain.ReasonSpoiled, dollars(2.50)),
		entry("Spinach", 200, domain.ReasonSpoiled, dollars(2.50)), // outside 3 months
	}
	stats := CalculateStats(entries, 3, statsNow)

	assert.Equal(t, 1, stats.TotalEntries)
	assert.Equal(t, 2.50, stats.TotalEstimatedCost)
}

func TestCalculateStats_TopOffenders(t *testing.T) {
	var entries []*domain.WasteEntry
	for i := 0; i < 3; i++ {
		entries = append(entries, entry("Cilantro", i+1, domain.ReasonForgotten, nil))
	}
	for i := 0; i < 2; i++ {
		entries = append(entries, entry("Spinach", i+1, domain.ReasonSpoiled, nil))
	}
	entries = append(entries, entry("Milk", 5, domain.ReasonSpoiled, nil))

	stats := CalculateStats(entries, 3, statsNow)

	require.Len(t, stats.TopWastedIngredients, 3)
	assert.Equal(t, "cilantro", stats.TopWastedIngredients[0].NormalizedName)
	assert.Equal(t, 3, stats.TopWastedIngredients[0].Count)
	assert.Equal(t, "spinach", stats.TopWastedIngredients[1].NormalizedName)
	assert.Equal(t, statsNow.AddDate(0, 0, -1), stats.TopWastedIngredients[0].LastWasted,
		"most recent waste date tracked per ingredient")
}

func TestCalculateStats_TopFiveCap(t *testing.T) {
	var entries []*domain.WasteEntry
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		entries = append(entries, entry(name, 1, domain.ReasonOther, nil))
	}
	stats := CalculateStats(entries, 1, statsNow)
	assert.Len(t, stats.TopWastedIngredients, 5)
}

func TestCalculateStats_ReasonBreakdownAndMissingCost(t *testing.T) {
	entries := []*domain.WasteEntry{
		entry("Bread", 1, domain.ReasonForgotten, dollars(3.00)),
		entry("Rice", 2, domain.ReasonTooMuch, nil), // no estimate counts as $0
		entry("Eggs", 3, domain.ReasonForgotten, dollars(1.20)),
	}
	stats := CalculateStats(entries, 3, statsNow)

	assert.Equal(t, 2, stats.WasteByReason[domain.ReasonForgotten])
	assert.Equal(t, 1, stats.WasteByReason[domain.ReasonTooMuch])
	assert.Equal(t, 0, stats.WasteByReason[domain.ReasonSpoiled])
	assert.InDelta(t, 4.20, stats.TotalEstimatedCost, 0.001)
}

func TestCalculateStats_GroupsByNormalizedName(t *testing.T) {
	entries := []*domain.WasteEntry{
		entry("Bell Pepper", 4, domain.ReasonSpoiled, nil),
		entry("bell pepper", 2, domain.ReasonSpoiled, nil),
	}
	stats := CalculateStats(entries, 3, statsNow)

	require.Len(t, stats.TopWastedIngredients, 1)
	assert.Equal(t, 2, stats.TopWastedIngredients[0].Count)
	assert.Equal(t, "bell pepper", stats.TopWastedIngredients[0].DisplayName,
		"display name follows the most recent entry")
}

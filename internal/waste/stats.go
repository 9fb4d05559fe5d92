package waste

import (
	"sort"
	"time"

	"github.com/nholm/sundial/internal/contract"
	"github.com/nholm/sundial/internal/domain"
)

const topOffenderCount = 5

// CalculateStats aggregates the waste log over a rolling window of
// months ending at now: top offenders by count, per-reason tallies, and
// the estimated cost total. Every reason key is always present in the
// breakdown; entries with no cost estimate contribute $0 to the total.
func CalculateStats(entries []*domain.WasteEntry, months int, now time.Time) contract.WasteStats {
	stats := contract.WasteStats{
		WindowMonths:         months,
		TopWastedIngredients: []contract.WastedIngredient{},
		WasteByReason:        make(map[domain.WasteReason]int, len(domain.WasteReasons)),
	}
	for _, reason := range domain.WasteReasons {
		stats.WasteByReason[reason] = 0
	}

	cutoff := now.AddDate(0, -months, 0)
	byName := make(map[string]*contract.WastedIngredient)
	var order []string

	for _, e := range entries {
		if e.Date.Before(cutoff) {
			continue
		}
		stats.TotalEntries++
		stats.WasteByReason[e.Reason]++
		if e.EstimatedCost != nil {
			stats.TotalEstimatedCost += *e.EstimatedCost
		}

		agg, ok := byName[e.NormalizedName]
		if !ok {
			agg = &contract.WastedIngredient{
				NormalizedName: e.NormalizedName,
				DisplayName:    e.IngredientName,
			}
			byName[e.NormalizedName] = agg
			order = append(order, e.NormalizedName)
		}
		agg.Count++
		if e.Date.After(agg.LastWasted) {
			agg.LastWasted = e.Date
			agg.DisplayName = e.IngredientName
		}
	}

	// Count descending; first-seen order breaks ties deterministically.
	sort.SliceStable(order, func(i, j int) bool {
		return byName[order[i]].Count > byName[order[j]].Count
	})
	for i, name := range order {
		if i == topOffenderCount {
			break
		}
		stats.TopWastedIngredients = append(stats.TopWastedIngredients, *byName[name])
	}
	return stats
}

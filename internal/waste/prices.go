// Package waste aggregates the food-waste log and estimates the dollar
// cost of wasted ingredients.
package waste

import (
	"math"
	"strings"

	"github.com/nholm/sundial/internal/domain"
)

// PriceEntry is one row of the static ingredient price table. Price is
// per base unit of the ingredient (per pound for weight-priced items,
// per item for count-priced ones).
type PriceEntry struct {
	Name  string
	Price float64
}

// PriceTable estimates ingredient costs from a static list of known
// prices. The table is injected at startup (see the seed package); the
// analytics code never hardcodes prices.
type PriceTable struct {
	entries []PriceEntry
}

// NewPriceTable builds a table from the given entries. Entry order is
// preserved for deterministic behavior, though lookups prefer the most
// specific match rather than the first.
func NewPriceTable(entries []PriceEntry) *PriceTable {
	return &PriceTable{entries: entries}
}

// unitMultipliers converts a logged quantity unit into the table's base
// unit. Unrecognized units fall back to 1.
var unitMultipliers = map[string]float64{
	"lb":    1,
	"kg":    2.2,
	"g":     0.0022,
	"oz":    0.0625,
	"each":  1,
	"item":  1,
	"bunch": 1,
	"cup":   0.5,
	"tbsp":  0.03,
	"tsp":   0.01,
}

// EstimateCost estimates the dollar cost of a wasted quantity. The name
// is normalized, then matched exactly against the table; failing that, by
// substring containment in either direction, preferring the longest
// (most specific) table key ("bell pepper" beats "pepper"). A nil return
// means no estimate is available, which is distinct from a $0 estimate.
func (t *PriceTable) EstimateCost(name string, quantity float64, unit string) *float64 {
	key := domain.NormalizeIngredient(name)
	if key == "" {
		return nil
	}

	entry, ok := t.match(key)
	if !ok {
		return nil
	}

	mult, ok := unitMultipliers[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		mult = 1
	}

	cost := math.Round(entry.Price*quantity*mult*100) / 100
	return &cost
}

func (t *PriceTable) match(key string) (PriceEntry, bool) {
	best := -1
	for i, e := range t.entries {
		if e.Name == key {
			return e, true
		}
		if strings.Contains(key, e.Name) || strings.Contains(e.Name, key) {
			if best == -1 || len(e.Name) > len(t.entries[best].Name) {
				best = i
			}
		}
	}
	if best == -1 {
		return PriceEntry{}, false
	}
	return t.entries[best], true
}

package domain

import (
	"strings"
	"time"
)

// WasteEntry records one wasted ingredient. NormalizedName is derived from
// IngredientName and must be recomputed whenever the name changes; it is
// never edited independently.
type WasteEntry struct {
	ID             string
	IngredientName string
	NormalizedName string
	Quantity       float64
	Unit           string
	Reason         WasteReason
	Date           time.Time
	EstimatedCost  *float64 // nil means "no estimate available", not $0
	CreatedAt      time.Time
}

// NormalizeIngredient derives the aggregation key for an ingredient name:
// lower-cased, trimmed, punctuation stripped, whitespace collapsed.
func NormalizeIngredient(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	b.Grow(len(lower))
	lastSpace := false
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		case r == ' ' || r == '\t' || r == '-':
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
		// other punctuation is dropped outright
	}
	return strings.TrimSpace(b.String())
}

// SetIngredientName updates the display name and rederives the key.
func (w *WasteEntry) SetIngredientName(name string) {
	w.IngredientName = name
	w.NormalizedName = NormalizeIngredient(name)
}

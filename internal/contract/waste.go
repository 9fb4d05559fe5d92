package contract

import (
	"time"

	"github.com/nholm/sundial/internal/domain"
)

// WastedIngredient is one aggregated offender in the waste stats.
type WastedIngredient struct {
	NormalizedName string
	DisplayName    string
	Count          int
	LastWasted     time.Time
}

// WasteStats summarizes the waste log over a rolling window of months.
type WasteStats struct {
	WindowMonths         int
	TotalEntries         int
	TotalEstimatedCost   float64
	TopWastedIngredients []WastedIngredient
	WasteByReason        map[domain.WasteReason]int // every reason key present
}

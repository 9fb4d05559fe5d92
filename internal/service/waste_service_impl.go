package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nholm/sundial/internal/contract"
	"github.com/nholm/sundial/internal/domain"
	"github.com/nholm/sundial/internal/repository"
	"github.com/nholm/sundial/internal/waste"
)

type wasteService struct {
	entries repository.WasteRepo
	prices  *waste.PriceTable
}

// NewWasteService builds the waste log service. The price table is used
// to estimate entry cost at log time when the caller provides none.
func NewWasteService(entries repository.WasteRepo, prices *waste.PriceTable) WasteService {
	return &wasteService{entries: entries, prices: prices}
}

func (s *wasteService) Log(ctx context.Context, e *domain.WasteEntry) error {
	if e.IngredientName == "" {
		return fmt.Errorf("waste entry needs an ingredient name")
	}
	if !domain.ValidWasteReasons[string(e.Reason)] {
		return fmt.Errorf("invalid waste reason %q", e.Reason)
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	if e.Date.IsZero() {
		e.Date = now
	}
	if e.Quantity <= 0 {
		e.Quantity = 1
	}
	e.SetIngredientName(e.IngredientName)

	// Cost is estimated once, at log time, and stored with the entry.
	// Later price table changes never rewrite history.
	if e.EstimatedCost == nil && s.prices != nil {
		e.EstimatedCost = s.prices.EstimateCost(e.IngredientName, e.Quantity, e.Unit)
	}
	return s.entries.Create(ctx, e)
}

func (s *wasteService) Stats(ctx context.Context, months int, now time.Time) (contract.WasteStats, error) {
	if months <= 0 {
		months = 3
	}
	entries, err := s.entries.ListSince(ctx, now.AddDate(0, -months, 0))
	if err != nil {
		return contract.WasteStats{}, err
	}
	return waste.CalculateStats(entries, months, now), nil
}

func (s *wasteService) Remove(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}

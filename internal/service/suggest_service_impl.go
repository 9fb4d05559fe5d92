package service

import (
	"context"
	"errors"
	"time"

	"github.com/nholm/sundial/internal/contract"
	"github.com/nholm/sundial/internal/domain"
	"github.com/nholm/sundial/internal/repository"
	"github.com/nholm/sundial/internal/suggest"
)

type suggestService struct {
	recipes  repository.RecipeRepo
	profiles repository.ProfileRepo
	now      func() time.Time
}

func NewSuggestService(recipes repository.RecipeRepo, profiles repository.ProfileRepo) SuggestService {
	return &suggestService{recipes: recipes, profiles: profiles, now: time.Now}
}

func (s *suggestService) Suggest(ctx context.Context, req contract.SuggestRequest) (*contract.SuggestResponse, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}

	// No saved profile just means the skill gate is off.
	var profile *domain.KitchenProfile
	profile, err = s.profiles.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		profile = nil
	}

	ranked := suggest.Rank(recipes, suggest.Filters{
		MaxMinutes: req.MaxMinutes,
		Mood:       req.Mood,
		Course:     req.Course,
		Limit:      req.Limit,
	}, profile, s.now().UTC())

	suggestions := make([]contract.RankedRecipe, 0, len(ranked))
	for _, r := range ranked {
		suggestions = append(suggestions, contract.RankedRecipe{
			Recipe:  r.Recipe,
			Score:   r.Score,
			Reasons: r.Reasons,
		})
	}
	return &contract.SuggestResponse{
		Suggestions: suggestions,
		Considered:  len(recipes),
	}, nil
}

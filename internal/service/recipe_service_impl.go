package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nholm/sundial/internal/domain"
	"github.com/nholm/sundial/internal/repository"
)

type recipeService struct {
	recipes repository.RecipeRepo
}

func NewRecipeService(recipes repository.RecipeRepo) RecipeService {
	return &recipeService{recipes: recipes}
}

func (s *recipeService) Create(ctx context.Context, r *domain.Recipe) error {
	if r.Name == "" {
		return fmt.Errorf("recipe needs a name")
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.TotalTimeMin == 0 {
		r.TotalTimeMin = r.PrepTimeMin + r.CookTimeMin
	}
	return s.recipes.Create(ctx, r)
}

func (s *recipeService) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

func (s *recipeService) List(ctx context.Context) ([]*domain.Recipe, error) {
	return s.recipes.List(ctx)
}

func (s *recipeService) Update(ctx context.Context, r *domain.Recipe) error {
	r.UpdatedAt = time.Now().UTC()
	return s.recipes.Update(ctx, r)
}

func (s *recipeService) Delete(ctx context.Context, id string) error {
	return s.recipes.Delete(ctx, id)
}

func (s *recipeService) MarkMade(ctx context.Context, id string, when time.Time) error {
	r, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	r.TimesMade++
	made := when.UTC()
	r.LastMade = &made
	r.UpdatedAt = time.Now().UTC()
	return s.recipes.Update(ctx, r)
}

func (s *recipeService) Rate(ctx context.Context, id string, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be 1-5, got %d", rating)
	}
	r, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	r.Rating = rating
	r.UpdatedAt = time.Now().UTC()
	return s.recipes.Update(ctx, r)
}

func (s *recipeService) SetFavorite(ctx context.Context, id string, favorite bool) error {
	r, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	r.IsFavorite = favorite
	r.UpdatedAt = time.Now().UTC()
	return s.recipes.Update(ctx, r)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nholm/sundial/internal/domain"
	"github.com/nholm/sundial/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

// Get returns the kitchen profile, or a zero profile when none has been
// saved yet.
func (s *profileService) Get(ctx context.Context) (*domain.KitchenProfile, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &domain.KitchenProfile{}, nil
		}
		return nil, err
	}
	return p, nil
}

func (s *profileService) SetExperienceLevel(ctx context.Context, level domain.ExperienceLevel) error {
	switch level {
	case domain.LevelBeginner, domain.LevelComfortable, domain.LevelExperienced, domain.LevelAdvanced:
	default:
		return fmt.Errorf("invalid experience level %q", level)
	}
	return s.profiles.Upsert(ctx, &domain.KitchenProfile{ExperienceLevel: level})
}

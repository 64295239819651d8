package ranking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storeRanker/domain"
	"storeRanker/pkg/logger"
)

var (
	ErrProfileNotFound  = errors.New("ranking profile not found")
	ErrProfilesDisabled = errors.New("ranking profiles are not enabled")
	ErrProfileName      = errors.New("profile name is required")
)

// GetProfile returns a stored weight profile. An empty name means the configured default.
func (s *RankingService) GetProfile(ctx context.Context, name string) (domain.RankingProfile, error) {
	if s.profileRepo == nil {
		return domain.RankingProfile{}, ErrProfilesDisabled
	}
	if name == "" {
		name = s.defaultCfg.DefaultProfile
	}

	profile, ok, err := s.profileRepo.GetProfile(ctx, name)
	if err != nil {
		return domain.RankingProfile{}, fmt.Errorf("get profile %q: %w", name, err)
	}
	if !ok {
		return domain.RankingProfile{}, ErrProfileNotFound
	}
	return profile, nil
}

// SaveProfile validates raw weights and stores them under name.
func (s *RankingService) SaveProfile(ctx context.Context, name string, raw domain.Weights) (domain.RankingProfile, error) {
	if s.profileRepo == nil {
		return domain.RankingProfile{}, ErrProfilesDisabled
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.RankingProfile{}, ErrProfileName
	}
	if err := ValidateRaw(raw); err != nil {
		return domain.RankingProfile{}, err
	}

	profile := domain.RankingProfile{
		Name:    name,
		Weights: WeightsToJSONMap(WithBaseCriteria(raw)),
	}
	if err := s.profileRepo.UpsertProfile(ctx, profile); err != nil {
		return domain.RankingProfile{}, fmt.Errorf("save profile %q: %w", name, err)
	}

	logger.Info("ranking profile saved", "profile", name, "criteria", len(profile.Weights))
	return profile, nil
}

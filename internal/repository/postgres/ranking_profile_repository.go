package postgres

import (
	"context"
	"errors"
	"fmt"
	"storeRanker/business/ranking"
	"storeRanker/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RankingProfileRepository struct {
	DB *gorm.DB
}

var _ ranking.ProfileRepository = (*RankingProfileRepository)(nil)

func NewRankingProfileRepository(db *gorm.DB) *RankingProfileRepository {
	return &RankingProfileRepository{DB: db}
}

func (r *RankingProfileRepository) GetProfile(ctx context.Context, name string) (domain.RankingProfile, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.RankingProfile{}, false, fmt.Errorf("context error: %w", err)
	}

	var profile domain.RankingProfile
	err := r.DB.WithContext(ctx).
		Where("name = ?", name).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RankingProfile{}, false, nil
	}
	if err != nil {
		return domain.RankingProfile{}, false, fmt.Errorf("failed to find ranking profile: %w", err)
	}

	return profile, true, nil
}

func (r *RankingProfileRepository) UpsertProfile(ctx context.Context, profile domain.RankingProfile) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"weights", "updated_at"}),
		}).
		Create(&profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert ranking profile: %w", err)
	}

	return nil
}

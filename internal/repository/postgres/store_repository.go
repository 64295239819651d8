package postgres

import (
	"context"
	"fmt"
	"storeRanker/domain"

	"gorm.io/gorm"
)

type StoreRepository struct {
	DB *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{
		DB: db,
	}
}

// FindAll returns every store ordered by id, which is the catalog order ranking ties keep.
func (r *StoreRepository) FindAll(ctx context.Context) ([]domain.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var stores []domain.Store
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&stores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find stores: %w", err)
	}

	return stores, nil
}

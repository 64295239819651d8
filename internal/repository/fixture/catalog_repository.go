package fixture

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"storeRanker/domain"

	"gopkg.in/yaml.v3"
)

//go:embed stores.yaml
var embeddedStores []byte

type storeDTO struct {
	ID                  uint64  `yaml:"id"`
	Name                string  `yaml:"name"`
	Category            string  `yaml:"category"`
	Location            string  `yaml:"location"`
	Rating              float64 `yaml:"rating"`
	ReviewCount         int     `yaml:"review_count"`
	DeliveryDays        int     `yaml:"delivery_days"`
	SuccessRatePct      float64 `yaml:"success_rate_pct"`
	ComplaintRatePct    float64 `yaml:"complaint_rate_pct"`
	ActivePromoCount    int     `yaml:"active_promo_count"`
	ChatResponseMinutes float64 `yaml:"chat_response_minutes"`
	TotalProducts       int     `yaml:"total_products"`
	LastPromoHoursAgo   float64 `yaml:"last_promo_hours_ago"`
}

type catalogFile struct {
	Stores []storeDTO `yaml:"stores"`
}

// CatalogRepository serves the store catalog from YAML, either the embedded fixture or a
// file supplied at startup.
type CatalogRepository struct {
	data []byte
	now  func() time.Time
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{data: embeddedStores, now: time.Now}
}

// NewCatalogRepositoryFromFile reads the catalog from path instead of the embedded fixture.
func NewCatalogRepositoryFromFile(path string) (*CatalogRepository, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return &CatalogRepository{data: data, now: time.Now}, nil
}

// NewCatalogRepositoryFromBytes is used by tests.
func NewCatalogRepositoryFromBytes(data []byte, now func() time.Time) *CatalogRepository {
	return &CatalogRepository{data: data, now: now}
}

func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(r.data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	loadedAt := r.now()
	seen := make(map[uint64]struct{}, len(file.Stores))
	stores := make([]domain.Store, 0, len(file.Stores))

	for _, d := range file.Stores {
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("store %d: %w", d.ID, err)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("duplicate store id %d", d.ID)
		}
		seen[d.ID] = struct{}{}

		stores = append(stores, domain.Store{
			ID:                  d.ID,
			Name:                d.Name,
			Category:            d.Category,
			Location:            d.Location,
			Rating:              d.Rating,
			ReviewCount:         d.ReviewCount,
			DeliveryDays:        d.DeliveryDays,
			SuccessRatePct:      d.SuccessRatePct,
			ComplaintRatePct:    d.ComplaintRatePct,
			ActivePromoCount:    d.ActivePromoCount,
			ChatResponseMinutes: d.ChatResponseMinutes,
			TotalProducts:       d.TotalProducts,
			LastPromoAt:         loadedAt.Add(-time.Duration(d.LastPromoHoursAgo * float64(time.Hour))),
		})
	}

	return stores, nil
}

func (d storeDTO) validate() error {
	switch {
	case d.ID == 0:
		return fmt.Errorf("id is required")
	case d.Name == "":
		return fmt.Errorf("name is required")
	case d.Category == "" || d.Location == "":
		return fmt.Errorf("category and location are required")
	case d.Rating < 0 || d.Rating > 5:
		return fmt.Errorf("rating %v out of [0,5]", d.Rating)
	case d.ReviewCount < 0 || d.ActivePromoCount < 0 || d.TotalProducts < 0:
		return fmt.Errorf("counts must be non-negative")
	case d.DeliveryDays <= 0:
		return fmt.Errorf("delivery_days must be positive")
	case d.SuccessRatePct < 0 || d.SuccessRatePct > 100 || d.ComplaintRatePct < 0 || d.ComplaintRatePct > 100:
		return fmt.Errorf("percentages must be within [0,100]")
	case d.ChatResponseMinutes < 0:
		return fmt.Errorf("chat_response_minutes must be non-negative")
	}
	return nil
}

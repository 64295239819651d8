package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"storeRanker/domain"
	"storeRanker/pkg/logger"
)

// StoreRepository contract interface
type StoreRepository interface {
	FindAll(ctx context.Context) ([]domain.Store, error)
}

type catalogService struct {
	storeRepo StoreRepository

	mu     sync.RWMutex
	loaded bool
	stores []domain.Store
}

func NewCatalogService(storeRepo StoreRepository) *catalogService {
	return &catalogService{
		storeRepo: storeRepo,
	}
}

// LoadCatalog returns the catalog, reading the repository only on the first successful call.
// Callers get their own slice; the cached records are never modified.
func (s *catalogService) LoadCatalog(ctx context.Context) ([]domain.Store, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when loading catalog")
		return nil, fmt.Errorf("context error: %w", err)
	}

	s.mu.RLock()
	if s.loaded {
		out := cloneStores(s.stores)
		s.mu.RUnlock()
		return out, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return cloneStores(s.stores), nil
	}

	rows, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load store catalog", "error", err)
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	stores := make([]domain.Store, 0, len(rows))
	for _, r := range rows {
		stores = append(stores, r.WithDerived())
	}

	s.stores = stores
	s.loaded = true

	logger.Info("store catalog loaded", "stores", len(stores))

	return cloneStores(stores), nil
}

// Invalidate drops the cached catalog so the next LoadCatalog reads the repository again.
func (s *catalogService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.stores = nil
}

func (s *catalogService) GetStats(ctx context.Context) (domain.CatalogStats, error) {
	stores, err := s.LoadCatalog(ctx)
	if err != nil {
		return domain.CatalogStats{}, err
	}

	opts := optionsOf(stores)
	stats := domain.CatalogStats{
		TotalStores: len(stores),
		Categories:  len(opts.Categories),
		Locations:   len(opts.Locations),
	}

	if len(stores) > 0 {
		sum := 0.0
		for _, st := range stores {
			sum += st.Rating
		}
		stats.AverageRating = sum / float64(len(stores))
	}

	return stats, nil
}

func (s *catalogService) GetOptions(ctx context.Context) (domain.CatalogOptions, error) {
	stores, err := s.LoadCatalog(ctx)
	if err != nil {
		return domain.CatalogOptions{}, err
	}
	return optionsOf(stores), nil
}

// optionsOf lists distinct categories and locations, sorted.
func optionsOf(stores []domain.Store) domain.CatalogOptions {
	cats := make(map[string]struct{})
	locs := make(map[string]struct{})
	for _, st := range stores {
		cats[st.Category] = struct{}{}
		locs[st.Location] = struct{}{}
	}

	return domain.CatalogOptions{
		Categories: sortedKeys(cats),
		Locations:  sortedKeys(locs),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func cloneStores(in []domain.Store) []domain.Store {
	out := make([]domain.Store, len(in))
	copy(out, in)
	return out
}

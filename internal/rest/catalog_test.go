//go:build !integration

package rest

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"storeRanker/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogService struct {
	err         error
	invalidated int
}

func (f *fakeCatalogService) Invalidate() {
	f.invalidated++
}

func (f *fakeCatalogService) LoadCatalog(ctx context.Context) ([]domain.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []domain.Store{{ID: 1, Name: "TechMart Store", Category: "Elektronik", Location: "Jakarta"}}, nil
}

func (f *fakeCatalogService) GetStats(ctx context.Context) (domain.CatalogStats, error) {
	if f.err != nil {
		return domain.CatalogStats{}, f.err
	}
	return domain.CatalogStats{TotalStores: 20, Categories: 5, Locations: 4, AverageRating: 4.7}, nil
}

func (f *fakeCatalogService) GetOptions(ctx context.Context) (domain.CatalogOptions, error) {
	if f.err != nil {
		return domain.CatalogOptions{}, f.err
	}
	return domain.CatalogOptions{Categories: []string{"Elektronik"}, Locations: []string{"Jakarta"}}, nil
}

func TestCatalogHandler(t *testing.T) {
	h := NewCatalogHandler(&fakeCatalogService{}, time.Second)

	c, rec := newContext(http.MethodGet, "/api/v1/catalog", "", nil)
	require.NoError(t, h.GetAllStores(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TechMart Store")

	c, rec = newContext(http.MethodGet, "/api/v1/catalog/stats", "", nil)
	require.NoError(t, h.GetStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_stores":20`)

	c, rec = newContext(http.MethodGet, "/api/v1/catalog/options", "", nil)
	require.NoError(t, h.GetOptions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"locations":["Jakarta"]`)
}

func TestCatalogHandler_Errors(t *testing.T) {
	h := NewCatalogHandler(&fakeCatalogService{err: errors.New("db down")}, time.Second)

	handlers := map[string]echo.HandlerFunc{
		"stores":  h.GetAllStores,
		"stats":   h.GetStats,
		"options": h.GetOptions,
	}

	for name, handle := range handlers {
		t.Run(name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/api/v1/catalog", "", nil)
			require.NoError(t, handle(c))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), "db down")
		})
	}
}

func TestCatalogHandler_Reload(t *testing.T) {
	svc := &fakeCatalogService{}
	h := NewCatalogHandler(svc, time.Second)

	c, rec := newContext(http.MethodPost, "/api/v1/admin/catalog/reload", "", nil)
	require.NoError(t, h.Reload(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stores":1`)
	assert.Equal(t, 1, svc.invalidated)
}

func TestCatalogHandler_ReloadError(t *testing.T) {
	svc := &fakeCatalogService{err: errors.New("db down")}
	h := NewCatalogHandler(svc, time.Second)

	c, rec := newContext(http.MethodPost, "/api/v1/admin/catalog/reload", "", nil)
	require.NoError(t, h.Reload(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "db down")
	assert.Equal(t, 1, svc.invalidated)
}

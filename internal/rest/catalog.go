package rest

import (
	"context"
	"net/http"
	"time"

	"storeRanker/domain"
	"storeRanker/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	LoadCatalog(ctx context.Context) ([]domain.Store, error)
	GetStats(ctx context.Context) (domain.CatalogStats, error)
	GetOptions(ctx context.Context) (domain.CatalogOptions, error)
	Invalidate()
}

type CatalogHandler struct {
	catalogService CatalogService
	timeout        time.Duration
}

func NewCatalogHandler(catalogService CatalogService, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		timeout:        timeout,
	}
}

func (h *CatalogHandler) GetAllStores(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stores, err := h.catalogService.LoadCatalog(ctx)
	if err != nil {
		logger.Error("Failed to load store catalog", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stores))
}

func (h *CatalogHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.catalogService.GetStats(ctx)
	if err != nil {
		logger.Error("Failed to compute catalog stats", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stats))
}

func (h *CatalogHandler) GetOptions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	opts, err := h.catalogService.GetOptions(ctx)
	if err != nil {
		logger.Error("Failed to list catalog options", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(opts))
}

// Reload drops the cached catalog and reads the repository again.
func (h *CatalogHandler) Reload(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	h.catalogService.Invalidate()
	stores, err := h.catalogService.LoadCatalog(ctx)
	if err != nil {
		logger.Error("Failed to reload store catalog", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	logger.Info("store catalog reloaded", "stores", len(stores))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]int{"stores": len(stores)}))
}

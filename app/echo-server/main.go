package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpmetrics "storeRanker/app/echo-server/metrics"
	"storeRanker/app/echo-server/router"
	"storeRanker/business/catalog"
	"storeRanker/business/history"
	"storeRanker/business/ranking"
	"storeRanker/internal/middleware"
	"storeRanker/internal/repository/fixture"
	psqlRepo "storeRanker/internal/repository/postgres"
	"storeRanker/internal/rest"
	"storeRanker/pkg/config"
	"storeRanker/pkg/database"
	"storeRanker/pkg/logger"
	"storeRanker/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting Store Ranker", "version", cfg.App.Version, "catalog_source", cfg.Catalog.Source)

	metrics.Init()
	httpmetrics.Init()

	var db *gorm.DB
	if cfg.NeedsDatabase() {
		db, err = database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		logger.Info("Database connected successfully")
	}

	// Init repo
	storeRepo, err := newStoreRepository(cfg, db)
	if err != nil {
		logger.Fatal("Failed to init store catalog", "error", err)
	}

	var profileRepo ranking.ProfileRepository
	if cfg.Ranking.UseProfiles {
		profileRepo = psqlRepo.NewRankingProfileRepository(db)
	}

	// Init service
	catalogService := catalog.NewCatalogService(storeRepo)

	rankingCfg := ranking.DefaultConfig()
	rankingCfg.DefaultProfile = cfg.Ranking.DefaultProfile
	rankingCfg.TopN = cfg.Ranking.TopN
	rankingService := ranking.NewRankingService(catalogService, profileRepo, rankingCfg)

	// warm the cache so a broken catalog fails at startup
	if _, err := catalogService.LoadCatalog(context.Background()); err != nil {
		logger.Fatal("Failed to load store catalog", "error", err)
	}

	sessions := history.NewStore()
	pruneCtx, stopPruner := context.WithCancel(context.Background())
	defer stopPruner()
	sessions.StartPruner(pruneCtx, cfg.Session.PruneInterval, cfg.Session.TTL)

	// Init handler
	sessionHandler := rest.NewSessionHandler(sessions, cfg.Session.Secret, cfg.Session.TTL)
	rankingHandler := rest.NewRankingHandler(rankingService, cfg.Server.RequestTimeout, cfg.Ranking.HistoryLimit)
	catalogHandler := rest.NewCatalogHandler(catalogService, cfg.Server.RequestTimeout)
	adminHandler := rest.NewRankingAdminHandler(rankingService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(httpmetrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.HeaderAdminKey},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	sessionRequired := middleware.SessionMiddleware(cfg.Session.Secret, sessions)
	router.SetSessionRoutes(api, sessionHandler)
	router.SetRankingRoutes(api, rankingHandler, sessionRequired)
	router.SetCatalogRoutes(api, catalogHandler)
	adminOnly := middleware.AdminOnly(cfg.Session.AdminKey)
	router.SetRankingAdminRoutes(api, adminHandler, adminOnly)
	router.SetCatalogAdminRoutes(api, catalogHandler, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

func newStoreRepository(cfg *config.Config, db *gorm.DB) (catalog.StoreRepository, error) {
	switch {
	case cfg.Catalog.Source == config.CatalogSourcePostgres:
		return psqlRepo.NewStoreRepository(db), nil
	case cfg.Catalog.File != "":
		return fixture.NewCatalogRepositoryFromFile(cfg.Catalog.File)
	default:
		return fixture.NewCatalogRepository(), nil
	}
}

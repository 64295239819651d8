package router

import (
	"storeRanker/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetSessionRoutes(api *echo.Group, handler *rest.SessionHandler) {
	api.POST("/sessions", handler.Create)
}

func SetRankingRoutes(api *echo.Group, handler *rest.RankingHandler, sessionRequired echo.MiddlewareFunc) {
	api.POST("/recommendations", handler.Recommend, sessionRequired)
	api.GET("/history", handler.History, sessionRequired)
}

func SetCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	catalog := api.Group("/catalog")

	catalog.GET("", handler.GetAllStores)
	catalog.GET("/stats", handler.GetStats)
	catalog.GET("/options", handler.GetOptions)
}

func SetRankingAdminRoutes(api *echo.Group, handler *rest.RankingAdminHandler, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/ranking", adminOnly)

	admin.GET("/profile", handler.GetProfile)
	admin.PUT("/profile", handler.UpsertProfile)
}

func SetCatalogAdminRoutes(api *echo.Group, handler *rest.CatalogHandler, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/catalog", adminOnly)

	admin.POST("/reload", handler.Reload)
}

package router

import (
	"saasStackAnalyzer/internal/middleware"
	"saasStackAnalyzer/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupPricingRoutes(api *echo.Group, handler *rest.PricingHandler) {
	pricing := api.Group("/pricing")
	pricing.POST("/evaluate", handler.Evaluate)
}

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	catalog := api.Group("/catalog")
	catalog.GET("/categories", handler.GetCategories)
	catalog.GET("/vendors", handler.GetVendors)
	catalog.GET("/vendors/:name", handler.GetVendor)
	catalog.GET("/metered-products", handler.GetMeteredProducts)
}

func SetupAnalysisRoutes(api *echo.Group, handler *rest.AnalysisHandler, authRequired echo.MiddlewareFunc) {
	analyses := api.Group("/analyses")
	analyses.POST("", handler.CreateAnalysis)
	analyses.GET("", handler.GetAllAnalyses)
	analyses.GET("/:id", handler.GetAnalysisByID)
	analyses.PUT("/:id", handler.UpdateAnalysis, authRequired)
	analyses.DELETE("/:id", handler.DeleteAnalysis, authRequired)
}

func SetupVendorRoutes(api *echo.Group, handler *rest.VendorHandler) {
	vendors := api.Group("/vendors")
	vendors.GET("", handler.GetAllVendors)
	vendors.POST("", handler.CreateVendor)
	vendors.GET("/:id", handler.GetVendorByID)
	vendors.PUT("/:id", handler.UpdateVendor)
	vendors.DELETE("/:id", handler.DeleteVendor)
}

func SetupSessionRoutes(api *echo.Group, handler *rest.SessionHandler, authRequired echo.MiddlewareFunc) {
	sessions := api.Group("/sessions")
	sessions.POST("", handler.CreateSession)
	sessions.PUT("", handler.TouchSession, authRequired)
	sessions.GET("/:id", handler.GetSessionByID)
	sessions.DELETE("/:id", handler.DeleteSession)
}

func SetupHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/health", handler.Health)
}

// Setup wires every route under /api/v1
func Setup(e *echo.Echo, h Handlers) {
	authRequired := middleware.RequireBearerToken()

	api := e.Group("/api/v1", middleware.BearerToken())
	SetupPricingRoutes(api, h.Pricing)
	SetupCatalogRoutes(api, h.Catalog)
	SetupAnalysisRoutes(api, h.Analysis, authRequired)
	SetupVendorRoutes(api, h.Vendor)
	SetupSessionRoutes(api, h.Session, authRequired)
	SetupHealthRoutes(e, h.Health)
}

type Handlers struct {
	Pricing  *rest.PricingHandler
	Catalog  *rest.CatalogHandler
	Analysis *rest.AnalysisHandler
	Vendor   *rest.VendorHandler
	Session  *rest.SessionHandler
	Health   *rest.HealthHandler
}

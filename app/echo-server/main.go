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

	"saasStackAnalyzer/app/echo-server/metrics"
	"saasStackAnalyzer/app/echo-server/router"
	"saasStackAnalyzer/business/analysis"
	"saasStackAnalyzer/business/catalog"
	"saasStackAnalyzer/business/pricing"
	"saasStackAnalyzer/business/session"
	"saasStackAnalyzer/business/vendor"
	"saasStackAnalyzer/internal/middleware"
	memRepo "saasStackAnalyzer/internal/repository/memory"
	psqlRepo "saasStackAnalyzer/internal/repository/postgres"
	redisRepo "saasStackAnalyzer/internal/repository/redis"
	"saasStackAnalyzer/internal/rest"
	"saasStackAnalyzer/pkg/config"
	"saasStackAnalyzer/pkg/database"
	redisdb "saasStackAnalyzer/pkg/database/redis"
	"saasStackAnalyzer/pkg/logger"
	pricingMetrics "saasStackAnalyzer/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

type repositories struct {
	analyses analysis.AnalysisRepository
	vendors  vendor.VendorRepository
	sessions session.SessionRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting SaaS Stack Analyzer", "version", cfg.App.Version)

	decimal.MarshalJSONWithoutQuotes = true

	metrics.Init()
	pricingMetrics.Init()

	// Init pricing model
	pricingCfg := pricing.DefaultConfig()
	cat := catalog.Default()
	if cfg.Pricing.ConfigFile != "" {
		fileCfg, err := pricing.LoadFile(cfg.Pricing.ConfigFile)
		if err != nil {
			logger.Fatal("Failed to load pricing config", "error", err)
		}
		pricingCfg = fileCfg.Apply(pricingCfg)
		cat = cat.With(fileCfg.Vendors)
		logger.Info("Pricing config loaded", "file", cfg.Pricing.ConfigFile, "vendors", len(fileCfg.Vendors))
	}
	model := pricing.NewModel(cat, pricingCfg)

	// Init repo
	var repos repositories
	switch cfg.Database.Driver {
	case config.StoreDriverPostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		if err := database.Migrate(db); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
		logger.Info("Database connected successfully")

		repos = repositories{
			analyses: psqlRepo.NewAnalysisRepository(db),
			vendors:  psqlRepo.NewVendorRepository(db),
			sessions: psqlRepo.NewSessionRepository(db),
		}
	default:
		logger.Warn("Using in-memory store, records are lost on restart")
		repos = repositories{
			analyses: memRepo.NewAnalysisRepository(),
			vendors:  memRepo.NewVendorRepository(),
			sessions: memRepo.NewSessionRepository(),
		}
	}

	var sessionCache session.SessionCache
	if cfg.Redis.Enabled() {
		rdb, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}
		defer func() {
			if err := redisdb.CloseRedisClient(rdb); err != nil {
				logger.Error("Failed to close redis", "error", err)
			}
		}()
		sessionCache = redisRepo.NewSessionCache(rdb)
		logger.Info("Redis connected successfully")
	}

	// Init service
	vendorService := vendor.NewVendorService(repos.vendors)
	analysisService := analysis.NewAnalysisService(repos.analyses, model, vendorService)
	sessionService := session.NewSessionService(repos.sessions, sessionCache, cfg.Redis.SessionTTL)

	// Init handler
	timeout := cfg.Server.RequestTimeout
	handlers := router.Handlers{
		Pricing:  rest.NewPricingHandler(analysisService, timeout),
		Catalog:  rest.NewCatalogHandler(analysisService, timeout),
		Analysis: rest.NewAnalysisHandler(analysisService, timeout),
		Vendor:   rest.NewVendorHandler(vendorService, timeout),
		Session:  rest.NewSessionHandler(sessionService, timeout),
		Health:   rest.NewHealthHandler(cfg.App.Name, cfg.App.Version),
	}

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(otelecho.Middleware(cfg.App.Name))
	e.Use(middleware.RequestLogger())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	router.Setup(e, handlers)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

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

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

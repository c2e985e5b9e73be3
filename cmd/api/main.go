package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"valuation_backend/internal/deals"
	"valuation_backend/internal/geocode"
	apphttp "valuation_backend/internal/http"
	"valuation_backend/internal/http/router"
	"valuation_backend/internal/market"
	"valuation_backend/internal/pitch"
	"valuation_backend/internal/providers/attom"
	"valuation_backend/internal/providers/zillow"
	"valuation_backend/internal/valuation"
	"valuation_backend/internal/valuation/service"
	"valuation_backend/platform/config"
	"valuation_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Provider Clients
	// ========================================================================

	geocodeModule := geocode.NewModule(cfg, log)

	sources := service.Sources{
		Geocoder: geocodeModule.Service(),
	}
	if cfg.IsZillowEnabled() {
		zillowClient := zillow.NewClient(cfg, log)
		sources.Finder = zillowClient
		sources.Details = zillowClient
		sources.Primary = zillowClient
		sources.SaleHistory = zillowClient
		log.Info("zillow provider enabled", "host", cfg.GetZillowHost())
	} else {
		log.Warn("ZILLOW_RAPIDAPI_KEY not configured; primary comp source disabled")
	}
	if cfg.IsAttomEnabled() {
		attomClient := attom.NewClient(cfg, log)
		sources.Supplement = attomClient
		sources.Fallback = attomClient
		log.Info("attom provider enabled")
	} else {
		log.Warn("ATTOM_API_KEY not configured; fallback comp source disabled")
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	valuationModule := valuation.NewModule(sources, cfg, log)
	dealsModule := deals.NewModule()
	pitchModule := pitch.NewModule()

	modules := []apphttp.Module{
		geocodeModule,
		valuationModule,
		dealsModule,
		pitchModule,
	}

	if store, err := market.LoadStore(cfg.GetMarketDataPath()); err != nil {
		log.Warn("market data unavailable; market module disabled",
			"path", cfg.GetMarketDataPath(), "error", err)
	} else {
		var extractor market.CountyExtractor
		if cfg.IsAIEnabled() {
			ext, err := market.NewExtractor(ctx, cfg, log)
			if err != nil {
				log.Warn("gemini extractor unavailable; county extraction disabled", "error", err)
			} else {
				extractor = ext
				log.Info("gemini county extractor enabled", "model", cfg.GetGeminiModel())
			}
		}
		modules = append(modules, market.NewModule(store, extractor, geocodeModule.Service(), log))
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:  cfg,
		Logger:  log,
		Modules: modules,
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"gateway/internal/adapter/repo"
	"gateway/internal/auth"
	"gateway/internal/billing"
	"gateway/internal/domain"
	"gateway/internal/http/handlers"
	"gateway/internal/http/httpapi"
	"gateway/internal/identity"
	"gateway/internal/infra"
	"gateway/internal/infra/geoip"
	mw "gateway/internal/middleware"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// Project store: Postgres when configured, in-memory otherwise.
	var projects domain.ProjectRepository
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		projects = repo.NewProjectRepository(pool)
	} else {
		logger.Warn().Msg("DATABASE_URL not set, using in-memory project store")
		projects = repo.NewProjectRepositoryMemory()
	}

	// Identity provider client is constructed once here and injected; no
	// package-level singletons.
	provider := identity.NewClient(cfg.IdentityAPIURL, cfg.IdentitySecretKey)
	resolver := auth.NewResolver(provider, logger)

	plans := billing.DefaultRegistry()

	countries, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open geoip database")
	}
	var lookup mw.CountryLookup
	if countries != nil {
		lookup = countries.CountryCode
	}

	app := handlers.NewApp(logger, resolver, plans, projects)

	router := httpapi.NewRouter(app, httpapi.RouterConfig{
		Logger:          logger,
		Resolver:        resolver,
		RateLimitPerMin: cfg.RateLimitPerMin,
		DefaultLocale:   cfg.DefaultLocale,
		CORSOrigins:     cfg.CORSOrigins,
		Countries:       lookup,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/lwandile-dev/mzansimarket-backend/api/routes"
	"github.com/lwandile-dev/mzansimarket-backend/internal/cart"
	"github.com/lwandile-dev/mzansimarket-backend/internal/dashboard"
	"github.com/lwandile-dev/mzansimarket-backend/internal/marketplace"
	"github.com/lwandile-dev/mzansimarket-backend/internal/orders"
	"github.com/lwandile-dev/mzansimarket-backend/internal/products"
	"github.com/lwandile-dev/mzansimarket-backend/internal/profiles"
	"github.com/lwandile-dev/mzansimarket-backend/internal/registrations"
	"github.com/lwandile-dev/mzansimarket-backend/internal/vendors"
	"github.com/lwandile-dev/mzansimarket-backend/internal/wishlist"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/auth/session"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/config"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/db"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/logger"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/metrics"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/migrate"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	ordersRepo := orders.NewRepository(dbClient.DB())
	vendorsRepo := vendors.NewRepository(dbClient.DB())
	productsRepo := products.NewRepository(dbClient.DB())
	profilesRepo := profiles.NewRepository(dbClient.DB())

	dashboardService, err := dashboard.NewService(dashboard.ServiceParams{
		Orders:   ordersRepo,
		Vendors:  vendorsRepo,
		Products: productsRepo,
		Profiles: profilesRepo,
		Commerce: cfg.Commerce,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	marketplaceService, err := marketplace.NewService(marketplace.ServiceParams{
		Products: productsRepo,
		Vendors:  vendorsRepo,
		Storage:  cfg.Storage,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create marketplace service", err)
		os.Exit(1)
	}

	registrationsService, err := registrations.NewService(registrations.NewRepository(dbClient.DB()), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create registrations service", err)
		os.Exit(1)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)

	cartRegistry := cart.NewRegistry()
	wishlistRegistry := wishlist.NewRegistry()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sweepSessions(ctx, cfg.Sessions, logg, cartRegistry, wishlistRegistry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	startCtx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(startCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:        cfg,
			Logger:        logg,
			DB:            dbClient,
			Redis:         redisClient,
			Sessions:      sessionManager,
			Dashboard:     dashboardService,
			Marketplace:   marketplaceService,
			Registrations: registrationsService,
			Carts:         cartRegistry,
			Wishlists:     wishlistRegistry,
			HTTPMetrics:   httpMetrics,
			Gatherer:      promRegistry,
		}),
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(startCtx, "api server stopped unexpectedly", err)
			closeResources(startCtx, logg, dbClient, redisClient)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(startCtx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(startCtx, "graceful shutdown failed", err)
		}
	}

	closeResources(startCtx, logg, dbClient, redisClient)
}

// sweepSessions periodically drops idle carts and wishlists until ctx ends.
func sweepSessions(ctx context.Context, cfg config.SessionStoreConfig, logg *logger.Logger, carts *cart.Registry, wishlists *wishlist.Registry) {
	interval := cfg.SweepInterval
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := carts.Purge(cfg.MaxIdle) + wishlists.Purge(cfg.MaxIdle)
			if removed > 0 {
				logg.Info(logg.WithField(ctx, "removed", removed), "purged idle storefront sessions")
			}
		}
	}
}

func closeResources(ctx context.Context, logg *logger.Logger, dbClient *db.Client, redisClient *redis.Client) {
	err := multierr.Combine(dbClient.Close(), redisClient.Close())
	if err != nil {
		logg.Error(ctx, "error closing resources", err)
	}
}

// Command dashboard starts the NBU open-data dashboard: a local web
// server that fetches open-data JSON feeds on demand and renders them
// as tables and charts.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nbu-dashboard/internal/catalog"
	hhttp "nbu-dashboard/internal/handler/http"
	hdataset "nbu-dashboard/internal/handler/http/dataset"
	"nbu-dashboard/internal/handler/http/requestid"
	"nbu-dashboard/internal/handler/http/ui"
	"nbu-dashboard/internal/infra/fetcher"
	"nbu-dashboard/internal/observability/logging"
	"nbu-dashboard/internal/observability/tracing"
	dsUC "nbu-dashboard/internal/usecase/dataset"
	"nbu-dashboard/pkg/config"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cat := loadCatalog(logger)
	fetchCfg := loadFetchConfig(logger)

	svc := &dsUC.Service{
		Catalog: cat,
		Fetcher: fetcher.NewJSONFetcher(fetchCfg),
	}

	handler := setupRoutes(logger, cat, svc, fetchCfg, getVersion())
	runServer(logger, handler)
}

// loadCatalog loads the embedded feed catalog. An invalid catalog is a
// startup failure, never a user-facing one.
func loadCatalog(logger *slog.Logger) *catalog.Catalog {
	cat, err := catalog.Load()
	if err != nil {
		logger.Error("failed to load feed catalog", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("feed catalog loaded",
		slog.Int("categories", len(cat.Categories())),
		slog.Int("datasets", cat.DatasetCount()))
	return cat
}

// loadFetchConfig loads and validates the fetch configuration.
func loadFetchConfig(logger *slog.Logger) fetcher.Config {
	cfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load fetch configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("fetcher configured",
		slog.Duration("timeout", cfg.Timeout),
		slog.Int64("max_body_size", cfg.MaxBodySize),
		slog.Bool("deny_private_ips", cfg.DenyPrivateIPs))
	return cfg
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupRoutes registers all HTTP routes and wraps them in the
// middleware chain.
func setupRoutes(logger *slog.Logger, cat *catalog.Catalog, svc *dsUC.Service, fetchCfg fetcher.Config, version string) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", ui.DashboardHandler{Catalog: cat, Svc: svc, Logger: logger})
	hdataset.Register(mux, cat, svc)

	mux.Handle("/health", &hhttp.HealthHandler{
		Catalog:      cat,
		FetchTimeout: fetchCfg.Timeout,
		Version:      version,
	})
	mux.Handle("/ready", &hhttp.ReadyHandler{Catalog: cat})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Request ID → Tracing → Recovery → Logging →
// Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := config.GetEnvString("DASHBOARD_ADDR", ":8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

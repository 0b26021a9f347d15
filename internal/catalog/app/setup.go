// Package app contains the application setup for the catalog service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/portfolioapi/catalog/internal/catalog/service"
	"github.com/portfolioapi/catalog/internal/catalog/store"
	"github.com/portfolioapi/catalog/internal/catalog/transport/rest"
	"github.com/portfolioapi/catalog/internal/config"
	"github.com/portfolioapi/catalog/internal/platform/web"
	"github.com/shopspring/decimal"
)

type Dependencies struct {
	CatalogService service.CatalogService
	Logger         *slog.Logger
}

// SetupDependencies wires the store and service. When seeding is enabled the
// store is preloaded with the sample catalog.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	productStore := store.NewInMemoryStore()
	if cfg.Catalog.Seed {
		seedCatalog(productStore, logger)
	}

	return &Dependencies{
		CatalogService: service.NewService(productStore),
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the router and routes for the catalog application.
// Used by tests to set up the HTTP handler with the necessary routes and middleware.
// The recoverer is registered first so that it wraps the correlation middleware
// and converts any failure, wherever it occurs, into a controlled response.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := chi.NewRouter()
	mux.Use(web.Recoverer(deps.Logger))
	mux.Use(web.CorrelationID)
	mux.Use(web.StructuredLogger(deps.Logger))

	catalogHandler := rest.NewHandler(deps.CatalogService, deps.Logger)
	catalogHandler.RegisterRoutes(mux)

	return mux
}

// SetupHttpServer creates and configures an HTTP server for the catalog application.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPServer.Port),
		Handler:           mux,
		ReadTimeout:       cfg.HTTPServer.Timeout.Read,
		WriteTimeout:      cfg.HTTPServer.Timeout.Write,
		IdleTimeout:       cfg.HTTPServer.Timeout.Idle,
		ReadHeaderTimeout: cfg.HTTPServer.Timeout.ReadHeader,
		MaxHeaderBytes:    cfg.HTTPServer.MaxHeaderBytes,
	}
}

// seedCatalog preloads the store with the initial sample products.
func seedCatalog(productStore store.ProductStore, logger *slog.Logger) {
	ctx := context.Background()
	seed := []struct {
		name     string
		price    int64
		category string
	}{
		{"Laptop", 1200, store.CategoryElectronics},
		{"Phone", 800, store.CategoryElectronics},
	}
	for _, p := range seed {
		if _, err := productStore.Create(ctx, p.name, decimal.NewFromInt(p.price), p.category); err != nil {
			logger.Error("Failed to seed product", "name", p.name, "error", err)
		}
	}
	logger.Info("Seeded initial catalog", "count", len(seed))
}

// Package main is the entry point for the funnel preview server.
// It loads configuration, wires the rendering engine to its catalogs and
// stores, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"funnelpress/internal/cache"
	"funnelpress/internal/config"
	"funnelpress/internal/handlers"
	"funnelpress/internal/registry"
	"funnelpress/internal/renderer"
	"funnelpress/internal/router"
	"funnelpress/internal/store"
	"funnelpress/internal/styles"
	"funnelpress/internal/theme"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger — JSON in production, text in development.
	var handler slog.Handler
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to Valkey when configured. The server runs without it; the
	// L2 caches degrade to no-ops on a nil client.
	var valkeyClient *redis.Client
	if cfg.ValkeyEnabled() {
		valkeyClient, err = cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, running without L2 caches", "error", err)
			valkeyClient = nil
		} else {
			defer valkeyClient.Close()
		}
	} else {
		slog.Info("valkey not configured, running without L2 caches")
	}

	// Engine catalogs: template field schemas, themes and font groups.
	fieldRegistry := registry.Default()
	themeCatalog := theme.DefaultCatalog()
	fontGroups := styles.DefaultGroups()

	// In-memory stores back the standalone server. Hosts embedding the
	// engine supply their own implementations of the store interfaces.
	funnelStore := store.NewMemoryFunnelStore()
	customizationStore := store.NewMemoryCustomizationStore()
	caseStudyStore := store.NewMemoryCaseStudyStore()

	// Page renderer (L1 template cache) and the Valkey-backed L2 caches.
	pageRenderer := renderer.New(fieldRegistry, themeCatalog, fontGroups)
	previewCache := cache.NewPreviewCache(valkeyClient, cache.DefaultPreviewTTL)
	cssCache := cache.NewCSSCache(valkeyClient, cache.DefaultCSSTTL)

	// Create handler groups with their dependencies.
	previewHandlers := handlers.NewPreview(funnelStore, customizationStore, caseStudyStore, pageRenderer, themeCatalog, previewCache, cssCache)
	funnelHandlers := handlers.NewFunnels(funnelStore, customizationStore, caseStudyStore, fieldRegistry, themeCatalog, previewCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(previewHandlers, funnelHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

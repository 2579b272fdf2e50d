// ABOUTME: Entry point for the parts-gateway conversation server
// ABOUTME: Wires config, session store, collaborators, journeys and the HTTP API

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/repuai/parts-gateway/internal/catalog"
	"github.com/repuai/parts-gateway/internal/config"
	"github.com/repuai/parts-gateway/internal/conversation"
	"github.com/repuai/parts-gateway/internal/httpapi"
	"github.com/repuai/parts-gateway/internal/intent"
	"github.com/repuai/parts-gateway/internal/inventory"
	"github.com/repuai/parts-gateway/internal/journeys/productsearch"
	"github.com/repuai/parts-gateway/internal/messages"
	"github.com/repuai/parts-gateway/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "gateway.yaml", "path to the configuration file")
	flag.Parse()

	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	setupLogging(cfg.Logging)
	logger := slog.Default()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("connecting to redis at %s: %w", cfg.Redis.Addr, err)
	}
	defer rdb.Close()
	logger.Info("connected to redis", "addr", cfg.Redis.Addr)

	inventoryStore, err := inventory.NewSQLiteStore(cfg.Inventory.Path)
	if err != nil {
		return err
	}
	defer inventoryStore.Close()

	catalogClient := catalog.NewHTTPClient(catalog.HTTPClientOptions{
		BaseURL:   cfg.Catalog.BaseURL,
		APIKey:    cfg.Catalog.APIKey,
		APIHost:   cfg.Catalog.APIHost,
		LangID:    cfg.Catalog.LangID,
		CountryID: cfg.Catalog.CountryID,
		Timeout:   cfg.Catalog.Timeout,
	})

	msgs, err := messages.Load()
	if err != nil {
		return err
	}

	menu := conversation.NewIntentMenu(intent.NewParser(), msgs)
	registry := conversation.NewRegistry(
		productsearch.New(catalogClient, inventoryStore, msgs, productsearch.Options{
			MaxArticlesPerPage: cfg.Limits.MaxArticlesPerPage,
			CategoryLevels:     cfg.Limits.CategoryLevels,
		}),
	)

	mgr := conversation.NewManager(store.NewRedisStore(rdb), conversation.NewTransitions(), registry, menu)
	mgr.SetSessionTTL(cfg.Redis.SessionTTL)

	handler := httpapi.NewHandler(mgr, cfg.Auth.APIKey)
	server := &http.Server{
		Addr:         cfg.Server.HTTPAddr,
		Handler:      handler.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func setupLogging(cfg config.LoggingConfig) {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

package main

import (
	"context"
	"crypto/rand"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/infinity-lifestyle/storefront/internal/cart"
	"github.com/infinity-lifestyle/storefront/internal/config"
	"github.com/infinity-lifestyle/storefront/internal/db"
	"github.com/infinity-lifestyle/storefront/internal/httpserver"
	"github.com/infinity-lifestyle/storefront/internal/logging"
	loggingmw "github.com/infinity-lifestyle/storefront/internal/middleware/logging"
	"github.com/infinity-lifestyle/storefront/internal/repo"
	"github.com/infinity-lifestyle/storefront/internal/search"
	"github.com/infinity-lifestyle/storefront/internal/seed"
	"github.com/infinity-lifestyle/storefront/internal/service"
	"github.com/infinity-lifestyle/storefront/internal/session"
	"github.com/infinity-lifestyle/storefront/internal/stream"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := seed.Load(database, cfg.CatalogSeed); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	secret := cfg.SessionSecret
	if len(secret) == 0 {
		// Sessions are volatile anyway; a per-process key only invalidates
		// cookies across restarts.
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			log.Fatalf("session secret: %v", err)
		}
		logger.Warn("SESSION_SECRET not set, using a random per-process key")
	}
	sessions := session.NewManager(secret, 24*time.Hour)

	catalogRepo := repo.New(database)

	var cartStore cart.Store
	var redisStore *cart.RedisStore
	if cfg.RedisAddr != "" {
		client, err := cart.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		redisStore = cart.NewRedisStore(client, 24*time.Hour)
		cartStore = redisStore
	} else {
		cartStore = cart.NewMemoryStore()
	}

	producer := stream.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)

	searchSvc := &search.Service{Index: cfg.ESIndex, Repo: catalogRepo}
	if cfg.ESURL != "" {
		esClient, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch connect: %v", err)
		}
		searchSvc.ES = esClient
	}

	catalogSvc := &service.CatalogService{Repo: catalogRepo}
	cartSvc := &service.CartService{Store: cartStore, Repo: catalogRepo, Producer: producer}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
		EventHandler:   &httpserver.EventHTTP{Svc: catalogSvc},
		CartHandler:    &httpserver.CartHTTP{Svc: cartSvc},
		SearchHandler:  &httpserver.SearchHTTP{Svc: searchSvc},
		Sessions:       sessions,
	})

	srv := &http.Server{
		Addr:              ":" + config.EnvDefault("SERVER_PORT", "8080"),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("storefront listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}
	if redisStore != nil {
		if err := redisStore.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("storefront stopped")
}

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NotOriginal333/hotel-lab4/internal/config"
	"github.com/NotOriginal333/hotel-lab4/internal/db"
	"github.com/NotOriginal333/hotel-lab4/internal/logger"
	"github.com/NotOriginal333/hotel-lab4/internal/resortapi"
	"github.com/NotOriginal333/hotel-lab4/internal/server"
	"github.com/NotOriginal333/hotel-lab4/internal/session"
	"github.com/NotOriginal333/hotel-lab4/internal/telemetry"
	"github.com/NotOriginal333/hotel-lab4/internal/web/controller"
	"github.com/NotOriginal333/hotel-lab4/internal/web/service"

	"github.com/gin-gonic/gin"
)

var version = "dev"

const sessionPurgeInterval = 10 * time.Minute

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry, version)
	if err != nil {
		logger.Init(cfg.LogLevel, false).Error("Failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	log := logger.Init(cfg.LogLevel, cfg.Telemetry.Enabled)
	log.Info("Starting resort web", "env", cfg.Env, "version", version, "session_backend", cfg.Session.Backend)

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, ping, closeStore, err := newSessionStore(ctx, cfg.Session)
	if err != nil {
		log.Error("Failed to initialize session store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// Create services
	api := resortapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	authService := service.NewAuthService(api)
	cottageService, err := service.NewCottageService(api, cfg.API.PageSize)
	if err != nil {
		log.Error("Failed to initialize cottage service", "error", err)
		os.Exit(1)
	}

	// Create controllers
	authController := controller.NewAuthController(authService)
	cottageController := controller.NewCottageController(cottageService)
	healthController := controller.NewHealthController(map[string]controller.Pinger{
		"sessions": ping,
	})

	sessions := session.NewManager(store, session.NewCookieCodec(cfg.Session.Secret, cfg.Session.TTL), cfg.Session.TTL, cfg.Session.CookieSecure)
	srv, err := server.NewServer(sessions, authController, cottageController, healthController)
	if err != nil {
		log.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      srv.Engine(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("http server started", "addr", cfg.HTTP.Address)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("ListenAndServe failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exiting")
}

// newSessionStore opens the configured session backend. The returned ping is
// used by the health endpoint and closeFn releases the connection.
func newSessionStore(ctx context.Context, cfg config.Session) (session.Store, controller.PingFunc, func(), error) {
	switch cfg.Backend {
	case config.SessionBackendSQLite:
		pool, err := db.SQLiteConnect(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		store := session.NewSQLiteStore(pool)
		go store.RunPurger(ctx, sessionPurgeInterval, func(err error) {
			slog.ErrorContext(ctx, "Failed to purge expired sessions", "error", err)
		})
		return store, pool.PingContext, func() { pool.Close() }, nil
	default:
		rdb, err := db.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, nil, err
		}
		ping := func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		return session.NewRedisStore(rdb), ping, func() { rdb.Close() }, nil
	}
}

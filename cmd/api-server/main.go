package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"showrank/internal/admin"
	"showrank/internal/episodes"
	"showrank/internal/events"
	"showrank/internal/logging"
	"showrank/internal/pipeline"
	"showrank/internal/shows"
	"showrank/internal/spots"
	"showrank/pkg/config"
	"showrank/pkg/database"
)

func main() {
	configPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.New("api-server", config.Defaults().Log).Error("failed to load configuration", "error", err)
		os.Exit(2)
	}
	logger := logging.New("api-server", cfg.Log)

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Error("db open failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Error("db migrate failed", "error", err)
		os.Exit(1)
	}

	gin.DefaultWriter = logging.StdWriter(logger.Named("gin"))
	gin.DefaultErrorWriter = gin.DefaultWriter
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	hub := events.NewHub(logger.Named("events"))
	router.GET("/ws", events.WSHandler(hub))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": cfg.Database.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"db_error":   err.Error(),
				"ws_clients": stats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"db":         "ok",
			"ws_clients": stats.WSClients,
		})
	})

	runner := pipeline.New(db, *cfg, logger.Named("pipeline"))
	runner.Events = hub

	// Public read API
	api := router.Group("/api")
	shows.NewHandler(runner.Shows).RegisterRoutes(api)
	episodes.NewHandler(runner.Episodes, runner.Shows).RegisterRoutes(api)
	spots.NewHandler(runner.Spots).RegisterRoutes(api)

	// Owner-only maintenance
	tokens := admin.TokenService{
		Secret:   []byte(cfg.Admin.JWTSecret),
		Issuer:   cfg.Admin.JWTIssuer,
		Duration: cfg.Admin.JWTTTL,
	}
	writerLock := func() (func(), error) { return database.LockWriter(cfg.Database) }
	admin.NewHandler(cfg.Admin.PasswordHash, tokens, runner, writerLock, logger.Named("admin")).
		RegisterRoutes(router.Group("/admin"))

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API server listening", "addr", cfg.HTTP.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	logger.Info("server stopped")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mindpairing/mindpairing-backend/internal/api"
	"github.com/mindpairing/mindpairing-backend/internal/config"
	"github.com/mindpairing/mindpairing-backend/internal/forum"
	"github.com/mindpairing/mindpairing-backend/internal/identity"
	"github.com/mindpairing/mindpairing-backend/internal/log"
	"github.com/mindpairing/mindpairing-backend/internal/metrics"
	"github.com/mindpairing/mindpairing-backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	logger, err := log.NewSugar(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Infow("Starting Mindpairing API server",
		"env", cfg.Env,
		"addr", cfg.HTTPAddr,
	)

	// Setup metrics
	metricsObj, metricsHandler, err := metrics.Setup("mindpairing-api")
	if err != nil {
		logger.Fatalw("Failed to setup metrics", "error", err)
	}

	// Connect to Postgres
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := store.NewPool(ctx, cfg.Database.PostgresDSN)
	if err != nil {
		logger.Fatalw("Failed to connect to database", "error", err)
	}
	defer pool.Close()
	logger.Infow("Database connection established")

	// Setup Redis cache
	cache, err := store.NewCache(cfg.Cache.RedisAddr, logger, metricsObj)
	if err != nil {
		logger.Fatalw("Failed to setup cache", "error", err)
	}
	defer cache.Close()

	// Repositories
	boards := store.NewBoards(pool)
	topics := store.NewTopics(pool)
	posts := store.NewPosts(pool)
	comments := store.NewComments(pool)
	likes := store.NewLikes(pool)
	reports := store.NewReports(pool)
	users := store.NewUsers(pool)

	// Services
	boardSvc := forum.NewBoardService(boards, cache, cfg.Cache.BoardTTL, logger)
	postSvc := forum.NewPostService(posts, boards, topics, likes, comments,
		cfg.Paging.DefaultPageSize, cfg.Paging.MaxPageSize, logger)
	commentSvc := forum.NewCommentService(comments, posts, likes, logger)
	reportSvc := forum.NewReportService(reports, posts, comments, logger)

	// Identity provider
	var provider identity.Provider
	switch cfg.Identity.Provider {
	case "kakao":
		provider = identity.NewKakaoProvider(cfg.Identity.KakaoUserInfoURL, logger)
	default:
		logger.Warnw("Using static identity provider; tokens are trusted as-is")
		provider = identity.StaticProvider{}
	}
	provider = identity.NewCachedProvider(provider, cache, cfg.Cache.IdentityTTL, logger)

	// Setup API handler and middleware
	handler := api.NewHandler(boardSvc, postSvc, commentSvc, reportSvc, pool, cache, metricsObj, logger)
	middleware := api.NewMiddleware(logger, metricsObj)
	auth := api.NewAuthenticator(provider, users, logger)

	router := handler.Routes(middleware, auth, cfg.Security.CORSAllowedOrigins, cfg.Security.RateLimitRPM)
	logger.Infow("CORS configured", "allowed_origins", cfg.Security.CORSAllowedOrigins)

	// Add metrics endpoint
	router.Handle("/metrics", metricsHandler)

	// Setup HTTP server
	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	serverErrors := make(chan error, 1)
	go func() {
		logger.Infow("API server starting", "addr", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Fatalw("Server startup failed", "error", err)
	case sig := <-shutdown:
		logger.Infow("Shutdown signal received", "signal", sig.String())

		// Give outstanding requests 30 seconds to complete
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Errorw("Graceful shutdown failed", "error", err)
			server.Close()
		}

		logger.Infow("Server stopped")
	}
}

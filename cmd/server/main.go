// VeriScan dashboard API server.
//
// @title           VeriScan Dashboard API
// @version         1.0
// @description     AI-detection dashboards behind a session/role authorization gate.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/veriscan/veriscan-api/internal/api"
	"github.com/veriscan/veriscan-api/internal/api/handler"
	"github.com/veriscan/veriscan-api/internal/core/ports"
	"github.com/veriscan/veriscan-api/internal/core/service"
	"github.com/veriscan/veriscan-api/internal/infrastructure/classifier"
	mongodb "github.com/veriscan/veriscan-api/internal/infrastructure/db/mongo"
	redisdb "github.com/veriscan/veriscan-api/internal/infrastructure/db/redis"
	"github.com/veriscan/veriscan-api/internal/infrastructure/identity"
	"github.com/veriscan/veriscan-api/internal/infrastructure/queue"
	"github.com/veriscan/veriscan-api/internal/pkg/config"
	"github.com/veriscan/veriscan-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Identity boundary ---
	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}
	sessions := redisdb.NewSessionStore(rdb)
	authService := service.NewAuthService(users, sessions, cfg.JWTSecret, cfg.SessionTTL, log)

	var identityClient ports.IdentityClient
	if cfg.IdentityBaseURL != "" {
		identityClient = identity.NewClient(cfg.IdentityBaseURL, nil)
	} else {
		identityClient = identity.NewLocal(authService)
	}
	resolver := service.NewProfileResolver(identityClient, cfg.ResolveTimeout, log)

	// --- Detection pipeline ---
	detectionRepo := mongodb.NewDetectionRepository(db)
	detectionService := service.NewDetectionService(
		classifier.NewClient(cfg.ClassifierBaseURL, nil),
		detectionRepo,
		users,
		log,
	)
	dispatcher := queue.NewDispatcher(cfg.DetectionWorkers, detectionService, log)
	detectionService.SetRecorder(dispatcher)
	dispatcher.Start(ctx)

	// --- HTTP surface ---
	e := api.NewRouter(api.Deps{
		Auth:      handler.NewAuthHandler(authService, int(cfg.SessionTTL.Seconds())),
		Content:   handler.NewContentHandler(),
		Dashboard: handler.NewDashboardHandler(detectionService),
		Detection: handler.NewDetectionHandler(detectionService),
		Health:    handler.NewHealthHandler(),
		Readiness: handler.NewHealthDependenciesHandler(db, rdb),
		Resolver:  resolver,
		Revoker:   authService,
		Log:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("veriscan api started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/campusxp/experience-api/internal/api"
	"github.com/campusxp/experience-api/internal/api/handler"
	"github.com/campusxp/experience-api/internal/core/service"
	"github.com/campusxp/experience-api/internal/infrastructure/config"
	"github.com/campusxp/experience-api/internal/infrastructure/db/mongo"
	"github.com/campusxp/experience-api/internal/infrastructure/db/redis"
	"github.com/campusxp/experience-api/internal/infrastructure/identity"
	"github.com/campusxp/experience-api/pkg/logger"
)

var serverPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server. Configuration comes from environment variables;
MongoDB and Redis must be reachable. SIGINT or SIGTERM triggers a graceful shutdown.

Examples:
  campusxp serve
  campusxp serve --port 9090 --log-level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverPort, "port", "", "server port (default: $PORT or 8080)")
}

func runServer(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if serverPort != "" {
		cfg.Port = serverPort
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "campusxp",
	})
	log.Info().Str("version", Version).Str("env", cfg.Env).Msg("starting campus experience api")

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Dependencies ---
	userRepo := mongo.NewUserRepository(db)
	univRepo := mongo.NewUniversityRepository(db)
	expRepo := mongo.NewExperienceRepository(db)
	credRepo := mongo.NewCredentialRepository(db)

	provider := identity.NewProvider(
		mongo.NewAccountRepository(db),
		redis.NewLoginTokenStore(rdb),
		cfg.Identity.TokenSecret,
		cfg.Identity.LoginTokenTTL,
	)

	e := api.NewRouter(api.Dependencies{
		Users:        service.NewUserService(userRepo, univRepo, provider, logger.Component(log, "user")),
		Experiences:  service.NewExperienceService(expRepo, logger.Component(log, "experience")),
		Universities: service.NewUniversityService(univRepo),
		Credentials:  credRepo,
		HealthChecks: []handler.DependencyCheck{
			{Name: "mongo", Ping: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
			{Name: "redis", Ping: func(ctx context.Context) error { return pingRedis(ctx, rdb) }},
		},
		Logger:           log,
		APIPrefix:        cfg.APIPrefix,
		SummaryMaxLength: cfg.SummaryMaxLength,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("prefix", cfg.APIPrefix).Msg("http server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-sigCtx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

func pingRedis(ctx context.Context, rdb *goredis.Client) error {
	return rdb.Ping(ctx).Err()
}

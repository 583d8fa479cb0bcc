package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres"
	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/moodentry"
	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/schedulerstate"
	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/token"
	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/user"
	internalauth "github.com/calmbird/moodtrack-backend/internal/auth"
	"github.com/calmbird/moodtrack-backend/internal/config"
	"github.com/calmbird/moodtrack-backend/internal/service/analytics"
	authsvc "github.com/calmbird/moodtrack-backend/internal/service/auth"
	"github.com/calmbird/moodtrack-backend/internal/service/moodlog"
	"github.com/calmbird/moodtrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database, wires services and the HTTP transport, and
// serves until the context is cancelled or a shutdown signal arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := runMigrations(ctx, logger, cfg.Database.DSN); err != nil {
			return err
		}
	}

	userRepo := user.New(pool)
	tokenRepo := token.New(pool)
	moodRepo := moodentry.New(pool)
	stateRepo := schedulerstate.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := internalauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, userRepo, tokenRepo, txManager, jwtManager, cfg.Auth)
	analyticsService := analytics.NewService(logger, moodRepo, stateRepo, nil)
	moodService := moodlog.NewService(logger, moodRepo, analyticsService)

	handler, cleanup := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		Config:    cfg,
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Auth:      rest.NewAuthHandler(authService, logger),
		Moods:     rest.NewMoodHandler(moodService, logger),
		Analytics: rest.NewAnalyticsHandler(analyticsService, logger),
		Validator: authService,
	})
	defer cleanup()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

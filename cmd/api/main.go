package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/devlinkhq/devlink-api/internal/auth"
	"github.com/devlinkhq/devlink-api/internal/config"
	"github.com/devlinkhq/devlink-api/internal/github"
	"github.com/devlinkhq/devlink-api/internal/handler"
	"github.com/devlinkhq/devlink-api/internal/repository"
	"github.com/devlinkhq/devlink-api/internal/usecase"
	"github.com/devlinkhq/devlink-api/internal/validation"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create mongo client")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect mongo client")
		}
	}()

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongo")
	}

	db := client.Database(cfg.MongoDatabase)

	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	profileRepo := repository.NewProfileMongoRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	githubClient := github.NewClient(cfg.GitHubBaseURL, cfg.GitHubTimeout)

	validator, err := validation.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create validator")
	}

	authUsecase := usecase.NewAuthUsecase(userRepo, tokens)
	profileUsecase := usecase.NewProfileUsecase(profileRepo, userRepo)

	authHandler := handler.NewAuthHandler(authUsecase, validator, &logger)
	profileHandler := handler.NewProfileHandler(profileUsecase, validator, &logger)
	githubHandler := handler.NewGithubHandler(githubClient, &logger)

	router := handler.NewRouter(&logger, tokens, authHandler, profileHandler, githubHandler)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("server listening")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}

	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed, closing")
			if err := server.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close server")
			}
		}

		logger.Info().Msg("server stopped")
	}
}

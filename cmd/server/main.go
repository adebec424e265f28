package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gierkopolecacz/backend/internal/app"
	"gierkopolecacz/backend/internal/config"
	"gierkopolecacz/backend/internal/logging"
	"gierkopolecacz/backend/internal/router"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gierkopolecacz/backend/docs"
)

// @title           Gierkopolecacz API
// @version         1.0
// @description     Board game catalog with tag based recommendations.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to start application")
	}
	// ctx is done once main returns, so Close only waits for a cancelled import.
	defer func() {
		if err := application.Close(); err != nil {
			logging.Error().Err(err).Msg("shutdown cleanup failed")
		}
	}()
	application.Handler.ImportContext = ctx

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router.Setup(application.Handler, application.Users),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", cfg.ServerAddr).Msg("server is running")
		logging.Info().Msgf("Swagger UI is available at http://localhost%s/swagger/index.html", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// Package app wires configuration, storage and services together for the
// server and the importer.
package app

import (
	"errors"
	"fmt"

	"gierkopolecacz/backend/internal/bgg"
	"gierkopolecacz/backend/internal/config"
	"gierkopolecacz/backend/internal/database"
	"gierkopolecacz/backend/internal/handler"
	"gierkopolecacz/backend/internal/hub"
	"gierkopolecacz/backend/internal/ingest"
	"gierkopolecacz/backend/internal/logging"
	"gierkopolecacz/backend/internal/repository"
	"gierkopolecacz/backend/internal/service"

	"gorm.io/gorm"
)

type App struct {
	DB       *gorm.DB
	BGG      *bgg.Client
	Importer *ingest.Importer
	Handler  *handler.Handler
	Users    *repository.UserRepository

	cache *bgg.BadgerCache
}

// New connects to the database and builds every service.
func New(cfg *config.Config) (*App, error) {
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return NewWithDB(cfg, db)
}

// NewWithDB builds the application on an open database handle.
func NewWithDB(cfg *config.Config, db *gorm.DB) (*App, error) {
	client, cache, err := NewBGGClient(cfg)
	if err != nil {
		return nil, err
	}

	games := repository.NewGameRepository(db)
	collections := repository.NewCollectionRepository(db)
	recommendations := repository.NewRecommendationRepository(db)
	users := repository.NewUserRepository(db)

	importer := ingest.NewImporter(client, games, hub.GlobalHub)

	return &App{
		DB:       db,
		BGG:      client,
		Importer: importer,
		Users:    users,
		cache:    cache,
		Handler: &handler.Handler{
			Users:           service.NewUserService(users, collections),
			Games:           service.NewGameService(games, collections),
			Collections:     service.NewCollectionService(games, collections),
			Recommendations: service.NewRecommendationService(games, collections, recommendations),
			Importer:        importer,
			Hub:             hub.GlobalHub,
			ImportLimit:     cfg.ImportLimit,
		},
	}, nil
}

// NewBGGClient builds the BoardGameGeek client. The cache is nil when no
// cache directory is configured.
func NewBGGClient(cfg *config.Config) (*bgg.Client, *bgg.BadgerCache, error) {
	opts := bgg.Options{
		APIURL:            cfg.BGGAPIURL,
		DumpURL:           cfg.BGGDumpURL,
		RetryCount:        cfg.BGGRetryCount,
		RetryDelay:        cfg.BGGRetryDelay,
		DumpAttempts:      cfg.BGGDumpAttempts,
		RequestsPerSecond: cfg.BGGRequestsPerSecond,
		DumpDir:           cfg.BGGDumpDir,
	}

	var cache *bgg.BadgerCache
	if cfg.BGGCacheDir != "" {
		var err error
		cache, err = bgg.OpenBadgerCache(cfg.BGGCacheDir, cfg.BGGCacheTTL)
		if err != nil {
			return nil, nil, err
		}
		opts.Cache = cache
		logging.Info().Str("dir", cfg.BGGCacheDir).Dur("ttl", cfg.BGGCacheTTL).Msg("BoardGameGeek response cache enabled")
	}
	return bgg.NewClient(opts), cache, nil
}

// Close waits for a running background import, then releases the cache and
// the database connection. Cancel the import context first to stop the import.
func (a *App) Close() error {
	if a.Importer != nil {
		a.Importer.Wait()
	}

	var errs []error
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cache: %w", err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close database: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

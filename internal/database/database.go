package database

import (
	"fmt"
	"time"

	"gierkopolecacz/backend/internal/logging"
	"gierkopolecacz/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database connection and runs migrations.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := Open(postgres.Open(dsn))
	if err != nil {
		return nil, err
	}
	logging.Info().Msg("Database connection established.")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	logging.Info().Msg("Database migrated successfully.")

	return db, nil
}

// Open creates a gorm handle for the given dialector with the application logger.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	customLogger := logger.New(
		logging.GormWriter{},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Game{},
		&models.SelectedGames{},
		&models.OwnedGames{},
		&models.Recommendation{},
		&models.Opinion{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
